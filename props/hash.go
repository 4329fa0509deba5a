package props

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/Neumenon/textkit/strutil"
)

// Digest is the SHA-256 of a document's compact form. Documents that differ
// only in layout or comments share a digest.
type Digest [32]byte

// Hash returns sha256(Format(false)).
func (d *Document) Hash() Digest {
	return sha256.Sum256([]byte(d.Format(false)))
}

// String returns the digest as lowercase hex.
func (h Digest) String() string {
	return hex.EncodeToString(h[:])
}

// ParseDigest parses the 64-character hex form written by Digest.String.
func ParseDigest(s string) (Digest, error) {
	var h Digest
	if len(s) != 2*len(h) || !strutil.IsValidHex(s) {
		return h, fmt.Errorf("invalid digest %q", s)
	}
	if _, err := hex.Decode(h[:], []byte(s)); err != nil {
		return Digest{}, fmt.Errorf("invalid digest %q: %w", s, err)
	}
	return h, nil
}
