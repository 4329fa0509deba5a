package textkit

import (
	"errors"
	"fmt"
	"strconv"
)

// Fault categories.
var (
	// ErrOutOfRange indicates a read or slice outside the written region.
	ErrOutOfRange = errors.New("index out of range")

	// ErrGrammar indicates malformed input inside a production that had
	// already started to match, e.g. "0123" for a positive integer.
	ErrGrammar = errors.New("grammar violation")

	// ErrUsage indicates a programming error such as popping indentation
	// below zero or passing bad limits to ConsumeASCII.
	ErrUsage = errors.New("invalid usage")
)

// Kind classifies a Fault.
type Kind uint8

const (
	KindRange Kind = iota + 1
	KindGrammar
	KindUsage
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindRange:
		return "range"
	case KindGrammar:
		return "grammar"
	case KindUsage:
		return "usage"
	default:
		return "unknown"
	}
}

// Fault is the panic value for conditions a caller is not expected to
// recover from in normal operation. It carries the whole buffered text so the
// failure can be reconstructed without re-running the caller.
type Fault struct {
	Kind    Kind
	Message string
	Text    string // buffer content at the time of the fault
	Offset  int    // scan cursor, or the offending index for storage reads
}

func (f *Fault) Error() string {
	return fmt.Sprintf("textkit: %s at %d in %s", f.Message, f.Offset, strconv.Quote(f.Text))
}

// Unwrap maps the fault onto ErrOutOfRange, ErrGrammar or ErrUsage.
func (f *Fault) Unwrap() error {
	switch f.Kind {
	case KindRange:
		return ErrOutOfRange
	case KindGrammar:
		return ErrGrammar
	case KindUsage:
		return ErrUsage
	default:
		return nil
	}
}

// Catch runs fn and returns the *Fault it panicked with, if any. Any other
// panic is propagated unchanged.
func Catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(*Fault)
			if !ok {
				panic(r)
			}
			err = f
		}
	}()
	fn()
	return nil
}
