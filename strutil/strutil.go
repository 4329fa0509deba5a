// Package strutil holds string helpers built on textkit: quoting and
// escaping, delimited list encoding, summaries and a few name/number
// validators.
package strutil

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Neumenon/textkit/textkit"
)

// Errors returned by the decoding helpers.
var (
	// ErrNotQuoted indicates a string that lacks the expected quotes.
	ErrNotQuoted = errors.New("string is not quoted")

	// ErrInvalidEscape indicates a dangling or unknown backslash escape.
	ErrInvalidEscape = errors.New("invalid escape")

	// ErrInvalidVersion indicates a version string that is not dot-separated
	// non-negative integers.
	ErrInvalidVersion = errors.New("invalid version")

	// ErrNullItem is returned by Destringify for a list holding a nil item.
	ErrNullItem = errors.New("null item")
)

// ============================================================
// Quoting
// ============================================================

// Escape backslash-escapes quote and backslash bytes in s and, if addQuotes
// is set, wraps the result in quote.
func Escape(s string, quote byte, addQuotes bool) string {
	t := textkit.NewCompact()
	if addQuotes {
		t.AppendByte(quote)
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == quote || c == '\\' {
			t.AppendByte('\\')
		}
		t.AppendByte(c)
	}
	if addQuotes {
		t.AppendByte(quote)
	}
	return t.String()
}

// Unescape reverses Escape. With stripQuotes, s must begin and end with an
// unescaped quote.
func Unescape(s string, quote byte, stripQuotes bool) (string, error) {
	inner := s
	if stripQuotes {
		if len(s) < 2 || s[0] != quote || s[len(s)-1] != quote {
			return "", fmt.Errorf("%w: %s", ErrNotQuoted, strconv.Quote(s))
		}
		inner = s[1 : len(s)-1]
	}

	t := textkit.FromString(inner)
	out := textkit.NewCompact()
	for !t.AtEOF() {
		sp, _ := t.ConsumeUntil('\\')
		out.Append(t.Extract(sp))
		if t.Consume('\\') {
			if t.AtEOF() {
				return "", fmt.Errorf("%w: trailing backslash in %s", ErrInvalidEscape, strconv.Quote(s))
			}
			out.AppendByte(t.Next())
		}
	}
	return out.String(), nil
}

// Unquote strips the quotes from a string quoted with ', " or ` and
// resolves the escapes AppendQuoted writes: \b \n \t \f \" \\ and \uXXXX.
// Any other escaped byte stands for itself, so \' is a quote.
func Unquote(s string) (string, error) {
	if !HasQuotes(s, '\'', '"', '`') {
		return "", fmt.Errorf("%w: %s", ErrNotQuoted, strconv.Quote(s))
	}

	t := textkit.FromString(s[1 : len(s)-1])
	out := textkit.NewCompact()
	for !t.AtEOF() {
		sp, _ := t.ConsumeUntil('\\')
		out.Append(t.Extract(sp))
		if !t.Consume('\\') {
			continue
		}
		if t.AtEOF() {
			return "", fmt.Errorf("%w: trailing backslash in %s", ErrInvalidEscape, strconv.Quote(s))
		}
		switch c := t.Next(); c {
		case 'b':
			out.AppendByte('\b')
		case 'n':
			out.AppendByte('\n')
		case 't':
			out.AppendByte('\t')
		case 'f':
			out.AppendByte('\f')
		case 'u':
			sp, ok := t.ConsumeASCII(textkit.Hex, 4)
			if !ok {
				return "", fmt.Errorf("%w: \\u needs 4 hex digits in %s", ErrInvalidEscape, strconv.Quote(s))
			}
			r, _ := strconv.ParseUint(t.Extract(sp), 16, 32)
			out.Append(string(rune(r)))
		default:
			out.AppendByte(c)
		}
	}
	return out.String(), nil
}

// HasQuotes reports whether s starts and ends with the same quote byte, one
// of quotes. With no quotes given only '"' counts.
func HasQuotes(s string, quotes ...byte) bool {
	if len(s) < 2 || s[0] != s[len(s)-1] {
		return false
	}
	if len(quotes) == 0 {
		return s[0] == '"'
	}
	for _, q := range quotes {
		if s[0] == q {
			return true
		}
	}
	return false
}

// StripQuotes removes the quotes HasQuotes finds.
func StripQuotes(s string, quotes ...byte) (string, error) {
	if !HasQuotes(s, quotes...) {
		return "", fmt.Errorf("%w: %s", ErrNotQuoted, strconv.Quote(s))
	}
	return s[1 : len(s)-1], nil
}

// EscapeNewlinesAndQuotes appends s to t with backslashes doubled, newlines
// written as \n and double quotes escaped. Carriage returns are dropped.
func EscapeNewlinesAndQuotes(t *textkit.Text, s string) {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			t.Append(`\\`)
		case '\r':
		case '\n':
			t.Append(`\n`)
		case '"':
			t.Append(`\"`)
		default:
			t.AppendByte(c)
		}
	}
}

// Summary returns at most maxLen bytes of s with control characters escaped,
// followed by "..." if s was cut.
func Summary(s string, maxLen int) string {
	if maxLen < 0 {
		maxLen = 0
	}
	cut := len(s) > maxLen
	if cut {
		s = s[:maxLen]
	}
	t := textkit.NewCompact()
	t.AppendEscapedString(s, false)
	if cut {
		t.Append("...")
	}
	return t.String()
}

// ToUnicode returns the \uXXXX form of c, e.g. 'A' becomes \u0041.
func ToUnicode(c rune) string {
	return fmt.Sprintf(`\u%04x`, c)
}

// ============================================================
// Validators
// ============================================================

const maxNameLength = 64

// scanName consumes [a-zA-Z_][0-9A-Za-z_]{0,63}.
func scanName(t *textkit.Text) bool {
	if _, ok := t.ConsumeASCII(textkit.Letter|textkit.Underline, 1); !ok {
		return false
	}
	t.ConsumeASCII(textkit.Ident, 0, maxNameLength-1)
	return true
}

// IsValidName reports whether s is an identifier of at most 64 bytes that
// does not start with a digit.
func IsValidName(s string) bool {
	t := textkit.FromString(s)
	return scanName(t) && t.AtEOF()
}

// IsValidHex reports whether s is a non-empty run of hex digits.
func IsValidHex(s string) bool {
	t := textkit.FromString(s)
	_, ok := t.ConsumeASCII(textkit.Hex)
	return ok && t.AtEOF()
}

// IsValidAbsolutePath reports whether s matches '/' ( ( Name '/' )* Name )?.
func IsValidAbsolutePath(s string) bool {
	t := textkit.FromString(s)
	if !t.Consume('/') {
		return false
	}
	if t.AtEOF() {
		return true
	}
	for {
		if !scanName(t) {
			return false
		}
		if t.AtEOF() {
			return true
		}
		if !t.Consume('/') {
			return false
		}
	}
}

// CompareVersions compares dot-separated versions numerically, so "1.10" is
// after "1.6" and missing components count as zero. The result is -1, 0 or
// +1.
func CompareVersions(v1, v2 string) (int, error) {
	p1, err := versionParts(v1)
	if err != nil {
		return 0, err
	}
	p2, err := versionParts(v2)
	if err != nil {
		return 0, err
	}
	for i := 0; i < len(p1) || i < len(p2); i++ {
		var a, b int
		if i < len(p1) {
			a = p1[i]
		}
		if i < len(p2) {
			b = p2[i]
		}
		switch {
		case a < b:
			return -1, nil
		case a > b:
			return 1, nil
		}
	}
	return 0, nil
}

func versionParts(v string) (parts []int, err error) {
	t := textkit.FromString(v)
	invalid := fmt.Errorf("%w: %s", ErrInvalidVersion, strconv.Quote(v))
	ferr := textkit.Catch(func() {
		for {
			sp, ok := t.ConsumePint()
			if !ok {
				err = invalid
				return
			}
			n, convErr := strconv.Atoi(t.Extract(sp))
			if convErr != nil {
				err = invalid
				return
			}
			parts = append(parts, n)
			if t.AtEOF() {
				return
			}
			if !t.Consume('.') {
				err = invalid
				return
			}
		}
	})
	if ferr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidVersion, ferr)
	}
	if err != nil {
		return nil, err
	}
	return parts, nil
}
