// Package cardinality implements occurrence ranges written as "from..to",
// where to may be '*' for unbounded, or a bare "*" for 0..*.
//
// Values are comparable with ==, so Parse("0..1") == ZeroOne.
package cardinality

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/Neumenon/textkit/textkit"
)

// Many is the upper bound written as '*'.
const Many = math.MaxInt

// Cardinality errors
var (
	// ErrNoMatch indicates the scanner was not positioned at a cardinality.
	ErrNoMatch = errors.New("no cardinality at cursor")

	// ErrInvalid indicates a range that is malformed or has from > to.
	ErrInvalid = errors.New("invalid cardinality")
)

// Cardinality is an inclusive range of allowed occurrence counts.
type Cardinality struct {
	From int
	To   int // Many for unbounded
}

// Well-known cardinalities.
var (
	Zero     = Cardinality{0, 0}
	ZeroOne  = Cardinality{0, 1}
	ZeroMany = Cardinality{0, Many}
	OneOne   = Cardinality{1, 1}
	OneMany  = Cardinality{1, Many}
)

// New returns the cardinality from..to. It fails if from is negative or
// greater than to.
func New(from, to int) (Cardinality, error) {
	if from < 0 || from > to {
		return Cardinality{}, fmt.Errorf("%w: '%d..%s'", ErrInvalid, from, bound(to))
	}
	return Cardinality{From: from, To: to}, nil
}

// Must is New that panics on error. It is meant for package-level values.
func Must(from, to int) Cardinality {
	c, err := New(from, to)
	if err != nil {
		panic("cardinality: " + err.Error())
	}
	return c
}

// Parse parses a whole string such as "0..1", "2..*" or "*".
func Parse(text string) (Cardinality, error) {
	t := textkit.FromString(text)
	c, err := Scan(t)
	if err != nil {
		if errors.Is(err, ErrNoMatch) {
			return Cardinality{}, fmt.Errorf("%w: '%s'", ErrInvalid, text)
		}
		return Cardinality{}, err
	}
	if !t.AtEOF() {
		return Cardinality{}, fmt.Errorf("%w: trailing text in '%s'", ErrInvalid, text)
	}
	return c, nil
}

// Scan reads a cardinality at the scanner's cursor:
//
//	cardinality : '*' | Pint '..' ( '*' | Pint ) ;
//
// On any error the cursor is left where it was.
func Scan(s textkit.Scanner) (c Cardinality, err error) {
	m := s.Mark()
	start := s.Cursor()
	var matched bool

	if ferr := textkit.Catch(func() { matched = scan(s) }); ferr != nil {
		s.Rewind(m)
		return Cardinality{}, fmt.Errorf("%w: %v", ErrInvalid, ferr)
	}
	if !matched {
		s.Rewind(m)
		return Cardinality{}, ErrNoMatch
	}

	text := s.SliceFrom(start)
	if text == "*" {
		return ZeroMany, nil
	}
	c, err = fromText(text)
	if err != nil {
		s.Rewind(m)
		return Cardinality{}, err
	}
	return c, nil
}

func scan(s textkit.Scanner) bool {
	if s.Consume('*') {
		return true
	}
	if _, ok := s.ConsumePint(); !ok || !s.ConsumeString("..") {
		return false
	}
	if s.Consume('*') {
		return true
	}
	_, ok := s.ConsumePint()
	return ok
}

// fromText converts a scanned "from..to" into a validated Cardinality.
func fromText(text string) (Cardinality, error) {
	t := textkit.FromString(text)
	fromSpan, _ := t.ConsumePint()
	from, err := strconv.Atoi(t.Extract(fromSpan))
	if err != nil {
		return Cardinality{}, fmt.Errorf("%w: '%s': %v", ErrInvalid, text, err)
	}
	t.MustConsume('.')
	t.MustConsume('.')
	to := Many
	if !t.Consume('*') {
		toSpan, _ := t.ConsumePint()
		if to, err = strconv.Atoi(t.Extract(toSpan)); err != nil {
			return Cardinality{}, fmt.Errorf("%w: '%s': %v", ErrInvalid, text, err)
		}
	}
	return New(from, to)
}

// IsFixed reports whether exactly one count is allowed.
func (c Cardinality) IsFixed() bool { return c.From == c.To }

// Allows reports whether n lies within the range.
func (c Cardinality) Allows(n int) bool { return n >= c.From && n <= c.To }

// String returns the canonical "from..to" form; an unbounded upper limit is
// written as '*'.
func (c Cardinality) String() string {
	return strconv.Itoa(c.From) + ".." + bound(c.To)
}

// WriteText appends the canonical form to t.
func (c Cardinality) WriteText(t *textkit.Text) {
	t.AppendInt(c.From)
	t.Append("..")
	t.Append(bound(c.To))
}

func bound(to int) string {
	if to == Many {
		return "*"
	}
	return strconv.Itoa(to)
}
