package textkit

import (
	"fmt"
	"strconv"
)

// maxLineLength is the length past which a compact Text breaks a line on
// Newline.
const maxLineLength = 132

// EOF is returned by Peek at the end of input. It is not a valid byte value.
const EOF rune = -1

// Text is a Store with a scan cursor and pretty-printing state.
type Text struct {
	Store

	pretty bool
	indent *Store // tab characters; nil in compact mode

	cursor int
	start  int // start of the last consumed span

	compactDelim byte
	prettyDelim  string
	delimit      bool
}

// New returns an empty Text in pretty or compact mode. The mode cannot be
// changed afterwards.
func New(pretty bool) *Text {
	t := &Text{
		Store:        Store{buf: make([]byte, initialCapacity)},
		pretty:       pretty,
		compactDelim: ',',
		prettyDelim:  ", ",
	}
	if pretty {
		t.indent = NewStore()
	}
	return t
}

// NewPretty returns an empty pretty Text.
func NewPretty() *Text { return New(true) }

// NewCompact returns an empty compact Text.
func NewCompact() *Text { return New(false) }

// FromString returns a pretty Text holding s with the cursor at 0.
func FromString(s string) *Text {
	t := New(true)
	t.Append(s)
	return t
}

// Pretty reports whether t was created in pretty mode.
func (t *Text) Pretty() bool { return t.pretty }

// Recycle makes t equivalent to a freshly constructed Text of the same mode
// without giving up its storage.
func (t *Text) Recycle() {
	t.Store.Reset()
	if t.indent != nil {
		t.indent.Reset()
	}
	t.cursor = 0
	t.start = 0
	t.delimit = false
}

// Reset is Recycle.
func (t *Text) Reset() { t.Recycle() }

// Truncate discards everything from offset n on, pulling the cursor back if
// it was past n.
func (t *Text) Truncate(n int) {
	t.Store.Truncate(n)
	if t.cursor > n {
		t.cursor = n
	}
	if t.start > n {
		t.start = n
	}
}

// AppendText appends the written region of o.
func (t *Text) AppendText(o *Text) {
	t.AppendStore(&o.Store)
}

// AppendInt appends the decimal form of i.
func (t *Text) AppendInt(i int) {
	t.Append(strconv.Itoa(i))
}

// AppendInt64 appends the decimal form of i.
func (t *Text) AppendInt64(i int64) {
	t.Append(strconv.FormatInt(i, 10))
}

// AppendFloat appends the shortest decimal form of f that round-trips.
func (t *Text) AppendFloat(f float64) {
	t.Append(strconv.FormatFloat(f, 'g', -1, 64))
}

// Appendf appends according to a fmt format specifier.
func (t *Text) Appendf(format string, args ...interface{}) {
	fmt.Fprintf(&t.Store, format, args...)
}

// fault builds a Fault positioned at the cursor.
func (t *Text) fault(kind Kind, format string, args ...interface{}) *Fault {
	return t.Store.fault(kind, t.cursor, format, args...)
}

// ============================================================
// Facets
// ============================================================

// Scanner is the read side of Text.
type Scanner interface {
	Cursor() int
	SetCursor(n int)
	Mark() Mark
	Rewind(m Mark)
	AtEOF() bool
	Peek() rune
	Consume(c byte) bool
	ConsumeString(lit string) bool
	ConsumeASCII(mask Class, limits ...int) (Span, bool)
	ConsumeUntil(stop byte) (Span, bool)
	ConsumeInt() (Span, bool)
	ConsumePint() (Span, bool)
	ConsumeQuoted() (Span, bool)
	Consumed() string
	Slice(from, to int) string
	SliceFrom(from int) string
}

// Builder is the write side of Text.
type Builder interface {
	Append(s string)
	AppendByte(c byte)
	Space()
	Newline()
	Indent()
	IndentMore()
	IndentLess()
	Delimit()
	RestartDelimiting()
	String() string
}

// Writer is implemented by values that know how to render themselves into a
// Text.
type Writer interface {
	WriteText(t *Text)
}

var (
	_ Scanner = (*Text)(nil)
	_ Builder = (*Text)(nil)
)
