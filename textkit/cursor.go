package textkit

import (
	"math"
	"strconv"
)

// Span is a [Start, End) byte range of a Text.
type Span struct {
	Start, End int
}

// Len returns the number of bytes in the span.
func (s Span) Len() int { return s.End - s.Start }

// Empty reports whether the span covers nothing.
func (s Span) Empty() bool { return s.End == s.Start }

// Mark is a saved scan position.
type Mark struct {
	cursor, start int
}

// Cursor returns the scan offset.
func (t *Text) Cursor() int { return t.cursor }

// SetCursor moves the scan offset to n, which must lie in [0, Len()].
func (t *Text) SetCursor(n int) {
	if n < 0 || n > t.n {
		panic(t.fault(KindRange, "cursor %d outside [0, %d]", n, t.n))
	}
	t.cursor = n
}

// Mark saves the scan position, including the last consumed span.
func (t *Text) Mark() Mark {
	return Mark{cursor: t.cursor, start: t.start}
}

// Rewind restores a position saved by Mark.
func (t *Text) Rewind(m Mark) {
	if m.cursor > t.n {
		panic(t.fault(KindRange, "mark %d past end %d", m.cursor, t.n))
	}
	t.cursor = m.cursor
	t.start = m.start
}

// Scan runs fn and rewinds to where the cursor was if fn reports false.
func (t *Text) Scan(fn func() bool) bool {
	m := t.Mark()
	if fn() {
		return true
	}
	t.Rewind(m)
	return false
}

// ScanReset moves the cursor back to the start of the text.
func (t *Text) ScanReset() {
	t.cursor = 0
	t.start = 0
}

// AtEOF reports whether the cursor is at the end of the text.
func (t *Text) AtEOF() bool { return t.cursor == t.n }

// Remaining returns the number of bytes after the cursor.
func (t *Text) Remaining() int { return t.n - t.cursor }

// Peek returns the byte at the cursor without consuming it, or EOF.
func (t *Text) Peek() rune {
	if t.cursor >= t.n {
		return EOF
	}
	return rune(t.buf[t.cursor])
}

// PeekByte reports whether c is at the cursor.
func (t *Text) PeekByte(c byte) bool {
	return t.cursor < t.n && t.buf[t.cursor] == c
}

// PeekString reports whether lit is at the cursor.
func (t *Text) PeekString(lit string) bool {
	return t.n-t.cursor >= len(lit) && string(t.buf[t.cursor:t.cursor+len(lit)]) == lit
}

// Next consumes and returns the byte at the cursor. Running off the end is a
// grammar fault.
func (t *Text) Next() byte {
	if t.cursor >= t.n {
		panic(t.fault(KindGrammar, "buffer overrun"))
	}
	c := t.buf[t.cursor]
	t.cursor++
	return c
}

// Consume consumes c if it is at the cursor.
func (t *Text) Consume(c byte) bool {
	if t.cursor < t.n && t.buf[t.cursor] == c {
		t.cursor++
		return true
	}
	return false
}

// MustConsume consumes c or panics with a grammar fault.
func (t *Text) MustConsume(c byte) {
	if t.cursor >= t.n {
		panic(t.fault(KindGrammar, "buffer overrun looking for %q", c))
	}
	if t.buf[t.cursor] != c {
		panic(t.fault(KindGrammar, "expected %q, found %q", c, t.buf[t.cursor]))
	}
	t.cursor++
}

// ConsumeString consumes lit if all of it is at the cursor.
func (t *Text) ConsumeString(lit string) bool {
	if !t.PeekString(lit) {
		return false
	}
	t.cursor += len(lit)
	return true
}

// ConsumeASCII greedily consumes bytes whose class intersects mask.
//
// With no limits at least one byte must match. One limit n means exactly n,
// two limits mean at least min and at most max. The run stops at max even if
// more bytes would match. The attempt start becomes the last consumed span
// start whether or not it succeeds.
func (t *Text) ConsumeASCII(mask Class, limits ...int) (Span, bool) {
	lo, hi := t.limits(mask, limits)
	t.start = t.cursor
	count := 0
	for t.cursor+count < t.n && count < hi {
		if !Classify(rune(t.buf[t.cursor+count])).Has(mask) {
			break
		}
		count++
	}
	if count == 0 || count < lo {
		return Span{t.start, t.start}, false
	}
	t.cursor += count
	return Span{t.start, t.cursor}, true
}

func (t *Text) limits(mask Class, limits []int) (lo, hi int) {
	if mask == 0 {
		panic(t.fault(KindUsage, "empty class mask"))
	}
	switch len(limits) {
	case 0:
		lo, hi = 1, math.MaxInt
	case 1:
		lo, hi = limits[0], limits[0]
	case 2:
		lo, hi = limits[0], limits[1]
	default:
		panic(t.fault(KindUsage, "too many limits: %d", len(limits)))
	}
	if lo < 0 || lo > hi {
		panic(t.fault(KindUsage, "invalid limits [%d, %d]", lo, hi))
	}
	return lo, hi
}

// ConsumeUntil advances to the next stop byte or the end of the text. The
// stop byte is not consumed. It reports whether anything was consumed.
func (t *Text) ConsumeUntil(stop byte) (Span, bool) {
	t.start = t.cursor
	for t.cursor < t.n && t.buf[t.cursor] != stop {
		t.cursor++
	}
	return Span{t.start, t.cursor}, t.cursor != t.start
}

// ParseUntil is ConsumeUntil returning the consumed text.
func (t *Text) ParseUntil(stop byte) string {
	sp, _ := t.ConsumeUntil(stop)
	return t.Extract(sp)
}

// ConsumeFunc consumes bytes while fn accepts them. fn receives the offset
// from the start of the run and the byte.
func (t *Text) ConsumeFunc(fn func(offset int, c byte) bool) (Span, bool) {
	t.start = t.cursor
	for t.cursor < t.n && fn(t.cursor-t.start, t.buf[t.cursor]) {
		t.cursor++
	}
	return Span{t.start, t.cursor}, t.cursor != t.start
}

// SkipSpace consumes spaces, tabs and newlines. It always reports true so it
// can sit in a && chain.
func (t *Text) SkipSpace() bool {
	for t.cursor < t.n {
		switch t.buf[t.cursor] {
		case ' ', '\t', '\n':
			t.cursor++
		default:
			return true
		}
	}
	return true
}

// ConsumeInt consumes '0' | '-'? [1-9][0-9]*.
//
// Only the first digit is checked against [1-9], and a leading '0' matches on
// its own, so "012" yields "0" and leaves "12" for the next call.
func (t *Text) ConsumeInt() (Span, bool) {
	start := t.cursor
	if t.Consume('0') {
		t.start = start
		return Span{start, t.cursor}, true
	}
	t.Consume('-')
	if _, ok := t.ConsumeASCII(Digit19, 1); !ok {
		t.cursor = start
		t.start = start
		return Span{start, start}, false
	}
	t.ConsumeASCII(Digit)
	t.start = start
	return Span{start, t.cursor}, true
}

// ConsumePint consumes a non-negative integer with no leading zero:
// '0' | [1-9][0-9]*. A digit run such as "0123" is a grammar fault rather than
// a mismatch.
func (t *Text) ConsumePint() (Span, bool) {
	sp, ok := t.ConsumeASCII(Digit)
	if !ok {
		return sp, false
	}
	if t.buf[sp.Start] == '0' && sp.Len() > 1 {
		t.cursor = sp.Start
		panic(t.fault(KindGrammar, "invalid integer: %s", t.Extract(sp)))
	}
	return sp, true
}

// ParseInt consumes -?[0-9]+ and returns its value. Leading zeros are
// accepted. A missing number or one that overflows int64 is a grammar fault.
func (t *Text) ParseInt() int64 {
	start := t.cursor
	t.Consume('-')
	if _, ok := t.ConsumeASCII(Digit); !ok {
		t.cursor = start
		panic(t.fault(KindGrammar, "integer not found"))
	}
	t.start = start
	v, err := strconv.ParseInt(t.SliceFrom(start), 10, 64)
	if err != nil {
		t.cursor = start
		panic(t.fault(KindGrammar, "integer out of range: %s", t.SliceFrom(start)))
	}
	return v
}

// ConsumeQuoted consumes a string quoted with ', " or `. A backslash skips
// the byte after it, so an escaped quote does not close the string. A raw
// newline, escaped or not, or the end of the text before the closing quote is
// a mismatch.
func (t *Text) ConsumeQuoted() (Span, bool) {
	start := t.cursor
	t.start = start
	fail := Span{start, start}
	if start >= t.n {
		return fail, false
	}
	q := t.buf[start]
	if q != '\'' && q != '"' && q != '`' {
		return fail, false
	}
	for i := start + 1; i < t.n; i++ {
		switch t.buf[i] {
		case q:
			t.cursor = i + 1
			return Span{start, t.cursor}, true
		case '\n':
			return fail, false
		case '\\':
			if i+1 < t.n && t.buf[i+1] == '\n' {
				return fail, false
			}
			i++
		}
	}
	return fail, false
}

// Consumed returns the text of the last consumed span, or "" if the last
// delimiting call consumed nothing.
func (t *Text) Consumed() string {
	if t.start > t.cursor {
		return ""
	}
	return string(t.buf[t.start:t.cursor])
}

// Extract returns the text covered by sp.
func (t *Text) Extract(sp Span) string {
	return t.Slice(sp.Start, sp.End)
}

// Slice returns the text in [from, to). Out-of-range bounds are a range
// fault.
func (t *Text) Slice(from, to int) string {
	switch {
	case from < 0:
		panic(t.fault(KindRange, "slice start %d is negative", from))
	case to > t.n:
		panic(t.fault(KindRange, "slice end %d past length %d", to, t.n))
	case from > to:
		panic(t.fault(KindRange, "slice start %d after end %d", from, to))
	}
	return string(t.buf[from:to])
}

// SliceFrom returns the text from offset from up to the cursor.
func (t *Text) SliceFrom(from int) string {
	return t.Slice(from, t.cursor)
}
