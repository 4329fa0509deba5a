package textkit

const hexDigits = "0123456789abcdef"

// AppendEscaped appends c so that control characters stay readable:
// \b \n \t \f get their usual escapes, \r is dropped, other control bytes
// become \u00XX and backslash is doubled. A double quote is escaped only when
// escapeQuotes is set.
func (t *Text) AppendEscaped(c byte, escapeQuotes bool) {
	if c >= 32 && c != '\\' && (c != '"' || !escapeQuotes) {
		t.AppendByte(c)
		return
	}
	switch c {
	case '\b':
		t.Append(`\b`)
	case '\n':
		t.Append(`\n`)
	case '\t':
		t.Append(`\t`)
	case '\f':
		t.Append(`\f`)
	case '\r':
	case '"':
		t.Append(`\"`)
	case '\\':
		t.Append(`\\`)
	default:
		t.Append(`\u00`)
		t.AppendByte(hexDigits[c>>4])
		t.AppendByte(hexDigits[c&0xf])
	}
}

// AppendEscapedString appends every byte of s through AppendEscaped.
func (t *Text) AppendEscapedString(s string, escapeQuotes bool) {
	for i := 0; i < len(s); i++ {
		t.AppendEscaped(s[i], escapeQuotes)
	}
}

// AppendQuoted appends s in double quotes with its contents escaped.
func (t *Text) AppendQuoted(s string) {
	t.AppendByte('"')
	t.AppendEscapedString(s, true)
	t.AppendByte('"')
}
