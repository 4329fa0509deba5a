package textkit

// Newline writes a line break. A compact Text only breaks once the current
// line is longer than 132 bytes.
func (t *Text) Newline() {
	if t.pretty || t.lineLen() > maxLineLength {
		t.AppendByte('\n')
	}
}

// ForceNewline writes a line break in either mode.
func (t *Text) ForceNewline() {
	t.AppendByte('\n')
}

// Space writes a space in pretty mode.
func (t *Text) Space() {
	if t.pretty {
		t.AppendByte(' ')
	}
}

// ForceSpace writes a space in either mode.
func (t *Text) ForceSpace() {
	t.AppendByte(' ')
}

// Indent writes the current indentation in pretty mode.
func (t *Text) Indent() {
	if t.pretty {
		t.AppendStore(t.indent)
	}
}

// IndentMore increases the indentation by one tab in pretty mode.
func (t *Text) IndentMore() {
	if t.pretty {
		t.indent.AppendByte('\t')
	}
}

// IndentLess decreases the indentation by one tab in pretty mode. Going below
// zero is a usage fault.
func (t *Text) IndentLess() {
	if !t.pretty {
		return
	}
	if t.indent.Len() == 0 {
		panic(t.fault(KindUsage, "indent underflow"))
	}
	t.indent.Truncate(t.indent.Len() - 1)
}

// Depth returns the indentation depth. It is always 0 in compact mode.
func (t *Text) Depth() int {
	if t.indent == nil {
		return 0
	}
	return t.indent.Len()
}

// SetDelimiter uses c in compact mode and c followed by a space in pretty
// mode.
func (t *Text) SetDelimiter(c byte) {
	t.compactDelim = c
	t.prettyDelim = string([]byte{c, ' '})
}

// SetDelimiters sets the compact and pretty delimiters and restarts
// delimiting. A compact delimiter of 0 makes compact mode use the pretty
// string as well.
func (t *Text) SetDelimiters(compact byte, pretty string) {
	t.compactDelim = compact
	t.prettyDelim = pretty
	t.delimit = false
}

// RestartDelimiting makes the next Delimit write nothing.
func (t *Text) RestartDelimiting() {
	t.delimit = false
}

// Delimit writes the delimiter before every list element but the first:
// the first call after construction or RestartDelimiting only arms it.
func (t *Text) Delimit() {
	if !t.delimit {
		t.delimit = true
		return
	}
	if t.pretty || t.compactDelim == 0 {
		t.Append(t.prettyDelim)
	} else {
		t.AppendByte(t.compactDelim)
	}
}

// WriteLine writes the indentation, parts and a newline.
func (t *Text) WriteLine(parts ...string) {
	t.Indent()
	for _, p := range parts {
		t.Append(p)
	}
	t.Newline()
}

// BeginObject writes `name {` on its own line and indents.
func (t *Text) BeginObject(name string) {
	t.Indent()
	t.Append(name)
	t.Space()
	t.AppendByte('{')
	t.Newline()
	t.IndentMore()
}

// EndObject outdents and writes the closing brace.
func (t *Text) EndObject() {
	t.IndentLess()
	t.Indent()
	t.AppendByte('}')
	t.Newline()
}

// WriteProperty writes `key: value;` on its own line.
func (t *Text) WriteProperty(key, value string) {
	t.Indent()
	t.Append(key)
	t.AppendByte(':')
	t.Space()
	t.Append(value)
	t.AppendByte(';')
	t.Newline()
}

// WritePropertyFunc is WriteProperty with the value rendered by w.
func (t *Text) WritePropertyFunc(key string, w Writer) {
	t.Indent()
	t.Append(key)
	t.AppendByte(':')
	t.Space()
	w.WriteText(t)
	t.AppendByte(';')
	t.Newline()
}
