package textkit

import (
	"testing"
)

func TestCursor_Consume(t *testing.T) {
	tx := FromString("ab")

	if tx.Consume('b') {
		t.Fatal("Consume('b') matched at 'a'")
	}
	if tx.Cursor() != 0 {
		t.Fatalf("cursor moved on failure: %d", tx.Cursor())
	}
	if !tx.Consume('a') || !tx.Consume('b') {
		t.Fatal("Consume failed on matching input")
	}
	if tx.Consume('b') {
		t.Fatal("Consume matched at EOF")
	}
	if !tx.AtEOF() {
		t.Error("expected EOF")
	}
}

func TestCursor_ConsumeString(t *testing.T) {
	tests := []struct {
		input  string
		lit    string
		ok     bool
		cursor int
	}{
		{"abcd", "abc", true, 3},
		{"abc", "abc", true, 3},
		{"abd", "abc", false, 0},
		{"ab", "abc", false, 0},
		{"", "a", false, 0},
		{"abc", "", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input+"/"+tt.lit, func(t *testing.T) {
			tx := FromString(tt.input)
			if got := tx.ConsumeString(tt.lit); got != tt.ok {
				t.Errorf("ConsumeString(%q) = %v, want %v", tt.lit, got, tt.ok)
			}
			if tx.Cursor() != tt.cursor {
				t.Errorf("cursor = %d, want %d", tx.Cursor(), tt.cursor)
			}
		})
	}
}

func TestCursor_ConsumeASCII_Bounds(t *testing.T) {
	tests := []struct {
		input    string
		mask     Class
		limits   []int
		ok       bool
		consumed string
		rest     string
	}{
		{"123a", Digit, []int{2, 3}, true, "123", "a"},
		{"1a", Digit, []int{2, 3}, false, "", "1a"},
		{"12345a", Digit, []int{2, 3}, true, "123", "45a"},
		{"1234", Digit, []int{2}, true, "12", "34"},
		{"1", Digit, []int{2}, false, "", "1"},
		{"abc1", Lower, nil, true, "abc", "1"},
		{"1abc", Lower, nil, false, "", "1abc"},
		{"x", Digit, []int{0, 3}, false, "", "x"},
		{"Ab_9-", Ident, nil, true, "Ab_9", "-"},
		{"ff0Z", Hex, nil, true, "ff0", "Z"},
		{"0110201", Binary, nil, true, "0110", "201"},
		{"", Digit, nil, false, "", ""},
		{"é1", Digit | Letter, nil, false, "", "é1"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tx := FromString(tt.input)
			sp, ok := tx.ConsumeASCII(tt.mask, tt.limits...)
			if ok != tt.ok {
				t.Fatalf("ConsumeASCII = %v, want %v", ok, tt.ok)
			}
			if got := tx.Extract(sp); got != tt.consumed {
				t.Errorf("span text = %q, want %q", got, tt.consumed)
			}
			if got := tx.Consumed(); got != tt.consumed {
				t.Errorf("Consumed() = %q, want %q", got, tt.consumed)
			}
			if got := tx.Slice(tx.Cursor(), tx.Len()); got != tt.rest {
				t.Errorf("rest = %q, want %q", got, tt.rest)
			}
		})
	}
}

func TestCursor_ConsumeASCII_Usage(t *testing.T) {
	tx := FromString("123")

	expectFault(t, ErrUsage, func() { tx.ConsumeASCII(0) })
	expectFault(t, ErrUsage, func() { tx.ConsumeASCII(Digit, 1, 2, 3) })
	expectFault(t, ErrUsage, func() { tx.ConsumeASCII(Digit, 3, 2) })
	expectFault(t, ErrUsage, func() { tx.ConsumeASCII(Digit, -1) })

	if tx.Cursor() != 0 {
		t.Errorf("cursor moved by a usage fault: %d", tx.Cursor())
	}
}

func TestCursor_ConsumeUntil(t *testing.T) {
	tx := FromString("key;value")

	sp, ok := tx.ConsumeUntil(';')
	if !ok || tx.Extract(sp) != "key" {
		t.Fatalf("ConsumeUntil = %q, %v", tx.Extract(sp), ok)
	}
	if _, ok := tx.ConsumeUntil(';'); ok {
		t.Error("ConsumeUntil reported progress while sitting on the stop byte")
	}
	if !tx.Consume(';') {
		t.Fatal("stop byte was consumed")
	}
	if got := tx.ParseUntil('#'); got != "value" {
		t.Errorf("ParseUntil to EOF = %q", got)
	}
	if !tx.AtEOF() {
		t.Error("expected EOF")
	}
}

func TestCursor_Peek(t *testing.T) {
	tx := FromString("ab")

	if tx.Peek() != 'a' {
		t.Errorf("Peek = %q", tx.Peek())
	}
	if !tx.PeekByte('a') || tx.PeekByte('b') {
		t.Error("PeekByte wrong")
	}
	if !tx.PeekString("ab") || tx.PeekString("abc") || tx.PeekString("b") {
		t.Error("PeekString wrong")
	}
	tx.SetCursor(1)
	if !tx.PeekByte('b') {
		t.Error("PeekByte on the last byte")
	}
	tx.SetCursor(2)
	if tx.Peek() != EOF {
		t.Errorf("Peek at end = %d, want EOF", tx.Peek())
	}
	if tx.Cursor() != 2 {
		t.Error("peeking moved the cursor")
	}

	expectFault(t, ErrOutOfRange, func() { tx.SetCursor(3) })
	expectFault(t, ErrOutOfRange, func() { tx.SetCursor(-1) })
}

func TestCursor_ConsumeInt(t *testing.T) {
	tests := []struct {
		input    string
		ok       bool
		consumed string
	}{
		{"0", true, "0"},
		{"012", true, "0"},
		{"123", true, "123"},
		{"102x", true, "102"},
		{"-12x", true, "-12"},
		{"-0", false, ""},
		{"-012", false, ""},
		{"-", false, ""},
		{"a", false, ""},
		{"", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tx := FromString(tt.input)
			sp, ok := tx.ConsumeInt()
			if ok != tt.ok {
				t.Fatalf("ConsumeInt = %v, want %v", ok, tt.ok)
			}
			if got := tx.Extract(sp); got != tt.consumed {
				t.Errorf("consumed %q, want %q", got, tt.consumed)
			}
			if !ok && tx.Cursor() != 0 {
				t.Errorf("cursor = %d after failure", tx.Cursor())
			}
			if ok && tx.Consumed() != tt.consumed {
				t.Errorf("Consumed() = %q", tx.Consumed())
			}
		})
	}
}

func TestCursor_ConsumePint(t *testing.T) {
	tests := []struct {
		input    string
		ok       bool
		consumed string
	}{
		{"0", true, "0"},
		{"0..1", true, "0"},
		{"7", true, "7"},
		{"120x", true, "120"},
		{"-1", false, ""},
		{"a", false, ""},
		{"", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tx := FromString(tt.input)
			sp, ok := tx.ConsumePint()
			if ok != tt.ok {
				t.Fatalf("ConsumePint = %v, want %v", ok, tt.ok)
			}
			if got := tx.Extract(sp); got != tt.consumed {
				t.Errorf("consumed %q, want %q", got, tt.consumed)
			}
			if !ok && tx.Cursor() != 0 {
				t.Errorf("cursor = %d after failure", tx.Cursor())
			}
		})
	}
}

func TestCursor_ConsumePint_LeadingZero(t *testing.T) {
	tx := FromString("x0123")
	tx.Consume('x')

	f := expectFault(t, ErrGrammar, func() { tx.ConsumePint() })
	if f.Text != "x0123" {
		t.Errorf("fault text = %q", f.Text)
	}
	if f.Offset != 1 {
		t.Errorf("fault offset = %d, want 1", f.Offset)
	}
	if tx.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", tx.Cursor())
	}
}

func TestCursor_ConsumeQuoted(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"empty double", `""`, true},
		{"double", `"a"`, true},
		{"control chars", "\"abc\t\r\"", true},
		{"escaped double", `"\""`, true},
		{"empty single", `''`, true},
		{"single", `'abc'`, true},
		{"escaped single", `'a \' b'`, true},
		{"empty back", "``", true},
		{"back", "`abc`", true},
		{"empty input", "", false},
		{"no closing quote", "'`", false},
		{"newline before close", "'\n'", false},
		{"escaped newline", "'\\\n'", false},
		{"escape at end", `'\`, false},
		{"escaped close", `'\'`, false},
		{"not a quote", "abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := FromString(tt.input)
			sp, ok := tx.ConsumeQuoted()
			if ok != tt.ok {
				t.Fatalf("ConsumeQuoted(%q) = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok {
				if got := tx.Extract(sp); got != tt.input {
					t.Errorf("span = %q, want %q", got, tt.input)
				}
				if got := tx.SliceFrom(0); got != tt.input {
					t.Errorf("SliceFrom(0) = %q", got)
				}
			} else if tx.Cursor() != 0 {
				t.Errorf("cursor = %d after failure", tx.Cursor())
			}
		})
	}
}

func TestCursor_ConsumeQuoted_Trailing(t *testing.T) {
	tx := FromString(`"a\"b" rest`)
	sp, ok := tx.ConsumeQuoted()
	if !ok {
		t.Fatal("ConsumeQuoted failed")
	}
	if got := tx.Extract(sp); got != `"a\"b"` {
		t.Errorf("span = %q", got)
	}
	if tx.Peek() != ' ' {
		t.Errorf("cursor not just past the closing quote: %d", tx.Cursor())
	}
}

// Every Consume* primitive must leave the cursor where it was when it
// reports no match.
func TestCursor_AllOrNothing(t *testing.T) {
	inputs := []string{
		"", "0", "00", "0123", "-", "-0", "-a", "12x", "abc", "'unterminated",
		"'a\nb'", `"\`, "..", "*", "  x", "é", "A_b", "``",
	}
	prefixes := []string{"", "zz"}

	primitives := map[string]func(tx *Text) bool{
		"Consume": func(tx *Text) bool { return tx.Consume('q') },
		"ConsumeString": func(tx *Text) bool {
			return tx.ConsumeString("abd")
		},
		"ConsumeASCII": func(tx *Text) bool {
			_, ok := tx.ConsumeASCII(Digit, 2, 3)
			return ok
		},
		"ConsumeASCII/letters": func(tx *Text) bool {
			_, ok := tx.ConsumeASCII(Letter)
			return ok
		},
		"ConsumeUntil": func(tx *Text) bool {
			_, ok := tx.ConsumeUntil('a')
			return ok
		},
		"ConsumePint": func(tx *Text) bool {
			var ok bool
			_ = Catch(func() { _, ok = tx.ConsumePint() })
			return ok
		},
		"ConsumeInt": func(tx *Text) bool {
			_, ok := tx.ConsumeInt()
			return ok
		},
		"ConsumeQuoted": func(tx *Text) bool {
			_, ok := tx.ConsumeQuoted()
			return ok
		},
		"ConsumeFunc": func(tx *Text) bool {
			_, ok := tx.ConsumeFunc(func(_ int, c byte) bool { return c == '*' })
			return ok
		},
	}

	for name, fn := range primitives {
		for _, p := range prefixes {
			for _, in := range inputs {
				tx := FromString(p + in)
				tx.SetCursor(len(p))
				if !fn(tx) && tx.Cursor() != len(p) {
					t.Errorf("%s(%q): cursor %d after failure, want %d", name, p+in, tx.Cursor(), len(p))
				}
			}
		}
	}
}

func TestCursor_MarkRewind(t *testing.T) {
	tx := FromString("abc123")

	m := tx.Mark()
	if _, ok := tx.ConsumeASCII(Letter); !ok {
		t.Fatal("letters not consumed")
	}
	tx.Rewind(m)
	if tx.Cursor() != 0 {
		t.Fatalf("Rewind: cursor = %d", tx.Cursor())
	}

	ok := tx.Scan(func() bool {
		_, letters := tx.ConsumeASCII(Letter)
		return letters && tx.Consume('x')
	})
	if ok || tx.Cursor() != 0 {
		t.Errorf("Scan failure: ok=%v cursor=%d", ok, tx.Cursor())
	}

	ok = tx.Scan(func() bool {
		_, letters := tx.ConsumeASCII(Letter)
		_, digits := tx.ConsumeASCII(Digit)
		return letters && digits
	})
	if !ok || !tx.AtEOF() {
		t.Errorf("Scan success: ok=%v cursor=%d", ok, tx.Cursor())
	}

	tx.ScanReset()
	if tx.Cursor() != 0 || tx.Remaining() != 6 {
		t.Errorf("ScanReset: cursor=%d remaining=%d", tx.Cursor(), tx.Remaining())
	}
}

func TestCursor_NextAndMustConsume(t *testing.T) {
	tx := FromString("ab")

	if tx.Next() != 'a' {
		t.Fatal("Next did not return 'a'")
	}
	expectFault(t, ErrGrammar, func() { tx.MustConsume('x') })
	tx.MustConsume('b')
	if !tx.AtEOF() {
		t.Fatal("MustConsume did not advance")
	}
	f := expectFault(t, ErrGrammar, func() { tx.Next() })
	if f.Offset != 2 || f.Text != "ab" {
		t.Errorf("overrun fault = %+v", f)
	}
	expectFault(t, ErrGrammar, func() { tx.MustConsume('b') })
}

func TestCursor_ParseInt(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"0", 0},
		{"42", 42},
		{"-7;", -7},
		{"012", 12},
		{"-0012", -12},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tx := FromString(tt.input)
			if got := tx.ParseInt(); got != tt.want {
				t.Errorf("ParseInt = %d, want %d", got, tt.want)
			}
		})
	}

	for _, bad := range []string{"", "-", "x", "99999999999999999999"} {
		tx := FromString(bad)
		expectFault(t, ErrGrammar, func() { tx.ParseInt() })
		if tx.Cursor() != 0 {
			t.Errorf("ParseInt(%q): cursor = %d after fault", bad, tx.Cursor())
		}
	}
}

func TestCursor_Slice(t *testing.T) {
	tx := FromString("hello")

	if got := tx.Slice(1, 3); got != "el" {
		t.Errorf("Slice(1, 3) = %q", got)
	}
	if got := tx.Slice(5, 5); got != "" {
		t.Errorf("Slice(5, 5) = %q", got)
	}

	expectFault(t, ErrOutOfRange, func() { tx.Slice(-1, 2) })
	expectFault(t, ErrOutOfRange, func() { tx.Slice(0, 6) })
	expectFault(t, ErrOutOfRange, func() { tx.Slice(3, 2) })
}

func TestCursor_SkipSpaceAndFunc(t *testing.T) {
	tx := FromString(" \t\n abc_1 ")

	if !tx.SkipSpace() || tx.Peek() != 'a' {
		t.Fatalf("SkipSpace stopped at %d", tx.Cursor())
	}

	sp, ok := tx.ConsumeFunc(func(offset int, c byte) bool {
		if offset == 0 {
			return Classify(rune(c)).Has(Letter)
		}
		return Classify(rune(c)).Has(Ident)
	})
	if !ok || tx.Extract(sp) != "abc_1" {
		t.Errorf("ConsumeFunc = %q, %v", tx.Extract(sp), ok)
	}
	if !tx.SkipSpace() || !tx.AtEOF() {
		t.Error("trailing space not skipped")
	}
}

func TestCursor_ConsumedAfterFailure(t *testing.T) {
	tx := FromString("12ab")

	tx.ConsumeASCII(Digit)
	if tx.Consumed() != "12" {
		t.Fatalf("Consumed = %q", tx.Consumed())
	}
	if _, ok := tx.ConsumeASCII(Digit); ok {
		t.Fatal("digits matched at 'a'")
	}
	if tx.Consumed() != "" {
		t.Errorf("Consumed after failed attempt = %q, want empty", tx.Consumed())
	}
}
