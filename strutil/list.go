package strutil

import (
	"fmt"
	"strconv"

	"github.com/Neumenon/textkit/textkit"
)

// Stringify encodes items as a comma-separated list, escaping ',' and '\'
// with a backslash so Destringify can split it again. An empty list and a
// list holding one empty string both encode as "".
func Stringify(items []string) string {
	ptrs := make([]*string, len(items))
	for i := range items {
		ptrs[i] = &items[i]
	}
	return StringifyNullable(ptrs)
}

// StringifyNullable is Stringify for lists that may hold nil items. A nil
// item is written as \0.
func StringifyNullable(items []*string) string {
	t := textkit.NewCompact()
	for _, it := range items {
		t.Delimit()
		if it == nil {
			t.Append(`\0`)
			continue
		}
		for i := 0; i < len(*it); i++ {
			switch c := (*it)[i]; c {
			case '\\', ',':
				t.AppendByte('\\')
				t.AppendByte(c)
			default:
				t.AppendByte(c)
			}
		}
	}
	return t.String()
}

// Destringify decodes a list produced by Stringify. "" decodes to an empty
// list. A nil item is an ErrNullItem error; use DestringifyNullable to
// accept them.
func Destringify(s string) ([]string, error) {
	ptrs, err := DestringifyNullable(s)
	if err != nil {
		return nil, err
	}
	var out []string
	for i, p := range ptrs {
		if p == nil {
			return nil, fmt.Errorf("%w: item %d in %s", ErrNullItem, i, strconv.Quote(s))
		}
		out = append(out, *p)
	}
	return out, nil
}

// DestringifyNullable decodes a list produced by StringifyNullable. \0 must
// make up a whole item.
func DestringifyNullable(s string) ([]*string, error) {
	if s == "" {
		return nil, nil
	}
	t := textkit.FromString(s)
	item := textkit.NewCompact()
	var out []*string
	null := false
	flush := func() {
		if null {
			out = append(out, nil)
		} else {
			v := item.String()
			out = append(out, &v)
		}
		item.Recycle()
		null = false
	}
	for {
		switch t.Peek() {
		case textkit.EOF:
			flush()
			return out, nil
		case ',':
			t.Next()
			flush()
		case '\\':
			at := t.Cursor()
			t.Next()
			if t.AtEOF() {
				return nil, fmt.Errorf("%w: trailing backslash in %s", ErrInvalidEscape, strconv.Quote(s))
			}
			c := t.Next()
			switch {
			case c == '0' && item.Len() == 0 && !null && (t.AtEOF() || t.PeekByte(',')):
				null = true
			case (c == ',' || c == '\\') && !null:
				item.AppendByte(c)
			default:
				return nil, fmt.Errorf("%w: \\%c at %d in %s", ErrInvalidEscape, c, at, strconv.Quote(s))
			}
		default:
			if null {
				return nil, fmt.Errorf("%w: \\0 followed by text in %s", ErrInvalidEscape, strconv.Quote(s))
			}
			sp, _ := t.ConsumeFunc(func(_ int, c byte) bool { return c != ',' && c != '\\' })
			item.Append(t.Extract(sp))
		}
	}
}

// Join renders items for display, separated by "," or, when pretty, ", ".
// Unlike Stringify nothing is escaped.
func Join(items []string, pretty bool) string {
	t := textkit.New(pretty)
	for _, it := range items {
		t.Delimit()
		t.Append(it)
	}
	return t.String()
}
