package textkit

import "strings"

// Class is a set of ASCII character classes. Members are disjoint bit flags,
// so a union of classes is tested with a single AND.
type Class uint8

const (
	Digit19   Class = 1 << iota // 1-9
	Digit                       // 0-9
	Upper                       // A-Z
	Lower                       // a-z
	Binary                      // 0-1
	Hex                         // 0-9 A-F a-f
	Underline                   // _
)

// Common unions.
const (
	Letter = Upper | Lower
	Alnum  = Letter | Digit
	Ident  = Alnum | Underline
)

var classNames = [...]string{"digit19", "digit", "upper", "lower", "binary", "hex", "underline"}

// classes is indexed by code point and never written after init.
var classes [128]Class

func init() {
	for c := '0'; c <= '9'; c++ {
		classes[c] |= Digit | Hex
		if c != '0' {
			classes[c] |= Digit19
		}
		if c <= '1' {
			classes[c] |= Binary
		}
	}
	for c := 'A'; c <= 'Z'; c++ {
		classes[c] |= Upper
		classes[c+'a'-'A'] |= Lower
		if c <= 'F' {
			classes[c] |= Hex
			classes[c+'a'-'A'] |= Hex
		}
	}
	classes['_'] = Underline
}

// Classify returns the classes c belongs to. Anything outside 0-127 belongs
// to none.
func Classify(c rune) Class {
	if c < 0 || c >= rune(len(classes)) {
		return 0
	}
	return classes[c]
}

// Has reports whether c shares at least one class with mask.
func (c Class) Has(mask Class) bool {
	return c&mask != 0
}

// String lists the member classes, e.g. "digit|hex".
func (c Class) String() string {
	if c == 0 {
		return "none"
	}
	var parts []string
	for i, name := range classNames {
		if c&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}
