// Package textkit implements Text, a growable byte buffer that is both a
// pretty printer and a backtracking scanner.
//
// # Facets
//
// Text is assembled from three parts:
//   - Store: amortized-growth storage with bounds-checked reads
//   - the scan cursor: Consume* primitives over the stored bytes
//   - the printer: indentation, delimiters and pretty/compact whitespace
//
// Scanner and Builder name the two halves so code that only reads or only
// writes can say so.
//
// # Scanning
//
// Every Consume* call is all or nothing: when it reports false the cursor is
// exactly where it was before the call. Sequences are written with &&, and
// alternation with Mark/Rewind (or Scan):
//
//	m := t.Mark()
//	if t.Consume('*') || t.Scan(func() bool {
//		_, ok := t.ConsumePint()
//		return ok && t.ConsumeString("..")
//	}) {
//		...
//	}
//	t.Rewind(m)
//
// Operations that return a Span also record it as the last consumed span, so
// Consumed returns its text until the next delimiting call.
//
// # Printing
//
// A pretty Text writes spaces, newlines and tab indentation; a compact Text
// drops them and only breaks lines that grow past 132 bytes:
//
//	t := textkit.NewPretty()
//	t.BeginObject("team")
//	t.WriteProperty("name", "Arsenal")
//	t.EndObject()
//	// team {
//	// 	name: Arsenal;
//	// }
//
// # Faults
//
// Malformed input inside a production that already matched, reads outside
// the written region and indent underflow panic with a *Fault holding the
// buffered text and the offset. Catch turns such a panic back into an error.
//
// Classification is ASCII only. Bytes >= 128 belong to no class.
//
// A Text is not safe for concurrent use.
package textkit
