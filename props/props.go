// Package props models property documents: named blocks of `key: value;`
// pairs that may nest.
//
//	team {
//	    name: "Arsenal";
//	    players: 11..*;
//	    colors: [red, white];
//	    ground { capacity: 60704; }
//	}
//
// Documents render themselves through textkit.Text, so the same tree prints
// indented in pretty mode and on one line in compact mode.
package props

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Neumenon/textkit/cardinality"
	"github.com/Neumenon/textkit/lex"
	"github.com/Neumenon/textkit/strutil"
	"github.com/Neumenon/textkit/textkit"
)

// ErrKind is returned when a value is read as the wrong kind.
var ErrKind = errors.New("wrong value kind")

// Kind identifies the type of a Value.
type Kind uint8

const (
	KindInt Kind = iota
	KindString
	KindIdent
	KindCardinality
	KindList
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindIdent:
		return "ident"
	case KindCardinality:
		return "cardinality"
	case KindList:
		return "list"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a property value. Scalars keep their source text; lists hold
// their items.
type Value struct {
	Kind  Kind
	Text  string
	Items []Value
}

// Int returns a scalar int value.
func Int(n int64) Value {
	return Value{Kind: KindInt, Text: strconv.FormatInt(n, 10)}
}

// Quote returns s as a double-quoted string value.
func Quote(s string) Value {
	t := textkit.NewCompact()
	t.AppendQuoted(s)
	return Value{Kind: KindString, Text: t.String()}
}

// Ident returns a bare identifier value.
func Ident(name string) Value {
	return Value{Kind: KindIdent, Text: name}
}

// Range returns a cardinality value.
func Range(c cardinality.Cardinality) Value {
	return Value{Kind: KindCardinality, Text: c.String()}
}

// List returns a list of items.
func List(items ...Value) Value {
	return Value{Kind: KindList, Items: items}
}

func (v Value) want(k Kind) error {
	if v.Kind != k {
		return fmt.Errorf("%w: %s is a %s, not a %s", ErrKind, v, v.Kind, k)
	}
	return nil
}

// Int returns the value of an int.
func (v Value) Int() (n int64, err error) {
	if err = v.want(KindInt); err != nil {
		return 0, err
	}
	t := textkit.FromString(v.Text)
	err = textkit.Catch(func() { n = t.ParseInt() })
	return n, err
}

// Unquoted returns the contents of a string value with the escapes Quote
// writes resolved. It decodes exactly as lex.Token.Unquoted does.
func (v Value) Unquoted() (string, error) {
	if err := v.want(KindString); err != nil {
		return "", err
	}
	return strutil.Unquote(v.Text)
}

// Cardinality returns the range held by a cardinality value.
func (v Value) Cardinality() (cardinality.Cardinality, error) {
	if err := v.want(KindCardinality); err != nil {
		return cardinality.Cardinality{}, err
	}
	return cardinality.Parse(v.Text)
}

// WriteText renders the value; list items are comma separated.
func (v Value) WriteText(t *textkit.Text) {
	if v.Kind != KindList {
		t.Append(v.Text)
		return
	}
	t.AppendByte('[')
	for i, it := range v.Items {
		if i > 0 {
			t.AppendByte(',')
			t.Space()
		}
		it.WriteText(t)
	}
	t.AppendByte(']')
}

func (v Value) String() string {
	t := textkit.NewCompact()
	v.WriteText(t)
	return t.String()
}

// Entry is one member of a node: a key/value property, or a child block
// when Child is set.
type Entry struct {
	Key   string
	Value Value
	Child *Node
	Pos   lex.Position
}

// Node is a named block of properties and child nodes, kept in source order.
type Node struct {
	Name    string
	Pos     lex.Position
	Entries []Entry
}

// NewNode returns an empty node.
func NewNode(name string) *Node {
	return &Node{Name: name}
}

// Set replaces the value of key in place, or appends it.
func (n *Node) Set(key string, v Value) *Node {
	for i := range n.Entries {
		if e := &n.Entries[i]; e.Child == nil && e.Key == key {
			e.Value = v
			return n
		}
	}
	n.Entries = append(n.Entries, Entry{Key: key, Value: v})
	return n
}

// Add appends child nodes.
func (n *Node) Add(children ...*Node) *Node {
	for _, c := range children {
		n.Entries = append(n.Entries, Entry{Child: c, Pos: c.Pos})
	}
	return n
}

// Get returns the value of key.
func (n *Node) Get(key string) (Value, bool) {
	for _, e := range n.Entries {
		if e.Child == nil && e.Key == key {
			return e.Value, true
		}
	}
	return Value{}, false
}

// Child returns the first child called name, or nil.
func (n *Node) Child(name string) *Node {
	for _, e := range n.Entries {
		if e.Child != nil && e.Child.Name == name {
			return e.Child
		}
	}
	return nil
}

// Children returns the child blocks in order.
func (n *Node) Children() []*Node {
	var out []*Node
	for _, e := range n.Entries {
		if e.Child != nil {
			out = append(out, e.Child)
		}
	}
	return out
}

// WriteText renders the node with its entries in order.
func (n *Node) WriteText(t *textkit.Text) {
	t.BeginObject(n.Name)
	for _, e := range n.Entries {
		if e.Child != nil {
			e.Child.WriteText(t)
			continue
		}
		t.WritePropertyFunc(e.Key, e.Value)
	}
	t.EndObject()
}

// Document is a sequence of top-level nodes.
type Document struct {
	Nodes []*Node
}

// WriteText renders every node in order.
func (d *Document) WriteText(t *textkit.Text) {
	for _, n := range d.Nodes {
		n.WriteText(t)
	}
}

// Format renders the document in pretty or compact form.
func (d *Document) Format(pretty bool) string {
	t := textkit.New(pretty)
	d.WriteText(t)
	return t.String()
}
