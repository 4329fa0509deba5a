package props

import (
	"errors"
	"fmt"

	"github.com/Neumenon/textkit/lex"
)

// ParseError represents a parsing error with location.
type ParseError struct {
	Message string
	Pos     lex.Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}

// parser builds a Document from tokens.
type parser struct {
	stream *lex.TokenStream
}

// Parse parses a property document:
//
//	document : node* ;
//	node     : IDENT '{' ( IDENT ':' value ';' | node )* '}' ;
//	value    : INT | STRING | IDENT | CARDINALITY | '[' ( value ( ',' value )* )? ']' ;
//
// A key may appear once per node.
func Parse(input string) (*Document, error) {
	tokens, err := lex.Tokenize(input)
	if err != nil {
		var lerr *lex.Error
		if errors.As(err, &lerr) {
			return nil, &ParseError{Message: lerr.Msg, Pos: lerr.Pos}
		}
		return nil, err
	}

	p := &parser{stream: lex.NewTokenStream(tokens)}
	doc := &Document{}
	for !p.stream.AtEnd() {
		n, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		doc.Nodes = append(doc.Nodes, n)
	}
	return doc, nil
}

// Format parses input and renders it again.
func Format(input string, pretty bool) (string, error) {
	doc, err := Parse(input)
	if err != nil {
		return "", err
	}
	return doc.Format(pretty), nil
}

func (p *parser) parseNode() (*Node, error) {
	name, err := p.expect(lex.TokenIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.TokenLBrace); err != nil {
		return nil, err
	}

	n := &Node{Name: name.Value, Pos: name.Pos}
	for !p.stream.Match(lex.TokenRBrace) {
		if p.stream.AtEnd() {
			return nil, p.errorf(p.stream.Peek().Pos, "unclosed block %s opened at %s", n.Name, n.Pos)
		}

		// Child block
		if p.stream.PeekN(1).Type == lex.TokenLBrace {
			child, err := p.parseNode()
			if err != nil {
				return nil, err
			}
			n.Add(child)
			continue
		}

		key, err := p.expect(lex.TokenIdent)
		if err != nil {
			return nil, err
		}
		if _, dup := n.Get(key.Value); dup {
			return nil, p.errorf(key.Pos, "duplicate property %s in %s", key.Value, n.Name)
		}
		if _, err := p.expect(lex.TokenColon); err != nil {
			return nil, err
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lex.TokenSemicolon); err != nil {
			return nil, err
		}
		n.Entries = append(n.Entries, Entry{Key: key.Value, Value: v, Pos: key.Pos})
	}
	return n, nil
}

func (p *parser) parseValue() (Value, error) {
	tok := p.stream.Advance()

	switch tok.Type {
	case lex.TokenInt:
		v := Value{Kind: KindInt, Text: tok.Value}
		if _, err := v.Int(); err != nil {
			return Value{}, p.errorf(tok.Pos, "integer out of range: %s", tok.Value)
		}
		return v, nil
	case lex.TokenString:
		return Value{Kind: KindString, Text: tok.Value}, nil
	case lex.TokenIdent:
		return Value{Kind: KindIdent, Text: tok.Value}, nil
	case lex.TokenCardinality:
		return Value{Kind: KindCardinality, Text: tok.Value}, nil
	case lex.TokenLBracket:
		return p.parseList()
	}
	return Value{}, p.errorf(tok.Pos, "unexpected %s", tok)
}

func (p *parser) parseList() (Value, error) {
	list := Value{Kind: KindList}
	if p.stream.Match(lex.TokenRBracket) {
		return list, nil
	}
	for {
		v, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}
		list.Items = append(list.Items, v)
		if p.stream.Match(lex.TokenRBracket) {
			return list, nil
		}
		if _, err := p.expect(lex.TokenComma); err != nil {
			return Value{}, err
		}
	}
}

func (p *parser) expect(typ lex.TokenType) (lex.Token, error) {
	tok, err := p.stream.Expect(typ)
	if err != nil {
		return tok, p.errorf(tok.Pos, "expected %s, got %s", typ, tok)
	}
	return tok, nil
}

func (p *parser) errorf(pos lex.Position, format string, args ...interface{}) error {
	return &ParseError{Message: fmt.Sprintf(format, args...), Pos: pos}
}
