// Package lex splits property documents into tokens.
//
// The lexer drives a textkit.Text cursor: quoted strings come from
// ConsumeQuoted, ranges such as 1..* from cardinality.Scan, integers from
// ConsumeInt and identifiers from ConsumeASCII. Comments run from "//" to
// the end of the line.
package lex

import (
	"errors"
	"fmt"

	"github.com/Neumenon/textkit/cardinality"
	"github.com/Neumenon/textkit/strutil"
	"github.com/Neumenon/textkit/textkit"
)

// TokenType represents the type of a lexer token.
type TokenType uint8

const (
	TokenEOF TokenType = iota
	TokenError

	// Literals
	TokenInt         // 123, -456
	TokenString      // "quoted", 'quoted', `quoted`
	TokenIdent       // name, _field2
	TokenCardinality // 0..1, 1..*, *

	// Structural
	TokenLBrace    // {
	TokenRBrace    // }
	TokenLBracket  // [
	TokenRBracket  // ]
	TokenLParen    // (
	TokenRParen    // )
	TokenColon     // :
	TokenSemicolon // ;
	TokenComma     // ,
	TokenEq        // =
)

var tokenNames = [...]string{
	TokenEOF:         "EOF",
	TokenError:       "ERROR",
	TokenInt:         "INT",
	TokenString:      "STRING",
	TokenIdent:       "IDENT",
	TokenCardinality: "CARDINALITY",
	TokenLBrace:      "{",
	TokenRBrace:      "}",
	TokenLBracket:    "[",
	TokenRBracket:    "]",
	TokenLParen:      "(",
	TokenRParen:      ")",
	TokenColon:       ":",
	TokenSemicolon:   ";",
	TokenComma:       ",",
	TokenEq:          "=",
}

// String returns the token type name.
func (t TokenType) String() string {
	if int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", t)
}

var punctuation = map[byte]TokenType{
	'{': TokenLBrace,
	'}': TokenRBrace,
	'[': TokenLBracket,
	']': TokenRBracket,
	'(': TokenLParen,
	')': TokenRParen,
	':': TokenColon,
	';': TokenSemicolon,
	',': TokenComma,
	'=': TokenEq,
}

// Position is a location in the input. Line and Column are 1-based, Offset
// is the byte offset.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a lexical token. Value holds the source text, quotes included for
// strings, or the message for error tokens.
type Token struct {
	Type  TokenType
	Value string
	Pos   Position
}

// String returns a debug representation of the token.
func (t Token) String() string {
	if t.Value == "" || t.Value == t.Type.String() {
		return t.Type.String()
	}
	return fmt.Sprintf("%s(%q)", t.Type, t.Value)
}

// Unquoted returns the contents of a string token with its quotes removed
// and escapes resolved by strutil.Unquote.
func (t Token) Unquoted() (string, error) {
	if t.Type != TokenString {
		return "", fmt.Errorf("%w: %s", strutil.ErrNotQuoted, t)
	}
	return strutil.Unquote(t.Value)
}

// Cardinality returns the range held by a cardinality token.
func (t Token) Cardinality() (cardinality.Cardinality, error) {
	return cardinality.Parse(t.Value)
}

// Error is a lexical error with its location.
type Error struct {
	Pos Position
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// Lexer tokenizes a property document.
type Lexer struct {
	t         *textkit.Text
	line      int // line of the last computed position
	lineStart int // offset where that line begins
	counted   int // offset up to which newlines have been counted
	tokens    []Token
	err       error
}

// NewLexer creates a new lexer for the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{
		t:    textkit.FromString(input),
		line: 1,
	}
}

// Tokenize returns all tokens from the input. Tokenizing stops at the first
// error token, which is also returned as an *Error.
func (l *Lexer) Tokenize() ([]Token, error) {
	for {
		tok := l.Next()
		l.tokens = append(l.tokens, tok)
		if tok.Type == TokenEOF || tok.Type == TokenError {
			break
		}
	}
	return l.tokens, l.err
}

// Next returns the next token. After the input is exhausted it keeps
// returning TokenEOF.
func (l *Lexer) Next() Token {
	l.skipSpaceAndComments()

	pos := l.position(l.t.Cursor())
	if l.t.AtEOF() {
		return Token{Type: TokenEOF, Pos: pos}
	}

	c := byte(l.t.Peek())
	if typ, ok := punctuation[c]; ok {
		l.t.Next()
		return Token{Type: typ, Value: string(c), Pos: pos}
	}

	switch {
	case c == '"' || c == '\'' || c == '`':
		return l.scanString(pos)
	case c == '*' || c == '-' || textkit.Classify(rune(c)).Has(textkit.Digit):
		return l.scanNumber(pos)
	case textkit.Classify(rune(c)).Has(textkit.Letter | textkit.Underline):
		sp, _ := l.t.ConsumeASCII(textkit.Ident)
		return Token{Type: TokenIdent, Value: l.t.Extract(sp), Pos: pos}
	}

	l.t.Next()
	return l.errorf(pos, "unexpected character %q", c)
}

func (l *Lexer) scanString(pos Position) Token {
	if sp, ok := l.t.ConsumeQuoted(); ok {
		return Token{Type: TokenString, Value: l.t.Extract(sp), Pos: pos}
	}
	l.t.ConsumeUntil('\n')
	return l.errorf(pos, "unterminated string")
}

// scanNumber reads a cardinality or an integer. Digit runs with a leading
// zero are rejected before either is tried.
func (l *Lexer) scanNumber(pos Position) Token {
	m := l.t.Mark()
	if sp, ok := l.t.ConsumeASCII(textkit.Digit); ok {
		if text := l.t.Extract(sp); text[0] == '0' && len(text) > 1 {
			return l.errorf(pos, "leading zero in %s", text)
		}
		l.t.Rewind(m)
	}

	start := l.t.Cursor()
	_, err := cardinality.Scan(l.t)
	switch {
	case err == nil:
		return Token{Type: TokenCardinality, Value: l.t.SliceFrom(start), Pos: pos}
	case errors.Is(err, cardinality.ErrInvalid):
		l.t.ConsumeFunc(func(_ int, c byte) bool {
			return c == '.' || c == '*' || textkit.Classify(rune(c)).Has(textkit.Digit)
		})
		return l.errorf(pos, "invalid cardinality %s", l.t.SliceFrom(start))
	}

	if _, ok := l.t.ConsumeInt(); !ok {
		l.t.Next()
		return l.errorf(pos, "invalid integer")
	}
	return Token{Type: TokenInt, Value: l.t.SliceFrom(start), Pos: pos}
}

func (l *Lexer) skipSpaceAndComments() {
	for {
		l.t.SkipSpace()
		switch {
		case l.t.Consume('\r'):
		case l.t.ConsumeString("//"):
			l.t.ConsumeUntil('\n')
		default:
			return
		}
	}
}

// position converts an offset into a Position. Offsets must not decrease
// between calls.
func (l *Lexer) position(off int) Position {
	for i := l.counted; i < off; i++ {
		if l.t.At(i) == '\n' {
			l.line++
			l.lineStart = i + 1
		}
	}
	l.counted = off
	return Position{Line: l.line, Column: off - l.lineStart + 1, Offset: off}
}

func (l *Lexer) errorf(pos Position, format string, args ...interface{}) Token {
	msg := fmt.Sprintf(format, args...)
	l.err = &Error{Pos: pos, Msg: msg}
	return Token{Type: TokenError, Value: msg, Pos: pos}
}

// Tokenize is shorthand for NewLexer(input).Tokenize().
func Tokenize(input string) ([]Token, error) {
	return NewLexer(input).Tokenize()
}

// ============================================================
// Token Stream
// ============================================================

// TokenStream provides lookahead over a token slice.
type TokenStream struct {
	tokens []Token
	pos    int
}

// NewTokenStream creates a stream over tokens, which should end with
// TokenEOF.
func NewTokenStream(tokens []Token) *TokenStream {
	return &TokenStream{tokens: tokens}
}

// Peek returns the current token without consuming it.
func (ts *TokenStream) Peek() Token {
	return ts.PeekN(0)
}

// PeekN returns the token n positions ahead.
func (ts *TokenStream) PeekN(n int) Token {
	if ts.pos+n >= len(ts.tokens) {
		if len(ts.tokens) == 0 {
			return Token{Type: TokenEOF}
		}
		last := ts.tokens[len(ts.tokens)-1]
		return Token{Type: TokenEOF, Pos: last.Pos}
	}
	return ts.tokens[ts.pos+n]
}

// Advance consumes and returns the current token.
func (ts *TokenStream) Advance() Token {
	tok := ts.Peek()
	if ts.pos < len(ts.tokens) {
		ts.pos++
	}
	return tok
}

// Expect consumes a token of type typ or returns an error naming what was
// found instead.
func (ts *TokenStream) Expect(typ TokenType) (Token, error) {
	tok := ts.Peek()
	if tok.Type != typ {
		return tok, &Error{Pos: tok.Pos, Msg: fmt.Sprintf("expected %s, got %s", typ, tok)}
	}
	return ts.Advance(), nil
}

// Match consumes the current token if it has type typ.
func (ts *TokenStream) Match(typ TokenType) bool {
	if ts.Peek().Type == typ {
		ts.Advance()
		return true
	}
	return false
}

// AtEnd reports whether only EOF remains.
func (ts *TokenStream) AtEnd() bool {
	return ts.Peek().Type == TokenEOF
}

// Position returns the index of the current token.
func (ts *TokenStream) Position() int {
	return ts.pos
}

// Reset moves the stream back to a position returned by Position.
func (ts *TokenStream) Reset(pos int) {
	ts.pos = pos
}
