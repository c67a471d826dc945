package lexer

import "strings"

// Token is a lexeme together with the kinds of all rules which matched it.
type Token struct {
	Text   string // the lexeme
	Line   int    // 1-based line of the lexeme's start
	Spaced bool   // discarded input (whitespace, comments) precedes the token
	kinds  []string
	values []interface{}
}

// Kinds returns the token's kinds in rule order.
func (t Token) Kinds() []string {
	return t.kinds
}

// Is checks if kind is one of the token's kinds.
func (t Token) Is(kind string) bool {
	for _, k := range t.kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// IsEOF is true for the token terminating the input.
func (t Token) IsEOF() bool {
	return t.Is(EOF)
}

// Value returns the value produced by the first matching rule.
func (t Token) Value() interface{} {
	if len(t.values) == 0 {
		return nil
	}
	return t.values[0]
}

// ValueOf returns the value the rule of the given kind produced, or nil.
func (t Token) ValueOf(kind string) interface{} {
	for i, k := range t.kinds {
		if k == kind {
			return t.values[i]
		}
	}
	return nil
}

func (t Token) String() string {
	if t.IsEOF() {
		return "<eof>"
	}
	return "<" + strings.Join(t.kinds, "|") + " '" + t.Text + "'>"
}

// --- Token streams ---------------------------------------------------------

// Tokenizer is the capability parsers consume.
type Tokenizer interface {
	Peek() Token // look at the next token without consuming it
	Next() Token // consume the next token
	Line() int   // line of the next token
}

// Stream is a Tokenizer over a pre-scanned list of tokens. At the end of
// input it returns the EOF token over and over.
type Stream struct {
	tokens []Token
	pos    int
}

// Peek is part of interface Tokenizer.
func (s *Stream) Peek() Token {
	return s.tokens[s.pos]
}

// Next is part of interface Tokenizer.
func (s *Stream) Next() Token {
	t := s.tokens[s.pos]
	if s.pos < len(s.tokens)-1 {
		s.pos++
	}
	return t
}

// Line is part of interface Tokenizer.
func (s *Stream) Line() int {
	return s.tokens[s.pos].Line
}

// Len returns the number of tokens, excluding EOF.
func (s *Stream) Len() int {
	return len(s.tokens) - 1
}

var _ Tokenizer = &Stream{}

// Expect consumes the next token if it is of the given kind, otherwise it
// returns a syntax error and leaves the token in place.
func Expect(tok Tokenizer, kind string) (Token, error) {
	t := tok.Peek()
	if !t.Is(kind) {
		return t, Errorf(t, "expected %s", kind)
	}
	return tok.Next(), nil
}

// ExpectText consumes the next token if its lexeme is one of texts.
func ExpectText(tok Tokenizer, texts ...string) (Token, error) {
	t := tok.Peek()
	for _, s := range texts {
		if t.Text == s && !t.IsEOF() {
			return tok.Next(), nil
		}
	}
	return t, Errorf(t, "expected %s", strings.Join(texts, " or "))
}
