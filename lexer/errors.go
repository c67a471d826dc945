package lexer

import "fmt"

// SyntaxError is reported for input which cannot be tokenized or parsed.
// Line is 1-based, Literal is the offending lexeme (empty at end of input).
type SyntaxError struct {
	Line    int
	Literal string
	Msg     string
}

func (e *SyntaxError) Error() string {
	if e.Literal == "" {
		return fmt.Sprintf("syntax error on line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("syntax error on line %d: %s (got %q)", e.Line, e.Msg, e.Literal)
}

// Errorf creates a syntax error located at token t.
func Errorf(t Token, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{
		Line:    t.Line,
		Literal: t.Text,
		Msg:     fmt.Sprintf(format, args...),
	}
}
