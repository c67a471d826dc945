/*
Package lexer implements a small rule-driven tokenizer.

A lexer is configured by an ordered list of rules. Every rule names a token
kind, a value converter and one or more regular expressions. At each input
position all patterns are tried and the longest match wins. Every rule
matching with that longest length contributes its kind to the resulting
token, in rule order. This allows a lexeme like "red" to be both a color and
an identifier, leaving it to the parser to decide which kind it expects.

Rules without a converter discard their matches (whitespace, comments).
Tokens remember whether discarded input preceded them, which parsers may use
for whitespace-sensitive constructs such as the descendant combinator of
selectors.

Parsers should consume tokens through interface Tokenizer, not through the
concrete Stream type.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package lexer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'uistyle.lexer'.
func tracer() tracing.Trace {
	return tracing.Select("uistyle.lexer")
}
