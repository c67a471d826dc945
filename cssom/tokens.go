package cssom

import (
	"strings"

	"github.com/npillmayer/uistyle/css"
	"github.com/npillmayer/uistyle/lexer"
)

// Token kinds of the stylesheet dialect.
const (
	KindSpecial       = "special"
	KindCombinator    = "combinator"
	KindAttribute     = "attribute"
	KindKey           = "key"
	KindValue         = "value"
	KindURL           = "url"
	KindString        = "string"
	KindCursor        = "cursor"
	KindColor         = "color"
	KindPseudoClass   = "pseudoclass"
	KindPseudoElement = "pseudoelement"
	KindNum           = "num"
	KindID            = "id"
)

func toKeyword(s string, _ map[string]string) (interface{}, error) {
	return css.Keyword(s), nil
}

func toCursor(s string, _ map[string]string) (interface{}, error) {
	return css.Cursor(s), nil
}

func toColor(s string, _ map[string]string) (interface{}, error) {
	return css.ParseColor(s)
}

func toNumberUnit(s string, _ map[string]string) (interface{}, error) {
	return css.ParseNumberUnit(s)
}

func toURL(_ string, groups map[string]string) (interface{}, error) {
	return css.URL(strings.Trim(groups["url"], `'" `)), nil
}

func toString(_ string, groups map[string]string) (interface{}, error) {
	return css.String(groups["string"]), nil
}

// TokenRules is the token table of the stylesheet dialect, in priority
// order for lexemes matched by more than one rule.
var TokenRules = []lexer.Rule{
	{Kind: "ignore", Patterns: []string{
		`[ \t\r\n]+`,                      // spaces, tabs and newlines
		`/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`, // multi-line comments
	}},
	{Kind: KindSpecial, Convert: toKeyword, Patterns: []string{
		`[-.*>{},();#~]|:+`,
	}},
	{Kind: KindCombinator, Convert: toKeyword, Patterns: []string{
		`[>~]`,
	}},
	{Kind: KindAttribute, Convert: toKeyword, Patterns: []string{
		`\[[-a-zA-Z_]+(?:="[^"]*")?\]`,
	}},
	{Kind: KindKey, Convert: toKeyword, Patterns: []string{
		`color`,
		`display`,
		`background(?:-(?:color|image))?`,
		`margin(?:-(?:left|right|top|bottom))?`,
		`padding(?:-(?:left|right|top|bottom))?`,
		`border(?:-(?:width|radius))?`,
		`border(?:-(?:left|right|top|bottom))?-color`,
		`(?:(?:min|max)-)?width`,
		`(?:(?:min|max)-)?height`,
		`left|top|right|bottom`,
		`cursor`,
		`overflow(?:-x|-y)?`,
		`position`,
		`flex(?:-(?:direction|wrap|grow|shrink|basis))?`,
		`justify-content|align-content|align-items`,
		`font(?:-(?:style|weight|size|family))?`,
		`white-space`,
		`content`,
		`object-fit`,
		`text-shadow`,
		`z-index`,
	}},
	{Kind: KindValue, Convert: toKeyword, Patterns: []string{
		`auto|initial`,
		`inline|block|none|flexbox|table(?:-row|-cell)?`, // display
		`visible|hidden|scroll`,                           // overflow
		`static|absolute|relative|fixed|sticky`,           // position
		`column|row`,                                      // flex-direction
		`nowrap|wrap`,                                     // flex-wrap
		`flex-start|flex-end|center|stretch`,              // justify-content, align-*
		`normal|italic|bold`,                              // font-style, font-weight
		`serif|sans-serif|monospace`,                      // font-family
		`pre|pre-wrap|pre-line`,                           // white-space
		`fill|contain|cover|scale-down`,                   // object-fit
	}},
	{Kind: KindURL, Convert: toURL, Patterns: []string{
		`url\((?P<url>[^)]*)\)`,
	}},
	{Kind: KindString, Convert: toString, Patterns: []string{
		`"(?P<string>[^"]*)"`,
	}},
	{Kind: KindCursor, Convert: toCursor, Patterns: []string{
		`default|auto|initial`,
		`none|wait|grab|crosshair|pointer`,
		`text`,
		`e-resize|w-resize|ew-resize`,
		`n-resize|s-resize|ns-resize`,
		`all-scroll`,
	}},
	{Kind: KindColor, Convert: toColor, Patterns: []string{
		`rgb\( *\d+ *, *\d+ *, *\d+ *\)`,
		`rgba\( *\d+ *, *\d+ *, *\d+ *, *\d+(?:\.\d+)? *\)`,
		`hsl\( *\d+(?:\.\d*)? *, *\d+(?:\.\d*)?% *, *\d+(?:\.\d*)?% *\)`,
		`hsla\( *\d+(?:\.\d*)? *, *\d+(?:\.\d*)?% *, *\d+(?:\.\d*)?% *, *\d+(?:\.\d+)? *\)`,
		`#[a-fA-F0-9]{6}`,
		`transparent`,
		strings.Join(css.ColorNames(), "|"),
	}},
	{Kind: KindPseudoClass, Convert: toKeyword, Patterns: []string{
		`hover|active|focus|disabled`,
	}},
	{Kind: KindPseudoElement, Convert: toKeyword, Patterns: []string{
		`before|after`,
	}},
	{Kind: KindNum, Convert: toNumberUnit, Patterns: []string{
		`-?\d+(?:\.\d+)?(?:px|vw|vh|pt|%)?`,
	}},
	{Kind: KindID, Convert: toKeyword, Patterns: []string{
		`[a-zA-Z_][-a-zA-Z_0-9]*`,
	}},
}

var dialect = lexer.MustNew(TokenRules)

// Tokenize splits stylesheet text into tokens of the dialect.
func Tokenize(text string) (*lexer.Stream, error) {
	return dialect.Tokenize(text)
}
