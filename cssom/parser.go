package cssom

import (
	"strings"

	"github.com/npillmayer/uistyle/css"
	"github.com/npillmayer/uistyle/dom/style"
	"github.com/npillmayer/uistyle/lexer"
	"github.com/npillmayer/uistyle/selector"
)

// ParseDeclaration parses
//
//    key ':' value value* ';'
//
// A single value results in a scalar declaration value, more than one in a
// sequence.
func ParseDeclaration(tok lexer.Tokenizer) (style.Declaration, error) {
	var decl style.Declaration
	key, err := lexer.Expect(tok, KindKey)
	if err != nil {
		return decl, err
	}
	if _, err = lexer.ExpectText(tok, ":"); err != nil {
		return decl, err
	}
	var values []css.Value
	for {
		t := tok.Peek()
		if t.IsEOF() || t.Text == ";" || t.Text == "{" || t.Text == "}" {
			break
		}
		if t.Is(KindSpecial) {
			return decl, lexer.Errorf(t, "invalid value for %s", key.Text)
		}
		v, ok := tok.Next().Value().(css.Value)
		if !ok {
			return decl, lexer.Errorf(t, "invalid value for %s", key.Text)
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return decl, lexer.Errorf(tok.Peek(), "expected value for %s", key.Text)
	}
	if _, err = lexer.ExpectText(tok, ";"); err != nil {
		return decl, err
	}
	decl.Property = key.Text
	if len(values) == 1 {
		decl.Value = style.Scalar(values[0])
	} else {
		decl.Value = style.Sequence(values...)
	}
	return decl, nil
}

// ParseDeclarations parses declarations up to the end of input, skipping
// stray semicolons.
func ParseDeclarations(tok lexer.Tokenizer) ([]style.Declaration, error) {
	var decls []style.Declaration
	for !tok.Peek().IsEOF() {
		if tok.Peek().Text == ";" {
			tok.Next()
			continue
		}
		d, err := ParseDeclaration(tok)
		if err != nil {
			return nil, err
		}
		decls = append(decls, d)
	}
	return decls, nil
}

// ParseRuleSet parses a group of selector chains followed by a declaration
// block:
//
//    ruleset       := selectorgroup '{' declaration* '}'
//    selectorgroup := chain (',' chain)*
//    chain         := simple (combinator? simple)*
//
// Selectors are cached in selector.Default.
func ParseRuleSet(tok lexer.Tokenizer) (*RuleSet, error) {
	return parseRuleSet(tok, selector.Default)
}

func parseRuleSet(tok lexer.Tokenizer, cache *selector.Cache) (*RuleSet, error) {
	var chains []selector.Chain
	for {
		chain, err := parseChain(tok)
		if err != nil {
			return nil, err
		}
		chains = append(chains, chain)
		if tok.Peek().Text != "," {
			break
		}
		tok.Next()
	}
	if _, err := lexer.ExpectText(tok, "{"); err != nil {
		return nil, err
	}
	var decls []style.Declaration
	for {
		t := tok.Peek()
		if t.Text == "}" {
			tok.Next()
			break
		}
		if t.IsEOF() {
			return nil, lexer.Errorf(t, "expected }")
		}
		if t.Text == ";" {
			tok.Next()
			continue
		}
		d, err := ParseDeclaration(tok)
		if err != nil {
			return nil, err
		}
		decls = append(decls, d)
	}
	return NewRuleSet(chains, decls, cache)
}

// parseRules parses rule sets up to the end of input.
func parseRules(text string, cache *selector.Cache) ([]*RuleSet, error) {
	tok, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	var rules []*RuleSet
	for !tok.Peek().IsEOF() {
		if tok.Peek().Text == ";" {
			tok.Next()
			continue
		}
		rs, err := parseRuleSet(tok, cache)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rs)
	}
	return rules, nil
}

// ParseSelector parses a single selector chain, e.g. "div > span.a:hover".
func ParseSelector(text string) (selector.Chain, error) {
	tok, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	chain, err := parseChain(tok)
	if err != nil {
		return nil, err
	}
	if t := tok.Peek(); !t.IsEOF() {
		return nil, lexer.Errorf(t, "unexpected token after selector")
	}
	return chain, nil
}

func parseChain(tok lexer.Tokenizer) (selector.Chain, error) {
	var chain selector.Chain
	for {
		simple, err := parseSimple(tok)
		if err != nil {
			return nil, err
		}
		chain = append(chain, simple)
		t := tok.Peek()
		switch {
		case t.Text == ">":
			tok.Next()
			chain = append(chain, selector.Child)
		case t.Text == "~":
			return nil, lexer.Errorf(t, "unsupported combinator")
		case t.IsEOF() || t.Text == "," || t.Text == "{":
			return chain, nil
		case !t.Spaced:
			return nil, lexer.Errorf(t, "unexpected token in selector")
		}
		// whitespace: descendant combinator
	}
}

// parseSimple collects one simple selector. A selector starting with a
// facet gets the type "*". Whitespace ends the simple selector, except in
// front of its first token.
func parseSimple(tok lexer.Tokenizer) (string, error) {
	var b strings.Builder
	t := tok.Peek()
	first := false
	switch {
	case t.Text == "*":
		b.WriteString(tok.Next().Text)
	case t.Is(KindID):
		b.WriteString(tok.Next().Text)
	case isFacetStart(t):
		b.WriteString("*")
		first = true
	default:
		return "", lexer.Errorf(t, "expected selector")
	}
	for {
		t = tok.Peek()
		if (t.Spaced && !first) || !isFacetStart(t) {
			if first {
				return "", lexer.Errorf(t, "expected selector")
			}
			return b.String(), nil
		}
		first = false
		tok.Next()
		switch {
		case t.Is(KindAttribute):
			b.WriteString(t.Text)
		case t.Is(KindColor) && strings.HasPrefix(t.Text, "#"):
			b.WriteString(t.Text) // hex-like id, e.g. #facade
			b.WriteString(idContinuation(tok))
		case t.Text == "." || t.Text == "#":
			name, err := facetName(tok, KindID)
			if err != nil {
				return "", err
			}
			b.WriteString(t.Text + name)
		case t.Text == ":":
			name, err := facetName(tok, KindPseudoClass)
			if err != nil {
				return "", err
			}
			b.WriteString(":" + name)
		case t.Text == "::":
			name, err := facetName(tok, KindPseudoElement)
			if err != nil {
				return "", err
			}
			b.WriteString("::" + name)
		default:
			return "", lexer.Errorf(t, "unexpected %s in selector", t.Text)
		}
	}
}

// idContinuation collects the rest of an id which has been lexed as a hex
// color, e.g. "-x" in #facade-x or "12" in #facade12.
func idContinuation(tok lexer.Tokenizer) string {
	var b strings.Builder
	for {
		n := tok.Peek()
		if n.Spaced || !(n.Is(KindID) || n.Is(KindNum) || n.Text == "-") {
			return b.String()
		}
		b.WriteString(tok.Next().Text)
	}
}

func isFacetStart(t lexer.Token) bool {
	if t.Is(KindAttribute) {
		return true
	}
	if t.Is(KindColor) && strings.HasPrefix(t.Text, "#") {
		return true
	}
	return t.Is(KindSpecial) && (t.Text == "." || t.Text == "#" || strings.HasPrefix(t.Text, ":"))
}

func facetName(tok lexer.Tokenizer, kind string) (string, error) {
	t := tok.Peek()
	if t.Spaced {
		return "", lexer.Errorf(t, "unexpected whitespace in selector")
	}
	name, err := lexer.Expect(tok, kind)
	if err != nil {
		return "", err
	}
	return name.Text, nil
}
