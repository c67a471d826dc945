package lexer

import (
	"fmt"
	"regexp"
	"strings"
)

// EOF is the kind of the token signalling the end of input.
const EOF = "eof"

// Converter turns a lexeme into a token value. groups holds the named
// sub-expressions of the pattern which matched.
type Converter func(lexeme string, groups map[string]string) (interface{}, error)

// Rule describes a token kind. A rule with a nil converter discards its
// matches.
type Rule struct {
	Kind     string
	Convert  Converter
	Patterns []string
}

// Keep is a converter returning the lexeme unchanged.
func Keep(lexeme string, _ map[string]string) (interface{}, error) {
	return lexeme, nil
}

type compiledRule struct {
	kind     string
	convert  Converter
	patterns []*regexp.Regexp
}

// Lexer holds a compiled rule set. A Lexer is immutable after creation and
// may be shared between goroutines.
type Lexer struct {
	rules []compiledRule
}

// New compiles a list of rules. Patterns are anchored at the current input
// position and matched with leftmost-longest semantics.
func New(rules []Rule) (*Lexer, error) {
	lx := &Lexer{rules: make([]compiledRule, 0, len(rules))}
	for _, r := range rules {
		if r.Kind == "" || r.Kind == EOF {
			return nil, fmt.Errorf("lexer: illegal token kind %q", r.Kind)
		}
		cr := compiledRule{kind: r.Kind, convert: r.Convert}
		for _, p := range r.Patterns {
			re, err := regexp.Compile(`^(?:` + p + `)`)
			if err != nil {
				return nil, fmt.Errorf("lexer: pattern for %s: %w", r.Kind, err)
			}
			re.Longest()
			cr.patterns = append(cr.patterns, re)
		}
		lx.rules = append(lx.rules, cr)
	}
	return lx, nil
}

// MustNew is like New, but panics if a pattern does not compile.
// It is intended for package level rule tables.
func MustNew(rules []Rule) *Lexer {
	lx, err := New(rules)
	if err != nil {
		panic(err)
	}
	return lx
}

// candidate is a rule matching at the current position.
type candidate struct {
	rule   *compiledRule
	length int
	groups map[string]string
}

// Tokenize splits text into tokens. An input position where no rule
// matches results in a *SyntaxError.
func (lx *Lexer) Tokenize(text string) (*Stream, error) {
	var tokens []Token
	line, pos := 1, 0
	spaced := false
	for pos < len(text) {
		rest := text[pos:]
		best, cands := lx.longest(rest)
		if best == 0 {
			r := []rune(rest)[0]
			return nil, &SyntaxError{Line: line, Literal: string(r), Msg: "unknown character"}
		}
		lexeme := rest[:best]
		if cands[0].rule.convert == nil { // discard rule wins
			spaced = true
		} else {
			tok := Token{Text: lexeme, Line: line, Spaced: spaced}
			var lastErr error
			for _, c := range cands {
				if c.rule.convert == nil {
					continue
				}
				v, err := c.rule.convert(lexeme, c.groups)
				if err != nil {
					lastErr = err
					continue
				}
				tok.kinds = append(tok.kinds, c.rule.kind)
				tok.values = append(tok.values, v)
			}
			if len(tok.kinds) == 0 {
				return nil, &SyntaxError{Line: line, Literal: lexeme, Msg: lastErr.Error()}
			}
			tokens = append(tokens, tok)
			spaced = false
		}
		line += strings.Count(lexeme, "\n")
		pos += best
	}
	tokens = append(tokens, Token{Line: line, Spaced: spaced, kinds: []string{EOF}, values: []interface{}{nil}})
	tracer().Debugf("lexer: %d tokens in %d lines", len(tokens)-1, line)
	return &Stream{tokens: tokens}, nil
}

// longest returns the length of the longest match at the start of s
// together with all rules matching with that length, in rule order.
func (lx *Lexer) longest(s string) (int, []candidate) {
	best := 0
	var cands []candidate
	for i := range lx.rules {
		r := &lx.rules[i]
		l, groups := 0, map[string]string(nil)
		for _, re := range r.patterns {
			loc := re.FindStringSubmatchIndex(s)
			if loc == nil || loc[1] <= l {
				continue
			}
			l = loc[1]
			groups = subgroups(re, s, loc)
		}
		switch {
		case l == 0 || l < best:
		case l > best:
			best = l
			cands = append(cands[:0], candidate{r, l, groups})
		default:
			cands = append(cands, candidate{r, l, groups})
		}
	}
	return best, cands
}

func subgroups(re *regexp.Regexp, s string, loc []int) map[string]string {
	var groups map[string]string
	for i, name := range re.SubexpNames() {
		if name == "" || loc[2*i] < 0 {
			continue
		}
		if groups == nil {
			groups = make(map[string]string)
		}
		groups[name] = s[loc[2*i]:loc[2*i+1]]
	}
	return groups
}
