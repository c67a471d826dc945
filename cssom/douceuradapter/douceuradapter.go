/*
Package douceuradapter imports standard CSS into stylesheets of package
cssom.

CSS text is parsed by douceur (https://github.com/aymerick/douceur). Every
qualified rule is converted into a rule set: its selectors and declarations
are re-read in the stylesheet dialect of package cssom. At-rules are skipped,
as are selectors and declarations the dialect does not support (e.g.
`text-align` or `~` combinators). `!important` is ignored.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uistyle/cssom"
	"github.com/npillmayer/uistyle/dom/style"
	"github.com/npillmayer/uistyle/selector"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'uistyle.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("uistyle.cssom")
}

// Import parses CSS text and converts it into a stylesheet.
func Import(text string, opts cssom.Options) (*cssom.Stylesheet, error) {
	sheet, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("cannot import CSS: %w", err)
	}
	return Wrap(sheet, opts), nil
}

// Wrap converts a douceur stylesheet into a stylesheet.
func Wrap(sheet *css.Stylesheet, opts cssom.Options) *cssom.Stylesheet {
	var rules []*cssom.RuleSet
	for _, r := range sheet.Rules {
		if r.Kind == css.AtRule {
			tracer().Debugf("skipping at-rule %s %s", r.Name, r.Prelude)
			continue
		}
		if rs := convertRule(r, opts.Cache); rs != nil {
			rules = append(rules, rs)
		}
	}
	tracer().Debugf("imported %d of %d CSS rules", len(rules), len(sheet.Rules))
	return cssom.FromRuleSets(rules, opts)
}

func convertRule(r *css.Rule, cache *selector.Cache) *cssom.RuleSet {
	selectors := r.Selectors
	if len(selectors) == 0 {
		selectors = strings.Split(r.Prelude, ",")
	}
	var chains []selector.Chain
	for _, sel := range selectors {
		chain, err := cssom.ParseSelector(strings.TrimSpace(sel))
		if err != nil {
			tracer().Errorf("skipping selector %q: %v", sel, err)
			continue
		}
		chains = append(chains, chain)
	}
	if len(chains) == 0 {
		return nil
	}
	var decls []style.Declaration
	for _, d := range r.Declarations {
		decl, err := convertDeclaration(d)
		if err != nil {
			tracer().Errorf("skipping declaration %q: %v", d.String(), err)
			continue
		}
		decls = append(decls, decl)
	}
	rs, err := cssom.NewRuleSet(chains, decls, cache)
	if err != nil {
		tracer().Errorf("skipping rule %q: %v", r.Prelude, err)
		return nil
	}
	return rs
}

func convertDeclaration(d *css.Declaration) (style.Declaration, error) {
	if d.Important {
		tracer().Debugf("ignoring !important for %s", d.Property)
	}
	tok, err := cssom.Tokenize(strings.ToLower(d.Property) + ": " + d.Value + ";")
	if err != nil {
		return style.Declaration{}, err
	}
	return cssom.ParseDeclaration(tok)
}

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as stylesheets. Style elements which cannot be parsed are
// skipped.
func ExtractStyleElements(htmldoc *html.Node, opts cssom.Options) []*cssom.Stylesheet {
	head := findElement(atom.Head, htmldoc)
	body := findElement(atom.Body, htmldoc)
	sheets := extractStyles(head, opts)
	return append(sheets, extractStyles(body, opts)...)
}

func extractStyles(h *html.Node, opts cssom.Options) []*cssom.Stylesheet {
	if h == nil {
		return nil
	}
	var sheets []*cssom.Stylesheet
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom != atom.Style || ch.FirstChild == nil {
			continue
		}
		s, err := Import(ch.FirstChild.Data, opts)
		if err != nil {
			tracer().Errorf("skipping <style>: %v", err)
			continue
		}
		sheets = append(sheets, s)
	}
	return sheets
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
