package dom

import (
	"sort"
	"strings"

	"github.com/npillmayer/uistyle/selector"
	"golang.org/x/net/html"
)

// PseudoState returns the active pseudo-classes of an element, e.g.
// "hover" or "focus". A nil PseudoState reports none.
type PseudoState func(*html.Node) []string

// NoState is a PseudoState for static documents.
func NoState(*html.Node) []string {
	return nil
}

// SimpleSelector returns the simple selector describing an element node:
// its tag, classes, id, active pseudo-classes and attributes. Every
// attribute except class and id is presented both as `[key]` and as
// `[key="value"]`. Text nodes have an empty selector; other node types are
// not styled and yield "*".
func SimpleSelector(n *html.Node, state PseudoState) string {
	switch n.Type {
	case html.TextNode:
		return ""
	case html.ElementNode:
	default:
		return "*"
	}
	p := &selector.Part{Type: n.Data}
	for _, a := range n.Attr {
		switch a.Key {
		case "class":
			p.Classes = append(p.Classes, strings.Fields(a.Val)...)
		case "id":
			p.ID = a.Val
		default:
			if strings.ContainsAny(a.Key, `[]="`) {
				tracer().Debugf("ignoring attribute %q of <%s>", a.Key, n.Data)
				continue
			}
			p.Attribs = append(p.Attribs, a.Key)
			if strings.Contains(a.Val, `"`) {
				continue
			}
			if p.AttribVals == nil {
				p.AttribVals = make(map[string]string)
			}
			p.AttribVals[a.Key] = a.Val
		}
	}
	if state != nil {
		p.PseudoClasses = append([]string(nil), state(n)...)
	}
	p.Classes = sortedSet(p.Classes)
	p.PseudoClasses = sortedSet(p.PseudoClasses)
	p.Attribs = sortedSet(p.Attribs)
	return selector.Join(p)
}

// ChainFor returns the selector chain of a node: the simple selectors of
// its element ancestors and of itself, root first.
func ChainFor(n *html.Node, state PseudoState) selector.Chain {
	var chain selector.Chain
	if n == nil {
		return chain
	}
	if n.Type == html.TextNode || n.Type == html.ElementNode {
		chain = append(chain, SimpleSelector(n, state))
	}
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			chain = append(chain, SimpleSelector(p, state))
		}
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

func sortedSet(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	sort.Strings(s)
	j := 1
	for i := 1; i < len(s); i++ {
		if s[i] != s[j-1] {
			s[j] = s[i]
			j++
		}
	}
	return s[:j]
}
