package cssom

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/uistyle/selector"
	tp "github.com/xlab/treeprint"
)

// --- Selector index --------------------------------------------------------

// The trie stores every selector chain of a stylesheet rightmost-first. A
// path descends one edge per facet of a simple selector (type, id, classes,
// pseudo-elements, pseudo-classes, attributes, attribute values), then one
// combinator edge to the facets of the simple selector to the left.
// Terminal nodes hold the rule sets of the chains ending there.
//
// Nodes live in an arena and reference children by index. The parent index
// is for diagnostics only.

type edgeKind uint8

const (
	edgeType edgeKind = iota
	edgeID
	edgeClass
	edgePseudoElement
	edgePseudoClass
	edgeAttrib
	edgeAttribVal
	edgeDescendant
	edgeChild
)

type edge struct {
	kind edgeKind
	name string
	val  string
}

func (e edge) String() string {
	switch e.kind {
	case edgeID:
		return "#" + e.name
	case edgeClass:
		return "." + e.name
	case edgePseudoElement:
		return "::" + e.name
	case edgePseudoClass:
		return ":" + e.name
	case edgeAttrib:
		return "[" + e.name + "]"
	case edgeAttribVal:
		return "[" + e.name + `="` + e.val + `"]`
	case edgeDescendant:
		return "' '"
	case edgeChild:
		return "'>'"
	}
	return e.name
}

type terminal struct {
	index int // position of the rule set in the stylesheet
	sel   selector.Chain
	spec  selector.Specificity
}

type trieNode struct {
	parent    int
	label     edge
	edges     map[edge]int
	terminals []terminal
}

type trie struct {
	nodes []trieNode
	cache *selector.Cache
}

func buildTrie(rules []*RuleSet, inline bool, cache *selector.Cache) *trie {
	t := &trie{cache: cache}
	t.nodes = append(t.nodes, trieNode{parent: -1})
	for i, rs := range rules {
		for _, sel := range rs.Selectors {
			t.insert(sel, terminal{
				index: i,
				sel:   sel,
				spec:  cache.SpecificityOf(sel, rs.uid, inline),
			})
		}
	}
	tracer().Debugf("selector index has %d nodes for %d rule sets", len(t.nodes), len(rules))
	return t
}

func (t *trie) child(n int, e edge) int {
	if c, ok := t.nodes[n].edges[e]; ok {
		return c
	}
	c := len(t.nodes)
	t.nodes = append(t.nodes, trieNode{parent: n, label: e})
	if t.nodes[n].edges == nil {
		t.nodes[n].edges = make(map[edge]int)
	}
	t.nodes[n].edges[e] = c
	return c
}

func (t *trie) insert(sel selector.Chain, term terminal) {
	parts := t.cache.Parts(sel)
	n := 0
	for i := len(parts) - 1; ; {
		n = t.insertFacets(n, parts[i])
		i--
		if i < 0 {
			break
		}
		if parts[i].IsChild() {
			n = t.child(n, edge{kind: edgeChild})
			i--
		} else {
			n = t.child(n, edge{kind: edgeDescendant})
		}
	}
	t.nodes[n].terminals = append(t.nodes[n].terminals, term)
}

func (t *trie) insertFacets(n int, p *selector.Part) int {
	if p.Type != "" {
		n = t.child(n, edge{kind: edgeType, name: p.Type})
	}
	if p.ID != "" {
		n = t.child(n, edge{kind: edgeID, name: p.ID})
	}
	for _, c := range p.Classes {
		n = t.child(n, edge{kind: edgeClass, name: c})
	}
	for _, pe := range p.PseudoElements {
		n = t.child(n, edge{kind: edgePseudoElement, name: pe})
	}
	for _, pc := range p.PseudoClasses {
		n = t.child(n, edge{kind: edgePseudoClass, name: pc})
	}
	for _, a := range p.Attribs {
		n = t.child(n, edge{kind: edgeAttrib, name: a})
	}
	keys := make([]string, 0, len(p.AttribVals))
	for k := range p.AttribVals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		n = t.child(n, edge{kind: edgeAttribVal, name: k, val: p.AttribVals[k]})
	}
	return n
}

// lookup collects the terminals reachable for an element chain, one per
// rule set (the most specific), in stylesheet order.
func (t *trie) lookup(chain selector.Chain) []terminal {
	if len(chain) == 0 {
		return nil
	}
	parts := t.cache.Parts(chain)
	found := make(map[int]terminal)
	t.walk(0, parts[len(parts)-1], parts[:len(parts)-1], found)
	terms := make([]terminal, 0, len(found))
	for _, term := range found {
		terms = append(terms, term)
	}
	// cascade order is stylesheet order; specificity is reported, not sorted on
	sort.Slice(terms, func(i, j int) bool { return terms[i].index < terms[j].index })
	return terms
}

func (t *trie) walk(n int, part *selector.Part, ancestors []*selector.Part, found map[int]terminal) {
	node := &t.nodes[n]
	for _, term := range node.terminals {
		if prev, ok := found[term.index]; !ok || prev.spec.Less(term.spec) {
			found[term.index] = term
		}
	}
	for e, next := range node.edges {
		switch e.kind {
		case edgeDescendant:
			for j := len(ancestors) - 1; j >= 0; j-- {
				t.walk(next, ancestors[j], ancestors[:j], found)
			}
		case edgeChild:
			if j := len(ancestors) - 1; j >= 0 {
				t.walk(next, ancestors[j], ancestors[:j], found)
			}
		default:
			if facetMatches(e, part) {
				t.walk(next, part, ancestors, found)
			}
		}
	}
}

func facetMatches(e edge, p *selector.Part) bool {
	switch e.kind {
	case edgeType:
		if e.name == "*" {
			return p.Type != "" && !p.IsChild()
		}
		return p.Type == e.name
	case edgeID:
		return p.ID == e.name
	case edgeClass:
		return hasString(p.Classes, e.name)
	case edgePseudoElement:
		return hasString(p.PseudoElements, e.name)
	case edgePseudoClass:
		return hasString(p.PseudoClasses, e.name)
	case edgeAttrib:
		return hasString(p.Attribs, e.name)
	case edgeAttribVal:
		v, ok := p.AttribVals[e.name]
		return ok && v == e.val
	}
	return false
}

// hasString searches a sorted set.
func hasString(set []string, x string) bool {
	i := sort.SearchStrings(set, x)
	return i < len(set) && set[i] == x
}

// pathTo lists the edge labels from the root down to node n.
func (t *trie) pathTo(n int) []string {
	var path []string
	for ; n > 0; n = t.nodes[n].parent {
		path = append(path, t.nodes[n].label.String())
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// --- Diagnostics -----------------------------------------------------------

func (t *trie) dump() string {
	root := tp.New()
	t.dumpNode(0, root)
	return root.String()
}

func (t *trie) dumpNode(n int, branch tp.Tree) {
	node := &t.nodes[n]
	for _, term := range node.terminals {
		branch.AddNode(fmt.Sprintf("→ %s %s [%s]", term.sel, term.spec, strings.Join(t.pathTo(n), " ")))
	}
	labels := make([]edge, 0, len(node.edges))
	for e := range node.edges {
		labels = append(labels, e)
	}
	sort.Slice(labels, func(i, j int) bool {
		return labels[i].String() < labels[j].String()
	})
	for _, e := range labels {
		t.dumpNode(node.edges[e], branch.AddBranch(e.String()))
	}
}
