package styledtree

import (
	"fmt"
	"strings"

	"github.com/npillmayer/uistyle/css"
	"github.com/npillmayer/uistyle/cssom"
	"github.com/npillmayer/uistyle/dom"
	"github.com/npillmayer/uistyle/dom/style"
	"github.com/npillmayer/uistyle/selector"
	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// Node is a style node, the building block of the styled tree.
type Node struct {
	htmlNode *html.Node
	parent   *Node
	children []*Node
	chain    selector.Chain
	styles   style.PropertyMap
}

// Build creates a styled tree for the root element of an HTML document (or
// for an element). Returns nil if there is no element to style.
func Build(doc *html.Node, state dom.PseudoState, sheets ...*cssom.Stylesheet) *Node {
	root := doc
	if doc != nil && doc.Type == html.DocumentNode {
		root = nil
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				root = c
				break
			}
		}
	}
	if root == nil || root.Type != html.ElementNode {
		tracer().Debugf("styledtree: no element to style")
		return nil
	}
	sn := &Node{htmlNode: root}
	var prefix selector.Chain
	if root.Parent != nil {
		prefix = dom.ChainFor(root.Parent, state)
	}
	sn.build(prefix, state, sheets)
	return sn
}

func (sn *Node) build(prefix selector.Chain, state dom.PseudoState, sheets []*cssom.Stylesheet) {
	sn.chain = make(selector.Chain, len(prefix), len(prefix)+1)
	copy(sn.chain, prefix)
	sn.chain = append(sn.chain, dom.SimpleSelector(sn.htmlNode, state))
	if cssom.HasMatches(sn.chain, sheets...) {
		sn.styles = cssom.ComputeStyle(sn.chain, sheets...)
	} else {
		sn.styles = nil
	}
	sn.children = sn.children[:0]
	for c := sn.htmlNode.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode && c.Type != html.TextNode {
			continue
		}
		child := &Node{htmlNode: c, parent: sn}
		sn.children = append(sn.children, child)
		child.build(sn.chain, state, sheets)
	}
}

// Restyle computes the styles of a sub-tree again, e.g. after the pseudo
// state of an element has changed.
func (sn *Node) Restyle(state dom.PseudoState, sheets ...*cssom.Stylesheet) {
	var prefix selector.Chain
	if sn.parent != nil {
		prefix = sn.parent.chain
	} else if sn.htmlNode.Parent != nil {
		prefix = dom.ChainFor(sn.htmlNode.Parent, state)
	}
	sn.build(prefix, state, sheets)
}

// HTMLNode gets the HTML DOM node corresponding to this styled node.
func (sn *Node) HTMLNode() *html.Node {
	return sn.htmlNode
}

// Parent returns the parent node, or nil for the root.
func (sn *Node) Parent() *Node {
	return sn.parent
}

// Children returns the child nodes.
func (sn *Node) Children() []*Node {
	return sn.children
}

// Chain returns the selector chain the node has been styled for.
func (sn *Node) Chain() selector.Chain {
	return sn.chain
}

// Styles returns the properties computed for this node. Inherited and
// default properties are not included, see Property.
func (sn *Node) Styles() style.PropertyMap {
	return sn.styles
}

// IsText is true for text nodes.
func (sn *Node) IsText() bool {
	return sn.htmlNode.Type == html.TextNode
}

// Property returns the value of a property for this node. If the property
// is not set, it is inherited from the parent, if allowed, or taken from
// the default styling.
func (sn *Node) Property(key string) (style.Value, bool) {
	for n := sn; n != nil; n = n.parent {
		if v, ok := n.styles[key]; ok {
			return v, true
		}
		if !style.IsInherited(key) {
			break
		}
		tracer().Debugf("styling: cascading for key %s", key)
	}
	if key == "display" {
		tag := ""
		if !sn.IsText() {
			tag = sn.htmlNode.Data
		}
		return style.DisplayForElement(tag), true
	}
	v, ok := style.DefaultStyling()[key]
	return v, ok
}

// Display returns the display mode of this node. Text nodes are inline.
func (sn *Node) Display() css.DisplayMode {
	if sn.IsText() {
		return css.InlineMode | css.FlowMode
	}
	v, _ := sn.Property("display")
	d, err := css.ParseDisplay(v.First())
	if err != nil {
		tracer().Errorf("styling: %v", err)
	}
	return d
}

// Walk calls f for every node of the sub-tree, parents before children.
func (sn *Node) Walk(f func(*Node)) {
	f(sn)
	for _, c := range sn.children {
		c.Walk(f)
	}
}

// --- Diagnostics -----------------------------------------------------------

// Dump renders the styled tree, listing the computed styles of every node.
func (sn *Node) Dump() string {
	root := tp.New()
	sn.dump(root)
	return root.String()
}

func (sn *Node) dump(branch tp.Tree) {
	label := sn.Display().Symbol() + " " + sn.chain.Subject()
	if sn.IsText() {
		label = fmt.Sprintf("%q", shortText(sn.htmlNode.Data))
	}
	b := branch.AddBranch(label)
	for _, d := range sn.styles.Declarations() {
		b.AddNode(d.String())
	}
	for _, c := range sn.children {
		c.dump(b)
	}
}

func shortText(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > 20 {
		return string(r[:20]) + "…"
	}
	return s
}
