package selector

import (
	"fmt"
	"strings"
)

// StripSet is a set of selector facets to be removed from simple selectors.
type StripSet uint8

// Facets of simple selectors.
const (
	StripType StripSet = 1 << iota
	StripID
	StripClasses
	StripPseudoElements
	StripPseudoClasses
	StripAttributes
	StripAttributeValues
)

// DefaultTrim strips the facets which change with an element's state:
// pseudo-elements, pseudo-classes, attributes and attribute values.
const DefaultTrim = StripPseudoElements | StripPseudoClasses | StripAttributes | StripAttributeValues

var facetNames = []struct {
	set   StripSet
	names []string
}{
	{StripType, []string{"type"}},
	{StripID, []string{"id"}},
	{StripClasses, []string{"classes", "class"}},
	{StripPseudoElements, []string{"pseudoelements", "pseudoelement"}},
	{StripPseudoClasses, []string{"pseudoclasses", "pseudoclass"}},
	{StripAttributes, []string{"attributes", "attribs"}},
	{StripAttributeValues, []string{"attributevalues", "attribvals"}},
}

// ParseStripSet parses a comma separated list of facet names, e.g.
// "pseudoclasses, attributes".
func ParseStripSet(s string) (StripSet, error) {
	var set StripSet
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(strings.ToLower(f))
		if f == "" {
			continue
		}
		found := false
		for _, fn := range facetNames {
			for _, n := range fn.names {
				if n == f {
					set |= fn.set
					found = true
				}
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown selector facet %q", f)
		}
	}
	return set, nil
}

func (s StripSet) String() string {
	var names []string
	for _, fn := range facetNames {
		if s&fn.set != 0 {
			names = append(names, fn.names[0])
		}
	}
	return "{" + strings.Join(names, ",") + "}"
}

// Strip removes the facets in set from every simple selector of a chain.
// Stripping the type replaces it by "*". Combinators are kept. An empty set
// returns the chain unchanged.
func (c *Cache) Strip(chain Chain, set StripSet) Chain {
	if set == 0 {
		return chain
	}
	stripped := make(Chain, len(chain))
	for i, raw := range chain {
		stripped[i] = c.stripPart(raw, set)
	}
	return stripped
}

func (c *Cache) stripPart(raw string, set StripSet) string {
	if raw == Child {
		return raw
	}
	key := stripKey{raw: raw, set: set}
	c.mu.RLock()
	s, ok := c.stripped[key]
	c.mu.RUnlock()
	if ok {
		return s
	}
	p := *c.Split(raw) // shallow copy, facets are replaced, never modified
	if set&StripType != 0 {
		p.Type = "*"
	}
	if set&StripID != 0 {
		p.ID = ""
	}
	if set&StripClasses != 0 {
		p.Classes = nil
	}
	if set&StripPseudoElements != 0 {
		p.PseudoElements = nil
	}
	if set&StripPseudoClasses != 0 {
		p.PseudoClasses = nil
	}
	if set&StripAttributes != 0 {
		p.Attribs = nil
	}
	if set&StripAttributeValues != 0 {
		p.AttribVals = nil
	}
	p.canon = ""
	s = join(&p)
	c.mu.Lock()
	c.stripped[key] = s
	c.mu.Unlock()
	return s
}

// Strip removes facets using the default cache.
func Strip(chain Chain, set StripSet) Chain {
	return Default.Strip(chain, set)
}
