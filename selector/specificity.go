package selector

import "fmt"

// Specificity is the ordering key attached to a matched style chain:
// inline flag, number of ids, number of classes, pseudo-classes and
// attributes, number of types and pseudo-elements, and the uid of the rule
// set. Specificities are compared lexicographically.
type Specificity struct {
	Inline  int
	IDs     int
	Classes int
	Types   int
	UID     int
}

// Less compares lexicographically.
func (s Specificity) Less(o Specificity) bool {
	switch {
	case s.Inline != o.Inline:
		return s.Inline < o.Inline
	case s.IDs != o.IDs:
		return s.IDs < o.IDs
	case s.Classes != o.Classes:
		return s.Classes < o.Classes
	case s.Types != o.Types:
		return s.Types < o.Types
	}
	return s.UID < o.UID
}

func (s Specificity) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d,#%d)", s.Inline, s.IDs, s.Classes, s.Types, s.UID)
}

// SpecificityOf computes the specificity of a style chain for a rule set
// with the given uid.
func (c *Cache) SpecificityOf(chain Chain, uid int, inline bool) Specificity {
	key := specKey{chain: chain.Key(), inline: inline}
	c.mu.RLock()
	s, ok := c.specs[key]
	c.mu.RUnlock()
	if !ok {
		if inline {
			s.Inline = 1
		}
		for _, p := range c.Parts(chain) {
			if p.ID != "" {
				s.IDs++
			}
			s.Classes += len(p.Classes) + len(p.PseudoClasses) + len(p.Attribs) + len(p.AttribVals)
			if p.Type != "" && p.Type != "*" && !p.IsChild() {
				s.Types++
			}
			s.Types += len(p.PseudoElements)
		}
		c.mu.Lock()
		c.specs[key] = s
		c.mu.Unlock()
	}
	s.UID = uid
	return s
}

// SpecificityOf uses the default cache.
func SpecificityOf(chain Chain, uid int, inline bool) Specificity {
	return Default.SpecificityOf(chain, uid, inline)
}
