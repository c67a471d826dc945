package selector

// Matches checks if an element chain is matched by a style chain.
//
// The subject of the style chain has to match the subject of the element
// chain. Walking to the left, a simple selector preceded by the descendant
// combinator may match any ancestor, one preceded by ">" must match the
// immediate parent. Surplus ancestors of the element are ignored.
func (c *Cache) Matches(elem, style Chain) bool {
	return matchChain(c.Parts(elem), c.Parts(style), false)
}

// MatchesStripped strips both chains with set before matching them.
func (c *Cache) MatchesStripped(elem, style Chain, set StripSet) bool {
	return c.Matches(c.Strip(elem, set), c.Strip(style, set))
}

// Matches uses the default cache.
func Matches(elem, style Chain) bool {
	return Default.Matches(elem, style)
}

// matchChain is the reference matcher. If cont is false, the last parts of
// elem and style have to match; if true, trailing element parts may be
// skipped (we are looking for an ancestor).
func matchChain(elem, style []*Part, cont bool) bool {
	if len(style) == 0 {
		return true // surplus element ancestors are fine
	}
	if len(elem) == 0 {
		return false
	}
	l, k := len(elem)-1, len(style)-1
	if style[k].IsChild() {
		// the parent must match, no skipping
		return matchChain(elem, style[:k], false)
	}
	if !approx(elem, style, !cont) {
		return false
	}
	if matchParts(elem[l], style[k]) && matchChain(elem[:l], style[:k], true) {
		return true
	}
	if !cont {
		return false
	}
	return matchChain(elem[:l], style, true)
}

// approx is a conservative pre-check: it never rejects a pair of chains
// which would match. With checkEnd set, the type and id of the subjects
// are compared as well.
func approx(elem, style []*Part, checkEnd bool) bool {
	if checkEnd {
		e, s := elem[len(elem)-1], style[len(style)-1]
		if s.Type != "*" && !s.IsChild() && e.Type != s.Type {
			return false
		}
		if s.ID != "" && e.ID != s.ID {
			return false
		}
	}
	for _, s := range style {
		for _, n := range s.names {
			if !hasName(elem, n) {
				return false
			}
		}
	}
	return true
}

func hasName(parts []*Part, n string) bool {
	for _, p := range parts {
		if contains(p.names, n) {
			return true
		}
	}
	return false
}
