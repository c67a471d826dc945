package cssom

import (
	"strconv"
	"strings"

	"github.com/npillmayer/uistyle/dom/style"
	"github.com/npillmayer/uistyle/selector"
)

// ComputeStyle concatenates the matching declarations of the stylesheets,
// in argument order, and expands them into longhand properties. Later
// declarations override earlier ones. nil stylesheets are skipped.
func ComputeStyle(chain selector.Chain, sheets ...*Stylesheet) style.PropertyMap {
	if len(chain) == 0 {
		return style.PropertyMap{}
	}
	var decls []style.Declaration
	for _, s := range sheets {
		if s != nil {
			decls = append(decls, s.Declarations(chain)...)
		}
	}
	return style.Expand(decls)
}

// HasMatches checks if any of the stylesheets has a rule set matching an
// element chain.
func HasMatches(chain selector.Chain, sheets ...*Stylesheet) bool {
	for _, s := range sheets {
		if s != nil && s.HasMatches(chain) {
			return true
		}
	}
	return false
}

// CombineStyling creates a stylesheet from the rules of all sheets, in
// argument order. Options are taken from the first sheet.
func CombineStyling(inline bool, sheets ...*Stylesheet) *Stylesheet {
	opts := DefaultOptions()
	for _, s := range sheets {
		if s != nil {
			opts = s.opts
			break
		}
	}
	opts.Inline = inline
	combined := New(opts)
	for _, s := range sheets {
		if s != nil {
			combined.rules = append(combined.rules, s.Rules()...)
		}
	}
	return combined
}

// --- Trimming --------------------------------------------------------------

// trimEntry is a trimmed stylesheet, valid as long as the versions of the
// sheets it has been derived from are unchanged.
type trimEntry struct {
	versions string
	sheet    *Stylesheet
}

// TrimStyling returns a stylesheet holding the rule sets of sheets which
// might apply to an element chain, if the facets in set are ignored. This
// is a superset of the rule sets matching the chain, and may be re-used for
// elements differing from chain in the stripped facets only (e.g.
// pseudo-classes like :hover). Results are memoized with the first sheet
// until one of the sheets changes.
func TrimStyling(chain selector.Chain, set selector.StripSet, sheets ...*Stylesheet) *Stylesheet {
	opts := DefaultOptions()
	var owner *Stylesheet
	var uids, versions []string
	for _, s := range sheets {
		if s != nil {
			if owner == nil {
				owner, opts = s, s.opts
			}
			uids = append(uids, strconv.FormatInt(s.uid, 10))
			versions = append(versions, s.version())
		}
	}
	opts.Inline = false
	cache := opts.cache()
	stripped := cache.Strip(chain, set)
	if owner == nil {
		return New(opts)
	}
	key := stripped.Key() + "|" + set.String() + "|" + strings.Join(uids, ",")
	version := strings.Join(versions, ",")
	owner.trimMu.Lock()
	e, ok := owner.trims[key]
	owner.trimMu.Unlock()
	if ok && e.versions == version {
		return e.sheet
	}
	t := New(opts)
	for _, s := range sheets {
		if s == nil {
			continue
		}
		for _, rs := range s.Rules() {
			if rs.Matches(stripped, set, cache) {
				t.rules = append(t.rules, rs)
			}
		}
	}
	tracer().Debugf("trimmed styling for %s has %d rule sets", stripped, len(t.rules))
	owner.trimMu.Lock()
	owner.trims[key] = &trimEntry{versions: version, sheet: t}
	owner.trimMu.Unlock()
	return t
}

// Trim is TrimStyling with the stylesheet's configured strip set.
func (s *Stylesheet) Trim(chain selector.Chain) *Stylesheet {
	return TrimStyling(chain, s.opts.Trim, s)
}
