package cssom

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/npillmayer/uistyle/dom/style"
	"github.com/npillmayer/uistyle/selector"
)

var ruleUID int64

// RuleSet is a group of selector chains sharing a block of declarations.
// Rule sets must not be modified after construction; they may be shared
// between stylesheets.
type RuleSet struct {
	Selectors    []selector.Chain
	Declarations []style.Declaration
	uid          int
	mu           sync.Mutex
	memo         map[matchKey]bool
}

type matchKey struct {
	chain string
	strip selector.StripSet
}

// NewRuleSet creates a rule set with a fresh UID. Selectors are validated
// and rewritten into canonical form, using cache.
func NewRuleSet(selectors []selector.Chain, decls []style.Declaration, cache *selector.Cache) (*RuleSet, error) {
	if len(selectors) == 0 {
		return nil, fmt.Errorf("rule set without selectors")
	}
	if cache == nil {
		cache = selector.Default
	}
	rs := &RuleSet{
		Selectors:    make([]selector.Chain, len(selectors)),
		Declarations: decls,
		uid:          int(atomic.AddInt64(&ruleUID, 1)),
		memo:         make(map[matchKey]bool),
	}
	for i, chain := range selectors {
		if err := chain.Validate(); err != nil {
			return nil, err
		}
		rs.Selectors[i] = cache.Canonical(chain)
	}
	return rs, nil
}

// UID is unique for every rule set of a process. Later rule sets have
// larger UIDs.
func (rs *RuleSet) UID() int {
	return rs.uid
}

// Matches checks if any of the rule set's selectors matches an element
// chain, with the facets of set stripped from both. Results are memoized.
func (rs *RuleSet) Matches(chain selector.Chain, set selector.StripSet, cache *selector.Cache) bool {
	key := matchKey{chain: chain.Key(), strip: set}
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if m, ok := rs.memo[key]; ok {
		return m
	}
	m := false
	for _, sel := range rs.Selectors {
		if cache.MatchesStripped(chain, sel, set) {
			m = true
			break
		}
	}
	rs.memo[key] = m
	return m
}

// MatchingSelectors returns the selectors which match an element chain.
func (rs *RuleSet) MatchingSelectors(chain selector.Chain, cache *selector.Cache) []selector.Chain {
	var sels []selector.Chain
	for _, sel := range rs.Selectors {
		if cache.Matches(chain, sel) {
			sels = append(sels, sel)
		}
	}
	return sels
}

func (rs *RuleSet) String() string {
	var b strings.Builder
	for i, sel := range rs.Selectors {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(sel.String())
	}
	b.WriteString(" {")
	for _, d := range rs.Declarations {
		b.WriteString(" " + d.String() + ";")
	}
	b.WriteString(" }")
	return b.String()
}

// Match is a rule set matching an element chain, together with the
// specificity of its most specific matching selector.
type Match struct {
	Rule        *RuleSet
	Selector    selector.Chain
	Specificity selector.Specificity
}
