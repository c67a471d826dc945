package cssom

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/npillmayer/uistyle/dom/style"
	"github.com/npillmayer/uistyle/selector"
)

var sheetUID int64

// Stylesheet is an ordered list of rule sets. Later rule sets override
// earlier ones.
//
// Stylesheets memoize declaration lists and match results per element
// chain; loading or appending rules drops every memoized result before the
// new rules become visible. A Stylesheet is safe for concurrent use.
type Stylesheet struct {
	mu         sync.RWMutex
	uid        int64
	opts       Options
	rules      []*RuleSet
	generation uint64
	decls      map[string][]style.Declaration
	matches    map[string]bool
	index      *trie
	trimMu     sync.Mutex
	trims      map[string]*trimEntry
}

// New creates an empty stylesheet.
func New(opts Options) *Stylesheet {
	s := &Stylesheet{
		uid:  atomic.AddInt64(&sheetUID, 1),
		opts: opts,
	}
	s.invalidate()
	return s
}

// FromText creates a stylesheet from text in the stylesheet dialect.
func FromText(text string, opts Options) (*Stylesheet, error) {
	s := New(opts)
	if err := s.LoadFromText(text); err != nil {
		return nil, err
	}
	return s, nil
}

// FromFile creates a stylesheet from a file.
func FromFile(path string, opts Options) (*Stylesheet, error) {
	s := New(opts)
	if err := s.LoadFromFile(path); err != nil {
		return nil, err
	}
	return s, nil
}

// FromRuleSets creates a stylesheet from rule sets, which are shared.
func FromRuleSets(rules []*RuleSet, opts Options) *Stylesheet {
	s := New(opts)
	s.rules = append(s.rules, rules...)
	return s
}

// FromDeclarations creates a stylesheet with a single rule set. An empty
// chain selects everything ("*").
func FromDeclarations(decls []style.Declaration, chain selector.Chain, opts Options) (*Stylesheet, error) {
	if len(chain) == 0 {
		chain = selector.Chain{"*"}
	}
	rs, err := NewRuleSet([]selector.Chain{chain}, decls, opts.cache())
	if err != nil {
		return nil, err
	}
	s := New(opts)
	s.rules = []*RuleSet{rs}
	return s, nil
}

// FromDeclarationMap creates a stylesheet with a single rule set from a
// property map, with declarations sorted by property name.
func FromDeclarationMap(pmap style.PropertyMap, chain selector.Chain, opts Options) (*Stylesheet, error) {
	return FromDeclarations(pmap.Declarations(), chain, opts)
}

// SelectorDeclarations pairs a selector chain with its declarations.
type SelectorDeclarations struct {
	Selector     selector.Chain
	Declarations style.PropertyMap
}

// FromSelectorDeclarations creates a stylesheet with one rule set per entry.
func FromSelectorDeclarations(list []SelectorDeclarations, opts Options) (*Stylesheet, error) {
	s := New(opts)
	for _, sd := range list {
		chain := sd.Selector
		if len(chain) == 0 {
			chain = selector.Chain{"*"}
		}
		rs, err := NewRuleSet([]selector.Chain{chain}, sd.Declarations.Declarations(), opts.cache())
		if err != nil {
			return nil, err
		}
		s.rules = append(s.rules, rs)
	}
	return s, nil
}

// FromInline creates a stylesheet from inline declarations, e.g.
// "color: red; margin: 2", for an element type and an optional
// pseudo-class. An empty tag means "*".
func FromInline(decls string, tag, pseudoclass string, opts Options) (*Stylesheet, error) {
	if strings.TrimSpace(decls) == "" {
		return New(opts), nil
	}
	if tag == "" {
		tag = "*"
	}
	sel := tag
	if pseudoclass != "" {
		sel += ":" + pseudoclass
	}
	return FromText(sel+"{"+decls+";}", opts)
}

// LoadFromText replaces the rules of a stylesheet. If text cannot be
// parsed, the stylesheet remains unchanged.
func (s *Stylesheet) LoadFromText(text string) error {
	rules, err := parseRules(text, s.opts.cache())
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules = rules
	s.invalidate()
	tracer().Debugf("stylesheet #%d loaded %d rule sets", s.uid, len(rules))
	return nil
}

// LoadFromFile replaces the rules of a stylesheet with the contents of a
// file. On error the stylesheet remains unchanged.
func (s *Stylesheet) LoadFromFile(path string) error {
	text, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot load stylesheet: %w", err)
	}
	if err = s.LoadFromText(string(text)); err != nil {
		return fmt.Errorf("stylesheet %s: %w", path, err)
	}
	return nil
}

// Append adds the rules of another stylesheet to the end of s. The rule
// sets are shared. Returns s.
func (s *Stylesheet) Append(other *Stylesheet) *Stylesheet {
	if other == nil {
		return s
	}
	rules := other.Rules()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules = append(s.rules, rules...)
	s.invalidate()
	return s
}

// invalidate drops all memoized results. Callers hold the write lock or
// have exclusive access.
func (s *Stylesheet) invalidate() {
	s.generation++
	s.decls = make(map[string][]style.Declaration)
	s.matches = make(map[string]bool)
	s.index = nil
	s.trimMu.Lock()
	s.trims = make(map[string]*trimEntry)
	s.trimMu.Unlock()
}

// Options returns the options the stylesheet has been created with.
func (s *Stylesheet) Options() Options {
	return s.opts
}

// Rules returns a copy of the list of rule sets.
func (s *Stylesheet) Rules() []*RuleSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rules := make([]*RuleSet, len(s.rules))
	copy(rules, s.rules)
	return rules
}

// Empty is true for a stylesheet without rules.
func (s *Stylesheet) Empty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rules) == 0
}

// Optimize builds the selector index. Building is done once; further calls
// do nothing until the rules change.
func (s *Stylesheet) Optimize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.optimize()
}

func (s *Stylesheet) optimize() {
	if s.index == nil {
		s.index = buildTrie(s.rules, s.opts.Inline, s.opts.cache())
	}
}

// DumpIndex renders the selector index as a tree, building it if necessary.
func (s *Stylesheet) DumpIndex() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.optimize()
	return s.index.dump()
}

// MatchingRules returns the rule sets matching an element chain, in
// stylesheet order.
func (s *Stylesheet) MatchingRules(chain selector.Chain) []*RuleSet {
	matches := s.MatchingSelectors(chain)
	rules := make([]*RuleSet, len(matches))
	for i, m := range matches {
		rules[i] = m.Rule
	}
	return rules
}

// MatchingSelectors returns a match for every rule set matching an element
// chain, in stylesheet order, each with its most specific matching
// selector.
func (s *Stylesheet) MatchingSelectors(chain selector.Chain) []Match {
	if len(chain) == 0 {
		return nil
	}
	if s.opts.Indexed {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.indexedMatches(chain)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recursiveMatches(chain)
}

func (s *Stylesheet) indexedMatches(chain selector.Chain) []Match {
	s.optimize()
	terms := s.index.lookup(chain)
	matches := make([]Match, len(terms))
	for i, t := range terms {
		matches[i] = Match{Rule: s.rules[t.index], Selector: t.sel, Specificity: t.spec}
	}
	return matches
}

func (s *Stylesheet) recursiveMatches(chain selector.Chain) []Match {
	cache := s.opts.cache()
	var matches []Match
	for _, rs := range s.rules {
		var m *Match
		for _, sel := range rs.MatchingSelectors(chain, cache) {
			spec := cache.SpecificityOf(sel, rs.uid, s.opts.Inline)
			if m == nil || m.Specificity.Less(spec) {
				m = &Match{Rule: rs, Selector: sel, Specificity: spec}
			}
		}
		if m != nil {
			matches = append(matches, *m)
		}
	}
	return matches
}

// Declarations returns the declarations of all rule sets matching an
// element chain, concatenated in stylesheet order. The result is memoized
// and must not be modified.
func (s *Stylesheet) Declarations(chain selector.Chain) []style.Declaration {
	if len(chain) == 0 {
		return nil
	}
	key := chain.Key()
	s.mu.RLock()
	decls, ok := s.decls[key]
	s.mu.RUnlock()
	if ok {
		return decls
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if decls, ok = s.decls[key]; ok {
		return decls
	}
	var matches []Match
	if s.opts.Indexed {
		matches = s.indexedMatches(chain)
	} else {
		matches = s.recursiveMatches(chain)
	}
	for _, m := range matches {
		decls = append(decls, m.Rule.Declarations...)
	}
	s.decls[key] = decls
	return decls
}

// HasMatches checks if any rule set matches an element chain. The result
// is memoized.
func (s *Stylesheet) HasMatches(chain selector.Chain) bool {
	if len(chain) == 0 {
		return false
	}
	key := chain.Key()
	s.mu.RLock()
	m, ok := s.matches[key]
	s.mu.RUnlock()
	if ok {
		return m
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.opts.Indexed {
		s.optimize()
		m = len(s.index.lookup(chain)) > 0
	} else {
		cache := s.opts.cache()
		for _, rs := range s.rules {
			if rs.Matches(chain, 0, cache) {
				m = true
				break
			}
		}
	}
	s.matches[key] = m
	return m
}

// FilterStyling computes the style of an element chain and freezes it into
// a new stylesheet with a single rule set for the chain.
func (s *Stylesheet) FilterStyling(chain selector.Chain) (*Stylesheet, error) {
	pmap := ComputeStyle(chain, s)
	return FromDeclarationMap(pmap, chain, s.opts)
}

func (s *Stylesheet) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var b strings.Builder
	for _, rs := range s.rules {
		b.WriteString(rs.String())
		b.WriteString("\n")
	}
	return b.String()
}

// version identifies the current state of the rules.
func (s *Stylesheet) version() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fmt.Sprintf("%d.%d", s.uid, s.generation)
}
