package selector

import (
	"regexp"
	"sort"
	"strings"
)

// Child is the child combinator. It appears in style chains only.
const Child = ">"

// Part is a decomposed simple selector. Parts handed out by a Cache are
// shared and must not be modified.
type Part struct {
	Type           string // element type, "*" or "" (text content)
	ID             string
	Classes        []string // sorted sets
	PseudoClasses  []string
	PseudoElements []string
	Attribs        []string
	AttribVals     map[string]string
	names          []string
	canon          string // memoized Join, set for cached parts
}

// IsChild is true for the part of a child combinator.
func (p *Part) IsChild() bool {
	return p.Type == Child
}

// Names returns every identifying name of a part, sorted: type (unless
// "*"), id, classes, pseudo-classes, pseudo-elements and attribute keys.
// Names serve for a conservative pre-check when matching.
func (p *Part) Names() []string {
	return p.names
}

func (p *Part) collectNames() {
	var names []string
	if p.Type != "*" && p.Type != Child && p.Type != "" {
		names = append(names, p.Type)
	}
	if p.ID != "" {
		names = append(names, p.ID)
	}
	names = append(names, p.Classes...)
	names = append(names, p.PseudoClasses...)
	names = append(names, p.PseudoElements...)
	names = append(names, p.Attribs...)
	for k := range p.AttribVals {
		names = append(names, k)
	}
	p.names = uniq(names)
}

// (?:(?P<type>[.#:[]+)?(?P<name>[^\n .#:[=\]]+)(?:="(?P<val>[^"]*)")?]?)
var splitter = regexp.MustCompile(`(?:([.#:\[]+)?([^\n .#:\[=\]]+)(?:="([^"]*)")?\]?)`)

func split(raw string) *Part {
	p := &Part{}
	for _, m := range splitter.FindAllStringSubmatchIndex(raw, -1) {
		name := raw[m[4]:m[5]]
		t := ""
		if m[2] >= 0 {
			t = raw[m[2]:m[3]]
		}
		switch t {
		case "":
			p.Type = name
		case ".":
			p.Classes = append(p.Classes, name)
		case "#":
			p.ID = name
		case ":":
			p.PseudoClasses = append(p.PseudoClasses, name)
		case "::":
			p.PseudoElements = append(p.PseudoElements, name)
		case "[":
			if m[6] < 0 {
				p.Attribs = append(p.Attribs, name)
			} else {
				if p.AttribVals == nil {
					p.AttribVals = make(map[string]string)
				}
				p.AttribVals[name] = raw[m[6]:m[7]]
			}
		default:
			tracer().Errorf("unhandled selector prefix %q in %q", t, raw)
		}
	}
	p.Classes = uniq(p.Classes)
	p.PseudoClasses = uniq(p.PseudoClasses)
	p.PseudoElements = uniq(p.PseudoElements)
	p.Attribs = uniq(p.Attribs)
	p.collectNames()
	return p
}

func join(p *Part) string {
	var b strings.Builder
	if p.Type == "" {
		b.WriteString("*")
	} else {
		b.WriteString(p.Type)
	}
	for _, c := range p.Classes {
		b.WriteString("." + c)
	}
	if p.ID != "" {
		b.WriteString("#" + p.ID)
	}
	for _, pc := range p.PseudoClasses {
		b.WriteString(":" + pc)
	}
	for _, pe := range p.PseudoElements {
		b.WriteString("::" + pe)
	}
	for _, a := range p.Attribs {
		b.WriteString("[" + a + "]")
	}
	for _, k := range sortedKeys(p.AttribVals) {
		b.WriteString("[" + k + `="` + p.AttribVals[k] + `"]`)
	}
	return b.String()
}

// matchParts checks if element part e satisfies style part s.
func matchParts(e, s *Part) bool {
	if !((s.Type == "*" && e.Type != "") || e.Type == s.Type) {
		return false
	}
	if s.ID != "" && e.ID != s.ID {
		return false
	}
	if !subset(s.Classes, e.Classes) || !subset(s.PseudoElements, e.PseudoElements) {
		return false
	}
	if !subset(s.PseudoClasses, e.PseudoClasses) || !subset(s.Attribs, e.Attribs) {
		return false
	}
	for k, v := range s.AttribVals {
		if ev, ok := e.AttribVals[k]; !ok || ev != v {
			return false
		}
	}
	return true
}

// --- Sorted string sets ----------------------------------------------------

func uniq(s []string) []string {
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

func contains(set []string, x string) bool {
	i := sort.SearchStrings(set, x)
	return i < len(set) && set[i] == x
}

// subset is true if every element of a is contained in b.
func subset(a, b []string) bool {
	if len(a) > len(b) {
		return false
	}
	for _, x := range a {
		if !contains(b, x) {
			return false
		}
	}
	return true
}

func sortedKeys(m map[string]string) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
