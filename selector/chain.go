package selector

import (
	"fmt"
	"strings"
)

// Chain is a root-first sequence of simple selectors, possibly interspersed
// with the child combinator. The last entry is the subject.
type Chain []string

// Key returns a string usable as a map key for the chain.
func (c Chain) Key() string {
	return strings.Join(c, "\x1f")
}

func (c Chain) String() string {
	return strings.Join(c, " ")
}

// Subject returns the rightmost simple selector, or "" for empty chains.
func (c Chain) Subject() string {
	if len(c) == 0 {
		return ""
	}
	return c[len(c)-1]
}

// Validate checks that a style chain is well formed: non-empty, not
// starting or ending with a combinator and without adjacent combinators.
func (c Chain) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("empty selector chain")
	}
	if c[0] == Child || c[len(c)-1] == Child {
		return fmt.Errorf("selector chain %q starts or ends with a combinator", c.String())
	}
	for i := 1; i < len(c); i++ {
		if c[i] == Child && c[i-1] == Child {
			return fmt.Errorf("selector chain %q has adjacent combinators", c.String())
		}
	}
	return nil
}

// Parts decomposes every entry of the chain.
func (c *Cache) Parts(chain Chain) []*Part {
	parts := make([]*Part, len(chain))
	for i, raw := range chain {
		parts[i] = c.Split(raw)
	}
	return parts
}

// Canonical rewrites every simple selector of a chain into canonical form,
// see Join.
func (c *Cache) Canonical(chain Chain) Chain {
	canon := make(Chain, len(chain))
	for i, raw := range chain {
		canon[i] = c.Join(c.Split(raw))
	}
	return canon
}
