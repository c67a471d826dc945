package selector

import "sync"

// Cache memoizes the decomposition of simple selectors, stripping of facets
// and specificities. All entries are pure functions of their (string) keys,
// so a cache never has to be invalidated. A Cache is safe for concurrent use.
type Cache struct {
	mu       sync.RWMutex
	parts    map[string]*Part
	stripped map[stripKey]string
	specs    map[specKey]Specificity
}

type stripKey struct {
	raw string
	set StripSet
}

type specKey struct {
	chain  string
	inline bool
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		parts:    make(map[string]*Part),
		stripped: make(map[stripKey]string),
		specs:    make(map[specKey]Specificity),
	}
}

// Default is the process-wide cache used by the package level functions.
var Default = NewCache()

// Split decomposes a simple selector. The result is shared and must not be
// modified.
func (c *Cache) Split(raw string) *Part {
	c.mu.RLock()
	p, ok := c.parts[raw]
	c.mu.RUnlock()
	if ok {
		return p
	}
	p = split(raw)
	p.canon = join(p)
	c.mu.Lock()
	if q, ok := c.parts[raw]; ok { // lost a race, keep the first
		p = q
	} else {
		c.parts[raw] = p
	}
	c.mu.Unlock()
	return p
}

// Join renders a part as a simple selector in canonical form: type (or
// "*"), then sorted classes, id, pseudo-classes, pseudo-elements, attributes
// and attribute values.
func (c *Cache) Join(p *Part) string {
	if p == nil {
		return "*"
	}
	if p.IsChild() {
		return Child
	}
	if p.canon != "" {
		return p.canon
	}
	return join(p)
}

// Len returns the number of memoized entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.parts) + len(c.stripped) + len(c.specs)
}

// Reset drops all memoized entries.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.parts = make(map[string]*Part)
	c.stripped = make(map[stripKey]string)
	c.specs = make(map[specKey]Specificity)
}

// Split decomposes a simple selector using the default cache.
func Split(raw string) *Part {
	return Default.Split(raw)
}

// Join renders a part in canonical form.
func Join(p *Part) string {
	return Default.Join(p)
}
