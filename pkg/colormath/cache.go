package colormath

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of entries each memo table holds.
const DefaultCacheSize = 1024

type hexEntry struct {
	rgb RGB
	ok  bool
}

type lerpKey struct {
	start, end   RGB
	length, step int
}

// Cache memoizes ParseHex and Interpolate. The zero value is not usable;
// use NewCache. Methods on a nil *Cache compute without memoizing.
type Cache struct {
	hex  *lru.Cache[string, hexEntry]
	lerp *lru.Cache[lerpKey, RGB]
}

// NewCache creates a cache holding up to size entries per table.
// A size <= 0 selects DefaultCacheSize.
func NewCache(size int) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	// lru.New only fails for non-positive sizes
	hex, _ := lru.New[string, hexEntry](size)
	lerp, _ := lru.New[lerpKey, RGB](size)
	return &Cache{hex: hex, lerp: lerp}
}

// ParseHex is the memoized form of the package-level ParseHex.
func (c *Cache) ParseHex(s string) (RGB, bool) {
	if c == nil {
		return ParseHex(s)
	}
	if e, ok := c.hex.Get(s); ok {
		return e.rgb, e.ok
	}
	rgb, ok := ParseHex(s)
	c.hex.Add(s, hexEntry{rgb: rgb, ok: ok})
	return rgb, ok
}

// Interpolate is the memoized form of the package-level Interpolate.
func (c *Cache) Interpolate(start, end RGB, length, step int) RGB {
	if c == nil {
		return Interpolate(start, end, length, step)
	}
	key := lerpKey{start: start, end: end, length: length, step: step}
	if rgb, ok := c.lerp.Get(key); ok {
		return rgb
	}
	rgb := Interpolate(start, end, length, step)
	c.lerp.Add(key, rgb)
	return rgb
}

// Len returns the number of memoized hex and interpolation entries.
func (c *Cache) Len() (hex, lerp int) {
	if c == nil {
		return 0, 0
	}
	return c.hex.Len(), c.lerp.Len()
}

// Purge drops every memoized entry.
func (c *Cache) Purge() {
	if c == nil {
		return
	}
	c.hex.Purge()
	c.lerp.Purge()
}
