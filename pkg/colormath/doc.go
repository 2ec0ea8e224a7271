// Package colormath holds the color arithmetic used by gradient tags:
// hex literal parsing, linear RGB interpolation and the 24-bit SGR
// sequences that select a color on the foreground or background channel.
//
// All functions are pure. Cache memoizes the two hot paths (hex parsing and
// interpolation) in bounded LRU tables that are safe for concurrent use;
// a nil *Cache computes every value directly.
package colormath
