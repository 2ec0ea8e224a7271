package escape

import (
	"regexp"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of measurements a Measurer keeps.
const DefaultCacheSize = 1024

var sgrPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Strip removes every SGR sequence from text. Anything that does not form
// a complete sequence is kept verbatim.
func Strip(text string) string {
	if !containsStart(text) {
		return text
	}
	return sgrPattern.ReplaceAllString(text, "")
}

// Length returns the number of characters left after Strip.
func Length(text string) int {
	return utf8.RuneCountInString(Strip(text))
}

type measurement struct {
	length int
	clean  string
}

// Measurer memoizes visible-length computations. It is safe for
// concurrent use.
type Measurer struct {
	cache *lru.Cache[string, measurement]
}

// NewMeasurer creates a Measurer remembering up to size texts.
// A size <= 0 selects DefaultCacheSize.
func NewMeasurer(size int) *Measurer {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, _ := lru.New[string, measurement](size)
	return &Measurer{cache: cache}
}

// Measure returns the visible length and the stripped form of text.
// A nil Measurer computes without memoizing.
func (m *Measurer) Measure(text string) (int, string) {
	if m == nil {
		clean := Strip(text)
		return utf8.RuneCountInString(clean), clean
	}
	if v, ok := m.cache.Get(text); ok {
		return v.length, v.clean
	}
	clean := Strip(text)
	v := measurement{length: utf8.RuneCountInString(clean), clean: clean}
	m.cache.Add(text, v)
	return v.length, v.clean
}

// Clear returns text with every SGR sequence removed.
func (m *Measurer) Clear(text string) string {
	_, clean := m.Measure(text)
	return clean
}

// Length returns the visible character count of text.
func (m *Measurer) Length(text string) int {
	n, _ := m.Measure(text)
	return n
}

// Len returns the number of memoized texts.
func (m *Measurer) Len() int {
	if m == nil {
		return 0
	}
	return m.cache.Len()
}

func containsStart(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] == Start {
			return true
		}
	}
	return false
}
