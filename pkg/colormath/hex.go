package colormath

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// BackgroundSuffix marks a hex tag as targeting the background channel.
const BackgroundSuffix = ":bg"

// IsHex reports whether s is exactly #RRGGBB or #RRGGBB:bg.
func IsHex(s string) bool {
	switch len(s) {
	case 7:
	case 7 + len(BackgroundSuffix):
		if s[7:] != BackgroundSuffix {
			return false
		}
	default:
		return false
	}
	if s[0] != '#' {
		return false
	}
	for i := 1; i < 7; i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

// IsBackground reports whether a hex tag carries the :bg suffix.
func IsBackground(s string) bool {
	return IsHex(s) && strings.HasSuffix(s, BackgroundSuffix)
}

// ChannelFor picks the channel for a gradient between two hex tags.
// Background is used only when both ends carry the suffix; a mixed pair
// falls back to the foreground.
func ChannelFor(open, close string) Channel {
	if IsBackground(open) && IsBackground(close) {
		return Background
	}
	return Foreground
}

// ParseHex decodes a hex tag into its color. The :bg suffix is ignored.
func ParseHex(s string) (RGB, bool) {
	if !IsHex(s) {
		return RGB{}, false
	}
	c, err := colorful.Hex(s[:7])
	if err != nil {
		return RGB{}, false
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, true
}

func isHexDigit(b byte) bool {
	return ('0' <= b && b <= '9') || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}
