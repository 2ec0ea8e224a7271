package markup

import (
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/ansimarkup/pkg/colormath"
	"github.com/arthur-debert/ansimarkup/pkg/errors"
	"github.com/arthur-debert/ansimarkup/pkg/escape"
	"github.com/arthur-debert/ansimarkup/pkg/styles"
)

// resolve reduces a leaf scope, given its tags and inner text, to
// escape-coded text.
func (e *evaluator) resolve(open, close Token, inner string) (string, error) {
	a, b := open.Value, close.Value
	hexA, hexB := colormath.IsHex(a), colormath.IsHex(b)

	switch {
	case !hexA && !hexB:
		return e.resolveStyle(a, b, inner)
	case hexA != hexB:
		return "", errors.Newf(errors.ErrInvalidColorPairing,
			"cannot pair <%s> with </%s>: both tags must be hex colors", a, b).
			WithDetail("open", a).
			WithDetail("close", b)
	default:
		return e.resolveColor(a, b, inner)
	}
}

func (e *evaluator) resolveStyle(a, b, inner string) (string, error) {
	if a != b {
		return "", errors.Newf(errors.ErrTagMismatch, "tag <%s> is closed by </%s>", a, b).
			WithDetail("open", a).
			WithDetail("close", b)
	}
	code, ok := e.styles.Lookup(a)
	if !ok {
		return "", errors.Newf(errors.ErrUnknownTag, "unknown tag <%s>", a).
			WithDetail("tag", a)
	}
	if a == "" {
		return inner, nil
	}
	return code + inner + styles.Reset, nil
}

func (e *evaluator) resolveColor(a, b, inner string) (string, error) {
	start, _ := e.colors.ParseHex(a)
	end, _ := e.colors.ParseHex(b)
	channel := colormath.ChannelFor(a, b)
	solid := a == b
	length := e.measure.Length(inner)

	var out strings.Builder
	out.Grow(len(inner) + length*20 + len(styles.Reset))

	step := 0
	for i := 0; i < len(inner); {
		if escape.IsStart(inner, i) {
			seq, next, err := escape.Skip(inner, i)
			if err != nil {
				return "", err
			}
			out.WriteString(seq)
			i = next
			continue
		}

		color := start
		if !solid {
			color = e.colors.Interpolate(start, end, length, step)
		}
		_, size := utf8.DecodeRuneInString(inner[i:])
		out.WriteString(color.SGR(channel))
		out.WriteString(inner[i : i+size])
		i += size
		step++
	}

	out.WriteString(styles.Reset)
	return out.String(), nil
}
