// Package escape recognizes terminal escape sequences embedded in text.
//
// Two views are offered. The scanner (Skip) is strict: it is used while
// recoloring text that earlier reductions have already escape-coded, and a
// sequence without a terminator is an error. The strippers (Strip, Measure)
// are permissive display helpers that only remove well-formed SGR
// sequences and never fail.
package escape

import (
	"strings"

	"github.com/arthur-debert/ansimarkup/pkg/errors"
)

const (
	// Start is the byte that opens an escape sequence.
	Start = '\x1b'
	// Terminator is the byte that ends an SGR sequence.
	Terminator = 'm'
)

// IsStart reports whether text[i] opens an escape sequence.
func IsStart(text string, i int) bool {
	return i >= 0 && i < len(text) && text[i] == Start
}

// Skip returns the escape sequence beginning at byte offset i, up to and
// including the first terminator, and the offset just past it.
func Skip(text string, i int) (string, int, error) {
	end := strings.IndexByte(text[i:], Terminator)
	if end == -1 {
		return "", i, errors.New(errors.ErrUnterminatedEscape, "escape sequence has no terminator").
			WithDetail("offset", i)
	}
	next := i + end + 1
	return text[i:next], next, nil
}
