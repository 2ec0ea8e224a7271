// Package styles defines the table that maps static style tag names to the
// SGR "on" code they emit.
//
// Every style shares a single reset code. The empty name maps to the empty
// code and backs the synthetic root scope that wraps each document:
//
//	<bold>Operation completed</bold>
//	<underline>docs</underline>
//
// Tables are plain maps so callers can extend them; Default returns a
// fresh copy each time.
package styles

import (
	"sort"
	"strconv"
	"strings"

	"github.com/arthur-debert/ansimarkup/pkg/errors"
)

// Reset turns every attribute off.
const Reset = "\x1b[0m"

// Table maps tag names to escape "on" codes.
type Table map[string]string

var builtin = map[string]int{
	"bold":          1,
	"dim":           2,
	"italic":        3,
	"underline":     4,
	"blink":         5,
	"reverse":       7,
	"hide":          8,
	"strikethrough": 9,
}

// Default returns the builtin table.
func Default() Table {
	t := Table{"": ""}
	for name, code := range builtin {
		t[name] = Code(code)
	}
	return t
}

// Code builds an SGR sequence from its numeric parameters.
func Code(params ...int) string {
	if len(params) == 0 {
		return ""
	}
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = strconv.Itoa(p)
	}
	return "\x1b[" + strings.Join(parts, ";") + "m"
}

// ParseSGR turns a parameter list such as "1;4" or "38;5;208" into its
// escape sequence.
func ParseSGR(list string) (string, error) {
	list = strings.TrimSpace(list)
	if list == "" {
		return "", errors.New(errors.ErrStyleInvalid, "empty SGR parameter list")
	}
	fields := strings.Split(list, ";")
	params := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || n < 0 || n > 255 {
			return "", errors.Newf(errors.ErrStyleInvalid, "invalid SGR parameter %q", f).
				WithDetail("sgr", list)
		}
		params = append(params, n)
	}
	return Code(params...), nil
}

// Lookup returns the on code for name.
func (t Table) Lookup(name string) (string, bool) {
	code, ok := t[name]
	return code, ok
}

// Merge returns a new table holding t overlaid with other.
func (t Table) Merge(other Table) Table {
	out := make(Table, len(t)+len(other))
	for k, v := range t {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Names returns the table's tag names in sorted order, without the
// root entry.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidName reports whether name can be written as a style tag.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !IsNameRune(r) {
			return false
		}
	}
	return true
}
