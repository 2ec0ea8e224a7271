package markup

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/ansimarkup/pkg/colormath"
	"github.com/arthur-debert/ansimarkup/pkg/escape"
	"github.com/arthur-debert/ansimarkup/pkg/styles"
)

// Strategy selects how the evaluator walks the scope tree. Both produce
// identical output.
type Strategy int

const (
	// StrategyStack reduces every scope once during a single post-order
	// walk with an explicit stack.
	StrategyStack Strategy = iota
	// StrategyRescan repeatedly searches the tree for the deepest,
	// leftmost leaf scope and reduces it in place.
	StrategyRescan
)

// String returns the strategy name
func (s Strategy) String() string {
	switch s {
	case StrategyStack:
		return "stack"
	case StrategyRescan:
		return "rescan"
	default:
		return "unknown"
	}
}

// ParseStrategy parses a strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(s) {
	case "stack", "":
		return StrategyStack, nil
	case "rescan":
		return StrategyRescan, nil
	default:
		return StrategyStack, fmt.Errorf("unknown strategy: %s", s)
	}
}

type evaluator struct {
	styles  styles.Table
	colors  *colormath.Cache
	measure *escape.Measurer
	logger  zerolog.Logger
}

func (e *evaluator) evaluate(root *Scope, strategy Strategy) (string, error) {
	if strategy == StrategyRescan {
		return e.rescan(root)
	}
	return e.postOrder(root)
}

type frame struct {
	scope  *Scope
	next   int
	depth  int
	order  int
	failed bool
	inner  strings.Builder
}

// failure is a scope that could not be reduced although all its nested
// scopes were.
type failure struct {
	depth, order int
	err          error
}

// before reports whether f is reduced before other in rescan order:
// deeper first, then leftmost.
func (f failure) before(other *failure) bool {
	if other == nil {
		return true
	}
	if f.depth != other.depth {
		return f.depth > other.depth
	}
	return f.order < other.order
}

// postOrder reduces scopes as they are popped, children before parents and
// siblings left to right. A failed scope poisons its ancestors and the walk
// goes on, so the error returned is the one the rescan order meets first.
func (e *evaluator) postOrder(root *Scope) (string, error) {
	stack := []*frame{{scope: root, next: 1}}
	order := 0
	var (
		result string
		first  *failure
	)

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		children := f.scope.Children

		if f.next < len(children)-1 {
			child := children[f.next]
			f.next++
			switch c := child.(type) {
			case Token:
				f.inner.WriteString(c.Value)
			case *Scope:
				order++
				stack = append(stack, &frame{scope: c, next: 1, depth: f.depth + 1, order: order})
			}
			continue
		}

		stack = stack[:len(stack)-1]
		var parent *frame
		if len(stack) > 0 {
			parent = stack[len(stack)-1]
		}

		if f.failed {
			if parent != nil {
				parent.failed = true
			}
			continue
		}

		out, err := e.reduce(f.scope, f.inner.String(), f.depth)
		if err != nil {
			if fail := (failure{depth: f.depth, order: f.order, err: err}); fail.before(first) {
				first = &fail
			}
			if parent != nil {
				parent.failed = true
			}
			continue
		}

		if parent == nil {
			result = out
		} else {
			parent.inner.WriteString(out)
		}
	}

	if first != nil {
		return "", first.err
	}
	return result, nil
}

type leaf struct {
	scope  *Scope
	parent *Scope
	index  int
	depth  int
}

// rescan reduces the deepest leaf scope, preferring the leftmost at equal
// depth, until only the root is left, then reduces the root.
func (e *evaluator) rescan(root *Scope) (string, error) {
	for {
		target := deepestLeaf(root)
		if target.parent == nil {
			return e.reduce(root, root.Text(), 0)
		}
		out, err := e.reduce(target.scope, target.scope.Text(), target.depth)
		if err != nil {
			return "", err
		}
		target.parent.Children[target.index] = Text(out)
	}
}

// deepestLeaf walks the tree depth-first, in order. A candidate replaces
// the current best only when strictly deeper, so the leftmost wins ties.
func deepestLeaf(root *Scope) leaf {
	best := leaf{scope: root, index: -1}
	stack := []leaf{best}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.depth > best.depth {
			best = cur
		}

		children := cur.scope.Children
		for i := len(children) - 2; i >= 1; i-- {
			if sub, ok := children[i].(*Scope); ok {
				stack = append(stack, leaf{scope: sub, parent: cur.scope, index: i, depth: cur.depth + 1})
			}
		}
	}

	return best
}

func (e *evaluator) reduce(scope *Scope, inner string, depth int) (string, error) {
	open, close := scope.OpenTag(), scope.CloseTag()
	out, err := e.resolve(open, close, inner)
	if err != nil {
		e.logger.Debug().
			Err(err).
			Str("open", open.Value).
			Str("close", close.Value).
			Int("depth", depth).
			Msg("Scope resolution failed")
		return "", err
	}
	e.logger.Trace().
		Str("open", open.Value).
		Str("close", close.Value).
		Int("depth", depth).
		Int("inner_bytes", len(inner)).
		Int("out_bytes", len(out)).
		Msg("Reduced scope")
	return out, nil
}
