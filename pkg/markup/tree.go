package markup

import (
	"strings"

	"github.com/arthur-debert/ansimarkup/pkg/errors"
)

// DefaultMaxDepth bounds tag nesting, not counting the root scope.
const DefaultMaxDepth = 512

// Scope is one matched open/close tag pair. Its first child is the opening
// tag, its last the closing tag, and the children between are text tokens
// or nested scopes.
type Scope struct {
	Children []Element
}

func (*Scope) element() {}

// OpenTag returns the scope's opening tag.
func (s *Scope) OpenTag() Token {
	return s.Children[0].(Token)
}

// CloseTag returns the scope's closing tag.
func (s *Scope) CloseTag() Token {
	return s.Children[len(s.Children)-1].(Token)
}

// Inner returns the children between the tags.
func (s *Scope) Inner() []Element {
	return s.Children[1 : len(s.Children)-1]
}

// IsLeaf reports whether the scope holds no nested scopes and can be
// reduced right away.
func (s *Scope) IsLeaf() bool {
	for _, child := range s.Inner() {
		if _, ok := child.(*Scope); ok {
			return false
		}
	}
	return true
}

// Text concatenates the values of the scope's inner tokens. It is only
// meaningful for leaf scopes.
func (s *Scope) Text() string {
	var b strings.Builder
	for _, child := range s.Inner() {
		if tok, ok := child.(Token); ok {
			b.WriteString(tok.Value)
		}
	}
	return b.String()
}

// Count returns the number of scopes in the tree rooted at s.
func (s *Scope) Count() int {
	n := 0
	stack := []*Scope{s}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n++
		for _, child := range cur.Inner() {
			if sub, ok := child.(*Scope); ok {
				stack = append(stack, sub)
			}
		}
	}
	return n
}

// BuildTree nests a token stream produced by Tokenize into scopes. Only
// structure is checked; tag names are validated during evaluation.
// A maxDepth <= 0 disables the nesting bound.
func BuildTree(tokens []Token, maxDepth int) (*Scope, error) {
	var (
		root   *Scope
		stack  []*Scope
		closer Token
	)

	for i, tok := range tokens {
		if len(stack) == 0 && root != nil {
			// a user tag closed the synthetic root early
			return nil, unmatchedClose(closer, i-1)
		}

		switch {
		case tok.IsText():
			if len(stack) == 0 {
				return nil, errors.New(errors.ErrInvalidInput, "token stream must start with an opening tag").
					WithDetail("index", i)
			}
			top := stack[len(stack)-1]
			top.Children = append(top.Children, tok)

		case tok.IsOpen():
			scope := &Scope{Children: []Element{tok}}
			if len(stack) == 0 {
				root = scope
			} else {
				if depth := len(stack); maxDepth > 0 && depth > maxDepth {
					return nil, errors.Newf(errors.ErrNestingTooDeep,
						"tag <%s> nests %d levels deep, limit is %d", tok.Value, depth, maxDepth).
						WithDetails(map[string]interface{}{
							"tag":   tok.Value,
							"depth": depth,
							"index": i,
						})
				}
				top := stack[len(stack)-1]
				top.Children = append(top.Children, scope)
			}
			stack = append(stack, scope)

		default:
			if len(stack) == 0 {
				return nil, unmatchedClose(tok, i)
			}
			top := stack[len(stack)-1]
			top.Children = append(top.Children, tok)
			stack = stack[:len(stack)-1]
			closer = tok
		}
	}

	if root == nil {
		return nil, errors.New(errors.ErrInvalidInput, "empty token stream")
	}

	if len(stack) != 0 {
		depth := len(stack)
		err := errors.Newf(errors.ErrUnclosedTag, "input ends with %d unclosed tag(s)", depth).
			WithDetail("depth", depth)
		if open := stack[len(stack)-1].OpenTag(); open.Value != "" {
			err = err.WithDetail("tag", open.Value)
		}
		return nil, err
	}

	return root, nil
}

func unmatchedClose(tok Token, index int) error {
	return errors.Newf(errors.ErrUnmatchedClose, "closing tag </%s> has no open scope", tok.Value).
		WithDetail("tag", tok.Value).
		WithDetail("index", index)
}
