package markup

import "fmt"

// TokenKind distinguishes text runs from tags.
type TokenKind int

const (
	// TokenText is a run of literal text.
	TokenText TokenKind = iota
	// TokenTag is an opening or closing tag.
	TokenTag
)

// String returns a string representation of the token kind
func (k TokenKind) String() string {
	switch k {
	case TokenText:
		return "text"
	case TokenTag:
		return "tag"
	default:
		return "unknown"
	}
}

// Element is a child of a Scope: either a Token or a nested *Scope.
type Element interface {
	element()
}

// Token is a lexical unit of markup. For tags, Value is the tag name with
// the angle brackets and closing slash removed.
type Token struct {
	Kind    TokenKind
	Value   string
	Closing bool
}

func (Token) element() {}

// Text creates a text token.
func Text(value string) Token {
	return Token{Kind: TokenText, Value: value}
}

// Open creates an opening tag token.
func Open(name string) Token {
	return Token{Kind: TokenTag, Value: name}
}

// Close creates a closing tag token.
func Close(name string) Token {
	return Token{Kind: TokenTag, Value: name, Closing: true}
}

// IsText reports whether the token is a text run.
func (t Token) IsText() bool { return t.Kind == TokenText }

// IsOpen reports whether the token is an opening tag.
func (t Token) IsOpen() bool { return t.Kind == TokenTag && !t.Closing }

// IsClose reports whether the token is a closing tag.
func (t Token) IsClose() bool { return t.Kind == TokenTag && t.Closing }

// String returns a string representation of the token
func (t Token) String() string {
	switch {
	case t.IsText():
		return fmt.Sprintf("text(%q)", t.Value)
	case t.Closing:
		return fmt.Sprintf("tag(</%s>)", t.Value)
	default:
		return fmt.Sprintf("tag(<%s>)", t.Value)
	}
}
