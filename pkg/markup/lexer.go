package markup

import (
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/ansimarkup/pkg/styles"
)

// Tokenize splits markup into tag and text tokens. The stream is always
// wrapped in the synthetic root tags <> and </>. Tokenize never fails;
// tag-shaped text becomes a tag token whatever its name.
func Tokenize(text string) []Token {
	l := lexer{input: text}
	l.tokens = append(l.tokens, Open(""))
	l.run()
	l.tokens = append(l.tokens, Close(""))
	return l.tokens
}

type lexer struct {
	input  string
	tokens []Token
	text   strings.Builder
}

func (l *lexer) run() {
	i := 0
	for i < len(l.input) {
		if l.input[i] != '<' {
			next := strings.IndexByte(l.input[i:], '<')
			if next == -1 {
				next = len(l.input) - i
			}
			l.text.WriteString(l.input[i : i+next])
			i += next
			continue
		}

		if i > 0 && l.input[i-1] == '\\' {
			l.text.WriteByte('<')
			i++
			continue
		}

		end, name, closing, ok := scanTag(l.input, i)
		if !ok {
			l.text.WriteByte('<')
			i++
			continue
		}

		l.flush()
		l.tokens = append(l.tokens, Token{Kind: TokenTag, Value: name, Closing: closing})
		i = end
	}
	l.flush()
}

// flush finalizes the pending text run.
func (l *lexer) flush() {
	if l.text.Len() == 0 {
		return
	}
	l.tokens = append(l.tokens, Text(unescape(l.text.String())))
	l.text.Reset()
}

// scanTag matches a tag shape </?#?name> starting at s[i] == '<'. It
// returns the offset after '>', the name including any '#', and whether
// the tag closes a scope.
func scanTag(s string, i int) (end int, name string, closing, ok bool) {
	j := i + 1
	if j < len(s) && s[j] == '/' {
		closing = true
		j++
	}
	nameStart := j
	if j < len(s) && s[j] == '#' {
		j++
	}
	runesStart := j
	for j < len(s) {
		r, size := utf8.DecodeRuneInString(s[j:])
		if !styles.IsNameRune(r) {
			break
		}
		j += size
	}
	if j == runesStart || j >= len(s) || s[j] != '>' {
		return 0, "", false, false
	}
	return j + 1, s[nameStart:j], closing, true
}

// unescape drops the backslash in front of every escaped tag shape.
func unescape(s string) string {
	idx := strings.Index(s, `\<`)
	if idx == -1 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for idx != -1 {
		at := last + idx
		if _, _, _, ok := scanTag(s, at+1); ok {
			b.WriteString(s[last:at])
		} else {
			b.WriteString(s[last : at+1])
		}
		last = at + 1
		idx = strings.Index(s[last:], `\<`)
	}
	b.WriteString(s[last:])
	return b.String()
}
