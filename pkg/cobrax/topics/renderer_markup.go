package topics

import (
	"github.com/arthur-debert/ansimarkup/pkg/markup"
)

// MarkupRenderer renders topics written in ansimarkup itself (".am").
type MarkupRenderer struct {
	Parser *markup.Parser
	// Plain strips the escape codes after rendering.
	Plain bool
}

// Render renders the markup, returning the content unchanged when it does
// not parse.
func (r *MarkupRenderer) Render(content string, format string) string {
	if format != ".am" {
		return content
	}
	p := r.Parser
	if p == nil {
		p = markup.New()
	}
	out, err := p.Parse(content)
	if err != nil {
		return content
	}
	if r.Plain {
		return p.Clear(out)
	}
	return out
}
