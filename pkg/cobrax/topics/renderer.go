package topics

// Renderer defines the interface for rendering topic content
type Renderer interface {
	// Render takes raw content and returns formatted content for terminal display
	Render(content string, format string) string
}

// PlainRenderer is the default renderer that returns content as-is
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}

// ByExtension dispatches to a renderer per file extension. Formats
// without an entry are returned unchanged.
type ByExtension map[string]Renderer

// Render uses the renderer registered for format
func (b ByExtension) Render(content string, format string) string {
	if r, ok := b[format]; ok && r != nil {
		return r.Render(content, format)
	}
	return content
}
