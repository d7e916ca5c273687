package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders screen markdown using glamour.
// The style follows the terminal background. Falls back to the raw markdown
// if the renderer cannot be built.
func NewRenderer(width int) func(string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
