package chat

import (
	"strings"

	markdown "github.com/MichaelMure/go-term-markdown"
	gomarkdown "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"
)

// renderMarkdown renders assistant content for the terminal with
// go-term-markdown. The autolink extension is disabled so plain URLs stay
// as plain text and terminal emulators handle URL detection themselves.
func renderMarkdown(content string, width int) string {
	if width <= 0 {
		width = 100
	}

	defaultExt := markdown.Extensions()
	customExt := defaultExt &^ parser.Autolink
	p := parser.NewWithExtensions(customExt)
	r := markdown.NewRenderer(width, 0)
	doc := p.Parse([]byte(content))
	rendered := gomarkdown.Render(doc, r)

	return strings.TrimRight(string(rendered), "\n")
}
