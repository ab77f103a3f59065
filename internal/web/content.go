package web

import (
	"embed"
	"html/template"

	"github.com/russross/blackfriday/v2"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed content/about.md
var aboutMarkdown []byte

// ParseTemplates loads every page template.
func ParseTemplates() (*template.Template, error) {
	return template.New("").ParseFS(templateFS, "templates/*.html")
}

// renderMarkdown converts trusted, embedded Markdown to HTML.
func renderMarkdown(src []byte) template.HTML {
	return template.HTML(blackfriday.Run(src))
}
