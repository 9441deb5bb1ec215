package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var templateFS embed.FS

// Parse parses every embedded page template.
func Parse() (*template.Template, error) {
	return template.New("").ParseFS(templateFS, "*.html")
}

// MustParse is Parse for package initialisation; the templates are compiled
// into the binary so an error is a programming bug.
func MustParse() *template.Template {
	return template.Must(Parse())
}
