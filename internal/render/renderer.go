// Package render provides the echo renderer for the storefront pages.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"log"
	"path/filepath"

	"github.com/labstack/echo/v4"
)

// StorefrontTemplate is the page rendered for / and /design.
const StorefrontTemplate = "design.html"

//go:embed templates/*.html
var defaultTemplates embed.FS

// TemplateRenderer renders html/template pages. Built-in templates are
// always available; files in the template directory replace them by name.
type TemplateRenderer struct {
	templates *template.Template
}

func NewTemplateRenderer(dir string) (*TemplateRenderer, error) {
	tmpl, err := template.ParseFS(defaultTemplates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse built-in templates: %w", err)
	}

	if dir != "" {
		matches, err := filepath.Glob(filepath.Join(dir, "*.html"))
		if err != nil {
			return nil, fmt.Errorf("list templates in %s: %w", dir, err)
		}
		if len(matches) > 0 {
			if tmpl, err = tmpl.ParseFiles(matches...); err != nil {
				return nil, fmt.Errorf("parse templates in %s: %w", dir, err)
			}
			log.Printf("Loaded %d template(s) from %s", len(matches), dir)
		}
	}

	return &TemplateRenderer{templates: tmpl}, nil
}

func (t *TemplateRenderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	return t.templates.ExecuteTemplate(w, name, data)
}
