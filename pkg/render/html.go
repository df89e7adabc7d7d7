package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"slices"
	"strings"

	"venue-booking/pkg/utils"
)

//go:embed templates
var templateFiles embed.FS

// Form is the payload of every create/edit page.
type Form struct {
	Action  string            `json:"action"`
	ID      string            `json:"id,omitempty"`
	Values  any               `json:"values"`
	Errors  map[string]string `json:"errors,omitempty"`
	Options any               `json:"options,omitempty"`
}

// Search is the payload of the search result pages.
type Search struct {
	Term    string `json:"search_term"`
	Results any    `json:"results"`
}

// HTML renders views with the embedded template set. Each page is parsed
// together with the shared layouts and executed through "base".
type HTML struct {
	pages map[string]*template.Template
}

func NewHTML() (*HTML, error) {
	funcs := template.FuncMap{
		"datetime": func(value string, preset ...string) string {
			p := utils.DateFormatMedium
			if len(preset) > 0 {
				p = preset[0]
			}
			out, err := utils.FormatDateTime(value, p)
			if err != nil {
				return value
			}
			return out
		},
		"join":         strings.Join,
		"contains":     slices.Contains[[]string, string],
		"states":       func() []string { return utils.USStates },
		"genreChoices": func() []string { return utils.GenreChoices },
	}

	pages := make(map[string]*template.Template, len(Pages))
	for _, page := range Pages {
		tmpl, err := template.New(page).Funcs(funcs).ParseFS(templateFiles,
			"templates/layouts/*.html",
			"templates/"+page+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		pages[page] = tmpl
	}

	return &HTML{pages: pages}, nil
}

func (h *HTML) Render(w http.ResponseWriter, status int, view View) error {
	tmpl, ok := h.pages[view.Page]
	if !ok {
		return fmt.Errorf("unknown page %q", view.Page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", view); err != nil {
		return fmt.Errorf("execute template %s: %w", view.Page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
