package webui

import (
	"embed"
	"fmt"
	"html/template"
	"strconv"

	"fellowdash.org/internal/app"
	"fellowdash.org/internal/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

// WebUI serves the dashboard pages.
type WebUI struct {
	*app.Application
	templates *template.Template
}

var templateFuncs = template.FuncMap{
	// threshold prints reference values exactly as recorded
	"threshold": func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	},
	"money": utils.FormatAmount,
}

// NewWebUI parses the embedded templates.
func NewWebUI(application *app.Application) (*WebUI, error) {
	tmpl, err := template.New("webui").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing dashboard templates: %w", err)
	}

	return &WebUI{
		Application: application,
		templates:   tmpl,
	}, nil
}
