package webui

import (
	"net/http"

	"github.com/davecgh/go-spew/spew"

	"fellowdash.org/internal/appconf"
	"fellowdash.org/internal/models"
	"fellowdash.org/internal/percentile"
)

type debugData struct {
	Title string
	Pre   string
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	if webUI.Config.Env == appconf.Production {
		http.NotFound(w, r)
		return
	}

	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	switch dataType {
	case "table":
		data = webUI.PercentileTable().Rows()
		title = "Percentile Reference Table"
	case "categories":
		categories := make([]models.RiskCategoryReference, 0, 4)
		for _, c := range percentile.AllCategories() {
			categories = append(categories, models.NewRiskCategoryReference(c))
		}
		data = categories
		title = "Risk Categories"
	case "config":
		cfg := webUI.Config
		cfg.ApiKeys = redactKeys(cfg.ApiKeys)
		cfg.ExemptApiKeys = redactKeys(cfg.ExemptApiKeys)
		data = cfg
		title = "Server Configuration"
	default:
		data = map[string]string{
			"error": "Please use one of the following: table, categories, config.",
		}
		title = "Choose a data type"
	}

	webUI.render(w, r, http.StatusOK, "debug_index", debugData{
		Title: title,
		Pre:   spew.Sdump(data),
	})
}

func redactKeys(keys []string) []string {
	redacted := make([]string, len(keys))
	for i := range keys {
		redacted[i] = "[redacted]"
	}
	return redacted
}
