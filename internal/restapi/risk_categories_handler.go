package restapi

import (
	"net/http"

	"fellowdash.org/internal/models"
	"fellowdash.org/internal/percentile"
)

// riskCategoriesHandler lists every category with its bands, colors and advisory
func (api *RestAPI) riskCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories := make([]models.RiskCategoryReference, 0, len(percentile.AllCategories()))
	for _, c := range percentile.AllCategories() {
		categories = append(categories, models.NewRiskCategoryReference(c))
	}

	api.sendResponse(w, r, models.NewListResponse(categories, models.NewEmptyReferences()))
}
