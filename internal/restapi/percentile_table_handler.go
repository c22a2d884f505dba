package restapi

import (
	"errors"
	"net/http"
	"strconv"

	"fellowdash.org/internal/models"
	"fellowdash.org/internal/percentile"
	"fellowdash.org/internal/utils"
)

func (api *RestAPI) percentileTableHandler(w http.ResponseWriter, r *http.Request) {
	rows := models.NewPercentileTableModel(api.PercentileTable())
	api.sendResponse(w, r, models.NewListResponse(rows, models.NewCategoryReferences(percentile.AllCategories()...)))
}

func (api *RestAPI) percentileRowHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromParams(r, "month")

	if err := utils.ValidateID(id); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"month": {err.Error()}})
		return
	}

	month, err := strconv.Atoi(id)
	if err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"month": {`Invalid field value for field "month".`}})
		return
	}

	row, err := api.PercentileTable().Row(month)
	if errors.Is(err, percentile.ErrMonthNotFound) {
		api.notFoundResponse(w, r, "month not found")
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(models.NewPercentileRowModel(row), models.NewEmptyReferences()))
}
