package restapi

import (
	"errors"
	"net/http"

	"fellowdash.org/internal/models"
	"fellowdash.org/internal/percentile"
	"fellowdash.org/internal/utils"
)

func (api *RestAPI) classifyHandler(w http.ResponseWriter, r *http.Request) {
	queryParams := r.URL.Query()

	fieldErrors := utils.RequireParams(queryParams, nil, "month", "amount")
	month, fieldErrors := utils.ParseIntParam(queryParams, "month", fieldErrors)
	amount, fieldErrors := utils.ParseFloatParam(queryParams, "amount", fieldErrors)

	if _, bad := fieldErrors["amount"]; !bad {
		if err := utils.ValidateAmount(amount); err != nil {
			fieldErrors["amount"] = append(fieldErrors["amount"], err.Error())
		}
	}

	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	result, err := api.Classify(month, amount)
	if errors.Is(err, percentile.ErrMonthNotFound) {
		api.notFoundResponse(w, r, "month not found")
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	entry := models.NewClassificationModel(result)
	api.sendResponse(w, r, models.NewEntryResponse(entry, models.NewCategoryReferences(result.Category)))
}
