package restapi

import (
	"net/http"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// rateLimitAndValidateAPIKey checks the key first so only valid keys get a limiter
func rateLimitAndValidateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	if api.rateLimiter == nil {
		return validateAPIKey(api, finalHandler)
	}

	limited := api.rateLimiter.Handler(http.HandlerFunc(finalHandler))
	return validateAPIKey(api, limited.ServeHTTP)
}

func (api *RestAPI) SetRoutes(mux *http.ServeMux) {
	mux.Handle("GET /api/classify.json", rateLimitAndValidateAPIKey(api, api.classifyHandler))
	mux.Handle("GET /api/percentile-table.json", rateLimitAndValidateAPIKey(api, api.percentileTableHandler))
	mux.Handle("GET /api/percentile-table/{month}", rateLimitAndValidateAPIKey(api, api.percentileRowHandler))
	mux.Handle("GET /api/risk-categories.json", rateLimitAndValidateAPIKey(api, api.riskCategoriesHandler))
	mux.Handle("GET /api/current-time.json", rateLimitAndValidateAPIKey(api, api.currentTimeHandler))
}
