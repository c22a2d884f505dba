package webui

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Router returns the dashboard's routes.
func (webUI *WebUI) Router() *httprouter.Router {
	router := httprouter.New()
	router.HandlerFunc(http.MethodGet, "/", webUI.dashboardHandler)
	router.HandlerFunc(http.MethodPost, "/calculate", webUI.calculateHandler)
	router.HandlerFunc(http.MethodGet, "/reference/:month", webUI.referenceRowHandler)
	router.HandlerFunc(http.MethodGet, "/debug/", webUI.debugIndexHandler)
	return router
}

// SetWebUIRoutes mounts the dashboard under "/". More specific patterns
// registered on mux, such as the JSON API, take precedence.
func (webUI *WebUI) SetWebUIRoutes(mux *http.ServeMux) {
	mux.Handle("/", webUI.Router())
}
