package utils

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ExtractIDFromParams retrieves a path parameter and removes file extensions like ".json".
// It reads net/http path values first and falls back to httprouter params.
func ExtractIDFromParams(r *http.Request, paramName string) string {
	rawID := r.PathValue(paramName)
	if rawID == "" {
		params := httprouter.ParamsFromContext(r.Context())
		rawID = params.ByName(paramName)
	}
	return strings.Split(rawID, ".json")[0]
}
