package utils

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ExtractParam retrieves a route parameter from the request context and
// strips the given file extension, e.g. "scatter.svg" -> "scatter".
func ExtractParam(r *http.Request, paramName, ext string) string {
	params := httprouter.ParamsFromContext(r.Context())
	return strings.TrimSuffix(params.ByName(paramName), ext)
}
