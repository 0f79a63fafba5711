package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (api *RestAPI) handle(router *httprouter.Router, path string, handler http.HandlerFunc) {
	router.Handler(http.MethodGet, path, api.Metrics.Instrument(path, handler))
}

// SetRoutes registers the JSON endpoints and the JSON not-found handler.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	api.handle(router, "/api/planets.json", api.planetsHandler)
	api.handle(router, "/api/bounds.json", api.boundsHandler)
	api.handle(router, "/api/summary.json", api.summaryHandler)
	api.handle(router, "/api/current-time.json", api.currentTimeHandler)
	api.handle(router, "/healthz", api.healthHandler)
	router.Handler(http.MethodGet, "/metrics", api.Metrics.Handler())

	router.NotFound = http.HandlerFunc(api.sendNotFound)
}
