package main

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/exodash/exodash/internal/app"
	"github.com/exodash/exodash/internal/restapi"
	"github.com/exodash/exodash/internal/webui"
)

// routes registers the JSON API and the dashboard on one router and wraps it
// in the middleware chain. The returned limiter must be stopped on shutdown.
func routes(application *app.Application) (http.Handler, *restapi.RateLimitMiddleware) {
	router := httprouter.New()

	restapi.NewRestAPI(application).SetRoutes(router)
	webui.NewWebUI(application).SetWebUIRoutes(router)

	limit := application.Config.RateLimit
	if limit <= 0 {
		limit = -1
	}
	rateLimiter := restapi.NewRateLimitMiddleware(limit, time.Second)

	var handler http.Handler = router
	handler = rateLimiter.Handler(handler)
	handler = restapi.CompressionMiddleware(handler)
	handler = restapi.SecurityHeaders(handler)
	handler = restapi.NewRequestLoggingMiddleware(application.Logger)(handler)
	handler = restapi.RequestIDMiddleware(handler)

	return handler, rateLimiter
}
