package webui

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/exodash/exodash/internal/app"
)

//go:embed templates/*
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html", "templates/*.svg"))

// WebUI serves the HTML dashboard and its plot images.
type WebUI struct {
	*app.Application
}

func NewWebUI(app *app.Application) *WebUI {
	return &WebUI{Application: app}
}

func (webUI *WebUI) handle(router *httprouter.Router, path string, handler http.HandlerFunc) {
	router.Handler(http.MethodGet, path, webUI.Metrics.Instrument(path, handler))
}

func (webUI *WebUI) SetWebUIRoutes(router *httprouter.Router) {
	webUI.handle(router, "/", webUI.dashboardHandler)
	webUI.handle(router, "/plots/:name", webUI.plotHandler)
	webUI.handle(router, "/debug/", webUI.debugIndexHandler)

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	router.ServeFiles("/static/*filepath", http.FS(static))
}
