package app

import (
	"log/slog"

	"github.com/exodash/exodash/internal/appconf"
	"github.com/exodash/exodash/internal/catalog"
	"github.com/exodash/exodash/internal/metrics"
)

// Application holds the dependencies shared by the HTTP handlers, helpers,
// and middleware of both the REST API and the web UI.
type Application struct {
	Config        appconf.Config
	CatalogConfig catalog.Config
	Logger        *slog.Logger
	Catalog       *catalog.Manager
	Metrics       *metrics.Metrics
}
