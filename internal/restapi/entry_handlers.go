package restapi

import (
	"net/http"
	"time"

	"github.com/exodash/exodash/internal/models"
)

func (api *RestAPI) boundsHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewEntryResponse(models.NewBoundsModel(api.Catalog.Bounds())))
}

func (api *RestAPI) summaryHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewEntryResponse(api.Catalog.Summary()))
}

func (api *RestAPI) currentTimeHandler(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, models.NewEntryResponse(models.NewCurrentTimeModel(time.Now())))
}

func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	health := models.NewHealthModel(len(api.Catalog.Records()), api.Catalog.Source(), api.Catalog.LastUpdated())
	api.sendResponse(w, r, models.NewEntryResponse(health))
}
