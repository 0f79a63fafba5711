package restapi

import (
	"net/http"

	"github.com/exodash/exodash/internal/models"
	"github.com/exodash/exodash/internal/utils"
)

func (api *RestAPI) planetsHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	sel, fieldErrors := utils.ParseSelection(r.URL.Query(), api.Catalog.Bounds())
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	records := api.Catalog.Filter(sel.Range, sel.Category)
	api.Metrics.ObserveFilter(sel.Category, len(records))

	api.sendResponse(w, r, models.NewOKResponse(models.NewPlanetsData(sel.Range, sel.Category, records)))
}
