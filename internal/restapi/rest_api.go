package restapi

import (
	"github.com/exodash/exodash/internal/app"
)

// RestAPI serves the JSON endpoints over the loaded planet table.
type RestAPI struct {
	*app.Application
}

func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{Application: app}
}
