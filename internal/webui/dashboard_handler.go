package webui

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/exodash/exodash/internal/exoplanet"
	"github.com/exodash/exodash/internal/logging"
	"github.com/exodash/exodash/internal/models"
	"github.com/exodash/exodash/internal/plot"
	"github.com/exodash/exodash/internal/utils"
)

const (
	tabGraphs = "graphs"
	tabAbout  = "about"
)

type categoryOption struct {
	Value    exoplanet.SizeCategory
	Label    string
	Selected bool
}

type plotLink struct {
	Name  string
	Title string
	URL   string
}

type dashboardData struct {
	Tab         string
	Selection   utils.Selection
	Bounds      models.BoundsModel
	Options     []categoryOption
	Plots       []plotLink
	Matches     int
	Total       int
	FieldErrors map[string][]string
	GraphsURL   string
	AboutURL    string
}

func (webUI *WebUI) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	bounds := webUI.Catalog.Bounds()
	// default to the slider's grid ends so an untouched slider resubmits
	// exactly the range it was rendered with
	slider := bounds.Align(models.SliderStep)
	status := http.StatusOK

	sel, fieldErrors := utils.ParseSelection(r.URL.Query(), slider)
	if len(fieldErrors) > 0 {
		status = http.StatusBadRequest
		sel = utils.Selection{Range: slider.Range(), Category: exoplanet.Big}
	}

	tab := r.URL.Query().Get("tab")
	if tab != tabAbout {
		tab = tabGraphs
	}

	query := sel.Query()
	data := dashboardData{
		Tab:         tab,
		Selection:   sel,
		Bounds:      models.NewBoundsModel(bounds),
		Total:       len(webUI.Catalog.Records()),
		FieldErrors: fieldErrors,
		GraphsURL:   "/?tab=" + tabGraphs + "&" + query.Encode(),
		AboutURL:    "/?tab=" + tabAbout + "&" + query.Encode(),
	}

	for _, c := range exoplanet.Categories {
		data.Options = append(data.Options, categoryOption{Value: c, Label: c.Label(), Selected: c == sel.Category})
	}

	if tab == tabGraphs {
		records := webUI.Catalog.Filter(sel.Range, sel.Category)
		webUI.Metrics.ObserveFilter(sel.Category, len(records))
		data.Matches = len(records)

		for _, spec := range plot.Specs {
			data.Plots = append(data.Plots, plotLink{
				Name:  spec.Name,
				Title: spec.Title(sel.Category),
				URL:   "/plots/" + spec.Name + ".svg?" + query.Encode(),
			})
		}
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "dashboard.html", data); err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to render dashboard", err,
			slog.String("component", "webui"))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
