package webui

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/exodash/exodash/internal/logging"
	"github.com/exodash/exodash/internal/plot"
	"github.com/exodash/exodash/internal/utils"
)

type emptyPlotData struct {
	Title string
}

func (webUI *WebUI) plotHandler(w http.ResponseWriter, r *http.Request) {
	name := utils.ExtractParam(r, "name", ".svg")
	if err := utils.ValidateName(name); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	spec, ok := plot.Lookup(name)
	if !ok {
		http.NotFound(w, r)
		return
	}

	sel, fieldErrors := utils.ParseSelection(r.URL.Query(), webUI.Catalog.Bounds())
	if len(fieldErrors) > 0 {
		fields := make([]string, 0, len(fieldErrors))
		for field := range fieldErrors {
			fields = append(fields, field)
		}
		sort.Strings(fields)

		msgs := make([]string, 0, len(fields))
		for _, field := range fields {
			msgs = append(msgs, field+": "+strings.Join(fieldErrors[field], "; "))
		}
		http.Error(w, strings.Join(msgs, "\n"), http.StatusBadRequest)
		return
	}

	records := webUI.Catalog.Filter(sel.Range, sel.Category)

	var buf bytes.Buffer
	err := plot.RenderSVG(&buf, spec, records, sel.Category)
	switch {
	case errors.Is(err, plot.ErrNoData):
		webUI.Metrics.ObservePlot(spec.Name, "empty")
		buf.Reset()
		if err := templates.ExecuteTemplate(&buf, "empty_plot.svg", emptyPlotData{Title: spec.Title(sel.Category)}); err != nil {
			webUI.plotError(w, r, err)
			return
		}
	case err != nil:
		webUI.Metrics.ObservePlot(spec.Name, "error")
		webUI.plotError(w, r, err)
		return
	default:
		webUI.Metrics.ObservePlot(spec.Name, "ok")
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = buf.WriteTo(w)
}

func (webUI *WebUI) plotError(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(logging.FromContext(r.Context()), "failed to render plot", err,
		slog.String("path", r.URL.Path),
		slog.String("component", "webui"))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
