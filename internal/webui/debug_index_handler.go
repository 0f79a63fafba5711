package webui

import (
	"bytes"
	"net/http"

	"github.com/davecgh/go-spew/spew"
)

type debugData struct {
	Title string
	Pre   string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	var buf bytes.Buffer
	err := templates.ExecuteTemplate(&buf, "debug_index.html", debugData{
		Title: title,
		Pre:   spew.Sdump(data),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	var data interface{}
	var title string

	switch r.URL.Query().Get("dataType") {
	case "records":
		data = webUI.Catalog.Records()
		title = "Dataset - Records"
	case "bounds":
		data = webUI.Catalog.Bounds()
		title = "Dataset - Radius Bounds"
	case "summary":
		data = webUI.Catalog.Summary()
		title = "Dataset - Category Summary"
	case "config":
		data = struct {
			Source      string
			LocalFile   bool
			LastUpdated string
			Env         string
			Port        int
		}{
			Source:      webUI.Catalog.Source(),
			LocalFile:   webUI.Catalog.IsLocalFile(),
			LastUpdated: webUI.Catalog.LastUpdated().String(),
			Env:         webUI.Config.Env.String(),
			Port:        webUI.Config.Port,
		}
		title = "Server - Configuration"
	default:
		data = map[string]string{
			"error": "Please use one of the following: records, bounds, summary, config.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
