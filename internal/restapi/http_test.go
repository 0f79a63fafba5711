package restapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"

	"github.com/exodash/exodash/internal/app"
	"github.com/exodash/exodash/internal/appconf"
	"github.com/exodash/exodash/internal/catalog"
	"github.com/exodash/exodash/internal/logging"
	"github.com/exodash/exodash/internal/metrics"
	"github.com/exodash/exodash/internal/models"
)

// createTestApi creates a new RestAPI backed by the Kepler fixture.
func createTestApi(t *testing.T) *RestAPI {
	catalogConfig := catalog.DefaultConfig()
	catalogConfig.DatasetURL = filepath.Join("../../testdata", "kepler.json")

	manager, err := catalog.InitManager(context.Background(), catalogConfig, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	application := &app.Application{
		Config:        appconf.Config{Env: appconf.EnvFlagToEnvironment("test")},
		CatalogConfig: catalogConfig,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		Catalog:       manager,
		Metrics:       metrics.New(),
	}

	return NewRestAPI(application)
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the specified endpoint, and returns the response
// and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	router := httprouter.New()
	api.SetRoutes(router)
	server := httptest.NewServer(router)
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

// serveAndDecodeRaw returns the raw JSON body as a generic map, for error payloads.
func serveAndDecodeRaw(t *testing.T, api *RestAPI, endpoint string) (*http.Response, map[string]interface{}) {
	router := httprouter.New()
	api.SetRoutes(router)

	req := httptest.NewRequest(http.MethodGet, endpoint, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Result(), body
}
