package models

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResponse(t *testing.T) {
	testData := map[string]string{"key": "value"}

	before := time.Now().UnixNano() / int64(time.Millisecond)
	response := NewResponse(http.StatusCreated, testData, "Resource Created")
	after := time.Now().UnixNano() / int64(time.Millisecond)

	assert.Equal(t, http.StatusCreated, response.Code)
	assert.Equal(t, testData, response.Data)
	assert.Equal(t, "Resource Created", response.Text)
	assert.Equal(t, 2, response.Version)
	assert.GreaterOrEqual(t, response.CurrentTime, before)
	assert.LessOrEqual(t, response.CurrentTime, after)
}

func TestNewEntryResponse(t *testing.T) {
	entry := map[string]string{"status": "ok"}

	response := NewEntryResponse(entry)

	assert.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, "OK", response.Text)

	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok, "Response data should be a map")
	assert.Equal(t, entry, data["entry"])
}

func TestCurrentTimeModelEndToEnd(t *testing.T) {
	testTime := time.Date(2025, 5, 3, 12, 0, 0, 0, time.UTC)

	jsonData, err := json.Marshal(NewEntryResponse(NewCurrentTimeModel(testTime)))
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(jsonData, &result))

	assert.Equal(t, 200.0, result["code"])
	assert.Equal(t, "OK", result["text"])
	assert.Equal(t, 2.0, result["version"])

	entry := result["data"].(map[string]interface{})["entry"].(map[string]interface{})
	assert.Equal(t, float64(testTime.UnixMilli()), entry["time"])
	assert.Equal(t, "2025-05-03T12:00:00Z", entry["readableTime"])
}
