package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeData(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	return envelope.Data
}

func TestLiveness(t *testing.T) {
	liveness, _ := NewHealthHandlers(HealthDependencies{}, testLogger())

	recorder := httptest.NewRecorder()
	liveness(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	data := decodeData(t, recorder.Body.Bytes())
	assert.Equal(t, "ok", data["status"])
}

func TestReadinessAllHealthy(t *testing.T) {
	_, readiness := NewHealthHandlers(HealthDependencies{
		CheckDatabase: func() error { return nil },
		CheckCache:    func() error { return nil },
	}, testLogger())

	recorder := httptest.NewRecorder()
	readiness(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	data := decodeData(t, recorder.Body.Bytes())
	assert.Equal(t, "ready", data["status"])
	assert.Len(t, data["checks"], 2)
}

func TestReadinessDegradedOnDatabaseFailure(t *testing.T) {
	_, readiness := NewHealthHandlers(HealthDependencies{
		CheckDatabase: func() error { return errors.New("connection refused") },
		CheckCache:    func() error { return nil },
	}, testLogger())

	recorder := httptest.NewRecorder()
	readiness(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	data := decodeData(t, recorder.Body.Bytes())
	assert.Equal(t, "degraded", data["status"])
}

func TestReadinessSkipsUnconfiguredChecks(t *testing.T) {
	_, readiness := NewHealthHandlers(HealthDependencies{
		CheckDatabase: func() error { return nil },
	}, testLogger())

	recorder := httptest.NewRecorder()
	readiness(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	data := decodeData(t, recorder.Body.Bytes())
	assert.Len(t, data["checks"], 1)
}
