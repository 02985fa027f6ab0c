package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrianKYildirim/key-value-storage/internal/store"
)

func newTestAPI(t *testing.T) (*Server, *store.InstrumentedStore) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "store.txt")
	instrumented := store.NewInstrumentedStore(store.NewFileStore(path, hclog.NewNullLogger()))
	return NewServer(instrumented, path, hclog.NewNullLogger()), instrumented
}

func TestMetricsEndpoint(t *testing.T) {
	api, st := newTestAPI(t)
	require.NoError(t, st.Set("a", "1"))
	require.NoError(t, st.Set("b", "2"))
	st.Get("a")

	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Operations map[string]uint64 `json:"operations"`
		AvgLatency map[string]string `json:"avg_latency"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, uint64(2), body.Operations["set"])
	assert.Equal(t, uint64(1), body.Operations["get"])
	assert.Equal(t, uint64(0), body.Operations["delete"])
	assert.NotEmpty(t, body.AvgLatency["set"])
}

func TestStatsEndpoint(t *testing.T) {
	api, st := newTestAPI(t)
	require.NoError(t, st.Set("a", "1"))
	require.NoError(t, st.Set("b", "2"))

	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Entries   int    `json:"entries"`
		StorePath string `json:"store_path"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Entries)
	assert.NotEmpty(t, body.StorePath)
}

func TestMethodNotAllowed(t *testing.T) {
	api, _ := newTestAPI(t)

	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/metrics", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
