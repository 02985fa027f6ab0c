package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"

	"github.com/BrianKYildirim/key-value-storage/internal/store"
)

// Server exposes the admin HTTP surface: operation metrics and basic
// store statistics. Client data traffic never goes through here; that
// stays on the line protocol.
type Server struct {
	store     *store.InstrumentedStore
	storePath string
	logger    hclog.Logger
}

// NewServer creates the admin API over the given instrumented store.
func NewServer(st *store.InstrumentedStore, storePath string, logger hclog.Logger) *Server {
	return &Server{
		store:     st,
		storePath: storePath,
		logger:    logger,
	}
}

// Router builds the admin route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/metrics", s.handleMetrics).Methods(http.MethodGet)
	r.HandleFunc("/stats", s.handleStats).Methods(http.MethodGet)
	return r
}

// handleStats returns the entry count and the persistence file path.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"entries":    s.store.Len(),
		"store_path": s.storePath,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		s.logger.Error("failed to encode stats response", "error", err)
	}
}
