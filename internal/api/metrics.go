package api

import (
	"encoding/json"
	"net/http"
)

// handleMetrics returns current store metrics as JSON.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	metrics := s.store.GetMetrics()

	response := map[string]interface{}{
		"operations": map[string]uint64{
			"get":    metrics.GetCount,
			"set":    metrics.SetCount,
			"delete": metrics.DeleteCount,
		},
		"avg_latency": map[string]string{
			"get":    metrics.GetAvgLatency.String(),
			"set":    metrics.SetAvgLatency.String(),
			"delete": metrics.DeleteAvgLatency.String(),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		s.logger.Error("failed to encode metrics response", "error", err)
	}
}
