package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/kurup-associates/legal-office-api/api"
	"github.com/kurup-associates/legal-office-api/config"
)

// Metrics exported for testing purposes
type Metrics struct{}

// metricsResponse is the admin console view of the request metrics
type metricsResponse struct {
	TotalRequests int64               `json:"totalRequests"`
	TotalErrors   int64               `json:"totalErrors"`
	UptimeSeconds float64             `json:"uptimeSeconds"`
	Routes        []*api.RouteMetrics `json:"routes"`
}

// MetricsHandler returns the in-memory request metrics for the admin console
func (m Metrics) MetricsHandler(w http.ResponseWriter, r *http.Request) {
	total, errors, startedAt, routes := api.GetMetrics().Summary()

	b, err := json.Marshal(metricsResponse{
		TotalRequests: total,
		TotalErrors:   errors,
		UptimeSeconds: time.Since(startedAt).Seconds(),
		Routes:        routes,
	})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
