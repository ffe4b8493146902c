package rest

import "net/http"

// NewRouter registers all REST routes on a fresh ServeMux.
func NewRouter(review *ReviewHandler, health *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /submissions/{id}/approve", review.Approve)
	mux.HandleFunc("POST /submissions/{id}/reject", review.Reject)
	mux.HandleFunc("GET /submissions/{id}/audit", review.AuditTrail)

	mux.HandleFunc("GET /health/live", health.Live)
	mux.HandleFunc("GET /health/ready", health.Ready)

	return mux
}
