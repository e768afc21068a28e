package handlers

import "net/http"

// HealthHandler reports service liveness
type HealthHandler struct{}

// HealthResponse is the health check reply
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Check confirms the service is up
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Service: "addrsplit"})
}
