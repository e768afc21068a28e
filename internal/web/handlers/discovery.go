package handlers

import "net/http"

// Config represents the web server configuration (simplified)
type Config struct {
	Features struct {
		MetricsEnabled bool
	}
}

// DiscoveryHandler describes the API surface at the root path
type DiscoveryHandler struct {
	Config *Config
}

// DiscoveryResponse is the service banner with its endpoint map
type DiscoveryResponse struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

// Describe lists the routes the service exposes
func (h *DiscoveryHandler) Describe(w http.ResponseWriter, r *http.Request) {
	endpoints := map[string]string{
		"/split":  "POST - Split an address into 3 lines",
		"/health": "GET - Service health",
	}
	if h.Config.Features.MetricsEnabled {
		endpoints["/metrics"] = "GET - Prometheus metrics"
	}

	writeJSON(w, http.StatusOK, DiscoveryResponse{
		Message:   "Address Line Splitter API",
		Endpoints: endpoints,
	})
}
