package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name        string
		metrics     bool
		wantMetrics bool
	}{
		{name: "metrics enabled", metrics: true, wantMetrics: true},
		{name: "metrics disabled", metrics: false, wantMetrics: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.Features.MetricsEnabled = tt.metrics
			h := &DiscoveryHandler{Config: cfg}

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			h.Describe(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)

			var got DiscoveryResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, "Address Line Splitter API", got.Message)
			assert.Contains(t, got.Endpoints, "/split")
			assert.Contains(t, got.Endpoints, "/health")
			if tt.wantMetrics {
				assert.Contains(t, got.Endpoints, "/metrics")
			} else {
				assert.NotContains(t, got.Endpoints, "/metrics")
			}
		})
	}
}
