package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
)

// ContentType rejects mutating requests that do not declare a JSON body
func ContentType() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch:
				if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusUnsupportedMediaType)
					json.NewEncoder(w).Encode(map[string]string{"error": "Content-Type must be application/json"})
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
