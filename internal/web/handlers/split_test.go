package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSplitHandler() *SplitHandler {
	return &SplitHandler{Validate: validator.New(), Logger: zerolog.Nop()}
}

func postSplit(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/split", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newSplitHandler().SplitAddress(rec, req)
	return rec
}

func TestSplitAddress(t *testing.T) {
	tests := []struct {
		name string
		body string
		want SplitResponse
	}{
		{
			name: "five segment address",
			body: `{"address": "123 Main Street, Apartment 4B, Springfield, IL 62701, United States"}`,
			want: SplitResponse{
				AddressLine1:    "123 Main Street, Apartment 4B",
				AddressLine2:    "Springfield, IL 62701",
				AddressLine3:    "United States",
				OriginalAddress: "123 Main Street, Apartment 4B, Springfield, IL 62701, United States",
			},
		},
		{
			name: "three words get one line each",
			body: `{"address": "123 Short St"}`,
			want: SplitResponse{
				AddressLine1:    "123",
				AddressLine2:    "Short",
				AddressLine3:    "St",
				OriginalAddress: "123 Short St",
			},
		},
		{
			name: "empty address is accepted",
			body: `{"address": ""}`,
			want: SplitResponse{},
		},
		{
			name: "unknown fields are ignored",
			body: `{"address": "Hello", "extra": true}`,
			want: SplitResponse{AddressLine1: "Hello", OriginalAddress: "Hello"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postSplit(t, tt.body)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var got SplitResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitAddressRejectsBadRequests(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "malformed JSON", body: `{"address": `, wantStatus: http.StatusBadRequest},
		{name: "empty body", body: ``, wantStatus: http.StatusBadRequest},
		{name: "address is not a string", body: `{"address": 42}`, wantStatus: http.StatusBadRequest},
		{name: "missing address field", body: `{}`, wantStatus: http.StatusUnprocessableEntity},
		{name: "null address", body: `{"address": null}`, wantStatus: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postSplit(t, tt.body)

			require.Equal(t, tt.wantStatus, rec.Code)

			var got ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.NotEmpty(t, got.Error)
		})
	}
}

func TestSplitAddressValidationDetails(t *testing.T) {
	rec := postSplit(t, `{}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var got ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Validation failed", got.Error)
	assert.Contains(t, got.Details, "address")
}
