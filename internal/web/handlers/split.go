package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/addrsplit/internal/split"
)

// SplitRequest is the body accepted by the split endpoint. Address is a
// pointer so a missing field and an empty address stay distinguishable
type SplitRequest struct {
	Address *string `json:"address" validate:"required"`
}

// SplitResponse carries the three distributed lines plus the input that
// produced them
type SplitResponse struct {
	AddressLine1    string `json:"address_line_1"`
	AddressLine2    string `json:"address_line_2"`
	AddressLine3    string `json:"address_line_3"`
	OriginalAddress string `json:"original_address"`
}

// SplitHandler handles address splitting requests
type SplitHandler struct {
	Validate *validator.Validate
	Logger   zerolog.Logger
}

// SplitAddress distributes the submitted address across three lines
func (h *SplitHandler) SplitAddress(w http.ResponseWriter, r *http.Request) {
	var req SplitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Validate.Struct(&req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "Validation failed",
			Details: validationDetails(err),
		})
		return
	}

	lines, err := h.distribute(*req.Address)
	if err != nil {
		h.Logger.Error().Err(err).Str("address", *req.Address).Msg("address distribution failed")
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, SplitResponse{
		AddressLine1:    lines.Line1,
		AddressLine2:    lines.Line2,
		AddressLine3:    lines.Line3,
		OriginalAddress: *req.Address,
	})
}

// distribute calls the splitter, converting a panic into an error
func (h *SplitHandler) distribute(address string) (lines split.Lines, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%v", rec)
		}
	}()
	return split.Distribute(address), nil
}

// validationDetails flattens validator errors into a field -> reason map
func validationDetails(err error) map[string]string {
	details := make(map[string]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			details[strings.ToLower(fe.Field())] = fmt.Sprintf("failed %s validation", fe.Tag())
		}
	}
	return details
}
