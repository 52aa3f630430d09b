package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/revvit/proposal/internal/service"
)

// Public messages of the acceptance endpoint.
const (
	msgValidation    = "Name, email, and agreement are required."
	msgNotConfigured = "RESEND_API_KEY is not set on the server."
	msgInternal      = "Failed to send acceptance email."
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// acceptanceFailure maps an AcceptanceService error to its status and public
// message. internal is true when the error details must stay server-side.
func acceptanceFailure(err error) (status int, msg string, internal bool) {
	var de *service.DeliveryError
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest, msgValidation, false
	case errors.Is(err, service.ErrNotConfigured):
		return http.StatusInternalServerError, msgNotConfigured, false
	case errors.As(err, &de):
		return http.StatusBadGateway, de.Message, false
	default:
		return http.StatusInternalServerError, msgInternal, true
	}
}
