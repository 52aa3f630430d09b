package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/revvit/proposal/internal/model"
	"github.com/revvit/proposal/internal/service"
)

const maxSignBodyBytes = 64 << 10

// SignHandler handles proposal acceptance submissions.
type SignHandler struct {
	acceptanceService service.AcceptanceService
}

// NewSignHandler creates a SignHandler with the given service.
func NewSignHandler(acceptanceService service.AcceptanceService) *SignHandler {
	return &SignHandler{acceptanceService: acceptanceService}
}

// Sign handles POST /api/sign.
// name, email and agreed are required; title, organization and message are optional.
// Every failure is answered with {"error": "..."}; unexpected ones are logged
// and answered with a generic message.
func (h *SignHandler) Sign(w http.ResponseWriter, r *http.Request) {
	var req model.AcceptanceSubmission
	if err := decodeStrict(http.MaxBytesReader(w, r.Body, maxSignBodyBytes), &req); err != nil {
		slog.ErrorContext(r.Context(), "sign api error", "error", err, "stage", "decode")
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	if err := h.acceptanceService.Accept(r.Context(), req); err != nil {
		status, msg, internal := acceptanceFailure(err)
		if internal {
			slog.ErrorContext(r.Context(), "sign api error", "error", err)
		}
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// decodeStrict decodes exactly one JSON value; anything after it is an error.
func decodeStrict(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}
