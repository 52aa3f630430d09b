package handler

import (
	"encoding/json"
	"net/http"
)

type healthResponse struct {
	Status         string `json:"status"`
	Message        string `json:"message"`
	MailConfigured bool   `json:"mail_configured"`
}

// Health always answers 200 while the process is up. A missing mail credential
// is reported but does not make the service unhealthy; /api/sign surfaces it.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(healthResponse{
		Status:         "ok",
		Message:        "Proposal API",
		MailConfigured: h.mail != nil && h.mail.Configured(),
	})
}
