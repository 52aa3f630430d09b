package handler

import (
	"net/http"
)

// MailStatus reports whether outbound email is configured.
type MailStatus interface {
	Configured() bool
}

type Handler struct {
	mail        MailStatus
	frontendURL string
}

func New(mail MailStatus, frontendURL string) *Handler {
	return &Handler{mail: mail, frontendURL: frontendURL}
}

func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.frontendURL)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
