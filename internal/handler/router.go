package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Routes groups the handlers mounted by NewRouter.
type Routes struct {
	Base     *Handler
	Sign     *SignHandler
	Page     *PageHandler
	Proposal *ProposalHandler
}

// NewRouter builds the HTTP surface of the service.
func NewRouter(rt Routes) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeaders)
	r.Use(rt.Base.CORS)

	r.Get("/api/health", rt.Base.Health)
	r.Get("/api/proposal", rt.Proposal.Get)
	r.Post("/api/sign", rt.Sign.Sign)

	r.Get("/", rt.Page.Show)
	r.Post("/", rt.Page.Submit)
	r.Handle("/static/*", http.StripPrefix("/static/", StaticFiles()))

	return r
}
