package handler

import (
	"context"
	"embed"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/revvit/proposal/internal/intake"
	"github.com/revvit/proposal/internal/model"
	"github.com/revvit/proposal/internal/proposal"
	"github.com/revvit/proposal/internal/service"
)

//go:embed templates/page.html static/*
var webFS embed.FS

var pageTmpl = template.Must(template.New("page.html").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).ParseFS(webFS, "templates/page.html"))

// StaticFiles returns the embedded stylesheet and script, rooted at static/.
func StaticFiles() http.Handler {
	sub, err := fs.Sub(webFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}

type pageData struct {
	Proposal *proposal.Proposal
	Form     model.AcceptanceSubmission
	State    intake.State
	Notice   string
}

// PageHandler serves the proposal page and its no-JavaScript form fallback.
type PageHandler struct {
	acceptanceService service.AcceptanceService
	proposal          *proposal.Proposal
}

// NewPageHandler creates a PageHandler.
func NewPageHandler(acceptanceService service.AcceptanceService, p *proposal.Proposal) *PageHandler {
	return &PageHandler{acceptanceService: acceptanceService, proposal: p}
}

// Show handles GET /.
func (h *PageHandler) Show(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, pageData{Proposal: h.proposal, State: intake.StateIdle})
}

// Submit handles POST / with a urlencoded form. It drives the intake machine
// on the server and re-renders the page in the resulting state.
func (h *PageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxSignBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	m := intake.NewMachine(serviceSubmitter{svc: h.acceptanceService})
	for _, field := range []string{
		intake.FieldName, intake.FieldTitle, intake.FieldEmail,
		intake.FieldOrganization, intake.FieldMessage, intake.FieldAgreed,
	} {
		_ = m.Edit(field, r.PostFormValue(field))
	}
	m.Submit(r.Context())

	h.render(w, r, pageData{
		Proposal: h.proposal,
		Form:     m.Form(),
		State:    m.State(),
		Notice:   m.Notice(),
	})
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		slog.ErrorContext(r.Context(), "render page failed", "error", err)
	}
}

// serviceSubmitter lets the intake machine call the service in-process while
// seeing the same status and message the JSON endpoint would return.
type serviceSubmitter struct {
	svc service.AcceptanceService
}

func (s serviceSubmitter) Submit(ctx context.Context, sub model.AcceptanceSubmission) error {
	err := s.svc.Accept(ctx, sub)
	if err == nil {
		return nil
	}
	status, msg, internal := acceptanceFailure(err)
	if internal {
		slog.ErrorContext(ctx, "sign form error", "error", err)
	}
	return &intake.SubmitError{StatusCode: status, Message: msg}
}
