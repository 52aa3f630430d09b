// Package summary renders the HTML body of the acceptance email.
package summary

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/revvit/proposal/internal/model"
	"github.com/revvit/proposal/internal/proposal"
)

//go:embed templates/acceptance.html
var templateFS embed.FS

var acceptanceTmpl = template.Must(template.ParseFS(templateFS, "templates/acceptance.html"))

type acceptanceData struct {
	Submission model.AcceptanceSubmission
	Proposal   *proposal.Proposal
}

// Render returns the email body. Every submitter-provided value is HTML-escaped.
func Render(sub model.AcceptanceSubmission, p *proposal.Proposal) (string, error) {
	var buf bytes.Buffer
	if err := acceptanceTmpl.Execute(&buf, acceptanceData{Submission: sub, Proposal: p}); err != nil {
		return "", fmt.Errorf("summary: render: %w", err)
	}
	return buf.String(), nil
}
