package model

import "strings"

// AcceptanceSubmission represents a proposal acceptance sent from the intake form.
// It lives only for the duration of a single request and is never stored.
type AcceptanceSubmission struct {
	Name         string `json:"name"`
	Title        string `json:"title"`
	Email        string `json:"email"`
	Organization string `json:"organization"`
	Message      string `json:"message"`
	Agreed       bool   `json:"agreed"`
}

// Normalize trims surrounding whitespace from every text field.
func (s *AcceptanceSubmission) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Title = strings.TrimSpace(s.Title)
	s.Email = strings.TrimSpace(s.Email)
	s.Organization = strings.TrimSpace(s.Organization)
	s.Message = strings.TrimSpace(s.Message)
}

// HasRequired reports whether name, email and the agreement flag are all present.
// Email format is not checked; presence is enough.
func (s AcceptanceSubmission) HasRequired() bool {
	return strings.TrimSpace(s.Name) != "" &&
		strings.TrimSpace(s.Email) != "" &&
		s.Agreed
}

// SignerLine formats "Name, Title (Organization)" leaving out empty parts.
func (s AcceptanceSubmission) SignerLine() string {
	var b strings.Builder
	b.WriteString(s.Name)
	if s.Title != "" {
		b.WriteString(", ")
		b.WriteString(s.Title)
	}
	if s.Organization != "" {
		b.WriteString(" (")
		b.WriteString(s.Organization)
		b.WriteString(")")
	}
	return b.String()
}
