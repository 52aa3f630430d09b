package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/revvit/proposal/internal/model"
)

// AcceptanceService defines the accept-and-notify workflow for proposal sign-offs.
type AcceptanceService interface {
	// Accept validates the submission, renders the summary and PDF, and sends
	// exactly one acceptance email. Failures are reported as ErrValidation,
	// ErrNotConfigured, *DeliveryError, or an error wrapping ErrInternal.
	Accept(ctx context.Context, sub model.AcceptanceSubmission) error
}

// ErrValidation is returned when name, email, or agreement is missing.
var ErrValidation = errors.New("name, email, and agreement are required")

// ErrNotConfigured is returned when the outbound email credential is absent.
var ErrNotConfigured = errors.New("mail delivery is not configured")

// ErrInternal wraps unexpected rendering or dispatch failures.
var ErrInternal = errors.New("acceptance failed")

// DeliveryError reports that the email provider rejected the message.
type DeliveryError struct {
	StatusCode int
	Message    string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("email delivery failed: %s", e.Message)
}

// AcceptanceConfig holds the fixed addressing of the acceptance email.
type AcceptanceConfig struct {
	From              string
	InternalRecipient string
	Subject           string
	Filename          string
}

// DefaultAcceptanceConfig returns the production addressing.
func DefaultAcceptanceConfig() AcceptanceConfig {
	return AcceptanceConfig{
		From:              "agreements@documents.revvit.io",
		InternalRecipient: "matthew@revvit.io",
		Subject:           "CCBM Phase 1 Acceptance",
		Filename:          "CCBM-Phase1-Acceptance.pdf",
	}
}
