package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/revvit/proposal/internal/document"
	"github.com/revvit/proposal/internal/model"
	"github.com/revvit/proposal/internal/proposal"
	"github.com/revvit/proposal/internal/summary"
	"github.com/revvit/proposal/pkg/resend"
)

// acceptanceServiceImpl is the production implementation of AcceptanceService.
type acceptanceServiceImpl struct {
	mail     resend.Client
	renderer document.Renderer
	proposal *proposal.Proposal
	cfg      AcceptanceConfig
	now      func() time.Time
	newRef   func() string
}

// NewAcceptanceService creates an AcceptanceService. Empty fields in cfg fall
// back to DefaultAcceptanceConfig.
func NewAcceptanceService(mail resend.Client, renderer document.Renderer, p *proposal.Proposal, cfg AcceptanceConfig) AcceptanceService {
	def := DefaultAcceptanceConfig()
	if cfg.From == "" {
		cfg.From = def.From
	}
	if cfg.InternalRecipient == "" {
		cfg.InternalRecipient = def.InternalRecipient
	}
	if cfg.Subject == "" {
		cfg.Subject = def.Subject
	}
	if cfg.Filename == "" {
		cfg.Filename = def.Filename
	}
	return &acceptanceServiceImpl{
		mail:     mail,
		renderer: renderer,
		proposal: p,
		cfg:      cfg,
		now:      time.Now,
		newRef:   uuid.NewString,
	}
}

func (s *acceptanceServiceImpl) Accept(ctx context.Context, sub model.AcceptanceSubmission) error {
	sub.Normalize()
	if !sub.HasRequired() {
		return ErrValidation
	}
	if s.mail == nil || !s.mail.Configured() {
		return ErrNotConfigured
	}

	ref := s.newRef()
	logger := slog.With("reference", ref)

	html, err := summary.Render(sub, s.proposal)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	doc := document.Layout(sub, s.proposal, document.Meta{Reference: ref, SignedAt: s.now()})
	pdf, err := s.renderer.Render(ctx, doc)
	if err != nil {
		return fmt.Errorf("%w: render pdf: %w", ErrInternal, err)
	}

	resp, err := s.mail.Send(ctx, resend.Email{
		From:        s.cfg.From,
		To:          []string{sub.Email, s.cfg.InternalRecipient},
		Subject:     s.cfg.Subject,
		HTML:        html,
		Attachments: []resend.Attachment{{Filename: s.cfg.Filename, Content: pdf}},
	})
	if err != nil {
		return fmt.Errorf("%w: send email: %w", ErrInternal, err)
	}
	if resp == nil {
		return fmt.Errorf("%w: send email: empty response", ErrInternal)
	}
	if resp.Error != nil {
		logger.WarnContext(ctx, "acceptance email rejected by provider",
			"status", resp.Error.StatusCode,
			"provider_error", resp.Error.Name,
			"message", resp.Error.Message,
		)
		return &DeliveryError{StatusCode: resp.Error.StatusCode, Message: resp.Error.Message}
	}

	logger.InfoContext(ctx, "acceptance email sent",
		"email_id", resp.ID,
		"pdf_bytes", len(pdf),
		"organization", sub.Organization,
	)
	return nil
}
