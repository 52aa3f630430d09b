// Package document builds and renders the PDF acknowledgment attached to
// every acceptance email.
package document

import (
	"time"

	"github.com/revvit/proposal/internal/model"
	"github.com/revvit/proposal/internal/proposal"
)

// Kind identifies a drawing instruction.
type Kind int

const (
	KindTitle Kind = iota
	KindHeading
	KindParagraph
	KindList
	KindClosing
	KindSpacer
)

// Instruction is a single drawing step. Text is used by every kind except
// KindList (Items) and KindSpacer (Height, in millimetres).
type Instruction struct {
	Kind   Kind
	Text   string
	Items  []string
	Height float64
}

func Title(text string) Instruction     { return Instruction{Kind: KindTitle, Text: text} }
func Heading(text string) Instruction   { return Instruction{Kind: KindHeading, Text: text} }
func Paragraph(text string) Instruction { return Instruction{Kind: KindParagraph, Text: text} }
func List(items ...string) Instruction  { return Instruction{Kind: KindList, Items: items} }
func Closing(text string) Instruction   { return Instruction{Kind: KindClosing, Text: text} }
func Spacer(mm float64) Instruction     { return Instruction{Kind: KindSpacer, Height: mm} }

// Meta carries per-request values printed in the signer block.
type Meta struct {
	Reference string
	SignedAt  time.Time
}

// Layout returns the acknowledgment in its fixed section order:
// title, signer block, scope highlights, pricing, timeline, closing statement.
func Layout(sub model.AcceptanceSubmission, p *proposal.Proposal, meta Meta) []Instruction {
	doc := []Instruction{
		Title(p.Title),
		Spacer(2),
		Heading("Signer"),
		Paragraph("Signer: " + sub.SignerLine()),
		Paragraph("Email: " + sub.Email),
	}
	if sub.Message != "" {
		doc = append(doc, Paragraph("Notes: "+sub.Message))
	}
	if !meta.SignedAt.IsZero() {
		doc = append(doc, Paragraph("Date: "+meta.SignedAt.UTC().Format("January 2, 2006")))
	}
	if meta.Reference != "" {
		doc = append(doc, Paragraph("Reference: "+meta.Reference))
	}

	doc = append(doc,
		Heading("Scope Highlights"),
		List(p.Scope...),
		Heading("Pricing"),
		List(p.PricingLines()...),
		Heading("Timeline"),
		List(p.TimelineLines()...),
		Spacer(4),
		Closing(p.Closing),
	)
	return doc
}
