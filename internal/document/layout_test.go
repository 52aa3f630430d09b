package document

import (
	"strings"
	"testing"
	"time"

	"github.com/revvit/proposal/internal/model"
	"github.com/revvit/proposal/internal/proposal"
)

func TestLayout_SectionOrder(t *testing.T) {
	sub := model.AcceptanceSubmission{Name: "Jane Doe", Email: "jane@x.com", Agreed: true}
	doc := Layout(sub, proposal.Default(), Meta{})

	var headings []string
	for _, inst := range doc {
		if inst.Kind == KindTitle || inst.Kind == KindHeading || inst.Kind == KindClosing {
			headings = append(headings, inst.Text)
		}
	}
	want := []string{
		"CCBM Phase 1 Acceptance",
		"Signer",
		"Scope Highlights",
		"Pricing",
		"Timeline",
		"This email serves as acceptance of the Phase 1 scope unless otherwise noted.",
	}
	if strings.Join(headings, "|") != strings.Join(want, "|") {
		t.Errorf("unexpected section order:\n got  %v\n want %v", headings, want)
	}
	if doc[0].Kind != KindTitle {
		t.Error("document must start with the title")
	}
	if doc[len(doc)-1].Kind != KindClosing {
		t.Error("document must end with the closing statement")
	}
}

func TestLayout_SignerBlock(t *testing.T) {
	sub := model.AcceptanceSubmission{
		Name: "Jane Doe", Title: "Director", Organization: "CCBM",
		Email: "jane@x.com", Message: "See you Monday", Agreed: true,
	}
	signed := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	doc := Layout(sub, proposal.Default(), Meta{Reference: "ref-123", SignedAt: signed})

	var paragraphs []string
	for _, inst := range doc {
		if inst.Kind == KindParagraph {
			paragraphs = append(paragraphs, inst.Text)
		}
	}
	want := []string{
		"Signer: Jane Doe, Director (CCBM)",
		"Email: jane@x.com",
		"Notes: See you Monday",
		"Date: March 4, 2026",
		"Reference: ref-123",
	}
	if strings.Join(paragraphs, "|") != strings.Join(want, "|") {
		t.Errorf("unexpected signer block:\n got  %v\n want %v", paragraphs, want)
	}
}

func TestLayout_OmitsEmptyNotes(t *testing.T) {
	sub := model.AcceptanceSubmission{Name: "Jane Doe", Email: "jane@x.com", Agreed: true}
	for _, inst := range Layout(sub, proposal.Default(), Meta{}) {
		if strings.HasPrefix(inst.Text, "Notes:") {
			t.Errorf("notes paragraph should be omitted, got %q", inst.Text)
		}
	}
}

func TestLayout_Lists(t *testing.T) {
	p := proposal.Default()
	sub := model.AcceptanceSubmission{Name: "Jane Doe", Email: "jane@x.com", Agreed: true}

	var lists [][]string
	for _, inst := range Layout(sub, p, Meta{}) {
		if inst.Kind == KindList {
			lists = append(lists, inst.Items)
		}
	}
	if len(lists) != 3 {
		t.Fatalf("expected 3 lists (scope, pricing, timeline), got %d", len(lists))
	}
	if len(lists[0]) != len(p.Scope) {
		t.Errorf("scope list: expected %d items, got %d", len(p.Scope), len(lists[0]))
	}
	if lists[1][0] != "One-Time Setup — $10,000" {
		t.Errorf("unexpected first pricing item %q", lists[1][0])
	}
	if lists[2][2] != p.Timeline[2].Line() {
		t.Errorf("unexpected last timeline item %q", lists[2][2])
	}
}
