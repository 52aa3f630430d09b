package handler

import (
	"net/http"

	"github.com/revvit/proposal/internal/proposal"
)

// ProposalHandler handles GET /api/proposal.
type ProposalHandler struct {
	proposal *proposal.Proposal
}

// NewProposalHandler creates a ProposalHandler serving p.
func NewProposalHandler(p *proposal.Proposal) *ProposalHandler {
	return &ProposalHandler{proposal: p}
}

// Get returns the active proposal content, defaults merged with PROPOSAL_CONFIG.
func (h *ProposalHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.proposal)
}
