// Package proposal holds the scope, pricing, and timeline content shown on the
// proposal page and repeated in the acceptance email and PDF.
package proposal

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Proposal is the full set of proposal content. It is read-only once loaded.
type Proposal struct {
	ClientName string   `yaml:"client_name" json:"client_name"`
	Domain     string   `yaml:"domain" json:"domain"`
	Title      string   `yaml:"title" json:"title"`
	Headline   string   `yaml:"headline" json:"headline"`
	Tagline    string   `yaml:"tagline" json:"tagline"`
	Colors     Colors   `yaml:"colors" json:"colors"`
	Scope      []string `yaml:"scope" json:"scope"`
	// Excluded lists what the phase explicitly does not cover.
	Excluded  string         `yaml:"excluded" json:"excluded"`
	Pricing   []PriceItem    `yaml:"pricing" json:"pricing"`
	Timeline  []TimelineStep `yaml:"timeline" json:"timeline"`
	Closing   string         `yaml:"closing" json:"closing"`
	Agreement string         `yaml:"agreement" json:"agreement"`
	Legal     Legal          `yaml:"legal" json:"legal"`
}

// Colors are the brand colors used by the page stylesheet.
type Colors struct {
	Primary    string `yaml:"primary" json:"primary"`
	Secondary  string `yaml:"secondary" json:"secondary"`
	Accent     string `yaml:"accent" json:"accent"`
	Background string `yaml:"background" json:"background"`
}

// PriceItem is one line of the pricing section.
type PriceItem struct {
	Label    string   `yaml:"label" json:"label"`
	Amount   string   `yaml:"amount" json:"amount"`
	Includes []string `yaml:"includes" json:"includes,omitempty"`
}

// Line joins label and amount with a spaced em dash.
func (p PriceItem) Line() string {
	return p.Label + " — " + p.Amount
}

// TimelineStep is one step of the delivery timeline.
type TimelineStep struct {
	Label   string `yaml:"label" json:"label"`
	Heading string `yaml:"heading" json:"heading"`
	Summary string `yaml:"summary" json:"summary"`
	Detail  string `yaml:"detail" json:"detail,omitempty"`
}

// Line formats the step as "Label: Summary".
func (s TimelineStep) Line() string {
	return s.Label + ": " + s.Summary
}

// Legal carries the contract terms shown in the page footer.
type Legal struct {
	NDA          string `yaml:"nda" json:"nda"`
	Contractor   string `yaml:"contractor" json:"contractor"`
	GoverningLaw string `yaml:"governing_law" json:"governing_law"`
	Contract     string `yaml:"contract" json:"contract"`
}

// PricingLines returns every price item formatted with Line.
func (p *Proposal) PricingLines() []string {
	lines := make([]string, 0, len(p.Pricing))
	for _, item := range p.Pricing {
		lines = append(lines, item.Line())
	}
	return lines
}

// TimelineLines returns every timeline step formatted with Line.
func (p *Proposal) TimelineLines() []string {
	lines := make([]string, 0, len(p.Timeline))
	for _, step := range p.Timeline {
		lines = append(lines, step.Line())
	}
	return lines
}

// Load reads a YAML file and merges it over Default. Keys present in the file
// replace the defaults; absent keys keep them. JSON files work as well since
// JSON is valid YAML. An empty path returns the defaults.
func Load(path string) (*Proposal, error) {
	p := Default()
	if path == "" {
		return p, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("proposal: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("proposal: parse %s: %w", path, err)
	}
	return p, nil
}
