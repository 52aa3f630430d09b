// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the server configuration. RESEND_API_KEY is deliberately optional:
// without it the server still starts and /api/sign answers with a
// configuration error.
type Config struct {
	Port            string        `env:"PORT"             envDefault:"8080"`
	FrontendURL     string        `env:"FRONTEND_URL"     envDefault:"http://localhost:8080"`
	LogLevel        string        `env:"LOG_LEVEL"        envDefault:"INFO"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	ResendAPIKey  string `env:"RESEND_API_KEY"`
	ResendBaseURL string `env:"RESEND_BASE_URL"`

	MailFrom              string `env:"MAIL_FROM"               envDefault:"agreements@documents.revvit.io"`
	MailInternalRecipient string `env:"MAIL_INTERNAL_RECIPIENT" envDefault:"matthew@revvit.io"`
	MailSubject           string `env:"MAIL_SUBJECT"            envDefault:"CCBM Phase 1 Acceptance"`
	PDFFilename           string `env:"PDF_FILENAME"            envDefault:"CCBM-Phase1-Acceptance.pdf"`
	PDFPageSize           string `env:"PDF_PAGE_SIZE"           envDefault:"Letter"`

	// PDFFontFile is an optional TrueType font replacing the built-in Go fonts.
	PDFFontFile string `env:"PDF_FONT_FILE"`

	// ProposalConfig is an optional YAML/JSON file merged over the built-in proposal.
	ProposalConfig string `env:"PROPOSAL_CONFIG"`
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Load reads .env files when present and parses the environment.
func Load(dotenvFiles ...string) (Config, error) {
	if len(dotenvFiles) == 0 {
		_ = godotenv.Load()
	}
	for _, f := range dotenvFiles {
		_ = godotenv.Load(f)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
