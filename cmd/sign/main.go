package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/revvit/proposal/internal/intake"
	"github.com/revvit/proposal/internal/logging"
)

const usageText = `Usage: sign [flags]

Submits a proposal acceptance to a running server and prints the result.

Flags:`

func main() {
	logging.Setup(os.Getenv("LOG_LEVEL"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit code: 0 on success, 1 when the server
// rejected the acceptance, 2 on bad usage.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sign", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, usageText)
		fs.PrintDefaults()
	}

	baseURL := fs.String("url", "http://localhost:8080", "server base URL")
	name := fs.String("name", "", "signer name (required)")
	title := fs.String("title", "", "signer title")
	email := fs.String("email", "", "signer email (required)")
	org := fs.String("org", "", "organization")
	message := fs.String("message", "", "optional notes")
	agree := fs.Bool("agree", false, "agree to the Phase 1 scope (required)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	m := intake.NewMachine(intake.NewHTTPSubmitter(*baseURL))
	m.OnTransition = func(from, to intake.State) {
		slog.Debug("intake transition", "from", from, "to", to)
	}

	fields := []struct{ field, value string }{
		{intake.FieldName, *name},
		{intake.FieldTitle, *title},
		{intake.FieldEmail, *email},
		{intake.FieldOrganization, *org},
		{intake.FieldMessage, *message},
		{intake.FieldAgreed, strconv.FormatBool(*agree)},
	}
	for _, f := range fields {
		if err := m.Edit(f.field, f.value); err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
	}

	state := m.Submit(ctx)
	fmt.Fprintf(stdout, "%s: %s\n", state, m.Notice())
	if state != intake.StateSuccess {
		return 1
	}
	return 0
}
