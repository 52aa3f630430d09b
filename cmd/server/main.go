package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/revvit/proposal/internal/config"
	"github.com/revvit/proposal/internal/document"
	"github.com/revvit/proposal/internal/handler"
	"github.com/revvit/proposal/internal/logging"
	"github.com/revvit/proposal/internal/proposal"
	"github.com/revvit/proposal/internal/service"
	"github.com/revvit/proposal/pkg/resend"
)

func main() {
	cfg, err := config.Load(".env", "../.env")
	if err != nil {
		logging.Setup("INFO")
		logging.Fatal("config load failed", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	p, err := proposal.Load(cfg.ProposalConfig)
	if err != nil {
		logging.Fatal("proposal load failed", "path", cfg.ProposalConfig, "error", err)
	}

	// Resend 未設定でも起動する（/api/sign が設定エラーを返す）
	mailClient := resend.NewClient(cfg.ResendAPIKey, cfg.ResendBaseURL)
	if !mailClient.Configured() {
		slog.Warn("RESEND_API_KEY is not set; acceptance emails are disabled")
	}

	renderer := document.NewPDFRenderer("Revvit")
	renderer.PageSize = cfg.PDFPageSize
	if cfg.PDFFontFile != "" {
		fonts, err := document.LoadFontFile(cfg.PDFFontFile)
		if err != nil {
			logging.Fatal("pdf font load failed", "path", cfg.PDFFontFile, "error", err)
		}
		renderer.Fonts = fonts
	}

	acceptanceService := service.NewAcceptanceService(mailClient, renderer, p, service.AcceptanceConfig{
		From:              cfg.MailFrom,
		InternalRecipient: cfg.MailInternalRecipient,
		Subject:           cfg.MailSubject,
		Filename:          cfg.PDFFilename,
	})

	router := handler.NewRouter(handler.Routes{
		Base:     handler.New(mailClient, cfg.FrontendURL),
		Sign:     handler.NewSignHandler(acceptanceService),
		Page:     handler.NewPageHandler(acceptanceService, p),
		Proposal: handler.NewProposalHandler(p),
	})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		// PDF 生成と Resend 呼び出しを含むため長めに取る
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "client", p.ClientName)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down", "timeout", cfg.ShutdownTimeout.String())
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
