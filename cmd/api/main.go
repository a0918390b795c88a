package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/quantumlock/quantumlock-go/internal/breach"
	"github.com/quantumlock/quantumlock-go/internal/config"
	"github.com/quantumlock/quantumlock-go/internal/handler"
	"github.com/quantumlock/quantumlock-go/internal/middleware"
	"github.com/quantumlock/quantumlock-go/internal/service"
	"github.com/quantumlock/quantumlock-go/internal/strength"
	"github.com/quantumlock/quantumlock-go/internal/totp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	genService, err := service.NewGeneratorService(cfg.WordlistDir, cfg.DefaultPasswordLength, cfg.DefaultPassphraseWords)
	if err != nil {
		slog.Error("loading wordlists", "error", err)
		os.Exit(1)
	}
	genHandler := handler.NewGeneratorHandler(genService)

	checker := breach.NewChecker(breach.Config{
		BaseURL:    cfg.HIBPBaseURL,
		Timeout:    cfg.HIBPTimeout,
		MaxRetries: cfg.HIBPMaxRetries,
		UsePadding: cfg.HIBPAddPadding,
	})
	analyzerService := service.NewAnalyzerService(strength.NewAnalyzer(), checker)
	analyzerHandler := handler.NewAnalyzerHandler(analyzerService)

	totpGen, err := totp.NewGenerator(totp.DefaultDigits, totp.DefaultPeriod)
	if err != nil {
		slog.Error("configuring totp", "error", err)
		os.Exit(1)
	}
	totpService := service.NewTOTPService(totpGen, cfg.TOTPIssuer)
	totpHandler := handler.NewTOTPHandler(totpService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/generate/password", genHandler.HandleGeneratePassword)
		r.Get("/generate/password/quick", genHandler.HandleGeneratePasswordQuick)
		r.Post("/generate/passphrase", genHandler.HandleGeneratePassphrase)
		r.Get("/generate/passphrase/quick", genHandler.HandleGeneratePassphraseQuick)
		r.Post("/generate/passphrase/dice", genHandler.HandleDiceWord)

		// Analyzer routes fan out to the external breach corpus, so they sit
		// behind the per-IP limiter.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
			r.Post("/analyze/strength", analyzerHandler.HandleAnalyzeStrength)
			r.Post("/analyze/breach", analyzerHandler.HandleCheckBreach)
			r.Post("/analyze/full", analyzerHandler.HandleFullAnalysis)
		})

		r.Post("/totp/secret", totpHandler.HandleCreateSecret)
		r.Post("/totp/code", totpHandler.HandleCurrentCode)
		r.Post("/totp/verify", totpHandler.HandleVerifyCode)
		r.Post("/totp/qr", totpHandler.HandleQRCode)
		r.Post("/totp/backup-codes", totpHandler.HandleBackupCodes)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
