package main

import (
	"context"
	"errors"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/mitra/internal/api"
	"github.com/MikeSquared-Agency/mitra/internal/assistant"
	"github.com/MikeSquared-Agency/mitra/internal/bot"
	"github.com/MikeSquared-Agency/mitra/internal/config"
	"github.com/MikeSquared-Agency/mitra/internal/hermes"
	"github.com/MikeSquared-Agency/mitra/internal/refresh"
	"github.com/MikeSquared-Agency/mitra/internal/store"
	"github.com/MikeSquared-Agency/mitra/internal/telegram"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the chat bot, the refresh schedule and the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			setupLogging(cfg.LogLevel)
			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(parent context.Context, cfg config.Config) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.Default()
	logger.Info("mitra starting", "port", cfg.Port, "provider", cfg.LLMProvider)

	if cfg.TelegramToken == "" {
		return errors.New("TELEGRAM_BOT_TOKEN is required")
	}

	model, err := newModel(cfg)
	if err != nil {
		return err
	}
	logger.Info("llm client ready", "provider", cfg.LLMProvider, "label", cfg.ModelLabel)

	// NATS/Hermes (optional)
	var pub refresh.Publisher
	var hermesClient *hermes.Client
	if cfg.NatsURL != "" {
		hermesClient, err = hermes.NewClient(ctx, cfg.NatsURL, cfg.NatsToken, logger)
		if err != nil {
			return err
		}
		defer hermesClient.Close()
		pub = hermesClient
		logger.Info("NATS connected", "url", cfg.NatsURL)
	} else {
		logger.Warn("nats not configured, running without event bus")
	}

	st := store.New()
	orch, err := newOrchestrator(ctx, cfg, st, pub, logger)
	if err != nil {
		return err
	}

	gen := assistant.NewGenerator(model, st, logger)
	tg := telegram.NewClient(cfg.TelegramToken, logger)
	b := bot.New(tg, gen, st, cfg.ModelLabel, pub, logger)

	if hermesClient != nil {
		if err := hermesClient.Subscribe(bot.SubjectInbound, b.HandleInbound); err != nil {
			return err
		}
	}

	orch.Start(ctx, cfg.RefreshDelay, cfg.RefreshInterval)
	logger.Info("refresh scheduled", "delay", cfg.RefreshDelay, "interval", cfg.RefreshInterval)

	srv := api.NewServer(cfg.Port, cfg.APIToken, st, orch, cfg.ModelLabel, logger)
	go func() {
		if err := srv.Start(); err != nil {
			logger.Error("HTTP server error", "error", err)
		}
	}()

	go tg.Poll(ctx, func(ctx context.Context, msg telegram.Message) {
		b.Handle(ctx, msg.ChatID, msg.Text)
	})

	if pub != nil {
		if err := pub.Publish(hermes.SubjectRegistered, map[string]any{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"port":      cfg.Port,
			"model":     cfg.ModelLabel,
		}); err != nil {
			logger.Warn("failed to publish registration", "error", err)
		}
	}

	logger.Info("mitra ready", "port", cfg.Port)

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP shutdown failed", "error", err)
	}
	if pub != nil {
		_ = pub.Publish(hermes.SubjectDeparted, map[string]any{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}

	logger.Info("mitra stopped")
	return nil
}
