package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/MikeSquared-Agency/mitra/internal/anthropic"
	"github.com/MikeSquared-Agency/mitra/internal/assistant"
	"github.com/MikeSquared-Agency/mitra/internal/catalog"
	"github.com/MikeSquared-Agency/mitra/internal/config"
	"github.com/MikeSquared-Agency/mitra/internal/gemini"
	"github.com/MikeSquared-Agency/mitra/internal/refresh"
	"github.com/MikeSquared-Agency/mitra/internal/store"
	"github.com/MikeSquared-Agency/mitra/internal/transcript"
	"github.com/MikeSquared-Agency/mitra/internal/youtube"
)

// newModel picks the answer model from LLM_PROVIDER.
func newModel(cfg config.Config) (assistant.Model, error) {
	switch cfg.LLMProvider {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, errors.New("GEMINI_API_KEY is required")
		}
		return gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel), nil
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			return nil, errors.New("ANTHROPIC_API_KEY is required")
		}
		return anthropic.NewClient(cfg.AnthropicAPIKey, cfg.AnthropicModel), nil
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.LLMProvider)
	}
}

// newOrchestrator wires the YouTube adapters, scanner and acquirer around st.
func newOrchestrator(ctx context.Context, cfg config.Config, st *store.Store, pub refresh.Publisher, logger *slog.Logger) (*refresh.Orchestrator, error) {
	if cfg.YouTubeAPIKey == "" {
		return nil, errors.New("YOUTUBE_API_KEY is required")
	}
	if cfg.YouTubeChannelID == "" {
		return nil, errors.New("YOUTUBE_CHANNEL_ID is required")
	}

	cat, err := youtube.NewCatalog(ctx, cfg.YouTubeAPIKey, logger)
	if err != nil {
		return nil, err
	}
	scanner := catalog.NewScanner(cat, catalog.Filter{
		MinYear:            cfg.MinYear,
		MinDurationMinutes: float64(cfg.MinDurationMinutes),
	}, logger)
	acquirer := transcript.NewAcquirer(youtube.NewTranscripts(logger), cfg.TranscriptLanguages, logger)

	source := youtube.UploadsPlaylistID(cfg.YouTubeChannelID)
	return refresh.New(scanner, acquirer, st, source, pub, logger), nil
}
