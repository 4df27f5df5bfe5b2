package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port     int
	LogLevel string
	APIToken string

	TelegramToken string

	YouTubeAPIKey    string
	YouTubeChannelID string

	LLMProvider     string
	GeminiAPIKey    string
	GeminiModel     string
	AnthropicAPIKey string
	AnthropicModel  string
	ModelLabel      string

	MinYear             int
	MinDurationMinutes  int
	TranscriptLanguages []string
	RefreshInterval     time.Duration
	RefreshDelay        time.Duration

	NatsURL   string
	NatsToken string
}

func Load() Config {
	return Config{
		Port:     envInt("MITRA_PORT", 8760),
		LogLevel: envStr("LOG_LEVEL", "info"),
		APIToken: envStr("MITRA_API_TOKEN", ""),

		TelegramToken: envStr("TELEGRAM_BOT_TOKEN", ""),

		YouTubeAPIKey:    envStr("YOUTUBE_API_KEY", ""),
		YouTubeChannelID: envStr("YOUTUBE_CHANNEL_ID", ""),

		LLMProvider:     envStr("LLM_PROVIDER", "gemini"),
		GeminiAPIKey:    envStr("GEMINI_API_KEY", ""),
		GeminiModel:     envStr("GEMINI_MODEL", "gemini-2.0-flash"),
		AnthropicAPIKey: envStr("ANTHROPIC_API_KEY", ""),
		AnthropicModel:  envStr("MITRA_MODEL", "claude-sonnet-4-20250514"),
		ModelLabel:      envStr("MITRA_MODEL_LABEL", "Gemini 2.0 Flash"),

		MinYear:             envInt("MITRA_MIN_YEAR", 2024),
		MinDurationMinutes:  envInt("MITRA_MIN_DURATION_MINUTES", 30),
		TranscriptLanguages: envList("MITRA_TRANSCRIPT_LANGUAGES", []string{"mr", "hi", "en"}),
		RefreshInterval:     envDuration("MITRA_REFRESH_INTERVAL", time.Hour),
		RefreshDelay:        envDuration("MITRA_REFRESH_DELAY", 10*time.Second),

		NatsURL:   envStr("NATS_URL", ""),
		NatsToken: envStr("NATS_TOKEN", ""),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// envDuration accepts Go durations ("90m") or a bare number of seconds ("3600").
func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
