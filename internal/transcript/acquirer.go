package transcript

import (
	"context"
	"errors"
	"log/slog"
)

// ErrNotFound means no transcript exists in any of the configured languages.
var ErrNotFound = errors.New("transcript not found")

// Kind selects between creator-uploaded and auto-generated captions.
type Kind int

const (
	Manual Kind = iota
	Generated
)

func (k Kind) String() string {
	if k == Generated {
		return "generated"
	}
	return "manual"
}

// Provider fetches one transcript track. Any error is treated as "this
// language is unavailable" by the Acquirer.
type Provider interface {
	Fetch(ctx context.Context, videoID, lang string, kind Kind) (string, error)
}

// Acquirer retrieves a transcript using a fixed language priority. Each
// language is tried as a manual track and then as a generated track before
// the next language is considered.
type Acquirer struct {
	provider  Provider
	languages []string
	logger    *slog.Logger
}

func NewAcquirer(p Provider, languages []string, logger *slog.Logger) *Acquirer {
	langs := make([]string, len(languages))
	copy(langs, languages)
	return &Acquirer{provider: p, languages: langs, logger: logger}
}

// Languages returns the priority list in use.
func (a *Acquirer) Languages() []string {
	out := make([]string, len(a.languages))
	copy(out, a.languages)
	return out
}

// Acquire returns the first transcript available under the priority policy,
// or ErrNotFound once every option is exhausted.
func (a *Acquirer) Acquire(ctx context.Context, videoID string) (string, error) {
	for _, lang := range a.languages {
		for _, kind := range []Kind{Manual, Generated} {
			text, err := a.provider.Fetch(ctx, videoID, lang, kind)
			if err != nil {
				a.logger.Debug("transcript unavailable",
					"video_id", videoID,
					"lang", lang,
					"kind", kind.String(),
					"error", err,
				)
				continue
			}
			if text == "" {
				continue
			}
			a.logger.Debug("transcript acquired",
				"video_id", videoID,
				"lang", lang,
				"kind", kind.String(),
				"transcript_len", len(text),
			)
			return text, nil
		}
	}
	return "", ErrNotFound
}
