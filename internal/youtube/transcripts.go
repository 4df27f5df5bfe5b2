package youtube

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MikeSquared-Agency/mitra/internal/transcript"
)

const defaultTimedTextURL = "https://www.youtube.com/api/timedtext"

// Transcripts fetches caption tracks from the timedtext endpoint.
type Transcripts struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

func NewTranscripts(logger *slog.Logger) *Transcripts {
	return &Transcripts{
		baseURL: defaultTimedTextURL,
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

type timedText struct {
	Lines []struct {
		Text string `xml:",chardata"`
	} `xml:"text"`
}

// Fetch returns the caption track text joined with single spaces. A missing
// track is reported as an error.
func (t *Transcripts) Fetch(ctx context.Context, videoID, lang string, kind transcript.Kind) (string, error) {
	q := url.Values{}
	q.Set("v", videoID)
	q.Set("lang", lang)
	if kind == transcript.Generated {
		q.Set("kind", "asr")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("timedtext: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("timedtext status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return "", fmt.Errorf("no %s track for language %s", kind, lang)
	}

	var doc timedText
	if err := xml.Unmarshal(body, &doc); err != nil {
		return "", fmt.Errorf("parse timedtext: %w", err)
	}

	parts := make([]string, 0, len(doc.Lines))
	for _, line := range doc.Lines {
		// Captions are frequently double-escaped (&amp;#39;).
		text := strings.TrimSpace(html.UnescapeString(line.Text))
		if text != "" {
			parts = append(parts, strings.Join(strings.Fields(text), " "))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("empty %s track for language %s", kind, lang)
	}
	return strings.Join(parts, " "), nil
}
