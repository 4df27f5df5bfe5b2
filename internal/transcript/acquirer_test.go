package transcript

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type call struct {
	lang string
	kind Kind
}

// scriptedProvider returns text for the listed (lang, kind) tracks and an
// error for everything else.
type scriptedProvider struct {
	tracks map[call]string
	calls  []call
}

func (p *scriptedProvider) Fetch(_ context.Context, videoID, lang string, kind Kind) (string, error) {
	c := call{lang: lang, kind: kind}
	p.calls = append(p.calls, c)
	if text, ok := p.tracks[c]; ok {
		return text, nil
	}
	return "", fmt.Errorf("no %s track %s for %s", kind, lang, videoID)
}

var priority = []string{"mr", "hi", "en"}

func TestAcquire_FirstPriorityWins(t *testing.T) {
	p := &scriptedProvider{tracks: map[call]string{
		{"mr", Manual}: "marathi text",
		{"en", Manual}: "english text",
	}}

	text, err := NewAcquirer(p, priority, discardLogger()).Acquire(context.Background(), "vid")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "marathi text" {
		t.Errorf("expected marathi text, got %q", text)
	}
	if len(p.calls) != 1 {
		t.Errorf("expected a single provider call, got %d", len(p.calls))
	}
}

func TestAcquire_FallsThroughErrorsToThirdLanguage(t *testing.T) {
	p := &scriptedProvider{tracks: map[call]string{
		{"en", Manual}: "english text",
	}}

	text, err := NewAcquirer(p, priority, discardLogger()).Acquire(context.Background(), "vid")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if text != "english text" {
		t.Errorf("expected english text, got %q", text)
	}
	want := []call{{"mr", Manual}, {"mr", Generated}, {"hi", Manual}, {"hi", Generated}, {"en", Manual}}
	if fmt.Sprint(p.calls) != fmt.Sprint(want) {
		t.Errorf("unexpected call order: %v", p.calls)
	}
}

func TestAcquire_GeneratedFallback(t *testing.T) {
	p := &scriptedProvider{tracks: map[call]string{
		{"hi", Generated}: "auto hindi",
		{"en", Generated}: "auto english",
	}}

	text, err := NewAcquirer(p, priority, discardLogger()).Acquire(context.Background(), "vid")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "auto hindi" {
		t.Errorf("expected generated hindi, got %q", text)
	}
	want := []call{{"mr", Manual}, {"mr", Generated}, {"hi", Manual}, {"hi", Generated}}
	if fmt.Sprint(p.calls) != fmt.Sprint(want) {
		t.Errorf("unexpected call order: %v", p.calls)
	}
}

func TestAcquire_GeneratedPreferredLanguageBeatsManualLaterLanguage(t *testing.T) {
	p := &scriptedProvider{tracks: map[call]string{
		{"mr", Generated}: "auto marathi",
		{"en", Manual}:    "manual english",
	}}

	text, err := NewAcquirer(p, priority, discardLogger()).Acquire(context.Background(), "vid")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "auto marathi" {
		t.Errorf("expected generated marathi, got %q", text)
	}
	want := []call{{"mr", Manual}, {"mr", Generated}}
	if fmt.Sprint(p.calls) != fmt.Sprint(want) {
		t.Errorf("unexpected call order: %v", p.calls)
	}
}

func TestAcquire_NotFound(t *testing.T) {
	p := &scriptedProvider{tracks: map[call]string{
		{"mr", Manual}: "",
	}}

	_, err := NewAcquirer(p, priority, discardLogger()).Acquire(context.Background(), "vid")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(p.calls) != 6 {
		t.Errorf("expected every option attempted (6), got %d", len(p.calls))
	}
}

func TestNewAcquirer_CopiesLanguages(t *testing.T) {
	langs := []string{"mr", "en"}
	a := NewAcquirer(&scriptedProvider{}, langs, discardLogger())
	langs[0] = "fr"

	if got := a.Languages(); got[0] != "mr" {
		t.Errorf("expected priority list to be isolated from caller, got %v", got)
	}
}
