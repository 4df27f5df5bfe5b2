package bot

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MikeSquared-Agency/mitra/internal/assistant"
	"github.com/MikeSquared-Agency/mitra/internal/catalog"
	"github.com/MikeSquared-Agency/mitra/internal/language"
	"github.com/MikeSquared-Agency/mitra/internal/store"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type sent struct {
	chatID string
	text   string
}

type fakeSender struct {
	mu   sync.Mutex
	msgs []sent
	err  error
}

func (f *fakeSender) Send(_ context.Context, chatID, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, sent{chatID, text})
	return f.err
}

func (f *fakeSender) messages() []sent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sent(nil), f.msgs...)
}

type fakeAnswerer struct {
	mu        sync.Mutex
	questions []string
	reply     assistant.Reply
}

func (f *fakeAnswerer) Answer(_ context.Context, q string) assistant.Reply {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.questions = append(f.questions, q)
	return f.reply
}

type fakePublisher struct {
	mu       sync.Mutex
	subjects []string
}

func (f *fakePublisher) Publish(subject string, _ any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subjects = append(f.subjects, subject)
	return nil
}

func populatedStore() *store.Store {
	st := store.New()
	st.Merge(catalog.Item{
		ID: "a1", Title: "संत्रा लागवड", URL: catalog.WatchURL("a1"), DurationMinutes: 45.4,
	}, "transcript a1")
	st.Merge(catalog.Item{
		ID: "b2", Title: "Drip irrigation", URL: catalog.WatchURL("b2"), DurationMinutes: 61.6,
	}, "transcript b2")
	return st
}

func newTestBot(st *store.Store) (*Bot, *fakeSender, *fakeAnswerer, *fakePublisher) {
	snd := &fakeSender{}
	ans := &fakeAnswerer{reply: assistant.Reply{
		Text: "answer text", Language: language.Marathi, Outcome: assistant.Answered,
	}}
	pub := &fakePublisher{}
	return New(snd, ans, st, "Gemini 2.0 Flash", pub, discardLogger()), snd, ans, pub
}

func TestHandle_Start(t *testing.T) {
	b, snd, ans, _ := newTestBot(store.New())

	b.Handle(context.Background(), "7", "/start")

	msgs := snd.messages()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 reply, got %d", len(msgs))
	}
	if msgs[0].chatID != "7" || msgs[0].text != startMessage {
		t.Errorf("unexpected reply: %+v", msgs[0])
	}
	if len(ans.questions) != 0 {
		t.Error("commands must not reach the answerer")
	}
}

func TestHandle_HelpListsCommands(t *testing.T) {
	b, snd, _, _ := newTestBot(store.New())

	b.Handle(context.Background(), "7", "/help")

	text := snd.messages()[0].text
	for _, cmd := range []string{"/start", "/help", "/videos", "/status"} {
		if !strings.Contains(text, cmd) {
			t.Errorf("help text missing %s", cmd)
		}
	}
}

func TestHandle_VideosEmptyStore(t *testing.T) {
	b, snd, _, _ := newTestBot(store.New())

	b.Handle(context.Background(), "7", "/videos")

	if got := snd.messages()[0].text; got != videosLoadingReply {
		t.Errorf("expected loading reply, got %q", got)
	}
}

func TestHandle_VideosList(t *testing.T) {
	b, snd, _, _ := newTestBot(populatedStore())

	b.Handle(context.Background(), "7", "/videos")

	want := "📹 उपलब्ध व्हिडिओ:\n\n" +
		"1. संत्रा लागवड\n   ⏱️ 45 min | 🔗 https://www.youtube.com/watch?v=a1\n\n" +
		"2. Drip irrigation\n   ⏱️ 62 min | 🔗 https://www.youtube.com/watch?v=b2\n\n"
	if got := snd.messages()[0].text; got != want {
		t.Errorf("video list mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestHandle_Status(t *testing.T) {
	st := populatedStore()
	st.MarkUpdated(time.Date(2025, 3, 9, 14, 5, 0, 0, time.UTC))
	b, snd, _, _ := newTestBot(st)

	b.Handle(context.Background(), "7", "/status")

	want := "📊 बॉट Status:\n✅ बॉट चालू आहे\n📹 व्हिडिओ: 2\n🕐 Last Update: 09/03/2025 14:05\n🤖 AI Model: Gemini 2.0 Flash"
	if got := snd.messages()[0].text; got != want {
		t.Errorf("status mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestHandle_StatusBeforeFirstPass(t *testing.T) {
	b, snd, _, _ := newTestBot(store.New())

	b.Handle(context.Background(), "7", "/status")

	text := snd.messages()[0].text
	if !strings.Contains(text, "📹 व्हिडिओ: 0") {
		t.Errorf("expected zero videos, got %q", text)
	}
	if !strings.Contains(text, "Last Update: —") {
		t.Errorf("expected placeholder update time, got %q", text)
	}
}

func TestHandle_CommandWithBotSuffix(t *testing.T) {
	b, snd, _, _ := newTestBot(store.New())

	b.Handle(context.Background(), "7", "/help@MitraBot")

	if got := snd.messages()[0].text; got != helpMessage {
		t.Errorf("expected help text for suffixed command, got %q", got)
	}
}

func TestHandle_UnknownCommandIgnored(t *testing.T) {
	b, snd, ans, _ := newTestBot(populatedStore())

	b.Handle(context.Background(), "7", "/settings")

	if len(snd.messages()) != 0 {
		t.Errorf("expected no reply for unknown command, got %v", snd.messages())
	}
	if len(ans.questions) != 0 {
		t.Error("unknown command must not be treated as a question")
	}
}

func TestHandle_BlankMessageIgnored(t *testing.T) {
	b, snd, _, _ := newTestBot(populatedStore())

	b.Handle(context.Background(), "7", "   \n ")

	if len(snd.messages()) != 0 {
		t.Errorf("expected no reply, got %v", snd.messages())
	}
}

func TestHandle_QuestionSendsInterimThenAnswer(t *testing.T) {
	b, snd, ans, pub := newTestBot(populatedStore())

	b.Handle(context.Background(), "7", "  संत्र्याची लागवड कशी करावी? ")

	msgs := snd.messages()
	if len(msgs) != 2 {
		t.Fatalf("expected interim + answer, got %d messages", len(msgs))
	}
	if msgs[0].text != searchingMessage {
		t.Errorf("expected interim message first, got %q", msgs[0].text)
	}
	if msgs[1].text != "answer text" {
		t.Errorf("expected answer second, got %q", msgs[1].text)
	}
	if len(ans.questions) != 1 || ans.questions[0] != "संत्र्याची लागवड कशी करावी?" {
		t.Errorf("expected trimmed question, got %v", ans.questions)
	}
	if len(pub.subjects) != 1 || pub.subjects[0] != SubjectAnswerSent {
		t.Errorf("expected answer event, got %v", pub.subjects)
	}
}

func TestHandle_DeliveryFailureDoesNotStopAnswer(t *testing.T) {
	b, snd, ans, _ := newTestBot(populatedStore())
	snd.err = errors.New("telegram down")

	b.Handle(context.Background(), "7", "How to manage orange crops?")

	if len(ans.questions) != 1 {
		t.Errorf("expected the question to be answered despite send failure")
	}
	if len(snd.messages()) != 2 {
		t.Errorf("expected both sends attempted, got %d", len(snd.messages()))
	}
}

func TestHandle_NilPublisher(t *testing.T) {
	snd := &fakeSender{}
	ans := &fakeAnswerer{reply: assistant.Reply{Text: "ok", Outcome: assistant.Answered}}
	b := New(snd, ans, populatedStore(), "label", nil, discardLogger())

	b.Handle(context.Background(), "7", "question")

	if len(snd.messages()) != 2 {
		t.Errorf("expected 2 messages, got %d", len(snd.messages()))
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in    string
		cmd   string
		isCmd bool
	}{
		{"/start", "start", true},
		{"/VIDEOS", "videos", true},
		{"/status@MitraBot", "status", true},
		{"/help me please", "help", true},
		{"what is /start", "", false},
		{"पाणी", "", false},
	}
	for _, tt := range tests {
		cmd, ok := parseCommand(tt.in)
		if ok != tt.isCmd || cmd != tt.cmd {
			t.Errorf("parseCommand(%q) = (%q, %v), want (%q, %v)", tt.in, cmd, ok, tt.cmd, tt.isCmd)
		}
	}
}
