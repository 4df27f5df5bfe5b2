package bot

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/MikeSquared-Agency/mitra/internal/assistant"
	"github.com/MikeSquared-Agency/mitra/internal/store"
)

// SubjectAnswerSent is published after every answered question.
const SubjectAnswerSent = "swarm.mitra.answer.sent"

// Sender delivers a reply to a chat.
type Sender interface {
	Send(ctx context.Context, chatID, text string) error
}

type Answerer interface {
	Answer(ctx context.Context, question string) assistant.Reply
}

// Publisher is satisfied by the hermes client. Optional.
type Publisher interface {
	Publish(subject string, data any) error
}

// Bot routes inbound chat messages to commands or the answer pipeline.
type Bot struct {
	sender     Sender
	answerer   Answerer
	store      *store.Store
	modelLabel string
	publisher  Publisher
	logger     *slog.Logger
}

func New(sender Sender, answerer Answerer, st *store.Store, modelLabel string, pub Publisher, logger *slog.Logger) *Bot {
	return &Bot{
		sender:     sender,
		answerer:   answerer,
		store:      st,
		modelLabel: modelLabel,
		publisher:  pub,
		logger:     logger,
	}
}

// Handle processes one inbound message. Every reply is plain text; failures
// to deliver are logged and never retried.
func (b *Bot) Handle(ctx context.Context, chatID, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	if cmd, ok := parseCommand(text); ok {
		reply, known := b.command(cmd)
		if !known {
			b.logger.Debug("ignoring unknown command", "chat_id", chatID, "command", cmd)
			return
		}
		b.send(ctx, chatID, reply)
		return
	}

	b.answer(ctx, chatID, text)
}

func (b *Bot) command(cmd string) (string, bool) {
	switch cmd {
	case "start":
		return startMessage, true
	case "help":
		return helpMessage, true
	case "videos":
		return formatVideoList(b.store.Entries()), true
	case "status":
		return formatStatus(b.store.Len(), b.store.LastUpdated(), b.modelLabel), true
	default:
		return "", false
	}
}

func (b *Bot) answer(ctx context.Context, chatID, question string) {
	b.send(ctx, chatID, searchingMessage)

	start := time.Now()
	reply := b.answerer.Answer(ctx, question)
	b.send(ctx, chatID, reply.Text)

	b.logger.Info("question handled",
		"chat_id", chatID,
		"language", string(reply.Language),
		"outcome", string(reply.Outcome),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if b.publisher != nil {
		if err := b.publisher.Publish(SubjectAnswerSent, map[string]any{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"chat_id":   chatID,
			"language":  string(reply.Language),
			"outcome":   string(reply.Outcome),
		}); err != nil {
			b.logger.Warn("failed to publish answer event", "error", err)
		}
	}
}

func (b *Bot) send(ctx context.Context, chatID, text string) {
	if err := b.sender.Send(ctx, chatID, text); err != nil {
		b.logger.Error("failed to deliver reply", "chat_id", chatID, "error", err)
	}
}

// parseCommand extracts "videos" from "/videos" or "/videos@MitraBot args".
func parseCommand(text string) (string, bool) {
	if !strings.HasPrefix(text, "/") {
		return "", false
	}
	cmd := strings.Fields(text)[0][1:]
	if i := strings.IndexByte(cmd, '@'); i >= 0 {
		cmd = cmd[:i]
	}
	return strings.ToLower(cmd), true
}
