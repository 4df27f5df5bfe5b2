package assistant

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/mitra/internal/language"
)

// Model is the language-model collaborator.
type Model interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Knowledge is the read side of the store.
type Knowledge interface {
	Len() int
	Render() string
}

type Outcome string

const (
	Answered Outcome = "answered"
	Failed   Outcome = "failed"
	NotReady Outcome = "not_ready"
)

// Reply is the result of one question. Text is always safe to send.
type Reply struct {
	Text     string
	Language language.Language
	Outcome  Outcome
}

type Generator struct {
	model     Model
	knowledge Knowledge
	logger    *slog.Logger
}

func NewGenerator(m Model, k Knowledge, logger *slog.Logger) *Generator {
	return &Generator{model: m, knowledge: k, logger: logger}
}

// Answer detects the question's language, composes the grounded prompt from
// the current knowledge base and asks the model. The model is not called
// while the knowledge base is empty.
func (g *Generator) Answer(ctx context.Context, question string) Reply {
	lang := language.Detect(question)

	if g.knowledge.Len() == 0 {
		answersTotal.WithLabelValues(string(NotReady), string(lang)).Inc()
		return Reply{Text: LoadingMessage, Language: lang, Outcome: NotReady}
	}

	reqID := uuid.New().String()
	prompt := Compose(question, lang, g.knowledge.Render())

	g.logger.Info("answering question",
		"request_id", reqID,
		"language", string(lang),
		"prompt_len", len(prompt),
	)

	start := time.Now()
	text, err := g.model.Generate(ctx, prompt)
	llmDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		answersTotal.WithLabelValues(string(Failed), string(lang)).Inc()
		g.logger.Error("llm answer failed", "request_id", reqID, "error", err)
		return Reply{Text: FallbackAnswer, Language: lang, Outcome: Failed}
	}

	answersTotal.WithLabelValues(string(Answered), string(lang)).Inc()
	g.logger.Info("answer ready", "request_id", reqID, "answer_len", len(text))
	return Reply{Text: text, Language: lang, Outcome: Answered}
}
