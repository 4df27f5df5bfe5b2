package assistant

import (
	"fmt"

	"github.com/MikeSquared-Agency/mitra/internal/language"
)

// Compose renders the grounded prompt for one question. The knowledge base
// and question are embedded verbatim.
func Compose(question string, lang language.Language, knowledgeBase string) string {
	p := PhrasesFor(lang)
	return fmt.Sprintf(answerPrompt,
		p.Instruction,
		p.NotAvailable,
		p.WatchVideo,
		knowledgeBase,
		question,
		string(lang),
		p.NotAvailable,
	)
}
