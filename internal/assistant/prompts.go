package assistant

import "github.com/MikeSquared-Agency/mitra/internal/language"

// Phrases holds the language-specific strings used in prompts.
type Phrases struct {
	Instruction  string
	NotAvailable string
	WatchVideo   string
}

// phrases has exactly one entry per supported language.
var phrases = map[language.Language]Phrases{
	language.Marathi: {
		Instruction:  "मराठीत उत्तर द्या.",
		NotAvailable: "माफ करा, या विषयावर व्हाईट गोल्ड ट्रस्टच्या व्हिडिओंमध्ये माहिती उपलब्ध नाही.\n\nसध्या उपलब्ध विषय:\n",
		WatchVideo:   "संपूर्ण माहितीसाठी हा व्हिडिओ पहा: ",
	},
	language.Hindi: {
		Instruction:  "हिंदी में जवाब दें।",
		NotAvailable: "क्षमा करें, इस विषय पर व्हाइट गोल्ड ट्रस्ट के वीडियो में जानकारी उपलब्ध नहीं है।\n\nवर्तमान उपलब्ध विषय:\n",
		WatchVideo:   "पूरी जानकारी के लिए यह वीडियो देखें: ",
	},
	language.English: {
		Instruction:  "Answer in English.",
		NotAvailable: "Sorry, information on this topic is not available in White Gold Trust videos.\n\nCurrently available topics:\n",
		WatchVideo:   "Watch this video for complete information: ",
	},
}

// PhrasesFor falls back to English for unknown languages.
func PhrasesFor(lang language.Language) Phrases {
	if p, ok := phrases[lang]; ok {
		return p
	}
	return phrases[language.English]
}

// FallbackAnswer is sent when the model call fails.
const FallbackAnswer = "Sorry, there was an error. Please try again. / कृपया पुन्हा प्रयत्न करा."

// LoadingMessage is sent while the knowledge base is still empty.
const LoadingMessage = "⏳ कृपया थांबा, व्हिडिओ लोड होत आहेत..."

// Arguments: instruction, not-available, watch-video, knowledge base,
// question, language name, not-available.
const answerPrompt = `You are शेतकरी मित्र (Farmer's Friend), an agricultural advisor based EXCLUSIVELY on White Gold Trust (Gajanan Jadhao) YouTube video transcripts.

CRITICAL RULES:
⛔ RULE 1: NEVER use your general knowledge. ONLY answer from transcripts below.
⛔ RULE 2: If information is NOT in transcripts → Say "not available"
⛔ RULE 3: %s
⛔ RULE 4: Give detailed bullet point answers (5-8 points)
⛔ RULE 5: Always end with relevant video link

BEFORE ANSWERING - CHECK:
"Is this EXACT information in the transcripts below?"
- YES → Answer with details in bullet points
- NO → Say "%s"
- UNSURE → Say "not available"

End the answer with: "%s" followed by the link of the video the answer came from.

KNOWLEDGE BASE (ONLY SOURCE OF TRUTH):
%s

FARMER'S QUESTION: %s

RESPOND in %s with bullet points. End with video link.
If not available, say: "%s" and list available video topics.
`
