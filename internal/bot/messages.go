package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/MikeSquared-Agency/mitra/internal/store"
)

const startMessage = `🌾 नमस्कार! मी शेतकरी मित्र आहे!

मी व्हाईट गोल्ड ट्रस्ट (गजानन जाधव सर) च्या YouTube व्हिडिओंवर आधारित शेती सल्लागार आहे.

तुम्ही मला प्रश्न विचारू शकता:
🇮🇳 मराठीत
🇮🇳 हिंदीत
🇬🇧 English मध्ये

📌 उदाहरण प्रश्न:
- संत्र्याची लागवड कशी करावी?
- गर्मियों में पानी का प्रबंधन कैसे करें?
- How to manage orange crops?

📝 आपचा प्रश्न लिहा 👇`

const helpMessage = `📚 कसे वापरावे:

1️⃣ तुमचा प्रश्न टाइप करा
2️⃣ Send करा
3️⃣ उत्तर मिळेल!

📌 Commands:
/start - बॉट सुरू करा
/help - मदत
/videos - सगळे उपलब्ध व्हिडिओ पहा
/status - बॉटचा status`

const (
	searchingMessage   = "🔍 उत्तर शोधत आहे... / Searching..."
	videosLoadingReply = "⏳ व्हिडिओ लोड होत आहेत... कृपया थांबा."
)

// formatVideoList renders the numbered list for /videos.
func formatVideoList(entries []store.Entry) string {
	if len(entries) == 0 {
		return videosLoadingReply
	}

	var sb strings.Builder
	sb.WriteString("📹 उपलब्ध व्हिडिओ:\n\n")
	for i, e := range entries {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, e.Item.Title)
		fmt.Fprintf(&sb, "   ⏱️ %.0f min | 🔗 %s\n\n", e.Item.DurationMinutes, e.Item.URL)
	}
	return sb.String()
}

func formatStatus(videos int, lastUpdate time.Time, modelLabel string) string {
	updated := "—"
	if !lastUpdate.IsZero() {
		updated = lastUpdate.Format("02/01/2006 15:04")
	}

	var sb strings.Builder
	sb.WriteString("📊 बॉट Status:\n")
	sb.WriteString("✅ बॉट चालू आहे\n")
	fmt.Fprintf(&sb, "📹 व्हिडिओ: %d\n", videos)
	fmt.Fprintf(&sb, "🕐 Last Update: %s\n", updated)
	fmt.Fprintf(&sb, "🤖 AI Model: %s", modelLabel)
	return sb.String()
}
