package summarizer

import (
	"fmt"
	"strings"

	"github.com/DevRico003/youtube-summarizer-sub000/internal/chunker"
)

const analystSystemPrompt = `You are an expert content analyst and summarizer. Create a comprehensive summary in %s. Ensure all content is fully translated and culturally adapted to the target language.`

// sectionSet holds the localized section headings of a structured summary.
type sectionSet struct {
	Title     string
	Overview  string
	KeyPoints string
	Takeaways string
	Context   string
}

var sections = map[string]sectionSet{
	"en": {
		Title:     "TITLE",
		Overview:  "OVERVIEW",
		KeyPoints: "KEY POINTS",
		Takeaways: "MAIN TAKEAWAYS",
		Context:   "CONTEXT & IMPLICATIONS",
	},
	"de": {
		Title:     "TITEL",
		Overview:  "ÜBERBLICK",
		KeyPoints: "KERNPUNKTE",
		Takeaways: "HAUPTERKENNTNISSE",
		Context:   "KONTEXT & AUSWIRKUNGEN",
	},
}

var languageNames = map[string]string{
	"en": "English",
	"de": "German",
	"es": "Spanish",
	"fr": "French",
	"it": "Italian",
	"nl": "Dutch",
	"pl": "Polish",
	"pt": "Portuguese",
	"ru": "Russian",
	"ja": "Japanese",
	"zh": "Chinese",
	"ko": "Korean",
}

func sectionsFor(lang string) sectionSet {
	if s, ok := sections[lang]; ok {
		return s
	}
	return sections["en"]
}

func languageName(lang string) string {
	if name, ok := languageNames[lang]; ok {
		return name
	}
	return lang
}

// chunkPrompt asks for a summary of a single transcript chunk. Timing is
// included when the chunk carries it so the model can anchor references.
func chunkPrompt(c chunker.Chunk, lang string, index, total int) (system, user string) {
	system = fmt.Sprintf(analystSystemPrompt, languageName(lang))

	var b strings.Builder
	fmt.Fprintf(&b, "Summarize part %d of %d of a video transcript in %s. ", index, total, languageName(lang))
	b.WriteString("Capture every argument, example, and warning in the order it appears. Respond in markdown.\n")
	if c.Timed {
		fmt.Fprintf(&b, "\nThis part covers %s to %s of the video.\n", formatTimestamp(c.StartMs), formatTimestamp(c.EndMs))
	}
	fmt.Fprintf(&b, "\nTranscript part:\n---\n%s\n---", c.Text)

	return system, b.String()
}

// finalPrompt combines the per-chunk summaries into the structured final
// summary, with localized section headings.
func finalPrompt(combined, lang string) (system, user string) {
	system = fmt.Sprintf(analystSystemPrompt, languageName(lang))
	s := sectionsFor(lang)

	user = fmt.Sprintf(`Please provide a detailed summary of the following content in %s. Structure your response as follows:

🎯 %s: Create a descriptive title

📝 %s (2-3 sentences):
- Provide a brief context and main purpose

🔑 %s:
- Extract and explain the main arguments
- Include specific examples
- Highlight unique perspectives

💡 %s:
- List 3-5 practical insights
- Explain their significance

🔄 %s:
- Broader context discussion
- Future implications

Text to summarize: %s

Ensure the summary is comprehensive enough for someone who hasn't seen the original content.`,
		languageName(lang), s.Title, s.Overview, s.KeyPoints, s.Takeaways, s.Context, combined)

	return system, user
}

// topicPrompt asks for the chapter timeline as raw JSON intervals. The
// response is parsed and normalized afterwards, so imperfect boundaries
// are acceptable.
func topicPrompt(transcriptText, summary string, durationMs int64) (system, user string) {
	system = "You are a video chapter editor. You segment transcripts into topical chapters and respond with JSON only."

	user = fmt.Sprintf(`The video is %d milliseconds long. Using the transcript and summary below, list the main topics in order of appearance.

Respond with a JSON array, nothing else. Each element: {"title": string, "startMs": number, "endMs": number}. The first topic starts at 0 and the last ends at %d.

Summary:
---
%s
---

Transcript:
---
%s
---`, durationMs, durationMs, summary, transcriptText)

	return system, user
}

// formatTimestamp renders milliseconds as mm:ss or h:mm:ss.
func formatTimestamp(ms int64) string {
	totalSeconds := ms / 1000
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
