package summarizer

import (
	"context"

	"github.com/DevRico003/youtube-summarizer-sub000/internal/chunker"
	"github.com/DevRico003/youtube-summarizer-sub000/internal/topics"
	"github.com/DevRico003/youtube-summarizer-sub000/internal/transcript"
)

// LanguageModel is the narrow contract for the external LLM collaborator.
// The completion itself — API client, local runtime, CLI — lives outside
// this module; the pipeline only needs prompt in, text out.
type LanguageModel interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Summarizer turns a transcript into a narrative summary and, when the
// video duration is known, a normalized topic timeline.
type Summarizer interface {
	Summarize(ctx context.Context, t transcript.Transcript) (*Result, error)
}

// Result is the output of one summarization run. Topics is nil when the
// transcript carried no timing, since a timeline needs a known duration.
type Result struct {
	Summary    string          `json:"summary"`
	Language   string          `json:"language"`
	DurationMs int64           `json:"durationMs,omitempty"`
	Chunks     []chunker.Chunk `json:"chunks,omitempty"`
	Topics     []topics.Topic  `json:"topics,omitempty"`
}
