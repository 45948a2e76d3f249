package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/DevRico003/youtube-summarizer-sub000/internal/topics"
	"github.com/DevRico003/youtube-summarizer-sub000/internal/transcript"
)

// Summarize runs the full pipeline: chunk the transcript, summarize each
// chunk, combine, and — when the video duration is known — extract and
// normalize a topic timeline.
func (s *implSummarizer) Summarize(ctx context.Context, t transcript.Transcript) (*Result, error) {
	chunks := s.chunks.Chunk(t)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("transcript is empty")
	}

	s.logger.Info(ctx, "Summarizing transcript in %d chunk(s)", len(chunks))

	parts := make([]string, 0, len(chunks))
	for i, c := range chunks {
		s.logger.Debug(ctx, "[%d/%d] Summarizing chunk (%d chars)", i+1, len(chunks), len(c.Text))

		system, user := chunkPrompt(c, s.language, i+1, len(chunks))
		text, err := s.model.Complete(ctx, system, user)
		if err != nil {
			return nil, fmt.Errorf("summarize chunk %d/%d: %w", i+1, len(chunks), err)
		}
		parts = append(parts, strings.TrimSpace(text))
	}

	summary := strings.Join(parts, "\n\n")
	if len(chunks) > 1 {
		system, user := finalPrompt(summary, s.language)
		text, err := s.model.Complete(ctx, system, user)
		if err != nil {
			return nil, fmt.Errorf("combine chunk summaries: %w", err)
		}
		summary = strings.TrimSpace(text)
	}

	result := &Result{
		Summary:  summary,
		Language: s.language,
		Chunks:   chunks,
	}

	durationMs := t.DurationMs()
	if durationMs <= 0 {
		// No known duration, no timeline. Plain transcripts end here.
		return result, nil
	}
	result.DurationMs = durationMs

	result.Topics = s.extractTopics(ctx, t.Text(), summary, durationMs)
	return result, nil
}

// extractTopics asks the model for chapter intervals and forces them into a
// valid partition. Model failures degrade to the single full-span topic
// rather than failing the run; the summary is still worth returning.
func (s *implSummarizer) extractTopics(ctx context.Context, transcriptText, summary string, durationMs int64) []topics.Topic {
	system, user := topicPrompt(transcriptText, summary, durationMs)

	response, err := s.model.Complete(ctx, system, user)
	if err != nil {
		s.logger.Warn(ctx, "Topic extraction failed, falling back to full-video topic: %v", err)
		return topics.Normalize(nil, durationMs)
	}

	raw, err := topics.ParseRaw(response)
	if err != nil {
		s.logger.Warn(ctx, "Unparseable topic response, falling back to full-video topic: %v", err)
		return topics.Normalize(nil, durationMs)
	}

	return topics.Normalize(raw, durationMs)
}
