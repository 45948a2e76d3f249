package summarizer

import (
	"github.com/DevRico003/youtube-summarizer-sub000/internal/chunker"
	"github.com/DevRico003/youtube-summarizer-sub000/internal/logger"
)

type implSummarizer struct {
	chunks   *chunker.Builder
	model    LanguageModel
	logger   logger.Logger
	language string
}

// New creates a Summarizer that chunks transcripts with the given builder
// and delegates all text generation to model.
func New(chunks *chunker.Builder, model LanguageModel, language string, log logger.Logger) Summarizer {
	if language == "" {
		language = "en"
	}
	return &implSummarizer{
		chunks:   chunks,
		model:    model,
		logger:   log,
		language: language,
	}
}
