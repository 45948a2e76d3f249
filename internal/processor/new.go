package processor

import (
	"github.com/DevRico003/youtube-summarizer-sub000/internal/config"
	"github.com/DevRico003/youtube-summarizer-sub000/internal/logger"
	"github.com/DevRico003/youtube-summarizer-sub000/internal/summarizer"
)

type implProcessor struct {
	cfg        *config.Config
	summarizer summarizer.Summarizer
	logger     logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, sum summarizer.Summarizer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		summarizer: sum,
		logger:     log,
	}
}
