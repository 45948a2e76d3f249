package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/DevRico003/youtube-summarizer-sub000/internal/export"
	"github.com/DevRico003/youtube-summarizer-sub000/internal/summarizer"
	"github.com/DevRico003/youtube-summarizer-sub000/internal/transcript"
	"github.com/DevRico003/youtube-summarizer-sub000/internal/videoid"
)

// Process runs the full summarization pipeline for one transcript file:
// parse, summarize, write outputs, archive the input.
func (p *implProcessor) Process(ctx context.Context, filePath string) error {
	startTime := time.Now()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing transcript: %s", filePath)
	p.logger.Info(ctx, "========================================")

	// Step 1: Parse the transcript file
	tr, err := p.parseTranscript(filePath)
	if err != nil {
		return fmt.Errorf("parse transcript: %w", err)
	}

	// Step 2: Summarize (and extract the timeline when timed)
	result, err := p.summarizer.Summarize(ctx, tr)
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}

	// Step 3: Write outputs
	base := p.outputBase(filePath)
	if err := p.writeOutputs(ctx, base, result); err != nil {
		return fmt.Errorf("write outputs: %w", err)
	}

	// Step 4: Move processed transcript to the archived folder
	if err := p.moveToArchived(ctx, filePath); err != nil {
		p.logger.Warn(ctx, "Failed to archive input: %v", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed in %s", time.Since(startTime))
	p.logger.Info(ctx, "Output base: %s", filepath.Join(p.cfg.Paths.Output, base))
	p.logger.Info(ctx, "========================================")

	return nil
}

// parseTranscript dispatches on file extension: .srt and .xml carry
// timing, everything else is treated as plain text.
func (p *implProcessor) parseTranscript(filePath string) (transcript.Transcript, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return transcript.Transcript{}, err
	}

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".srt":
		segments := transcript.ParseSRT(string(data), p.cfg.Summary.Language)
		if len(segments) == 0 {
			return transcript.Transcript{}, fmt.Errorf("no cues found in %s", filePath)
		}
		return transcript.Timed(segments), nil

	case ".xml":
		segments, err := transcript.ParseTimedText(data, p.cfg.Summary.Language)
		if err != nil {
			return transcript.Transcript{}, err
		}
		if len(segments) == 0 {
			return transcript.Transcript{}, fmt.Errorf("no cues found in %s", filePath)
		}
		return transcript.Timed(segments), nil

	default:
		text := strings.TrimSpace(string(data))
		if text == "" {
			return transcript.Transcript{}, fmt.Errorf("%s is empty", filePath)
		}
		return transcript.Plain(text), nil
	}
}

// outputBase derives the output file stem. File stems that embed a YouTube
// URL or ID collapse to the bare 11-character ID.
func (p *implProcessor) outputBase(filePath string) string {
	stem := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))

	if id, err := videoid.Extract(stem); err == nil {
		return id
	}
	return stem
}

func (p *implProcessor) writeOutputs(ctx context.Context, base string, result *summarizer.Result) error {
	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	md := fmt.Sprintf("# %s\n\n_%s_\n\n%s\n",
		base,
		time.Now().Format("2006-01-02 15:04"),
		strings.TrimSpace(result.Summary),
	)
	mdPath := filepath.Join(p.cfg.Paths.Output, base+".md")
	if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	p.logger.Info(ctx, "Summary written: %s", mdPath)

	if len(result.Topics) > 0 {
		data, err := json.MarshalIndent(result.Topics, "", "  ")
		if err != nil {
			return fmt.Errorf("encode timeline: %w", err)
		}
		timelinePath := filepath.Join(p.cfg.Paths.Output, base+".timeline.json")
		if err := os.WriteFile(timelinePath, data, 0644); err != nil {
			return fmt.Errorf("write timeline: %w", err)
		}
		p.logger.Info(ctx, "Timeline written: %s (%d topics)", timelinePath, len(result.Topics))
	}

	docxPath := filepath.Join(p.cfg.Paths.Output, base+".docx")
	if err := export.WriteReport(base, result, docxPath); err != nil {
		// The markdown summary is already on disk; a report failure
		// should not fail the whole run.
		p.logger.Warn(ctx, "Failed to write docx report: %v", err)
	} else {
		p.logger.Info(ctx, "Report written: %s", docxPath)
	}

	return nil
}
