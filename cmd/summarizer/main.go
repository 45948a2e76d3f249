package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/DevRico003/youtube-summarizer-sub000/internal/chunker"
	"github.com/DevRico003/youtube-summarizer-sub000/internal/config"
	"github.com/DevRico003/youtube-summarizer-sub000/internal/logger"
	"github.com/DevRico003/youtube-summarizer-sub000/internal/processor"
	"github.com/DevRico003/youtube-summarizer-sub000/internal/summarizer"
	"github.com/DevRico003/youtube-summarizer-sub000/internal/watcher"
	"github.com/DevRico003/youtube-summarizer-sub000/pkg/executor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	filePath := flag.String("file", "", "summarize a single transcript file and exit")
	flag.Parse()

	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "YouTube Transcript Summarizer")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Summary language: %s", cfg.Summary.Language)
	log.Info(ctx, "Chunk size: %d chars (overlap %d)", cfg.Chunking.ChunkSize, cfg.Chunking.Overlap)
	log.Info(ctx, "Topic gap threshold: %dms", cfg.Chunking.GapThresholdMs)
	log.Info(ctx, "Max concurrent processing: %d", cfg.Performance.MaxConcurrent)

	// Verify required directories exist
	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	// Initialize dependencies
	exec := executor.New()
	model, err := processor.NewCommandModel(exec, cfg.Summary.Command)
	if err != nil {
		log.Error(ctx, "Failed to create model adapter: %v", err)
		os.Exit(1)
	}

	chunks := chunker.New(
		chunker.WithChunkSize(cfg.Chunking.ChunkSize),
		chunker.WithOverlap(cfg.Chunking.Overlap),
		chunker.WithGapThreshold(cfg.Chunking.GapThresholdMs),
		chunker.WithKeywords(cfg.Chunking.ExtraKeywords),
	)

	sum := summarizer.New(chunks, model, cfg.Summary.Language, log)
	proc := processor.New(cfg, sum, log)

	// One-shot mode
	if *filePath != "" {
		if err := proc.Process(ctx, *filePath); err != nil {
			log.Error(ctx, "Failed to process %s: %v", *filePath, err)
			os.Exit(1)
		}
		return
	}

	// Create watcher with processor as handler and concurrency control
	w, err := watcher.New(cfg.Paths.Input, proc.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Summarizer is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Summarizer stopped")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
