package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Chunking    ChunkingConfig    `yaml:"chunking"`
	Summary     SummaryConfig     `yaml:"summary"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type ChunkingConfig struct {
	ChunkSize      int      `yaml:"chunk_size"`
	Overlap        int      `yaml:"overlap"`
	GapThresholdMs int64    `yaml:"gap_threshold_ms"`
	ExtraKeywords  []string `yaml:"extra_keywords"`
}

type SummaryConfig struct {
	Language string   `yaml:"language"`
	Command  []string `yaml:"command"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads and validates a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}
	if len(c.Summary.Command) == 0 {
		return fmt.Errorf("summary.command is required")
	}

	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Chunking.ChunkSize == 0 {
		c.Chunking.ChunkSize = 7000
	}
	if c.Chunking.Overlap == 0 {
		c.Chunking.Overlap = 1000
	}
	if c.Chunking.GapThresholdMs == 0 {
		c.Chunking.GapThresholdMs = 3000
	}
	if c.Chunking.Overlap >= c.Chunking.ChunkSize {
		return fmt.Errorf("chunking.overlap must be smaller than chunking.chunk_size")
	}
	if c.Summary.Language == "" {
		c.Summary.Language = "en"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
