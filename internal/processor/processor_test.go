package processor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevRico003/youtube-summarizer-sub000/internal/config"
	"github.com/DevRico003/youtube-summarizer-sub000/internal/logger"
	"github.com/DevRico003/youtube-summarizer-sub000/internal/summarizer"
	"github.com/DevRico003/youtube-summarizer-sub000/internal/topics"
	"github.com/DevRico003/youtube-summarizer-sub000/internal/transcript"
)

type fakeSummarizer struct {
	result *summarizer.Result
	got    transcript.Transcript
}

func (f *fakeSummarizer) Summarize(ctx context.Context, t transcript.Transcript) (*summarizer.Result, error) {
	f.got = t
	return f.result, nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	cfg := &config.Config{
		Paths: config.PathsConfig{
			Input:    filepath.Join(root, "input"),
			Output:   filepath.Join(root, "output"),
			Archived: filepath.Join(root, "archived"),
		},
		Summary: config.SummaryConfig{Language: "en", Command: []string{"true"}},
	}
	require.NoError(t, cfg.Validate())
	require.NoError(t, os.MkdirAll(cfg.Paths.Input, 0755))
	return cfg
}

func TestProcessSRT(t *testing.T) {
	cfg := testConfig(t)

	srt := "1\n00:00:00,000 --> 00:00:05,000\nhello there\n"
	inputPath := filepath.Join(cfg.Paths.Input, "dQw4w9WgXcQ.srt")
	require.NoError(t, os.WriteFile(inputPath, []byte(srt), 0644))

	fake := &fakeSummarizer{result: &summarizer.Result{
		Summary:    "A summary.",
		DurationMs: 5000,
		Topics:     []topics.Topic{{Title: "All", StartMs: 0, EndMs: 5000, Order: 0}},
	}}

	p := New(cfg, fake, logger.New("error"))
	require.NoError(t, p.Process(context.Background(), inputPath))

	// The summarizer saw a timed transcript.
	assert.True(t, fake.got.IsTimed())
	require.Len(t, fake.got.Segments(), 1)
	assert.Equal(t, "hello there", fake.got.Segments()[0].Text)

	// Outputs exist under the video ID stem.
	for _, name := range []string{"dQw4w9WgXcQ.md", "dQw4w9WgXcQ.timeline.json"} {
		_, err := os.Stat(filepath.Join(cfg.Paths.Output, name))
		assert.NoError(t, err, "missing output %s", name)
	}

	// Input was archived.
	_, err := os.Stat(inputPath)
	assert.True(t, os.IsNotExist(err), "input should be moved away")
	_, err = os.Stat(filepath.Join(cfg.Paths.Archived, "dQw4w9WgXcQ.srt"))
	assert.NoError(t, err)
}

func TestProcessPlainText(t *testing.T) {
	cfg := testConfig(t)

	inputPath := filepath.Join(cfg.Paths.Input, "notes.txt")
	require.NoError(t, os.WriteFile(inputPath, []byte("plain transcript text"), 0644))

	fake := &fakeSummarizer{result: &summarizer.Result{Summary: "Plain summary."}}

	p := New(cfg, fake, logger.New("error"))
	require.NoError(t, p.Process(context.Background(), inputPath))

	assert.False(t, fake.got.IsTimed())

	// No timeline output without topics.
	_, err := os.Stat(filepath.Join(cfg.Paths.Output, "notes.timeline.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestProcessEmptyFile(t *testing.T) {
	cfg := testConfig(t)

	inputPath := filepath.Join(cfg.Paths.Input, "empty.txt")
	require.NoError(t, os.WriteFile(inputPath, []byte("   "), 0644))

	p := New(cfg, &fakeSummarizer{}, logger.New("error"))
	assert.Error(t, p.Process(context.Background(), inputPath))
}

func TestOutputBase(t *testing.T) {
	p := &implProcessor{}

	tests := []struct {
		path string
		want string
	}{
		{"/in/dQw4w9WgXcQ.srt", "dQw4w9WgXcQ"},
		{"/in/my lecture notes.txt", "my lecture notes"},
		{"/in/talk.xml", "talk"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, p.outputBase(tt.path))
	}
}
