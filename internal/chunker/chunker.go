// Package chunker splits transcripts into bounded text chunks for
// sequential LLM summarization. Timed transcripts are cut at detected topic
// boundaries; plain text falls back to character windows with overlap.
package chunker

import (
	"strings"

	"github.com/DevRico003/youtube-summarizer-sub000/internal/transcript"
)

const (
	defaultChunkSize      = 7000
	defaultOverlap        = 1000
	defaultGapThresholdMs = 3000
)

// Chunk is one bounded span of transcript text. Timing fields and
// SegmentIndices are populated only when the source transcript was timed.
type Chunk struct {
	Text           string `json:"text"`
	StartMs        int64  `json:"startMs,omitempty"`
	EndMs          int64  `json:"endMs,omitempty"`
	SegmentIndices []int  `json:"segmentIndices,omitempty"`
	Timed          bool   `json:"timed"`
}

// Builder chunks transcripts. The zero-value configuration matches the
// tuned production defaults; options exist mainly for tests and for
// locale-specific keyword injection.
type Builder struct {
	chunkSize      int
	overlap        int
	gapThresholdMs int64
	keywords       []string
}

type Option func(*Builder)

// WithChunkSize sets the character-chunking window size.
func WithChunkSize(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.chunkSize = n
		}
	}
}

// WithOverlap sets the character-chunking overlap.
func WithOverlap(n int) Option {
	return func(b *Builder) {
		if n >= 0 {
			b.overlap = n
		}
	}
}

// WithGapThreshold sets the silence gap, in milliseconds, treated as a
// topic boundary.
func WithGapThreshold(ms int64) Option {
	return func(b *Builder) {
		if ms > 0 {
			b.gapThresholdMs = ms
		}
	}
}

// WithKeywords appends extra topic-transition phrases to the built-in
// table. Matching is case-insensitive substring containment.
func WithKeywords(phrases []string) Option {
	return func(b *Builder) {
		for _, p := range phrases {
			if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
				b.keywords = append(b.keywords, p)
			}
		}
	}
}

// New creates a Builder with the given options applied over the defaults.
func New(opts ...Option) *Builder {
	b := &Builder{
		chunkSize:      defaultChunkSize,
		overlap:        defaultOverlap,
		gapThresholdMs: defaultGapThresholdMs,
		keywords:       append([]string(nil), transitionPhrases...),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Chunk converts a transcript into an ordered chunk sequence. Timed
// transcripts are cut at topic boundaries; everything else goes through
// character-based chunking.
func (b *Builder) Chunk(t transcript.Transcript) []Chunk {
	if !t.IsTimed() || len(t.Segments()) == 0 {
		return b.chunkByCharacters(t.Text())
	}
	return b.chunkBySegments(t.Segments())
}

func (b *Builder) chunkBySegments(segments []transcript.Segment) []Chunk {
	boundaries := b.detectBoundaries(segments)
	if len(boundaries) == 0 {
		return []Chunk{segmentChunk(segments, 0, len(segments))}
	}

	var chunks []Chunk
	cur := 0
	for _, bd := range boundaries {
		// Consecutive boundaries at the same index produce an empty
		// slice; skip it.
		if bd.SegmentIndex > cur {
			chunks = append(chunks, segmentChunk(segments, cur, bd.SegmentIndex))
		}
		cur = bd.SegmentIndex
	}
	if cur < len(segments) {
		chunks = append(chunks, segmentChunk(segments, cur, len(segments)))
	}

	return chunks
}

// segmentChunk builds one chunk from segments[start:end]; end is exclusive
// and the slice must be non-empty.
func segmentChunk(segments []transcript.Segment, start, end int) Chunk {
	texts := make([]string, 0, end-start)
	indices := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		texts = append(texts, segments[i].Text)
		indices = append(indices, i)
	}

	first := segments[start]
	last := segments[end-1]

	return Chunk{
		Text:           strings.Join(texts, " "),
		StartMs:        first.OffsetMs,
		EndMs:          last.OffsetMs + last.DurationMs,
		SegmentIndices: indices,
		Timed:          true,
	}
}
