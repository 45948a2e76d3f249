package transcript

import "strings"

// Segment is a single caption cue with its timing, ordered by OffsetMs
// ascending within a transcript.
type Segment struct {
	Text       string `json:"text"`
	OffsetMs   int64  `json:"offsetMs"`
	DurationMs int64  `json:"durationMs"`
	Lang       string `json:"lang,omitempty"`
}

// Transcript is either plain text without timing or a timed segment
// sequence. The two variants drive different chunking strategies, so the
// distinction is carried explicitly instead of being re-derived downstream.
type Transcript struct {
	text     string
	segments []Segment
	timed    bool
}

// Plain wraps untimed transcript text.
func Plain(text string) Transcript {
	return Transcript{text: text}
}

// Timed wraps a timed segment sequence.
func Timed(segments []Segment) Transcript {
	return Transcript{segments: segments, timed: true}
}

// IsTimed reports whether the transcript carries per-segment timing.
func (t Transcript) IsTimed() bool {
	return t.timed
}

// Segments returns the timed cues. Nil for plain transcripts.
func (t Transcript) Segments() []Segment {
	return t.segments
}

// Text returns the transcript as a single string. Timed segments are joined
// with single spaces.
func (t Transcript) Text() string {
	if !t.timed {
		return t.text
	}

	parts := make([]string, len(t.segments))
	for i, s := range t.segments {
		parts[i] = s.Text
	}
	return strings.Join(parts, " ")
}

// DurationMs returns the end of the last cue, or 0 for plain transcripts.
func (t Transcript) DurationMs() int64 {
	if !t.timed || len(t.segments) == 0 {
		return 0
	}

	last := t.segments[len(t.segments)-1]
	return last.OffsetMs + last.DurationMs
}
