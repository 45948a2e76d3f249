// Package topics turns untrusted, LLM-proposed topic intervals into a valid
// timeline: a sorted, gapless, non-overlapping partition of the full video
// duration.
package topics

// RawTopic is an LLM-proposed interval. It may overlap its neighbours,
// leave gaps, be unsorted, or fall outside the video bounds.
type RawTopic struct {
	Title   string  `json:"title"`
	StartMs float64 `json:"startMs"`
	EndMs   float64 `json:"endMs"`
}

// Topic is one entry of a normalized timeline. Consecutive topics share
// exact boundary points; Order is a dense 0-based index.
type Topic struct {
	Title   string `json:"title"`
	StartMs int64  `json:"startMs"`
	EndMs   int64  `json:"endMs"`
	Order   int    `json:"order"`
}

// FallbackTitle is the single-topic sentinel used when no usable topics
// survive normalization.
const FallbackTitle = "Full Video Content"

// minTopicMs is the smallest topic duration normalization aims for; the
// clamp can still fall short right at the end of the video.
const minTopicMs = 1000
