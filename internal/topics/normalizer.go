package topics

import (
	"math"
	"sort"
)

// Normalize forces raw intervals into a strictly contiguous partition of
// [0, videoDurationMs]: sorted, first starting at 0, last ending at the
// duration, no gaps or overlaps, every duration positive.
//
// Only the model's topic ordering is trusted, not its exact boundaries:
// after the first topic every start is chained from the previous computed
// end, and boundary disagreements with the next raw start are resolved to
// the midpoint. This deliberately overrides precise starts the model may
// have emitted; trusting each interval independently would reintroduce the
// gaps and overlaps this pass exists to remove.
//
// Never returns an empty slice for videoDurationMs > 0; when nothing
// usable survives it falls back to a single full-span topic. Callers must
// not pass a non-positive duration.
func Normalize(raw []RawTopic, videoDurationMs int64) []Topic {
	if len(raw) == 0 {
		return fallback(videoDurationMs)
	}

	sorted := make([]RawTopic, len(raw))
	copy(sorted, raw)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartMs < sorted[j].StartMs
	})

	// Local repair: chain starts, settle disputed ends at the midpoint,
	// clamp tiny and out-of-bounds intervals.
	adjusted := make([]Topic, 0, len(sorted))
	for i, rt := range sorted {
		t := Topic{Title: rt.Title}

		if i == 0 {
			t.StartMs = 0
		} else {
			t.StartMs = adjusted[i-1].EndMs
		}

		if i == len(sorted)-1 {
			t.EndMs = videoDurationMs
		} else {
			end := rt.EndMs
			if next := sorted[i+1].StartMs; end != next {
				// Overlap or gap against the next raw topic:
				// split the difference.
				end = math.Round((end + next) / 2)
			}
			t.EndMs = int64(end)
		}

		if t.EndMs > videoDurationMs {
			t.EndMs = videoDurationMs
		}
		if t.EndMs-t.StartMs < minTopicMs {
			t.EndMs = t.StartMs + minTopicMs
			if t.EndMs > videoDurationMs {
				t.EndMs = videoDurationMs
			}
		}

		adjusted = append(adjusted, t)
	}

	// Global enforcement: re-chain starts off the repaired ends and drop
	// whatever collapsed to nothing. A dropped topic loses its title; the
	// neighbouring interval absorbs its span.
	out := make([]Topic, 0, len(adjusted))
	prevEnd := int64(0)
	for _, t := range adjusted {
		t.StartMs = prevEnd
		if t.EndMs <= t.StartMs {
			continue
		}
		prevEnd = t.EndMs
		out = append(out, t)
	}

	if len(out) == 0 {
		return fallback(videoDurationMs)
	}

	// Covers the case where the original last entry was dropped.
	out[len(out)-1].EndMs = videoDurationMs

	for i := range out {
		out[i].Order = i
	}
	return out
}

func fallback(videoDurationMs int64) []Topic {
	return []Topic{{Title: FallbackTitle, StartMs: 0, EndMs: videoDurationMs}}
}
