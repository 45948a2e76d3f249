package chunker

import (
	"strings"

	"github.com/DevRico003/youtube-summarizer-sub000/internal/transcript"
)

const (
	reasonTimeGap = "time_gap"
	reasonKeyword = "keyword"
)

// boundary marks a likely topic change before the segment at SegmentIndex.
type boundary struct {
	SegmentIndex int
	OffsetMs     int64
	Reason       string
}

// transitionPhrases is the built-in topic-transition table, English plus
// German. Known limitation: other transcript languages need extra phrases
// via WithKeywords; the table is deliberately not varied by segment
// language.
var transitionPhrases = []string{
	"next topic",
	"moving on",
	"let's move on",
	"let's talk about",
	"now let's",
	"turning to",
	"switching gears",
	"on to the next",
	"the next thing",
	"let's look at",
	"another topic",
	"to summarize",
	"in conclusion",
	"final topic",
	"wrapping up",
	"nächstes thema",
	"kommen wir zu",
	"zum nächsten punkt",
	"weiter geht's",
	"zusammenfassend",
}

// detectBoundaries scans adjacent segment pairs for silence gaps and
// topic-transition phrases. A qualifying gap wins over a keyword match for
// the same pair so a boundary is never recorded twice. Results are in
// ascending SegmentIndex order by construction.
func (b *Builder) detectBoundaries(segments []transcript.Segment) []boundary {
	var boundaries []boundary

	for i := 1; i < len(segments); i++ {
		prev := segments[i-1]
		cur := segments[i]

		gapMs := cur.OffsetMs - (prev.OffsetMs + prev.DurationMs)
		if gapMs >= b.gapThresholdMs {
			boundaries = append(boundaries, boundary{
				SegmentIndex: i,
				OffsetMs:     cur.OffsetMs,
				Reason:       reasonTimeGap,
			})
			continue
		}

		text := strings.ToLower(cur.Text)
		for _, phrase := range b.keywords {
			if strings.Contains(text, phrase) {
				boundaries = append(boundaries, boundary{
					SegmentIndex: i,
					OffsetMs:     cur.OffsetMs,
					Reason:       reasonKeyword,
				})
				break
			}
		}
	}

	return boundaries
}
