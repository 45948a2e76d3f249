package transcript

import (
	"regexp"
	"strconv"
	"strings"
)

//	1									sequence number
//	00:00:00,000 --> 00:00:01,830		start --> end
//	I'm happy to						line
//	have you here today.				line

var (
	reSrtIndex = regexp.MustCompile(`^\d+$`)
	reSrtTime  = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})[,.](\d{3})\s*-->\s*(\d{2}):(\d{2}):(\d{2})[,.](\d{3})`)
)

// ParseSRT parses SRT subtitle content into timed segments. Cues without a
// timestamp line are skipped; multi-line cue text is joined with spaces.
func ParseSRT(content, lang string) []Segment {
	if content == "" {
		return nil
	}

	var segments []Segment
	var startMs, endMs int64
	var textLines []string
	inCue := false

	flush := func() {
		if inCue && len(textLines) > 0 {
			segments = append(segments, Segment{
				Text:       strings.Join(textLines, " "),
				OffsetMs:   startMs,
				DurationMs: endMs - startMs,
				Lang:       lang,
			})
		}
		textLines = nil
		inCue = false
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)

		if line == "" {
			flush()
			continue
		}

		if reSrtIndex.MatchString(line) && !inCue {
			continue
		}

		if m := reSrtTime.FindStringSubmatch(line); m != nil {
			flush()
			startMs = srtTimeMs(m[1], m[2], m[3], m[4])
			endMs = srtTimeMs(m[5], m[6], m[7], m[8])
			inCue = true
			continue
		}

		if inCue {
			textLines = append(textLines, line)
		}
	}
	flush()

	return segments
}

func srtTimeMs(h, m, s, ms string) int64 {
	hours, _ := strconv.ParseInt(h, 10, 64)
	minutes, _ := strconv.ParseInt(m, 10, 64)
	seconds, _ := strconv.ParseInt(s, 10, 64)
	millis, _ := strconv.ParseInt(ms, 10, 64)
	return ((hours*60+minutes)*60+seconds)*1000 + millis
}
