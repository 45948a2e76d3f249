package chunker

import "strings"

// cutWindow is how far back from a window boundary we look for a clean
// sentence or word break.
const cutWindow = 200

var sentenceEnds = []string{". ", "! ", "? "}

// chunkByCharacters slices untimed text into overlapping windows of at most
// chunkSize characters, preferring sentence-aligned cuts.
func (b *Builder) chunkByCharacters(text string) []Chunk {
	if text == "" {
		return nil
	}
	if len(text) <= b.chunkSize {
		return []Chunk{{Text: strings.TrimSpace(text)}}
	}

	var chunks []Chunk
	start := 0
	for start < len(text) {
		end := start + b.chunkSize
		if end >= len(text) {
			end = len(text)
		} else {
			end = b.cutPoint(text, start, end)
		}

		if piece := strings.TrimSpace(text[start:end]); piece != "" {
			chunks = append(chunks, Chunk{Text: piece})
		}

		if end >= len(text) {
			break
		}
		next := end - b.overlap
		if next <= start {
			// The cut point regressed past the overlap; bail out
			// rather than loop forever.
			break
		}
		start = next
	}

	return chunks
}

// cutPoint searches the last cutWindow characters before end for a sentence
// end, then for a space, and falls back to a hard cut at end.
func (b *Builder) cutPoint(text string, start, end int) int {
	windowStart := end - cutWindow
	if windowStart < start {
		windowStart = start
	}
	window := text[windowStart:end]

	best := -1
	for _, mark := range sentenceEnds {
		if idx := strings.LastIndex(window, mark); idx >= 0 && idx+len(mark) > best {
			best = idx + len(mark)
		}
	}
	if best > 0 {
		return windowStart + best
	}

	if idx := strings.LastIndex(window, " "); idx > 0 {
		return windowStart + idx + 1
	}

	return end
}
