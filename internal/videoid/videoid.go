// Package videoid extracts YouTube video IDs from the URL shapes users
// paste: watch URLs, share links, embeds, shorts, or the bare ID itself.
package videoid

import (
	"fmt"
	"regexp"
	"strings"
)

var patterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11})(?:[?&#/]|$)`), // standard and shared URLs
	regexp.MustCompile(`embed/([0-9A-Za-z_-]{11})`),               // embed URLs
	regexp.MustCompile(`youtu\.be/([0-9A-Za-z_-]{11})`),           // shortened URLs
	regexp.MustCompile(`shorts/([0-9A-Za-z_-]{11})`),              // YouTube Shorts
	regexp.MustCompile(`^([0-9A-Za-z_-]{11})$`),                   // just the video ID
}

// Extract returns the 11-character video ID embedded in input.
func Extract(input string) (string, error) {
	input = strings.TrimSpace(input)

	for _, p := range patterns {
		if m := p.FindStringSubmatch(input); m != nil {
			return m[1], nil
		}
	}

	return "", fmt.Errorf("could not extract video ID from %q", input)
}
