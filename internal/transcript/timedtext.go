package transcript

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// YouTube timedtext XML:
//
//	<timedtext>
//	  <body>
//	    <p t="1300" d="2500">caption text</p>
//	  </body>
//	</timedtext>
//
// Word-level variants nest <s> elements inside <p>; their text is merged
// into the parent cue.
type timedText struct {
	XMLName xml.Name      `xml:"timedtext"`
	Body    timedTextBody `xml:"body"`
}

type timedTextBody struct {
	Paragraphs []timedTextPara `xml:"p"`
}

type timedTextPara struct {
	TimeMs     int64           `xml:"t,attr"`
	DurationMs int64           `xml:"d,attr"`
	Content    string          `xml:",chardata"`
	Words      []timedTextWord `xml:"s"`
}

type timedTextWord struct {
	Text string `xml:",chardata"`
}

// ParseTimedText parses YouTube timedtext caption XML into timed segments.
func ParseTimedText(data []byte, lang string) ([]Segment, error) {
	var doc timedText
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse timedtext: %w", err)
	}

	segments := make([]Segment, 0, len(doc.Body.Paragraphs))
	for _, p := range doc.Body.Paragraphs {
		text := strings.TrimSpace(p.Content)
		if len(p.Words) > 0 {
			parts := make([]string, 0, len(p.Words))
			for _, w := range p.Words {
				if t := strings.TrimSpace(w.Text); t != "" {
					parts = append(parts, t)
				}
			}
			text = strings.Join(parts, " ")
		}
		if text == "" {
			continue
		}

		segments = append(segments, Segment{
			Text:       text,
			OffsetMs:   p.TimeMs,
			DurationMs: p.DurationMs,
			Lang:       lang,
		})
	}

	return segments, nil
}
