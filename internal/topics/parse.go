package topics

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseRaw decodes an LLM topic-extraction response into raw topics.
// Markdown code fences are stripped and both a bare array and a
// {"topics": [...]} wrapper are accepted. Records without a title are
// filtered out here so only well-formed intervals reach Normalize;
// numeric relationships are Normalize's job.
func ParseRaw(response string) ([]RawTopic, error) {
	payload := stripCodeFence(response)
	if payload == "" {
		return nil, fmt.Errorf("empty topic response")
	}

	var records []json.RawMessage
	if err := json.Unmarshal([]byte(payload), &records); err != nil {
		var wrapper struct {
			Topics []json.RawMessage `json:"topics"`
		}
		if werr := json.Unmarshal([]byte(payload), &wrapper); werr != nil {
			return nil, fmt.Errorf("decode topic response: %w", err)
		}
		records = wrapper.Topics
	}

	topics := make([]RawTopic, 0, len(records))
	for _, rec := range records {
		var rt RawTopic
		if err := json.Unmarshal(rec, &rt); err != nil {
			continue
		}
		if strings.TrimSpace(rt.Title) == "" {
			continue
		}
		topics = append(topics, rt)
	}

	return topics, nil
}

// stripCodeFence unwraps a ```json ... ``` fenced block, falling back to
// the widest bracketed span when the model wrapped JSON in prose.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx >= 0 {
			s = s[idx+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
		}
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		return strings.TrimSpace(s)
	}

	if !strings.HasPrefix(s, "[") && !strings.HasPrefix(s, "{") {
		start := strings.IndexAny(s, "[{")
		end := strings.LastIndexAny(s, "]}")
		if start >= 0 && end > start {
			return strings.TrimSpace(s[start : end+1])
		}
	}

	return s
}
