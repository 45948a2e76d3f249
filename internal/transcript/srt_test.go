package transcript

import "testing"

const sampleSRT = `1
00:00:00,000 --> 00:00:01,830
I'm happy to
have you here today.

2
00:00:01,910 --> 00:00:03,610
As I'm sure you're all
aware, there's going

3
00:01:03,610 --> 00:01:05,000
to be a lot to cover.
`

func TestParseSRT(t *testing.T) {
	segments := ParseSRT(sampleSRT, "en")

	if len(segments) != 3 {
		t.Fatalf("got %d segments, want 3", len(segments))
	}

	first := segments[0]
	if first.Text != "I'm happy to have you here today." {
		t.Errorf("first.Text = %q", first.Text)
	}
	if first.OffsetMs != 0 {
		t.Errorf("first.OffsetMs = %d, want 0", first.OffsetMs)
	}
	if first.DurationMs != 1830 {
		t.Errorf("first.DurationMs = %d, want 1830", first.DurationMs)
	}
	if first.Lang != "en" {
		t.Errorf("first.Lang = %q, want en", first.Lang)
	}

	second := segments[1]
	if second.OffsetMs != 1910 {
		t.Errorf("second.OffsetMs = %d, want 1910", second.OffsetMs)
	}

	third := segments[2]
	if third.OffsetMs != 63610 {
		t.Errorf("third.OffsetMs = %d, want 63610", third.OffsetMs)
	}
	if third.DurationMs != 1390 {
		t.Errorf("third.DurationMs = %d, want 1390", third.DurationMs)
	}
}

func TestParseSRTEmpty(t *testing.T) {
	if got := ParseSRT("", "en"); got != nil {
		t.Errorf("ParseSRT(\"\") = %v, want nil", got)
	}
}

func TestParseSRTDotMillis(t *testing.T) {
	// WebVTT-style dot separators appear in the wild
	content := `1
00:00:01.500 --> 00:00:02.750
dot separated
`
	segments := ParseSRT(content, "")
	if len(segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(segments))
	}
	if segments[0].OffsetMs != 1500 || segments[0].DurationMs != 1250 {
		t.Errorf("segment timing = %d/%d, want 1500/1250", segments[0].OffsetMs, segments[0].DurationMs)
	}
}

func TestParseSRTCueWithoutTrailingBlank(t *testing.T) {
	content := "1\n00:00:00,000 --> 00:00:01,000\nlast cue no newline"
	segments := ParseSRT(content, "")
	if len(segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(segments))
	}
	if segments[0].Text != "last cue no newline" {
		t.Errorf("Text = %q", segments[0].Text)
	}
}
