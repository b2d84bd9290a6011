package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/KR1PT1CS/LP1SpeedType/internal/game"
)

func TestRenderBucketsLinesAndScaling(t *testing.T) {
	h := game.NewHistory()
	for _, accuracy := range []int{100, 100, 95, 5} {
		h.Record(game.Result{WPM: 40, Accuracy: accuracy, TimeTaken: 10})
	}

	var buf bytes.Buffer
	if err := RenderBuckets(&buf, h.BucketCounts(), false); err != nil {
		t.Fatalf("render buckets: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != game.BucketCount {
		t.Fatalf("expected %d lines, got %d", game.BucketCount, len(lines))
	}

	full := findLine(t, lines, "100%")
	if strings.Count(full, barCell) != maxBarWidth {
		t.Fatalf("expected full bar for max count, got %q", full)
	}
	if !strings.HasSuffix(full, " 2") {
		t.Fatalf("expected count suffix 2, got %q", full)
	}

	half := findLine(t, lines, "90%-99%")
	if strings.Count(half, barCell) != maxBarWidth/2 {
		t.Fatalf("expected half-width bar, got %q", half)
	}

	empty := findLine(t, lines, "10%-19%")
	if strings.Contains(empty, barCell) {
		t.Fatalf("expected empty bar, got %q", empty)
	}
}

func TestRenderBucketsAllEmpty(t *testing.T) {
	h := game.NewHistory()
	var buf bytes.Buffer
	if err := RenderBuckets(&buf, h.BucketCounts(), false); err != nil {
		t.Fatalf("render buckets: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, barCell) {
		t.Fatalf("expected no bars for empty history: %q", out)
	}
	if len(strings.Split(strings.TrimRight(out, "\n"), "\n")) != game.BucketCount {
		t.Fatalf("expected one line per bucket: %q", out)
	}
}

func TestRenderBucketsColor(t *testing.T) {
	h := game.NewHistory()
	h.Record(game.Result{WPM: 40, Accuracy: 50, TimeTaken: 10})

	var buf bytes.Buffer
	if err := RenderBuckets(&buf, h.BucketCounts(), true); err != nil {
		t.Fatalf("render buckets: %v", err)
	}
	if !strings.Contains(buf.String(), barColor) {
		t.Fatalf("expected color escape in output")
	}
}

func TestShouldUseColorNoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	if ShouldUseColor(&buf, true) {
		t.Fatalf("expected NO_COLOR to disable color")
	}
}

func TestShouldUseColorNonFile(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	var buf bytes.Buffer
	if ShouldUseColor(&buf, false) {
		t.Fatalf("expected non-file writer to disable color")
	}
	if !ShouldUseColor(&buf, true) {
		t.Fatalf("expected force to enable color")
	}
}

func findLine(t *testing.T, lines []string, label string) string {
	t.Helper()
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), label+" │") {
			return line
		}
	}
	t.Fatalf("no line for bucket %q in %v", label, lines)
	return ""
}
