package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/KR1PT1CS/LP1SpeedType/internal/game"
)

func TestRenderHistoryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderHistory(&buf, nil); err != nil {
		t.Fatalf("render history: %v", err)
	}
	if !strings.Contains(buf.String(), "No rounds played yet.") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestRenderHistoryRows(t *testing.T) {
	entries := []game.Result{
		{WPM: 41.25, Accuracy: 97, TimeTaken: 12.4},
		{WPM: 38.0, Accuracy: 82, TimeTaken: 14.0},
	}
	var buf bytes.Buffer
	if err := RenderHistory(&buf, entries); err != nil {
		t.Fatalf("render history: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Round") {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "#1 (latest)") || !strings.Contains(lines[1], "41.25") || !strings.Contains(lines[1], "97%") || !strings.Contains(lines[1], "12.4s") {
		t.Fatalf("unexpected latest row: %q", lines[1])
	}
	if !strings.Contains(lines[2], "#2") || !strings.Contains(lines[2], "38.00") || !strings.Contains(lines[2], "82%") {
		t.Fatalf("unexpected second row: %q", lines[2])
	}
}

func TestRenderSummary(t *testing.T) {
	entries := []game.Result{
		{WPM: 40, Accuracy: 90, TimeTaken: 10},
		{WPM: 60, Accuracy: 70, TimeTaken: 12},
	}
	var buf bytes.Buffer
	if err := RenderSummary(&buf, entries); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Rounds: 2", "Avg WPM: 50.00", "Best WPM: 60.00", "Avg Accuracy: 80.0%"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q: %s", want, out)
		}
	}
}
