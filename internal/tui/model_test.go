package tui

import (
	"strings"
	"testing"

	"github.com/KR1PT1CS/LP1SpeedType/internal/game"
	"github.com/KR1PT1CS/LP1SpeedType/internal/sentences"
)

func newTestModel() *Model {
	return NewModel([]string{"the quick brown fox"}, sentences.NewPicker(), game.NewHistory(), false)
}

func TestFinishRoundRecordsResult(t *testing.T) {
	m := newTestModel()
	m.finishRound("the quick brown fox", 60.0)

	if m.screen != screenResults {
		t.Fatalf("expected results screen after finishing a round")
	}
	if m.round != 1 {
		t.Fatalf("expected round 1, got %d", m.round)
	}
	if m.history.Len() != 1 {
		t.Fatalf("expected 1 history entry, got %d", m.history.Len())
	}
	entry := m.history.Entries()[0]
	if entry.WPM != 4.0 || entry.Accuracy != 100 {
		t.Fatalf("unexpected recorded result: %+v", entry)
	}
	if m.errMsg != "" {
		t.Fatalf("unexpected error message: %q", m.errMsg)
	}
}

func TestFinishRoundInvalidDurationKeepsRoundArmed(t *testing.T) {
	m := newTestModel()
	m.finishRound("", 0)

	if m.screen != screenTyping {
		t.Fatalf("expected typing screen to stay active")
	}
	if m.round != 0 || m.history.Len() != 0 {
		t.Fatalf("expected no round recorded")
	}
	if m.errMsg == "" {
		t.Fatalf("expected an inline error message")
	}
}

func TestNextRoundResetsState(t *testing.T) {
	m := newTestModel()
	m.finishRound("the quick brown fox", 30.0)
	m.nextRound()

	if m.screen != screenTyping {
		t.Fatalf("expected typing screen after next round")
	}
	if m.started || m.input.Value() != "" || m.errMsg != "" {
		t.Fatalf("expected reset round state")
	}
	if len(m.targetRunes) == 0 {
		t.Fatalf("expected a new target sentence")
	}
	if m.history.Len() != 1 {
		t.Fatalf("history must survive round resets")
	}
}

func TestBuildHistoryRows(t *testing.T) {
	entries := []game.Result{
		{WPM: 52.5, Accuracy: 98, TimeTaken: 11.2},
		{WPM: 47.0, Accuracy: 91, TimeTaken: 12.8},
	}
	rows := buildHistoryRows(entries)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "#1 (latest)" || rows[0][1] != "52.50" || rows[0][2] != "98%" || rows[0][3] != "11.2s" {
		t.Fatalf("unexpected first row: %v", rows[0])
	}
	if rows[1][0] != "#2" || rows[1][1] != "47.00" {
		t.Fatalf("unexpected second row: %v", rows[1])
	}
}

func TestViewResultsContainsChartAndSummary(t *testing.T) {
	m := newTestModel()
	m.finishRound("the quick brown fox", 60.0)

	out := m.viewResults()
	for _, want := range []string{"Round 1", "Accuracy distribution", "100%", "Rounds: 1", "Avg WPM: 4.00"} {
		if !strings.Contains(out, want) {
			t.Fatalf("results view missing %q:\n%s", want, out)
		}
	}
}
