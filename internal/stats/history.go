package stats

import (
	"fmt"
	"io"

	"github.com/KR1PT1CS/LP1SpeedType/internal/game"
)

// RenderHistory writes the rolling history as an aligned table, newest
// round first.
func RenderHistory(w io.Writer, entries []game.Result) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No rounds played yet.")
		return err
	}
	headers := []string{"Round", "WPM", "Accuracy", "Time"}
	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		label := fmt.Sprintf("#%d", i+1)
		if i == 0 {
			label += " (latest)"
		}
		rows = append(rows, []string{
			label,
			fmt.Sprintf("%.2f", e.WPM),
			fmt.Sprintf("%d%%", e.Accuracy),
			fmt.Sprintf("%.1fs", e.TimeTaken),
		})
	}
	for _, line := range formatColumns(headers, rows, 1, 2, 3) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderSummary writes aggregate metrics over the recorded rounds.
func RenderSummary(w io.Writer, entries []game.Result) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No rounds played yet.")
		return err
	}
	var totalWPM, totalAcc float64
	bestWPM := 0.0
	for _, e := range entries {
		totalWPM += e.WPM
		totalAcc += float64(e.Accuracy)
		if e.WPM > bestWPM {
			bestWPM = e.WPM
		}
	}
	count := float64(len(entries))
	if _, err := fmt.Fprintf(w, "Rounds: %d\n", len(entries)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg WPM: %.2f\n", totalWPM/count); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Best WPM: %.2f\n", bestWPM); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg Accuracy: %.1f%%\n", totalAcc/count); err != nil {
		return err
	}
	return nil
}
