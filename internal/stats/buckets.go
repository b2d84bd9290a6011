package stats

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/KR1PT1CS/LP1SpeedType/internal/game"
)

const (
	maxBarWidth = 30
	barCell     = "█"
	barColor    = "\x1b[36m"
	colorReset  = "\x1b[0m"
)

// RenderBuckets writes a horizontal bar chart of accuracy bucket counts,
// one line per bucket in ascending accuracy order. Bars are scaled so the
// largest count fills the chart width; non-zero counts always draw at
// least one cell.
func RenderBuckets(w io.Writer, counts map[string]int, useColor bool) error {
	labels := game.BucketLabels()
	labelWidth := 0
	maxCount := 0
	for _, label := range labels {
		if len(label) > labelWidth {
			labelWidth = len(label)
		}
		if counts[label] > maxCount {
			maxCount = counts[label]
		}
	}
	for _, label := range labels {
		count := counts[label]
		bar := renderBar(count, maxCount)
		if useColor && bar != "" {
			bar = barColor + bar + colorReset
		}
		suffix := ""
		if count > 0 {
			suffix = fmt.Sprintf(" %d", count)
		}
		if _, err := fmt.Fprintf(w, "%*s │%s%s\n", labelWidth, label, bar, suffix); err != nil {
			return err
		}
	}
	return nil
}

func renderBar(count, maxCount int) string {
	if count <= 0 || maxCount <= 0 {
		return ""
	}
	width := count * maxBarWidth / maxCount
	if width < 1 {
		width = 1
	}
	return strings.Repeat(barCell, width)
}

// ShouldUseColor reports whether ANSI color should be used for the writer.
// NO_COLOR always wins; otherwise color is forced or enabled for TTYs.
func ShouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
