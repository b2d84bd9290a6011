// Package game implements typing round scoring and the rolling result history.
package game

import (
	"errors"
	"math"
	"strings"
)

// ErrInvalidDuration reports an elapsed time that is zero or negative.
var ErrInvalidDuration = errors.New("elapsed time must be greater than zero")

// Result captures the outcome of a single typing round.
type Result struct {
	WPM       float64
	Accuracy  int
	TimeTaken float64
}

// Evaluate scores a completed round against its reference sentence.
func Evaluate(typed, reference string, elapsedSeconds float64) (Result, error) {
	wpm, err := CalculateWPM(typed, elapsedSeconds)
	if err != nil {
		return Result{}, err
	}
	return Result{
		WPM:       wpm,
		Accuracy:  CalculateAccuracy(typed, reference),
		TimeTaken: elapsedSeconds,
	}, nil
}

// CalculateWPM computes words per minute for the typed input. Words are
// whitespace-delimited tokens, normalized to a 60-second window.
func CalculateWPM(typed string, elapsedSeconds float64) (float64, error) {
	if elapsedSeconds <= 0 {
		return 0, ErrInvalidDuration
	}
	words := len(strings.Fields(typed))
	return float64(words) / (elapsedSeconds / 60.0), nil
}

// CalculateAccuracy computes the percentage of reference runes reproduced at
// the same position in the typed input, rounded half-up. An empty reference
// is a valid degenerate case and yields 0.
func CalculateAccuracy(typed, reference string) int {
	refRunes := []rune(reference)
	if len(refRunes) == 0 {
		return 0
	}
	typedRunes := []rune(typed)
	n := len(typedRunes)
	if len(refRunes) < n {
		n = len(refRunes)
	}
	matches := 0
	for i := 0; i < n; i++ {
		if typedRunes[i] == refRunes[i] {
			matches++
		}
	}
	accuracy := int(math.Floor(float64(matches)/float64(len(refRunes))*100 + 0.5))
	if accuracy < 0 {
		return 0
	}
	if accuracy > 100 {
		return 100
	}
	return accuracy
}
