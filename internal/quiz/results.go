package quiz

import (
	"fmt"
	"math"
	"slices"
)

// PassPercentage is the minimum percentage counted as a pass.
const PassPercentage = 60

// Results is the read-only snapshot of a finished quiz.
type Results struct {
	Score      int
	Total      int
	Percentage int
	Elapsed    string
	WrongLog   []Miss
}

// Passed reports whether the percentage reaches PassPercentage.
func (r Results) Passed() bool {
	return r.Percentage >= PassPercentage
}

// Results returns the final snapshot. Only valid once finished.
func (s *Session) Results() (Results, error) {
	if s.phase != PhaseFinished {
		return Results{}, ErrNotFinished
	}
	total := len(s.questions)
	return Results{
		Score:      s.score,
		Total:      total,
		Percentage: int(math.Round(float64(s.score) / float64(total) * 100)),
		Elapsed:    FormatElapsed(s.elapsed),
		WrongLog:   slices.Clone(s.wrongLog),
	}, nil
}

// FormatElapsed formats seconds as mm:ss. Minutes are not capped at 59.
func FormatElapsed(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
