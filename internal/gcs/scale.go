package gcs

import "github.com/emtprep/emtdrill/internal/content"

// Unselected marks a component the trainee has not chosen yet.
const Unselected = 0

// Component identifies one of the three GCS components.
type Component int

const (
	Eye Component = iota
	Verbal
	Motor
)

// Components lists the components in scoring order.
var Components = []Component{Eye, Verbal, Motor}

func (c Component) String() string {
	switch c {
	case Eye:
		return "Eye"
	case Verbal:
		return "Verbal"
	case Motor:
		return "Motor"
	default:
		return "Unknown"
	}
}

// Max returns the highest score of the component.
func (c Component) Max() int {
	return len(c.Levels())
}

// Levels returns the descriptors of the component, index 0 = score 1.
func (c Component) Levels() []string {
	switch c {
	case Eye:
		return EyeLevels
	case Verbal:
		return VerbalLevels
	case Motor:
		return MotorLevels
	default:
		return nil
	}
}

// Describe returns the descriptor for a score, or "" if out of range.
func (c Component) Describe(score int) string {
	levels := c.Levels()
	if score < 1 || score > len(levels) {
		return ""
	}
	return levels[score-1]
}

var (
	EyeLevels = []string{
		"No eye opening",
		"Opens to pain",
		"Opens to voice",
		"Opens spontaneously",
	}
	VerbalLevels = []string{
		"No verbal response",
		"Incomprehensible sounds",
		"Inappropriate words",
		"Confused",
		"Oriented",
	}
	MotorLevels = []string{
		"No motor response",
		"Extension to pain",
		"Abnormal flexion",
		"Withdraws from pain",
		"Localizes pain",
		"Obeys commands",
	}
)

// Score is a trainee's eye/verbal/motor selection.
type Score struct {
	Eye    int
	Verbal int
	Motor  int
}

// FromAnswer converts a bank answer to a Score.
func FromAnswer(a content.GCSAnswer) Score {
	return Score{Eye: a.Eye, Verbal: a.Verbal, Motor: a.Motor}
}

// Get returns the value of one component.
func (s Score) Get(c Component) int {
	switch c {
	case Eye:
		return s.Eye
	case Verbal:
		return s.Verbal
	case Motor:
		return s.Motor
	default:
		return Unselected
	}
}

// Set returns a copy of s with one component changed.
func (s Score) Set(c Component, v int) Score {
	switch c {
	case Eye:
		s.Eye = v
	case Verbal:
		s.Verbal = v
	case Motor:
		s.Motor = v
	}
	return s
}

// Complete reports whether all three components are selected.
func (s Score) Complete() bool {
	return s.Eye != Unselected && s.Verbal != Unselected && s.Motor != Unselected
}

// Total returns the summed GCS (3..15 for a complete score).
func (s Score) Total() int {
	return s.Eye + s.Verbal + s.Motor
}

// Severity classifies a head injury by total GCS.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// Classify maps a total score to its severity band.
func Classify(total int) Severity {
	switch {
	case total >= 13:
		return SeverityMild
	case total >= 9:
		return SeverityModerate
	default:
		return SeveritySevere
	}
}
