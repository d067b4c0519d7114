package quiz

import (
	"errors"

	"github.com/emtprep/emtdrill/internal/content"
	"github.com/emtprep/emtdrill/internal/shuffle"
)

// Length is the fixed number of questions in a quiz.
const Length = 10

var (
	// ErrInsufficientPool is returned when a category has fewer than Length questions.
	ErrInsufficientPool = errors.New("not enough questions for a quiz")

	// ErrNotInProgress is returned when an answer is submitted outside InProgress.
	ErrNotInProgress = errors.New("quiz is not in progress")

	// ErrAnswerLocked is returned when an answer arrives while the previous
	// one is still being revealed.
	ErrAnswerLocked = errors.New("answer already submitted for this question")

	// ErrNotFinished is returned when results are requested before the last answer.
	ErrNotFinished = errors.New("quiz is not finished")
)

// Phase is the lifecycle state of a quiz.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseInProgress
	PhaseFinished // Terminal; results are available
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseInProgress:
		return "in-progress"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Miss records a wrongly answered question for the review list.
type Miss struct {
	Question      string
	CorrectAnswer string
	Chosen        string
}

// Presentation is the render-ready form of the current question.
type Presentation struct {
	Number   int // 1-based
	Total    int
	Question string
	Options  []string
}

// Feedback is the outcome of a submitted answer.
type Feedback struct {
	Correct       bool
	Chosen        string
	CorrectAnswer string
}

// Session is a timed multiple-choice test over a fixed sample of questions.
type Session struct {
	category  content.Category
	pool      []content.Question
	questions []content.Question
	index     int
	score     int
	elapsed   int
	wrongLog  []Miss
	phase     Phase

	// options caches the shuffled options of questions[index].
	options []string

	// revealing is true between a submitted answer and Advance.
	revealing bool
	last      *Feedback

	src shuffle.Source
}
