package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/emtprep/emtdrill/internal/content"
	"github.com/emtprep/emtdrill/internal/deck"
	"github.com/emtprep/emtdrill/internal/gcs"
	"github.com/emtprep/emtdrill/internal/quiz"
)

// TickInterval is the granularity of the quiz clock.
const TickInterval = time.Second

// Mode is the screen-level state of the shell.
type Mode int

const (
	ModeMenu     Mode = iota
	ModeLearning      // Deck session live
	ModeTest          // Quiz session in progress
	ModeResults       // Quiz finished, results snapshot live
	ModeGCS           // GCS session live
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeLearning:
		return "learning"
	case ModeTest:
		return "test"
	case ModeResults:
		return "results"
	case ModeGCS:
		return "gcs"
	default:
		return "unknown"
	}
}

// Command is an input to Dispatch: a user action or a timer event.
type Command interface {
	command()
}

// SelectCategory starts a deck (ModeLearning) or a quiz (ModeTest).
type SelectCategory struct {
	Mode     Mode
	Category content.Category
}

// Flip starts a card transition; the deck moves when FlipElapsed fires.
type Flip struct {
	Direction deck.Direction
}

// SubmitQuizAnswer answers the current quiz question.
type SubmitQuizAnswer struct {
	Option string
}

// StartGCS starts a GCS assessment session.
type StartGCS struct{}

// SubmitGCSAnswer grades the current GCS scenario.
type SubmitGCSAnswer struct {
	Eye, Verbal, Motor int
}

// AdvanceGCS moves to the next GCS scenario.
type AdvanceGCS struct{}

// ReturnToMenu discards the live session.
type ReturnToMenu struct{}

// Tick advances the quiz clock by one interval.
type Tick struct {
	Token uuid.UUID
}

// RevealElapsed ends the quiz answer reveal.
type RevealElapsed struct {
	Token uuid.UUID
}

// FlipElapsed completes a card transition.
type FlipElapsed struct {
	Token     uuid.UUID
	Direction deck.Direction
}

func (SelectCategory) command()   {}
func (Flip) command()             {}
func (SubmitQuizAnswer) command() {}
func (StartGCS) command()         {}
func (SubmitGCSAnswer) command()  {}
func (AdvanceGCS) command()       {}
func (ReturnToMenu) command()     {}
func (Tick) command()             {}
func (RevealElapsed) command()    {}
func (FlipElapsed) command()      {}

// Task asks the driver to deliver Event back to Dispatch after a delay.
type Task struct {
	After time.Duration
	Event Command
}

// Outcome describes what a Dispatch call did.
type Outcome struct {
	// Tasks are delayed events the driver must schedule.
	Tasks []Task

	// Stale is set when a timer event belonged to a superseded session and
	// was dropped.
	Stale bool

	// Feedback is set after a quiz answer.
	Feedback *quiz.Feedback

	// Grade is set after a GCS answer.
	Grade *gcs.Result
}
