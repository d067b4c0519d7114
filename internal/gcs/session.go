package gcs

import (
	"errors"
	"fmt"

	"github.com/emtprep/emtdrill/internal/content"
	"github.com/emtprep/emtdrill/internal/shuffle"
)

var (
	// ErrNoContent is returned when the GCS scenario bank is empty.
	ErrNoContent = errors.New("no GCS scenarios available")

	// ErrIncompleteSelection is returned when grading before all three
	// components are chosen.
	ErrIncompleteSelection = errors.New("select eye, verbal and motor responses first")

	// ErrOutOfRange is returned for a component value beyond its scale.
	ErrOutOfRange = errors.New("score out of range")

	// ErrNotActive is returned when grading or advancing a completed session.
	ErrNotActive = errors.New("assessment is not active")
)

// State is the lifecycle state of a GCS session.
type State int

const (
	StateIdle State = iota
	StateActive
	StateComplete // Every scenario has been served
)

// Result is the outcome of grading one scenario.
type Result struct {
	Correct     bool
	Given       Score
	Expected    Score
	Explanation string
}

// Matches reports whether one component of the given score was right.
func (r Result) Matches(c Component) bool {
	return r.Given.Get(c) == r.Expected.Get(c)
}

// Session serves shuffled GCS scenarios one at a time, without wrapping.
type Session struct {
	pool  []content.GCSQuestion
	index int
	state State
}

// Start shuffles a copy of the scenario bank.
func Start(store *content.Store, src shuffle.Source) (*Session, error) {
	if store == nil {
		return nil, content.ErrContentUnavailable
	}
	pool := store.GCSQuestions()
	if len(pool) == 0 {
		return nil, ErrNoContent
	}
	shuffle.Slice(src, pool)
	return &Session{pool: pool, state: StateActive}, nil
}

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Index returns the number of scenarios already advanced past.
func (s *Session) Index() int { return s.index }

// Len returns the number of scenarios in the session.
func (s *Session) Len() int { return len(s.pool) }

// Current returns the scenario being assessed. ok is false once complete.
func (s *Session) Current() (content.GCSQuestion, bool) {
	if s.state != StateActive || s.index >= len(s.pool) {
		return content.GCSQuestion{}, false
	}
	return s.pool[s.index], true
}

// Grade compares a selection with the current scenario's answer. Only an
// exact match on all three components is correct.
func (s *Session) Grade(eye, verbal, motor int) (Result, error) {
	q, ok := s.Current()
	if !ok {
		return Result{}, ErrNotActive
	}

	given := Score{Eye: eye, Verbal: verbal, Motor: motor}
	if !given.Complete() {
		return Result{}, ErrIncompleteSelection
	}
	for _, c := range Components {
		if v := given.Get(c); v < 1 || v > c.Max() {
			return Result{}, fmt.Errorf("%w: %s %d (1-%d)", ErrOutOfRange, c, v, c.Max())
		}
	}

	expected := FromAnswer(q.Answer)
	return Result{
		Correct:     given == expected,
		Given:       given,
		Expected:    expected,
		Explanation: q.Explanation,
	}, nil
}

// Advance moves to the next scenario; after the last one the session is
// complete.
func (s *Session) Advance() error {
	if s.state != StateActive {
		return ErrNotActive
	}
	s.index++
	if s.index == len(s.pool) {
		s.state = StateComplete
	}
	return nil
}
