package quiz

import (
	"fmt"
	"slices"

	"github.com/emtprep/emtdrill/internal/content"
	"github.com/emtprep/emtdrill/internal/distractor"
	"github.com/emtprep/emtdrill/internal/shuffle"
)

// Start samples Length questions without replacement from the category and
// puts the quiz in progress. The question pool is also kept as the
// distractor source.
func Start(store *content.Store, category content.Category, src shuffle.Source) (*Session, error) {
	if store == nil {
		return nil, content.ErrContentUnavailable
	}
	pool := store.Questions(category)
	if len(pool) < Length {
		return nil, fmt.Errorf("%w: %s has %d, need %d", ErrInsufficientPool, category, len(pool), Length)
	}

	sample := shuffle.Copy(src, pool)[:Length]

	s := &Session{
		category:  category,
		pool:      pool,
		questions: slices.Clip(sample),
		phase:     PhaseInProgress,
		src:       src,
	}
	s.Present()
	return s, nil
}

// Category returns the quiz category.
func (s *Session) Category() content.Category { return s.category }

// Phase returns the lifecycle state.
func (s *Session) Phase() Phase { return s.phase }

// Index returns the number of questions already answered and advanced past.
func (s *Session) Index() int { return s.index }

// Score returns the number of correct answers so far.
func (s *Session) Score() int { return s.score }

// ElapsedSeconds returns the quiz clock.
func (s *Session) ElapsedSeconds() int { return s.elapsed }

// Elapsed returns the quiz clock formatted as mm:ss.
func (s *Session) Elapsed() string { return FormatElapsed(s.elapsed) }

// Revealing reports whether input is frozen while feedback is shown.
func (s *Session) Revealing() bool { return s.revealing }

// LastFeedback returns the feedback of the most recent answer, if any.
func (s *Session) LastFeedback() (Feedback, bool) {
	if s.last == nil {
		return Feedback{}, false
	}
	return *s.last, true
}

// Questions returns a copy of the sampled questions.
func (s *Session) Questions() []content.Question {
	return slices.Clone(s.questions)
}

// WrongLog returns a copy of the missed questions so far.
func (s *Session) WrongLog() []Miss {
	return slices.Clone(s.wrongLog)
}

// Present returns the current question with its options. Options are built
// once per question so repeated renders keep the same order.
func (s *Session) Present() Presentation {
	if s.phase != PhaseInProgress || s.index >= len(s.questions) {
		return Presentation{}
	}
	q := s.questions[s.index]
	if s.options == nil {
		s.options = distractor.Options(q, s.pool, s.src)
	}
	return Presentation{
		Number:   s.index + 1,
		Total:    len(s.questions),
		Question: q.Question,
		Options:  slices.Clone(s.options),
	}
}

// Submit grades an answer against the current question by exact string
// match and freezes input until Advance.
func (s *Session) Submit(option string) (Feedback, error) {
	if s.phase != PhaseInProgress {
		return Feedback{}, ErrNotInProgress
	}
	if s.revealing {
		return Feedback{}, ErrAnswerLocked
	}

	q := s.questions[s.index]
	fb := Feedback{
		Correct:       option == q.Answer,
		Chosen:        option,
		CorrectAnswer: q.Answer,
	}
	if fb.Correct {
		s.score++
	} else {
		s.wrongLog = append(s.wrongLog, Miss{
			Question:      q.Question,
			CorrectAnswer: q.Answer,
			Chosen:        option,
		})
	}

	s.revealing = true
	s.last = &fb
	return fb, nil
}

// Advance ends the reveal and moves to the next question. After the last
// question the quiz is finished and the clock stops.
func (s *Session) Advance() error {
	if s.phase != PhaseInProgress {
		return ErrNotInProgress
	}
	if !s.revealing {
		return nil
	}

	s.revealing = false
	s.options = nil
	s.index++
	if s.index == len(s.questions) {
		s.phase = PhaseFinished
		return nil
	}
	s.Present()
	return nil
}

// Tick adds one second to the clock while the quiz is in progress.
func (s *Session) Tick() {
	if s.phase == PhaseInProgress {
		s.elapsed++
	}
}
