// Package engine owns the live study session and is the single transition
// function for user commands and timer events.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/emtprep/emtdrill/internal/config"
	"github.com/emtprep/emtdrill/internal/content"
	"github.com/emtprep/emtdrill/internal/deck"
	"github.com/emtprep/emtdrill/internal/gcs"
	"github.com/emtprep/emtdrill/internal/logging"
	"github.com/emtprep/emtdrill/internal/quiz"
	"github.com/emtprep/emtdrill/internal/shuffle"
)

var (
	// ErrWrongMode is returned when a command does not apply to the live session.
	ErrWrongMode = errors.New("command not valid in current mode")

	// ErrUnknownCommand is returned for command types Dispatch does not handle.
	ErrUnknownCommand = errors.New("unknown command")
)

// Shell holds the one live session. It is not safe for concurrent use; the
// Bubble Tea update loop is its only caller.
type Shell struct {
	store  *content.Store
	src    shuffle.Source
	logger *slog.Logger

	flipDelay   time.Duration
	revealDelay time.Duration

	mode  Mode
	token uuid.UUID

	deck     *deck.Session
	flipping bool

	quiz    *quiz.Session
	results *quiz.Results

	gcs       *gcs.Session
	lastGrade *gcs.Result
}

// New creates a shell in ModeMenu. A nil logger discards.
func New(store *content.Store, src shuffle.Source, cfg config.Config, logger *slog.Logger) (*Shell, error) {
	if store == nil {
		return nil, content.ErrContentUnavailable
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Shell{
		store:       store,
		src:         src,
		logger:      logger,
		flipDelay:   cfg.FlipDelay,
		revealDelay: cfg.RevealDelay,
		mode:        ModeMenu,
		token:       uuid.New(),
	}, nil
}

// Store returns the content store backing the shell.
func (s *Shell) Store() *content.Store { return s.store }

// Mode returns the current mode.
func (s *Shell) Mode() Mode { return s.mode }

// Token identifies the live session. Timer events carrying another token are
// dropped.
func (s *Shell) Token() uuid.UUID { return s.token }

// Deck returns the live deck session, or nil outside ModeLearning.
func (s *Shell) Deck() *deck.Session { return s.deck }

// Flipping reports whether a card transition is in flight.
func (s *Shell) Flipping() bool { return s.flipping }

// Quiz returns the live quiz session, or nil outside ModeTest and ModeResults.
func (s *Shell) Quiz() *quiz.Session { return s.quiz }

// Results returns the finished quiz snapshot.
func (s *Shell) Results() (quiz.Results, bool) {
	if s.results == nil {
		return quiz.Results{}, false
	}
	return *s.results, true
}

// GCS returns the live GCS session, or nil outside ModeGCS.
func (s *Shell) GCS() *gcs.Session { return s.gcs }

// LastGrade returns the grade for the current GCS scenario, if one was given.
func (s *Shell) LastGrade() (gcs.Result, bool) {
	if s.lastGrade == nil {
		return gcs.Result{}, false
	}
	return *s.lastGrade, true
}

// Dispatch applies one command and returns the tasks the driver must
// schedule. On error the shell is unchanged.
func (s *Shell) Dispatch(cmd Command) (Outcome, error) {
	switch c := cmd.(type) {
	case SelectCategory:
		return s.selectCategory(c)
	case Flip:
		return s.flip(c)
	case FlipElapsed:
		return s.flipElapsed(c)
	case SubmitQuizAnswer:
		return s.submitQuizAnswer(c)
	case RevealElapsed:
		return s.revealElapsed(c)
	case Tick:
		return s.tick(c)
	case StartGCS:
		return s.startGCS()
	case SubmitGCSAnswer:
		return s.submitGCSAnswer(c)
	case AdvanceGCS:
		return s.advanceGCS()
	case ReturnToMenu:
		s.reset(ModeMenu)
		s.logger.Debug("returned to menu")
		return Outcome{}, nil
	default:
		return Outcome{}, fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
	}
}

// reset discards the live session and issues a fresh token so any event
// scheduled by the old session is recognised as stale.
func (s *Shell) reset(mode Mode) {
	s.deck = nil
	s.flipping = false
	s.quiz = nil
	s.results = nil
	s.gcs = nil
	s.lastGrade = nil
	s.mode = mode
	s.token = uuid.New()
}

func (s *Shell) stale(token uuid.UUID, kind string) bool {
	if token == s.token {
		return false
	}
	s.logger.Debug("dropped stale event", "event", kind, "token", token)
	return true
}

func (s *Shell) selectCategory(c SelectCategory) (Outcome, error) {
	switch c.Mode {
	case ModeLearning:
		d, err := deck.Start(s.store, c.Category, s.src)
		if err != nil {
			s.logger.Info("deck start failed", "category", c.Category, "error", err)
			return Outcome{}, err
		}
		s.reset(ModeLearning)
		s.deck = d
		s.logger.Info("deck started", "category", c.Category, "cards", d.Len())
		return Outcome{}, nil

	case ModeTest:
		q, err := quiz.Start(s.store, c.Category, s.src)
		if err != nil {
			s.logger.Info("quiz start failed", "category", c.Category, "error", err)
			return Outcome{}, err
		}
		s.reset(ModeTest)
		s.quiz = q
		s.logger.Info("quiz started", "category", c.Category)
		return Outcome{Tasks: []Task{{After: TickInterval, Event: Tick{Token: s.token}}}}, nil

	default:
		return Outcome{}, fmt.Errorf("%w: select category in %s", ErrWrongMode, c.Mode)
	}
}

func (s *Shell) flip(c Flip) (Outcome, error) {
	if s.mode != ModeLearning || s.deck == nil {
		return Outcome{}, fmt.Errorf("%w: flip in %s", ErrWrongMode, s.mode)
	}
	if s.flipping {
		return Outcome{}, nil
	}
	s.flipping = true
	return Outcome{Tasks: []Task{{
		After: s.flipDelay,
		Event: FlipElapsed{Token: s.token, Direction: c.Direction},
	}}}, nil
}

func (s *Shell) flipElapsed(c FlipElapsed) (Outcome, error) {
	if s.stale(c.Token, "flip") || s.deck == nil {
		return Outcome{Stale: true}, nil
	}
	s.flipping = false
	s.deck.Advance(c.Direction)
	return Outcome{}, nil
}

func (s *Shell) submitQuizAnswer(c SubmitQuizAnswer) (Outcome, error) {
	if s.mode != ModeTest || s.quiz == nil {
		return Outcome{}, fmt.Errorf("%w: answer in %s", ErrWrongMode, s.mode)
	}
	fb, err := s.quiz.Submit(c.Option)
	if err != nil {
		return Outcome{}, err
	}
	s.logger.Debug("quiz answer", "question", s.quiz.Index()+1, "correct", fb.Correct)
	return Outcome{
		Feedback: &fb,
		Tasks:    []Task{{After: s.revealDelay, Event: RevealElapsed{Token: s.token}}},
	}, nil
}

func (s *Shell) revealElapsed(c RevealElapsed) (Outcome, error) {
	if s.stale(c.Token, "reveal") || s.quiz == nil {
		return Outcome{Stale: true}, nil
	}
	if s.quiz.Phase() != quiz.PhaseInProgress {
		return Outcome{}, nil
	}
	if err := s.quiz.Advance(); err != nil {
		return Outcome{}, err
	}
	if s.quiz.Phase() != quiz.PhaseFinished {
		return Outcome{}, nil
	}

	res, err := s.quiz.Results()
	if err != nil {
		return Outcome{}, err
	}
	s.results = &res
	s.mode = ModeResults
	s.logger.Info("quiz finished",
		"category", s.quiz.Category(),
		"score", res.Score,
		"percentage", res.Percentage,
		"elapsed", res.Elapsed,
	)
	return Outcome{}, nil
}

func (s *Shell) tick(c Tick) (Outcome, error) {
	if s.stale(c.Token, "tick") {
		return Outcome{Stale: true}, nil
	}
	// The chain ends once the quiz leaves InProgress.
	if s.quiz == nil || s.quiz.Phase() != quiz.PhaseInProgress {
		return Outcome{}, nil
	}
	s.quiz.Tick()
	return Outcome{Tasks: []Task{{After: TickInterval, Event: Tick{Token: s.token}}}}, nil
}

func (s *Shell) startGCS() (Outcome, error) {
	g, err := gcs.Start(s.store, s.src)
	if err != nil {
		s.logger.Info("gcs start failed", "error", err)
		return Outcome{}, err
	}
	s.reset(ModeGCS)
	s.gcs = g
	s.logger.Info("gcs started", "scenarios", g.Len())
	return Outcome{}, nil
}

func (s *Shell) submitGCSAnswer(c SubmitGCSAnswer) (Outcome, error) {
	if s.mode != ModeGCS || s.gcs == nil {
		return Outcome{}, fmt.Errorf("%w: grade in %s", ErrWrongMode, s.mode)
	}
	res, err := s.gcs.Grade(c.Eye, c.Verbal, c.Motor)
	if err != nil {
		return Outcome{}, err
	}
	s.lastGrade = &res
	s.logger.Debug("gcs graded", "scenario", s.gcs.Index()+1, "correct", res.Correct)
	return Outcome{Grade: &res}, nil
}

func (s *Shell) advanceGCS() (Outcome, error) {
	if s.mode != ModeGCS || s.gcs == nil {
		return Outcome{}, fmt.Errorf("%w: advance in %s", ErrWrongMode, s.mode)
	}
	if err := s.gcs.Advance(); err != nil {
		return Outcome{}, err
	}
	s.lastGrade = nil
	return Outcome{}, nil
}
