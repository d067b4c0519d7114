package engine

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emtprep/emtdrill/internal/config"
	"github.com/emtprep/emtdrill/internal/content"
	"github.com/emtprep/emtdrill/internal/deck"
	"github.com/emtprep/emtdrill/internal/gcs"
	"github.com/emtprep/emtdrill/internal/quiz"
)

func questions(prefix string, n int) []content.Question {
	qs := make([]content.Question, n)
	for i := range qs {
		qs[i] = content.Question{
			ID:       fmt.Sprintf("%s-%02d", prefix, i),
			Question: fmt.Sprintf("%s question %d", prefix, i),
			Answer:   fmt.Sprintf("%s answer %d", prefix, i),
		}
	}
	return qs
}

func testStore() *content.Store {
	return content.New(
		[]content.CategoryInfo{
			{Key: content.CategoryRegulations, Name: "Regulations"},
			{Key: content.CategoryMethods, Name: "Emergency Care"},
		},
		map[content.Category][]content.Question{
			content.CategoryRegulations: questions("reg", 12),
			content.CategoryMethods:     questions("mth", 4),
		},
		[]content.GCSQuestion{
			{Title: "Fall", Scenario: "s1", Answer: content.GCSAnswer{Eye: 3, Verbal: 4, Motor: 6}, Explanation: "e1"},
			{Title: "Crash", Scenario: "s2", Answer: content.GCSAnswer{Eye: 1, Verbal: 1, Motor: 2}, Explanation: "e2"},
		},
	)
}

func newShell(t *testing.T) *Shell {
	t.Helper()
	s, err := New(testStore(), rand.New(rand.NewPCG(7, 11)), config.Default(), nil)
	require.NoError(t, err)
	return s
}

func dispatch(t *testing.T, s *Shell, cmd Command) Outcome {
	t.Helper()
	out, err := s.Dispatch(cmd)
	require.NoError(t, err)
	return out
}

func currentAnswer(s *Shell) string {
	q := s.Quiz()
	return q.Questions()[q.Index()].Answer
}

func TestNew_NilStore(t *testing.T) {
	_, err := New(nil, rand.New(rand.NewPCG(1, 1)), config.Default(), nil)
	assert.True(t, errors.Is(err, content.ErrContentUnavailable))
}

func TestNew_StartsAtMenu(t *testing.T) {
	s := newShell(t)
	assert.Equal(t, ModeMenu, s.Mode())
	assert.Nil(t, s.Deck())
	assert.Nil(t, s.Quiz())
	assert.Nil(t, s.GCS())
}

func TestSelectCategory_Learning(t *testing.T) {
	s := newShell(t)
	before := s.Token()

	out := dispatch(t, s, SelectCategory{Mode: ModeLearning, Category: content.CategoryRegulations})
	assert.Empty(t, out.Tasks)
	assert.Equal(t, ModeLearning, s.Mode())
	assert.NotEqual(t, before, s.Token())
	require.NotNil(t, s.Deck())
	assert.Equal(t, 12, s.Deck().Len())
}

func TestSelectCategory_FailureKeepsMode(t *testing.T) {
	s := newShell(t)
	dispatch(t, s, SelectCategory{Mode: ModeLearning, Category: content.CategoryRegulations})
	token := s.Token()
	d := s.Deck()

	_, err := s.Dispatch(SelectCategory{Mode: ModeTest, Category: content.CategoryMethods})
	require.Error(t, err)
	assert.True(t, errors.Is(err, quiz.ErrInsufficientPool))

	_, err = s.Dispatch(SelectCategory{Mode: ModeLearning, Category: content.CategoryAssessment})
	require.Error(t, err)
	assert.True(t, errors.Is(err, deck.ErrEmptyCategory))

	assert.Equal(t, ModeLearning, s.Mode())
	assert.Equal(t, token, s.Token())
	assert.Same(t, d, s.Deck())
}

func TestSelectCategory_BadMode(t *testing.T) {
	s := newShell(t)
	_, err := s.Dispatch(SelectCategory{Mode: ModeGCS, Category: content.CategoryRegulations})
	assert.True(t, errors.Is(err, ErrWrongMode))
}

func TestFlip_DelaysAdvance(t *testing.T) {
	s := newShell(t)
	dispatch(t, s, SelectCategory{Mode: ModeLearning, Category: content.CategoryRegulations})

	out := dispatch(t, s, Flip{Direction: deck.Forward})
	require.Len(t, out.Tasks, 1)
	assert.Equal(t, config.Default().FlipDelay, out.Tasks[0].After)
	assert.True(t, s.Flipping())
	assert.Equal(t, 0, s.Deck().Cursor(), "deck moves only when the flip completes")

	// A second flip during the transition is ignored.
	again := dispatch(t, s, Flip{Direction: deck.Forward})
	assert.Empty(t, again.Tasks)

	done := dispatch(t, s, out.Tasks[0].Event)
	assert.False(t, done.Stale)
	assert.False(t, s.Flipping())
	assert.Equal(t, 1, s.Deck().Cursor())
}

func TestFlip_BackwardWraps(t *testing.T) {
	s := newShell(t)
	dispatch(t, s, SelectCategory{Mode: ModeLearning, Category: content.CategoryRegulations})

	out := dispatch(t, s, Flip{Direction: deck.Backward})
	dispatch(t, s, out.Tasks[0].Event)
	assert.Equal(t, 11, s.Deck().Cursor())
}

func TestFlip_StaleAfterReturnToMenu(t *testing.T) {
	s := newShell(t)
	dispatch(t, s, SelectCategory{Mode: ModeLearning, Category: content.CategoryRegulations})
	out := dispatch(t, s, Flip{Direction: deck.Forward})

	dispatch(t, s, ReturnToMenu{})
	dispatch(t, s, SelectCategory{Mode: ModeLearning, Category: content.CategoryRegulations})

	late := dispatch(t, s, out.Tasks[0].Event)
	assert.True(t, late.Stale)
	assert.Equal(t, 0, s.Deck().Cursor())
	assert.False(t, s.Flipping())
}

func TestFlip_WrongMode(t *testing.T) {
	s := newShell(t)
	_, err := s.Dispatch(Flip{Direction: deck.Forward})
	assert.True(t, errors.Is(err, ErrWrongMode))
}

func TestQuiz_SchedulesTick(t *testing.T) {
	s := newShell(t)
	out := dispatch(t, s, SelectCategory{Mode: ModeTest, Category: content.CategoryRegulations})

	require.Len(t, out.Tasks, 1)
	assert.Equal(t, TickInterval, out.Tasks[0].After)
	assert.Equal(t, Tick{Token: s.Token()}, out.Tasks[0].Event)

	next := dispatch(t, s, out.Tasks[0].Event)
	require.Len(t, next.Tasks, 1)
	assert.Equal(t, 1, s.Quiz().ElapsedSeconds())
}

func TestQuiz_SecondStartLeavesOneTimer(t *testing.T) {
	s := newShell(t)
	first := dispatch(t, s, SelectCategory{Mode: ModeTest, Category: content.CategoryRegulations})
	firstTick := first.Tasks[0].Event
	// Let the first clock run for a while.
	for range 5 {
		firstTick = dispatch(t, s, firstTick).Tasks[0].Event
	}
	require.Equal(t, "00:05", s.Quiz().Elapsed())

	second := dispatch(t, s, SelectCategory{Mode: ModeTest, Category: content.CategoryRegulations})
	assert.Equal(t, "00:00", s.Quiz().Elapsed())

	stale := dispatch(t, s, firstTick)
	assert.True(t, stale.Stale)
	assert.Empty(t, stale.Tasks, "the old chain must not be rescheduled")
	assert.Equal(t, "00:00", s.Quiz().Elapsed())

	live := dispatch(t, s, second.Tasks[0].Event)
	assert.Len(t, live.Tasks, 1)
	assert.Equal(t, "00:01", s.Quiz().Elapsed())
}

func TestQuiz_AnswerRevealAdvance(t *testing.T) {
	s := newShell(t)
	dispatch(t, s, SelectCategory{Mode: ModeTest, Category: content.CategoryRegulations})

	out := dispatch(t, s, SubmitQuizAnswer{Option: currentAnswer(s)})
	require.NotNil(t, out.Feedback)
	assert.True(t, out.Feedback.Correct)
	require.Len(t, out.Tasks, 1)
	assert.Equal(t, config.Default().RevealDelay, out.Tasks[0].After)

	_, err := s.Dispatch(SubmitQuizAnswer{Option: "again"})
	assert.True(t, errors.Is(err, quiz.ErrAnswerLocked))

	dispatch(t, s, out.Tasks[0].Event)
	assert.Equal(t, 1, s.Quiz().Index())
	assert.False(t, s.Quiz().Revealing())
}

func TestQuiz_FullRunReachesResults(t *testing.T) {
	s := newShell(t)
	start := dispatch(t, s, SelectCategory{Mode: ModeTest, Category: content.CategoryRegulations})
	tick := start.Tasks[0].Event

	for i := range quiz.Length {
		option := currentAnswer(s)
		if i%4 == 0 {
			option = "wrong"
		}
		out := dispatch(t, s, SubmitQuizAnswer{Option: option})
		tick = dispatch(t, s, tick).Tasks[0].Event
		dispatch(t, s, out.Tasks[0].Event)
	}

	assert.Equal(t, ModeResults, s.Mode())
	res, ok := s.Results()
	require.True(t, ok)
	assert.Equal(t, 7, res.Score)
	assert.Equal(t, 70, res.Percentage)
	assert.Len(t, res.WrongLog, 3)
	assert.Equal(t, "00:10", res.Elapsed)

	// The clock chain ends once the quiz is finished.
	last := dispatch(t, s, tick)
	assert.False(t, last.Stale)
	assert.Empty(t, last.Tasks)
	assert.Equal(t, "00:10", s.Quiz().Elapsed())
}

func TestQuiz_StaleRevealIgnored(t *testing.T) {
	s := newShell(t)
	dispatch(t, s, SelectCategory{Mode: ModeTest, Category: content.CategoryRegulations})
	out := dispatch(t, s, SubmitQuizAnswer{Option: currentAnswer(s)})

	dispatch(t, s, SelectCategory{Mode: ModeTest, Category: content.CategoryRegulations})
	late := dispatch(t, s, out.Tasks[0].Event)

	assert.True(t, late.Stale)
	assert.Equal(t, 0, s.Quiz().Index())
	assert.False(t, s.Quiz().Revealing())
}

func TestQuiz_AnswerWrongMode(t *testing.T) {
	s := newShell(t)
	_, err := s.Dispatch(SubmitQuizAnswer{Option: "x"})
	assert.True(t, errors.Is(err, ErrWrongMode))
}

func TestGCS_Flow(t *testing.T) {
	s := newShell(t)
	dispatch(t, s, StartGCS{})
	assert.Equal(t, ModeGCS, s.Mode())
	require.Equal(t, 2, s.GCS().Len())

	_, err := s.Dispatch(SubmitGCSAnswer{Eye: 3, Verbal: 0, Motor: 6})
	assert.True(t, errors.Is(err, gcs.ErrIncompleteSelection))
	_, ok := s.LastGrade()
	assert.False(t, ok)

	q, _ := s.GCS().Current()
	out := dispatch(t, s, SubmitGCSAnswer{Eye: q.Answer.Eye, Verbal: q.Answer.Verbal, Motor: q.Answer.Motor})
	require.NotNil(t, out.Grade)
	assert.True(t, out.Grade.Correct)
	grade, ok := s.LastGrade()
	require.True(t, ok)
	assert.Equal(t, q.Explanation, grade.Explanation)

	dispatch(t, s, AdvanceGCS{})
	_, ok = s.LastGrade()
	assert.False(t, ok)

	dispatch(t, s, AdvanceGCS{})
	assert.Equal(t, gcs.StateComplete, s.GCS().State())

	_, err = s.Dispatch(AdvanceGCS{})
	assert.True(t, errors.Is(err, gcs.ErrNotActive))
}

func TestGCS_NoContentKeepsMode(t *testing.T) {
	store := content.New(nil, map[content.Category][]content.Question{
		content.CategoryRegulations: questions("reg", 3),
	}, nil)
	s, err := New(store, rand.New(rand.NewPCG(1, 2)), config.Default(), nil)
	require.NoError(t, err)
	dispatch(t, s, SelectCategory{Mode: ModeLearning, Category: content.CategoryRegulations})

	_, err = s.Dispatch(StartGCS{})
	assert.True(t, errors.Is(err, gcs.ErrNoContent))
	assert.Equal(t, ModeLearning, s.Mode())
	assert.NotNil(t, s.Deck())
}

func TestReturnToMenu_DiscardsSession(t *testing.T) {
	s := newShell(t)
	dispatch(t, s, StartGCS{})
	token := s.Token()

	dispatch(t, s, ReturnToMenu{})
	assert.Equal(t, ModeMenu, s.Mode())
	assert.Nil(t, s.GCS())
	assert.NotEqual(t, token, s.Token())
}

type bogus struct{}

func (bogus) command() {}

func TestDispatch_UnknownCommand(t *testing.T) {
	s := newShell(t)
	_, err := s.Dispatch(bogus{})
	assert.True(t, errors.Is(err, ErrUnknownCommand))
}
