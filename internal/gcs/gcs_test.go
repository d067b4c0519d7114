package gcs

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emtprep/emtdrill/internal/content"
)

func testStore(gcs ...content.GCSQuestion) *content.Store {
	return content.New(nil, nil, gcs)
}

func scenario(title string, e, v, m int) content.GCSQuestion {
	return content.GCSQuestion{
		Title:       title,
		Scenario:    "scenario " + title,
		Answer:      content.GCSAnswer{Eye: e, Verbal: v, Motor: m},
		Explanation: "because " + title,
	}
}

func TestStart_NoContent(t *testing.T) {
	_, err := Start(testStore(), rand.New(rand.NewPCG(1, 1)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoContent))
}

func TestGrade_ExactMatchOnly(t *testing.T) {
	s, err := Start(testStore(scenario("a", 2, 3, 4)), rand.New(rand.NewPCG(1, 1)))
	require.NoError(t, err)

	tests := []struct {
		name          string
		eye, vrb, mot int
		want          bool
	}{
		{"exact", 2, 3, 4, true},
		{"eye off", 3, 3, 4, false},
		{"verbal off", 2, 4, 4, false},
		{"motor off", 2, 3, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := s.Grade(tt.eye, tt.vrb, tt.mot)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Correct)
			assert.Equal(t, "because a", res.Explanation)
			assert.Equal(t, Score{2, 3, 4}, res.Expected)
		})
	}
}

func TestGrade_ComponentMatches(t *testing.T) {
	s, err := Start(testStore(scenario("a", 2, 3, 4)), rand.New(rand.NewPCG(1, 1)))
	require.NoError(t, err)

	res, err := s.Grade(2, 5, 4)
	require.NoError(t, err)
	assert.True(t, res.Matches(Eye))
	assert.False(t, res.Matches(Verbal))
	assert.True(t, res.Matches(Motor))
}

func TestGrade_IncompleteSelection(t *testing.T) {
	s, err := Start(testStore(scenario("a", 2, 3, 4)), rand.New(rand.NewPCG(1, 1)))
	require.NoError(t, err)

	for _, sel := range [][3]int{{0, 3, 4}, {2, 0, 4}, {2, 3, 0}, {0, 0, 0}} {
		_, err := s.Grade(sel[0], sel[1], sel[2])
		assert.ErrorIs(t, err, ErrIncompleteSelection, "selection %v", sel)
	}
	assert.Equal(t, 0, s.Index(), "no state change")
	assert.Equal(t, StateActive, s.State())
}

func TestGrade_OutOfRange(t *testing.T) {
	s, err := Start(testStore(scenario("a", 2, 3, 4)), rand.New(rand.NewPCG(1, 1)))
	require.NoError(t, err)

	for _, sel := range [][3]int{{5, 3, 4}, {2, 6, 4}, {2, 3, 7}, {-1, 3, 4}} {
		_, err := s.Grade(sel[0], sel[1], sel[2])
		assert.ErrorIs(t, err, ErrOutOfRange, "selection %v", sel)
	}
}

func TestAdvance_CompletesWithoutWrap(t *testing.T) {
	store := testStore(scenario("a", 1, 1, 1), scenario("b", 2, 2, 2), scenario("c", 3, 3, 3))
	s, err := Start(store, rand.New(rand.NewPCG(3, 3)))
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		q, ok := s.Current()
		require.True(t, ok)
		seen[q.Title] = true
		require.NoError(t, s.Advance())
	}
	assert.Len(t, seen, 3)
	assert.Equal(t, StateComplete, s.State())
	assert.Equal(t, 3, s.Index())

	_, ok := s.Current()
	assert.False(t, ok)
	assert.ErrorIs(t, s.Advance(), ErrNotActive)
	_, err = s.Grade(1, 1, 1)
	assert.ErrorIs(t, err, ErrNotActive)
}

func TestStart_DoesNotMutateStore(t *testing.T) {
	store := testStore(scenario("a", 1, 1, 1), scenario("b", 2, 2, 2), scenario("c", 3, 3, 3), scenario("d", 4, 4, 4))
	before := store.GCSQuestions()
	_, err := Start(store, rand.New(rand.NewPCG(9, 1)))
	require.NoError(t, err)
	assert.Equal(t, before, store.GCSQuestions())
}

func TestScale(t *testing.T) {
	assert.Equal(t, 4, Eye.Max())
	assert.Equal(t, 5, Verbal.Max())
	assert.Equal(t, 6, Motor.Max())
	assert.Equal(t, "Obeys commands", Motor.Describe(6))
	assert.Equal(t, "Opens to voice", Eye.Describe(3))
	assert.Empty(t, Verbal.Describe(0))
	assert.Empty(t, Verbal.Describe(6))
}

func TestScore(t *testing.T) {
	s := Score{}.Set(Eye, 2).Set(Verbal, 2).Set(Motor, 4)
	assert.True(t, s.Complete())
	assert.Equal(t, 8, s.Total())
	assert.False(t, Score{Eye: 4, Verbal: 5}.Complete())
}

func TestClassify(t *testing.T) {
	tests := []struct {
		total int
		want  Severity
	}{
		{15, SeverityMild},
		{13, SeverityMild},
		{12, SeverityModerate},
		{9, SeverityModerate},
		{8, SeveritySevere},
		{3, SeveritySevere},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.total), "total=%d", tt.total)
	}
}
