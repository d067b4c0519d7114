package content

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBank(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)

	cats := s.Categories()
	require.Len(t, cats, 3)
	assert.Equal(t, CategoryRegulations, cats[0].Key)
	assert.Equal(t, CategoryAssessment, cats[1].Key)
	assert.Equal(t, CategoryMethods, cats[2].Key)

	for _, c := range cats {
		// Every shipped category must support a full 10-question quiz.
		assert.GreaterOrEqual(t, s.Count(c.Key), 10, "category %s", c.Key)
		for _, q := range s.Questions(c.Key) {
			assert.NotEmpty(t, q.ID)
			assert.NotEmpty(t, q.Question, "question %s", q.ID)
			assert.NotEmpty(t, q.Answer, "question %s", q.ID)
		}
	}

	gcs := s.GCSQuestions()
	require.NotEmpty(t, gcs)
	for _, g := range gcs {
		assert.NotEmpty(t, g.Title)
		assert.NotEmpty(t, g.Scenario, "scenario %q", g.Title)
		assert.True(t, g.Answer.Eye >= 1 && g.Answer.Eye <= 4, "eye of %q", g.Title)
		assert.True(t, g.Answer.Verbal >= 1 && g.Answer.Verbal <= 5, "verbal of %q", g.Title)
		assert.True(t, g.Answer.Motor >= 1 && g.Answer.Motor <= 6, "motor of %q", g.Title)
	}
}

func TestDefaultBank_UniqueIDs(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, c := range s.Categories() {
		for _, q := range s.Questions(c.Key) {
			assert.False(t, seen[q.ID], "duplicate id %s", q.ID)
			seen[q.ID] = true
		}
	}
}

func TestParse(t *testing.T) {
	doc := []byte(`
categories:
  - key: regulations
    name: Regulations
    questions:
      - id: r1
        question: Q1
        answer: A1
        distractors: [x, y, z]
  - key: methods
    questions:
      - id: m1
        question: Q2
        answer: A2
gcs:
  - title: T
    scenario: S
    answer: {eye: 4, verbal: 5, motor: 6}
    explanation: E
`)
	s, err := Parse(doc)
	require.NoError(t, err)

	assert.Equal(t, "Regulations", s.DisplayName(CategoryRegulations))
	assert.Equal(t, "methods", s.DisplayName(CategoryMethods), "falls back to the key")
	assert.Equal(t, []string{"x", "y", "z"}, s.Questions(CategoryRegulations)[0].Distractors)
	assert.Equal(t, GCSAnswer{Eye: 4, Verbal: 5, Motor: 6}, s.GCSQuestions()[0].Answer)
}

func TestParse_Unavailable(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"malformed", "categories: [unterminated"},
		{"no content", "categories: []\ngcs: []\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrContentUnavailable))
		})
	}
}

func TestStore_ReturnsCopies(t *testing.T) {
	s := New(
		[]CategoryInfo{{Key: "c", Name: "C"}},
		map[Category][]Question{"c": {{ID: "1", Question: "q", Answer: "a"}}},
		[]GCSQuestion{{Title: "t"}},
	)

	qs := s.Questions("c")
	qs[0].Answer = "mutated"
	assert.Equal(t, "a", s.Questions("c")[0].Answer)

	g := s.GCSQuestions()
	g[0].Title = "mutated"
	assert.Equal(t, "t", s.GCSQuestions()[0].Title)
}

func TestLookup_Unknown(t *testing.T) {
	s := New(nil, nil, nil)
	_, err := s.Lookup("nope")
	assert.ErrorIs(t, err, ErrUnknownCategory)
	assert.Empty(t, s.Questions("nope"))
	assert.Zero(t, s.Count("nope"))
}
