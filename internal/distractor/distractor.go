// Package distractor picks the wrong answers shown next to the correct one
// in a multiple-choice question.
//
// Sampling is best-effort: it draws at most MaxAttempts questions from the
// pool and pads with FallbackOption when it cannot find enough distinct
// alternatives. With realistic pools the fallback is practically never used,
// but callers must not assume the options are unique for tiny pools.
package distractor

import (
	"slices"

	"github.com/emtprep/emtdrill/internal/content"
	"github.com/emtprep/emtdrill/internal/shuffle"
)

const (
	// Count is the number of distractors per question.
	Count = 3

	// MaxAttempts caps random draws from the pool.
	MaxAttempts = 50

	// FallbackOption fills slots the sampler could not fill.
	FallbackOption = "None of the above"
)

// Generate samples Count wrong answers from pool, none equal to correct.
func Generate(pool []content.Question, correct string, src shuffle.Source) []string {
	return fill(nil, pool, correct, src)
}

// For returns the distractors for q. Author-supplied distractors win: the
// first Count are used verbatim, and only missing slots are sampled.
func For(q content.Question, pool []content.Question, src shuffle.Source) []string {
	var picked []string
	for _, d := range q.Distractors {
		if len(picked) == Count {
			break
		}
		picked = append(picked, d)
	}
	if len(picked) == Count {
		return picked
	}
	return fill(picked, pool, q.Answer, src)
}

// Options returns the correct answer plus its distractors in random order.
func Options(q content.Question, pool []content.Question, src shuffle.Source) []string {
	opts := append([]string{q.Answer}, For(q, pool, src)...)
	shuffle.Slice(src, opts)
	return opts
}

func fill(picked []string, pool []content.Question, correct string, src shuffle.Source) []string {
	if len(pool) > 0 {
		for attempt := 0; attempt < MaxAttempts && len(picked) < Count; attempt++ {
			candidate := pool[shuffle.Index(src, len(pool))].Answer
			if candidate == correct || slices.Contains(picked, candidate) {
				continue
			}
			picked = append(picked, candidate)
		}
	}
	for len(picked) < Count {
		picked = append(picked, FallbackOption)
	}
	return picked
}
