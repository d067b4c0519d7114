package deck

import (
	"errors"
	"fmt"

	"github.com/emtprep/emtdrill/internal/content"
	"github.com/emtprep/emtdrill/internal/shuffle"
)

// ErrEmptyCategory is returned when a category has no questions to study.
var ErrEmptyCategory = errors.New("category has no questions")

// Direction is the way a card flip moves through the deck.
type Direction int

const (
	Forward  Direction = iota // Swipe left / next card
	Backward                  // Swipe right / previous card
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Session is a learning-mode deck: a shuffled working copy of one
// category's questions and a cursor into it.
type Session struct {
	category content.Category
	cards    []content.Question
	cursor   int
	passes   int
	src      shuffle.Source
}

// Start copies and shuffles the category's questions.
func Start(store *content.Store, category content.Category, src shuffle.Source) (*Session, error) {
	if store == nil {
		return nil, content.ErrContentUnavailable
	}
	cards := store.Questions(category)
	if len(cards) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyCategory, category)
	}
	shuffle.Slice(src, cards)
	return &Session{
		category: category,
		cards:    cards,
		src:      src,
	}, nil
}

// Category returns the category the deck was built from.
func (s *Session) Category() content.Category {
	return s.category
}

// Len returns the number of cards in the deck.
func (s *Session) Len() int {
	return len(s.cards)
}

// Cursor returns the index of the current card.
func (s *Session) Cursor() int {
	return s.cursor
}

// Passes returns how many times the deck has been reshuffled after a full pass.
func (s *Session) Passes() int {
	return s.passes
}

// Position returns the 1-based card number and the deck size.
func (s *Session) Position() (int, int) {
	return s.cursor + 1, len(s.cards)
}

// Current returns the card under the cursor. ok is false for an empty deck.
func (s *Session) Current() (content.Question, bool) {
	if len(s.cards) == 0 {
		return content.Question{}, false
	}
	return s.cards[s.cursor], true
}

// Advance moves the cursor one card in the given direction.
//
// Moving forward past the last card reshuffles the deck and starts again at
// card 0, swapping the first two cards when the new first card is the one just
// shown. This only guards the boundary pair; longer-range repeats are possible.
// Moving backward from card 0 wraps to the last card without reshuffling.
func (s *Session) Advance(dir Direction) {
	n := len(s.cards)
	if n == 0 {
		return
	}

	if dir == Backward {
		s.cursor--
		if s.cursor < 0 {
			s.cursor = n - 1
		}
		return
	}

	last := s.cards[s.cursor]
	s.cursor++
	if s.cursor < n {
		return
	}

	shuffle.Slice(s.src, s.cards)
	s.cursor = 0
	s.passes++
	if n > 1 && s.cards[0].ID == last.ID {
		s.cards[0], s.cards[1] = s.cards[1], s.cards[0]
	}
}
