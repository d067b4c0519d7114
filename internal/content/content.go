package content

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// ErrContentUnavailable is returned when the question bank is missing or
// could not be loaded.
var ErrContentUnavailable = errors.New("content unavailable")

// ErrUnknownCategory is returned for a category key the bank does not define.
var ErrUnknownCategory = errors.New("unknown category")

// Category is a key into the question bank.
type Category string

const (
	CategoryRegulations Category = "regulations"
	CategoryAssessment  Category = "assessment"
	CategoryMethods     Category = "methods"
)

// Question is a flashcard / quiz item.
type Question struct {
	ID       string `yaml:"id"`
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
	// Distractors are author-curated wrong answers, preferred over sampled ones.
	Distractors []string `yaml:"distractors,omitempty"`
}

// GCSAnswer is the expected eye/verbal/motor response for a scenario.
type GCSAnswer struct {
	Eye    int `yaml:"eye"`
	Verbal int `yaml:"verbal"`
	Motor  int `yaml:"motor"`
}

// GCSQuestion is a Glasgow Coma Scale scoring scenario.
type GCSQuestion struct {
	Title       string    `yaml:"title"`
	Scenario    string    `yaml:"scenario"`
	Answer      GCSAnswer `yaml:"answer"`
	Explanation string    `yaml:"explanation"`
}

// CategoryInfo pairs a category key with its display name.
type CategoryInfo struct {
	Key  Category
	Name string
}

// Store is the read-only question bank shared by every session.
type Store struct {
	categories []CategoryInfo
	questions  map[Category][]Question
	gcs        []GCSQuestion
}

type bankFile struct {
	Categories []struct {
		Key       Category   `yaml:"key"`
		Name      string     `yaml:"name"`
		Questions []Question `yaml:"questions"`
	} `yaml:"categories"`
	GCS []GCSQuestion `yaml:"gcs"`
}

//go:embed bank.yaml
var defaultBank []byte

// Default parses the question bank compiled into the binary.
func Default() (*Store, error) {
	return Parse(defaultBank)
}

// Parse builds a Store from a YAML bank document.
func Parse(data []byte) (*Store, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty bank", ErrContentUnavailable)
	}

	var f bankFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: parse bank: %v", ErrContentUnavailable, err)
	}
	if len(f.Categories) == 0 && len(f.GCS) == 0 {
		return nil, fmt.Errorf("%w: bank defines no content", ErrContentUnavailable)
	}

	s := &Store{
		questions: make(map[Category][]Question, len(f.Categories)),
		gcs:       f.GCS,
	}
	for _, c := range f.Categories {
		if _, seen := s.questions[c.Key]; !seen {
			name := c.Name
			if name == "" {
				name = string(c.Key)
			}
			s.categories = append(s.categories, CategoryInfo{Key: c.Key, Name: name})
		}
		s.questions[c.Key] = append(s.questions[c.Key], c.Questions...)
	}
	return s, nil
}

// New builds a Store directly from in-memory data, keeping category order.
func New(categories []CategoryInfo, questions map[Category][]Question, gcs []GCSQuestion) *Store {
	s := &Store{
		categories: slices.Clone(categories),
		questions:  make(map[Category][]Question, len(questions)),
		gcs:        slices.Clone(gcs),
	}
	for k, qs := range questions {
		s.questions[k] = slices.Clone(qs)
	}
	return s
}

// Categories returns the categories in bank order.
func (s *Store) Categories() []CategoryInfo {
	return slices.Clone(s.categories)
}

// Lookup returns the category info for key.
func (s *Store) Lookup(key Category) (CategoryInfo, error) {
	for _, c := range s.categories {
		if c.Key == key {
			return c, nil
		}
	}
	return CategoryInfo{}, fmt.Errorf("%w: %q", ErrUnknownCategory, key)
}

// DisplayName returns the category's display name, or the key itself.
func (s *Store) DisplayName(key Category) string {
	if c, err := s.Lookup(key); err == nil {
		return c.Name
	}
	return string(key)
}

// Questions returns a copy of the category's questions. Unknown
// categories yield an empty slice.
func (s *Store) Questions(key Category) []Question {
	return slices.Clone(s.questions[key])
}

// Count returns the number of questions in the category.
func (s *Store) Count(key Category) int {
	return len(s.questions[key])
}

// GCSQuestions returns a copy of the GCS scenario bank.
func (s *Store) GCSQuestions() []GCSQuestion {
	return slices.Clone(s.gcs)
}
