package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// ErrInvalid is returned when a configuration value fails validation.
var ErrInvalid = errors.New("invalid configuration")

// Environment variable names.
const (
	EnvSeed           = "EMTDRILL_SEED"
	EnvFlipDelay      = "EMTDRILL_FLIP_DELAY"
	EnvRevealDelay    = "EMTDRILL_REVEAL_DELAY"
	EnvSwipeThreshold = "EMTDRILL_SWIPE_THRESHOLD"
	EnvLogFile        = "EMTDRILL_LOG_FILE"
)

// Config holds runtime settings for the trainer.
type Config struct {
	// Seed fixes the random source; 0 picks a fresh seed per run.
	Seed uint64

	// FlipDelay lets the card exit animation play before the deck moves.
	FlipDelay time.Duration `validate:"gte=0,lte=5s"`

	// RevealDelay is how long quiz feedback stays up before the next question.
	RevealDelay time.Duration `validate:"gte=0,lte=30s"`

	// SwipeThreshold is the horizontal mouse drag, in cells, that flips a card.
	SwipeThreshold int `validate:"gte=1,lte=200"`

	// LogFile receives structured logs. Empty disables logging.
	LogFile string
}

// Default returns the stock settings.
func Default() Config {
	return Config{
		FlipDelay:      300 * time.Millisecond,
		RevealDelay:    1500 * time.Millisecond,
		SwipeThreshold: 10,
	}
}

// Load starts from Default, applies envFile (if it exists) and then the
// process environment. Variables already set in the environment win over
// the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Default()

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvSeed, v, err)
		}
		cfg.Seed = seed
	}
	if err := durationEnv(EnvFlipDelay, &cfg.FlipDelay); err != nil {
		return Config{}, err
	}
	if err := durationEnv(EnvRevealDelay, &cfg.RevealDelay); err != nil {
		return Config{}, err
	}
	if v := os.Getenv(EnvSwipeThreshold); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvSwipeThreshold, v, err)
		}
		cfg.SwipeThreshold = n
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}

	return cfg, cfg.Validate()
}

var validate = validator.New()

// Validate checks value ranges.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s must be %s %s", fe.Field(), tagWord(fe.Tag()), fe.Param()))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

func tagWord(tag string) string {
	switch tag {
	case "gte":
		return ">="
	case "lte":
		return "<="
	default:
		return tag
	}
}

func durationEnv(key string, dst *time.Duration) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, key, v, err)
	}
	*dst = d
	return nil
}
