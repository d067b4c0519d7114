package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emtprep/emtdrill/internal/config"
	"github.com/emtprep/emtdrill/internal/content"
	"github.com/emtprep/emtdrill/internal/engine"
)

func TestParseCategory(t *testing.T) {
	store, err := loadStore()
	require.NoError(t, err)

	got, err := parseCategory(store, " Regulations ")
	require.NoError(t, err)
	assert.Equal(t, content.CategoryRegulations, got)

	_, err = parseCategory(store, "pharmacology")
	require.ErrorIs(t, err, content.ErrUnknownCategory)
	assert.Contains(t, err.Error(), "regulations")
}

func TestSelectCategoryStartsSession(t *testing.T) {
	store, err := loadStore()
	require.NoError(t, err)
	shell, err := engine.New(store, newSource(3), config.Default(), nil)
	require.NoError(t, err)

	out, err := selectCategory(engine.ModeTest, "assessment")(shell)
	require.NoError(t, err)
	assert.Equal(t, engine.ModeTest, shell.Mode())
	assert.Len(t, out.Tasks, 1, "quiz clock should be scheduled")

	_, err = selectCategory(engine.ModeLearning, "nope")(shell)
	require.Error(t, err)
	assert.Equal(t, engine.ModeTest, shell.Mode(), "failed start keeps the running session")
}

func TestPrintBank(t *testing.T) {
	store := content.New(
		[]content.CategoryInfo{
			{Key: content.CategoryRegulations, Name: "Regulations"},
			{Key: content.CategoryMethods, Name: "Emergency Care"},
		},
		map[content.Category][]content.Question{
			content.CategoryRegulations: make([]content.Question, 12),
			content.CategoryMethods:     make([]content.Question, 4),
		},
		[]content.GCSQuestion{{Title: "Fall from ladder", Answer: content.GCSAnswer{Eye: 3, Verbal: 4, Motor: 6}}},
	)

	var buf bytes.Buffer
	printBank(&buf, store, true)
	out := buf.String()

	assert.Contains(t, out, "Regulations")
	assert.Contains(t, out, "no (needs 10)")
	assert.Contains(t, out, "16 cards, 1 GCS scenarios")
	assert.Contains(t, out, "E3 V4 M6 = 13")
}

func TestResolveConfig_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv(config.EnvSeed, "7")
	t.Setenv(config.EnvSwipeThreshold, "12")

	require.NoError(t, rootCmd.ParseFlags([]string{"--env-file", "", "--seed", "42"}))
	cfg, err := resolveConfig(rootCmd)
	require.NoError(t, err)

	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 12, cfg.SwipeThreshold)
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "emtdrill")
}
