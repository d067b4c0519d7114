package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emtprep/emtdrill/internal/content"
	"github.com/emtprep/emtdrill/internal/engine"
)

var learnCmd = &cobra.Command{
	Use:               "learn <category>",
	Short:             "Open flashcards for a category",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeCategories,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, selectCategory(engine.ModeLearning, args[0]))
	},
}

var testCmd = &cobra.Command{
	Use:               "test <category>",
	Short:             "Take a timed 10-question test",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeCategories,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, selectCategory(engine.ModeTest, args[0]))
	},
}

var gcsCmd = &cobra.Command{
	Use:   "gcs",
	Short: "Practise Glasgow Coma Scale scoring",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, func(shell *engine.Shell) (engine.Outcome, error) {
			return shell.Dispatch(engine.StartGCS{})
		})
	},
}

func selectCategory(mode engine.Mode, arg string) startFunc {
	return func(shell *engine.Shell) (engine.Outcome, error) {
		category, err := parseCategory(shell.Store(), arg)
		if err != nil {
			return engine.Outcome{}, err
		}
		return shell.Dispatch(engine.SelectCategory{Mode: mode, Category: category})
	}
}

// parseCategory matches arg against category keys, case-insensitively.
func parseCategory(store *content.Store, arg string) (content.Category, error) {
	key := content.Category(strings.ToLower(strings.TrimSpace(arg)))
	if _, err := store.Lookup(key); err != nil {
		return "", fmt.Errorf("%w (choose one of: %s)", err, strings.Join(categoryKeys(store), ", "))
	}
	return key, nil
}

func categoryKeys(store *content.Store) []string {
	cats := store.Categories()
	keys := make([]string, len(cats))
	for i, c := range cats {
		keys[i] = string(c.Key)
	}
	return keys
}

func completeCategories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	store, err := loadStore()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var out []string
	for _, c := range store.Categories() {
		out = append(out, string(c.Key)+"\t"+c.Name)
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
