package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emtprep/emtdrill/internal/content"
	"github.com/emtprep/emtdrill/internal/quiz"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Summarise the built-in question bank",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			return err
		}
		showGCS, _ := cmd.Flags().GetBool("gcs")
		printBank(cmd.OutOrStdout(), store, showGCS)
		return nil
	},
}

func init() {
	bankCmd.Flags().Bool("gcs", false, "List the GCS scenarios as well")
}

func printBank(w io.Writer, store *content.Store, showGCS bool) {
	fmt.Fprintf(w, "%-14s  %-28s  %5s  %s\n", "Key", "Name", "Cards", "Test")
	fmt.Fprintln(w, strings.Repeat("─", 60))

	total := 0
	for _, c := range store.Categories() {
		n := store.Count(c.Key)
		total += n
		testable := "yes"
		if n < quiz.Length {
			testable = fmt.Sprintf("no (needs %d)", quiz.Length)
		}
		fmt.Fprintf(w, "%-14s  %-28s  %5d  %s\n", c.Key, c.Name, n, testable)
	}

	scenarios := store.GCSQuestions()
	fmt.Fprintf(w, "\n%d cards, %d GCS scenarios\n", total, len(scenarios))

	if !showGCS || len(scenarios) == 0 {
		return
	}
	fmt.Fprintln(w)
	for i, q := range scenarios {
		a := q.Answer
		fmt.Fprintf(w, "%2d. %-40s  E%d V%d M%d = %d\n", i+1, q.Title, a.Eye, a.Verbal, a.Motor, a.Eye+a.Verbal+a.Motor)
	}
}
