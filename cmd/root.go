package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "emtdrill",
	Short: "EMT certification study trainer",
	Long: "EMT Drill is a terminal study aid for EMT certification: flashcards, " +
		"timed multiple-choice tests and a Glasgow Coma Scale trainer.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("env-file", ".env", "Optional dotenv file with EMTDRILL_* settings")
	flags.Uint64("seed", 0, "Random seed (overrides EMTDRILL_SEED; 0 picks one per run)")
	flags.Int("swipe-threshold", 0, "Mouse drag in cells that flips a card (overrides EMTDRILL_SWIPE_THRESHOLD)")
	flags.String("log-file", "", "Write structured logs to this file (overrides EMTDRILL_LOG_FILE)")
	flags.Bool("debug", false, "Log at debug level")
	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome animation")

	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(gcsCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(versionCmd)
}
