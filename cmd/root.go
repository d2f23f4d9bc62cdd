package cmd

import (
	"github.com/nmalhotra/drill/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "drill",
	Short: "Adaptive tutoring engine for a local LLM",
	Long: "Drill — offline adaptive tutor. It estimates skill per concept, picks what to\n" +
		"practice next, generates questions through a locally hosted LLM, and validates\n" +
		"every item before a learner ever sees it.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DRILL_DB env var)")
	rootCmd.PersistentFlags().String("learner", "student", "Learner name")
	rootCmd.PersistentFlags().String("topic", "", "Topic name (defaults to the first seeded topic)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then DRILL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
