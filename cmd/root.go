package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/kenta/kotoba/internal/datadir"
)

var rootCmd = &cobra.Command{
	Use:   "kotoba",
	Short: "Japanese vocabulary trainer for the terminal",
	Long:  "Kotoba — terminal app for drilling JLPT vocabulary and kana, with mastery tracking and mistake practice.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// A .env beside the binary may set KOTOBA_DATA; missing is fine.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("data", "", "Path to data directory (overrides KOTOBA_DATA env var)")

	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDataDir returns the data directory using the --data flag (highest
// priority), then KOTOBA_DATA, then the default XDG path.
func resolveDataDir(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("data"); p != "" {
		return p, datadir.Ensure(p)
	}
	return datadir.Default()
}
