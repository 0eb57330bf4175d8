package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kenta/kotoba/internal/content"
	"github.com/kenta/kotoba/internal/mistake"
	"github.com/kenta/kotoba/internal/progress"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show mastery progress per JLPT level",
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := resolveDataDir(cmd)
		if err != nil {
			return fmt.Errorf("resolve data dir: %w", err)
		}

		contentStore := content.NewStore(dataDir, nil)
		snap, err := progress.NewStore(dataDir, nil).Load()
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		for _, lvl := range content.Levels() {
			entries, err := contentStore.Vocabulary(lvl)
			if err != nil {
				return fmt.Errorf("load %s vocabulary: %w", lvl, err)
			}
			fmt.Printf("%-3s  %4d / %-4d mastered\n", lvl, len(snap[lvl]), len(entries))
		}

		count, err := mistake.NewStore(dataDir, nil).Count()
		if err != nil {
			return fmt.Errorf("load mistakes: %w", err)
		}
		fmt.Printf("\nMistakes waiting for review: %d\n", count)
		return nil
	},
}
