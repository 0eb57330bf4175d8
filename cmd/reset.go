package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kenta/kotoba/internal/mistake"
	"github.com/kenta/kotoba/internal/progress"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset mastery progress and recorded mistakes",
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := resolveDataDir(cmd)
		if err != nil {
			return fmt.Errorf("resolve data dir: %w", err)
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Print("This wipes all mastery progress and recorded mistakes. Continue? [y/N] ")
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if strings.ToLower(strings.TrimSpace(line)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := progress.NewStore(dataDir, nil).Reset(); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}
		if err := mistake.NewStore(dataDir, nil).Reset(); err != nil {
			return fmt.Errorf("reset mistakes: %w", err)
		}
		fmt.Println("All progress and mistakes cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}
