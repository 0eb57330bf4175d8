package cmd

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kenta/kotoba/internal/app"
	"github.com/kenta/kotoba/internal/content"
	"github.com/kenta/kotoba/internal/mistake"
	"github.com/kenta/kotoba/internal/progress"
)

// runApp resolves the data directory, builds the stores, and launches the
// TUI. Logs go to a file in the data directory; stdout belongs to the TUI.
func runApp(cmd *cobra.Command) error {
	dataDir, err := resolveDataDir(cmd)
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	logFile, err := os.OpenFile(filepath.Join(dataDir, "kotoba.log"),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	logger := slog.New(slog.NewJSONHandler(logFile, nil))

	logger.Info("kotoba starting", "version", version, "data_dir", dataDir)

	opts := app.Options{
		Content:  content.NewStore(dataDir, logger),
		Progress: progress.NewStore(dataDir, logger),
		Mistakes: mistake.NewStore(dataDir, logger),
		Logger:   logger,
		RNG:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	return app.Run(opts)
}
