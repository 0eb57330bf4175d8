// Package datadir resolves where Kotoba keeps its data files and provides
// the atomic write primitive shared by the writable stores.
package datadir

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvVar overrides the default data directory when set.
const EnvVar = "KOTOBA_DATA"

// Default resolves the data directory in priority order:
// 1. KOTOBA_DATA environment variable
// 2. $XDG_DATA_HOME/kotoba
// 3. ~/.local/share/kotoba
func Default() (string, error) {
	if p := os.Getenv(EnvVar); p != "" {
		return p, Ensure(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "kotoba")
	return p, Ensure(p)
}

// Ensure creates dir if it doesn't exist.
func Ensure(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// WriteAtomic writes data to path via a temp file in the same directory
// followed by a rename, so a crash mid-write never truncates the store.
func WriteAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
