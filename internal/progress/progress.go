// Package progress owns the per-level mastery file. Every mutation reads
// the whole file, changes the snapshot in memory, and writes it back
// atomically; nothing else may touch the file.
package progress

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/kenta/kotoba/internal/content"
	"github.com/kenta/kotoba/internal/datadir"
)

// FileName is the progress store file within the data directory.
const FileName = "user_progress.csv"

var header = []string{"level", "mastered_vocab"}

// Snapshot maps each level to the set of kanji the user has mastered.
type Snapshot map[content.Level]map[string]bool

// Empty returns a snapshot with an empty set for every level.
func Empty() Snapshot {
	snap := make(Snapshot, len(content.Levels()))
	for _, level := range content.Levels() {
		snap[level] = make(map[string]bool)
	}
	return snap
}

// MasteredCount returns the number of mastered kanji for a level.
func (s Snapshot) MasteredCount(level content.Level) int {
	return len(s[level])
}

// Store owns the progress file.
type Store struct {
	path   string
	logger *slog.Logger
}

// NewStore creates a Store for the progress file under dir. logger may be nil.
func NewStore(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{path: filepath.Join(dir, FileName), logger: logger}
}

// Path returns the progress file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the full mastery snapshot. A missing file is replaced with the
// default five-empty-rows file and an empty snapshot is returned.
func (s *Store) Load() (Snapshot, error) {
	snap := Empty()

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Info("progress file missing, creating default", "path", s.path)
			if err := s.save(snap); err != nil {
				return nil, err
			}
			return snap, nil
		}
		return nil, fmt.Errorf("open progress file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // rows are ragged: level followed by its kanji

	if _, err := r.Read(); err != nil && err != io.EOF {
		return nil, fmt.Errorf("read progress header: %w", err)
	}

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read progress row: %w", err)
		}
		if len(row) == 0 {
			continue
		}
		level := content.Level(row[0])
		if !level.Valid() {
			s.logger.Warn("skipping progress row with unknown level", "level", row[0])
			continue
		}
		for _, kanji := range row[1:] {
			if kanji != "" {
				snap[level][kanji] = true
			}
		}
	}
	return snap, nil
}

// AddMastered records kanji as mastered for the given level. Returns false
// without rewriting the file when the kanji is already mastered.
func (s *Store) AddMastered(level content.Level, kanji string) (bool, error) {
	if !level.Valid() {
		return false, fmt.Errorf("unknown level %q", level)
	}

	snap, err := s.Load()
	if err != nil {
		return false, err
	}
	if snap[level][kanji] {
		return false, nil
	}

	snap[level][kanji] = true
	if err := s.save(snap); err != nil {
		return false, err
	}
	return true, nil
}

// Reset truncates the store back to five empty-mastery rows.
func (s *Store) Reset() error {
	return s.save(Empty())
}

// save writes the snapshot atomically. Kanji are written in sorted order so
// the file stays stable across rewrites.
func (s *Store) save(snap Snapshot) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return fmt.Errorf("write progress header: %w", err)
	}
	for _, level := range content.Levels() {
		row := []string{string(level)}
		kanji := make([]string, 0, len(snap[level]))
		for k := range snap[level] {
			kanji = append(kanji, k)
		}
		sort.Strings(kanji)
		row = append(row, kanji...)
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write progress row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("encode progress file: %w", err)
	}

	return datadir.WriteAtomic(s.path, buf.Bytes())
}
