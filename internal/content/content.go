// Package content loads the read-only vocabulary and character reference
// data that quizzes and browse screens are built from. Files are UTF-8 CSV
// with a header row; a missing file is not an error and yields an empty set.
package content

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// VocabEntry is one vocabulary item within a JLPT level.
type VocabEntry struct {
	Kanji   string
	Kana    string
	Meaning string
}

// CharacterEntry is one kana character and its romanized reading.
type CharacterEntry struct {
	Character string
	Reading   string
}

// Store reads reference data files from a single data directory.
type Store struct {
	dir    string
	logger *slog.Logger
}

// NewStore creates a Store rooted at dir. logger may be nil.
func NewStore(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{dir: dir, logger: logger}
}

// VocabFile returns the path of the vocabulary file for a level.
func (s *Store) VocabFile(level Level) string {
	return filepath.Join(s.dir, fmt.Sprintf("jlpt_%s.csv", strings.ToLower(string(level))))
}

// CharacterFile returns the path of the character file.
func (s *Store) CharacterFile() string {
	return filepath.Join(s.dir, "characters.csv")
}

// Vocabulary loads all vocabulary entries for the given level. An absent
// file yields an empty slice; rows with blank kanji or meaning are skipped.
func (s *Store) Vocabulary(level Level) ([]VocabEntry, error) {
	if !level.Valid() {
		return nil, fmt.Errorf("unknown level %q", level)
	}

	rows, err := s.readRows(s.VocabFile(level))
	if err != nil {
		return nil, err
	}

	entries := make([]VocabEntry, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 || row[0] == "" || row[2] == "" {
			s.logger.Warn("skipping malformed vocabulary row",
				"level", level, "line", i+2)
			continue
		}
		entries = append(entries, VocabEntry{
			Kanji:   row[0],
			Kana:    row[1],
			Meaning: row[2],
		})
	}
	return entries, nil
}

// AllVocabulary concatenates the vocabulary of every level, easiest first.
// Used as the distractor pool when practicing stored mistakes.
func (s *Store) AllVocabulary() ([]VocabEntry, error) {
	var all []VocabEntry
	for _, level := range Levels() {
		entries, err := s.Vocabulary(level)
		if err != nil {
			return nil, err
		}
		all = append(all, entries...)
	}
	return all, nil
}

// Characters loads all character entries.
func (s *Store) Characters() ([]CharacterEntry, error) {
	rows, err := s.readRows(s.CharacterFile())
	if err != nil {
		return nil, err
	}

	entries := make([]CharacterEntry, 0, len(rows))
	for i, row := range rows {
		if len(row) < 2 || row[0] == "" || row[1] == "" {
			s.logger.Warn("skipping malformed character row", "line", i+2)
			continue
		}
		entries = append(entries, CharacterEntry{
			Character: row[0],
			Reading:   row[1],
		})
	}
	return entries, nil
}

// readRows reads every data row of a CSV file, skipping the header.
// A missing file is reported as no rows.
func (s *Store) readRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("content file not found", "path", path)
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // validated per row

	if _, err := r.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// The reader resumes at the next line after a parse error.
			s.logger.Warn("skipping unreadable row", "path", path, "err", err)
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}
