// Package mistake owns the mistake bank: a deduplicated table of missed
// items keyed by (word, kana), each carrying a repeat count and the time of
// the latest miss. The file is fully rewritten on every mutation.
package mistake

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
	"strconv"
	"time"

	"github.com/kenta/kotoba/internal/datadir"
)

// FileName is the mistake store file within the data directory.
const FileName = "mistakes.csv"

// DateLayout is the timestamp format used in the last_mistake_date column.
const DateLayout = "06-01-02 15:04:05"

var header = []string{"word", "kana", "correct_answer", "user_answer", "mistake_count", "last_mistake_date"}

// Record is one tracked mistake.
type Record struct {
	Word          string
	Kana          string
	CorrectAnswer string
	UserAnswer    string
	Count         int
	LastMiss      time.Time
}

// SameKey reports whether two records refer to the same (word, kana) pair.
func (r Record) SameKey(other Record) bool {
	return r.Word == other.Word && r.Kana == other.Kana
}

// Store owns the mistake file.
type Store struct {
	path   string
	logger *slog.Logger
	now    func() time.Time
}

// NewStore creates a Store for the mistake file under dir. logger may be nil.
func NewStore(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		path:   filepath.Join(dir, FileName),
		logger: logger,
		now:    time.Now,
	}
}

// Path returns the mistake file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads every stored mistake. A missing file is replaced with a
// header-only file and an empty list is returned.
func (s *Store) Load() ([]Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Info("mistake file missing, creating default", "path", s.path)
			if err := s.save(nil); err != nil {
				return nil, err
			}
			return nil, nil
		}
		return nil, fmt.Errorf("open mistake file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	if _, err := r.Read(); err != nil && err != io.EOF {
		return nil, fmt.Errorf("read mistake header: %w", err)
	}

	var records []Record
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read mistake row: %w", err)
		}
		rec, ok := parseRow(row)
		if !ok {
			s.logger.Warn("skipping malformed mistake row", "row", row)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// Count returns the number of stored mistakes.
func (s *Store) Count() (int, error) {
	records, err := s.Load()
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// Add upserts a mistake. An existing (word, kana) key has its count
// incremented and its answers and timestamp overwritten; a new key is
// appended with a count of 1.
func (s *Store) Add(word, kana, correctAnswer, userAnswer string) error {
	records, err := s.Load()
	if err != nil {
		return err
	}

	now := s.now()
	updated := false
	for i := range records {
		if records[i].Word == word && records[i].Kana == kana {
			records[i].CorrectAnswer = correctAnswer
			records[i].UserAnswer = userAnswer
			records[i].Count++
			records[i].LastMiss = now
			updated = true
			break
		}
	}
	if !updated {
		records = append(records, Record{
			Word:          word,
			Kana:          kana,
			CorrectAnswer: correctAnswer,
			UserAnswer:    userAnswer,
			Count:         1,
			LastMiss:      now,
		})
	}
	return s.save(records)
}

// Remove deletes every record with the given word. Returns true if
// anything was removed.
func (s *Store) Remove(word string) (bool, error) {
	records, err := s.Load()
	if err != nil {
		return false, err
	}

	kept := records[:0]
	for _, rec := range records {
		if rec.Word != word {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(records) {
		return false, nil
	}
	if err := s.save(kept); err != nil {
		return false, err
	}
	return true, nil
}

// ReplaceAll overwrites the store with exactly the given records, counts
// and timestamps untouched. Used after a full review pass, where the
// surviving mistakes must be persisted verbatim rather than re-counted.
func (s *Store) ReplaceAll(records []Record) error {
	return s.save(records)
}

// Reset truncates the store back to a header-only file.
func (s *Store) Reset() error {
	return s.save(nil)
}

func (s *Store) save(records []Record) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return fmt.Errorf("write mistake header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.Word,
			rec.Kana,
			rec.CorrectAnswer,
			rec.UserAnswer,
			strconv.Itoa(rec.Count),
			rec.LastMiss.Format(DateLayout),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write mistake row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("encode mistake file: %w", err)
	}

	return datadir.WriteAtomic(s.path, buf.Bytes())
}

func parseRow(row []string) (Record, bool) {
	if len(row) < 6 || row[0] == "" {
		return Record{}, false
	}
	count, err := strconv.Atoi(row[4])
	if err != nil || count < 1 {
		return Record{}, false
	}
	lastMiss, err := time.ParseInLocation(DateLayout, row[5], time.Local)
	if err != nil {
		// Keep the record; an unreadable date should not lose the mistake.
		lastMiss = time.Time{}
	}
	return Record{
		Word:          row[0],
		Kana:          row[1],
		CorrectAnswer: row[2],
		UserAnswer:    row[3],
		Count:         count,
		LastMiss:      lastMiss,
	}, true
}
