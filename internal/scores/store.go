// Package scores keeps the high-score table in a small JSON file.
package scores

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// DefaultLimit caps how many records the file keeps.
const DefaultLimit = 10

// Record is one finished session.
type Record struct {
	ID         uuid.UUID     `json:"id"`
	Name       string        `json:"name"`
	Score      int           `json:"score"`
	Mode       string        `json:"mode"`
	Difficulty string        `json:"difficulty"`
	Duration   time.Duration `json:"duration"`
	At         time.Time     `json:"at"`
}

// Store is the table backed by path. An empty path keeps records in memory only.
type Store struct {
	path    string
	limit   int
	records []Record
}

// Open loads the table at path. A missing file is an empty table.
func Open(path string) (*Store, error) {
	s := &Store{path: path, limit: DefaultLimit}
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	if len(data) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(data, &s.records); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	s.sort()
	return s, nil
}

// Add inserts r, keeps the best records and writes the file.
func (s *Store) Add(r Record) error {
	if r.Name == "" {
		r.Name = "anonymous"
	}
	s.records = append(s.records, r)
	s.sort()
	if len(s.records) > s.limit {
		s.records = s.records[:s.limit]
	}
	return s.save()
}

// Top returns up to n records, best first.
func (s *Store) Top(n int) []Record {
	if n > len(s.records) {
		n = len(s.records)
	}
	out := make([]Record, n)
	copy(out, s.records[:n])
	return out
}

// Best is the highest recorded score, zero for an empty table.
func (s *Store) Best() int {
	if len(s.records) == 0 {
		return 0
	}
	return s.records[0].Score
}

func (s *Store) sort() {
	sort.SliceStable(s.records, func(i, j int) bool {
		if s.records[i].Score != s.records[j].Score {
			return s.records[i].Score > s.records[j].Score
		}
		return s.records[i].At.Before(s.records[j].At)
	})
}

func (s *Store) save() error {
	if s.path == "" {
		return nil
	}
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode scores")
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".scores-*")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "write %s", tmp.Name())
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "close %s", tmp.Name())
	}
	return errors.Wrapf(os.Rename(tmp.Name(), s.path), "replace %s", s.path)
}
