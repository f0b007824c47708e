// Package state persists committed pane widths between runs.
package state

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// Record is the saved row for one named layout.
type Record struct {
	Layout    string    `json:"layout"`
	Total     int       `json:"total"`
	Widths    []int     `json:"widths"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Matches reports whether r can be applied to a row of n panes spanning
// total cells under the named layout.
func (r *Record) Matches(layoutName string, n, total int) bool {
	if r == nil || r.Layout != layoutName || r.Total != total || len(r.Widths) != n {
		return false
	}
	sum := 0
	for _, w := range r.Widths {
		sum += w
	}
	return sum == total
}

// Store reads and writes Records under a directory, one file per layout.
type Store struct {
	dir string
}

// NewStore returns a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir returns the user cache directory for splitpane.
func DefaultDir() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	return filepath.Join(cacheDir, "splitpane", "widths")
}

// path maps a layout name to its file. Names come from the config file, so
// separators are escaped to keep every record inside dir.
func (s *Store) path(layoutName string) string {
	return filepath.Join(s.dir, url.PathEscape(layoutName)+".json")
}

// Load returns the saved record for a layout, or nil when there is none
// or it cannot be read.
func (s *Store) Load(layoutName string) *Record {
	path := s.path(layoutName)

	// Shared lock: blocks only while a writer holds the exclusive lock.
	fileLock := flock.New(path + ".lock")
	if err := fileLock.RLock(); err != nil {
		return nil
	}
	defer fileLock.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil
	}
	if rec.Layout != layoutName {
		return nil
	}

	return &rec
}

// Save writes the widths for a layout, replacing any previous record.
func (s *Store) Save(layoutName string, total int, widths []int) error {
	rec := Record{
		Layout:    layoutName,
		Total:     total,
		Widths:    widths,
		UpdatedAt: time.Now(),
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	path := s.path(layoutName)
	fileLock := flock.New(path + ".lock")
	if err := fileLock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", path, err)
	}
	defer fileLock.Unlock()

	// Write to a temp file then rename so readers never see a partial file.
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return err
	}

	return os.Rename(tmpPath, path)
}
