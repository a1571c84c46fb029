// Package record persists the best score ever achieved.
//
// The value is a decimal integer with no delimiter. Reading a missing or
// unparsable record yields 0; a new record overwrites the old one.
package record

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultFile is the name of the plain record file.
const DefaultFile = "records.txt"

// Store reads and writes the raw record value.
type Store interface {
	Read() int
	Write(score int) error
	Location() string
}

// Parse decodes a stored record. Anything that is not a non-negative
// decimal integer counts as no record.
func Parse(data []byte) int {
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Format encodes a score for storage.
func Format(score int) []byte {
	return []byte(strconv.Itoa(score))
}

// FileStore keeps the record in a plain text file.
type FileStore struct {
	Path string
}

// NewFileStore returns a store for path, expanding a leading ~.
func NewFileStore(path string) (*FileStore, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("record: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return &FileStore{Path: path}, nil
}

func (s *FileStore) Read() int {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return 0
	}
	return Parse(data)
}

func (s *FileStore) Write(score int) error {
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("record: cannot create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.Path, Format(score), 0o644); err != nil {
		return fmt.Errorf("record: cannot write %s: %w", s.Path, err)
	}
	return nil
}

func (s *FileStore) Location() string { return s.Path }

// Exists reports whether the record file is present.
func (s *FileStore) Exists() bool {
	_, err := os.Stat(s.Path)
	return !errors.Is(err, fs.ErrNotExist)
}

// Book answers record questions against a Store.
type Book struct {
	store Store
}

// NewBook wraps store.
func NewBook(store Store) *Book {
	return &Book{store: store}
}

// Best returns the stored record, 0 if none.
func (b *Book) Best() int {
	return b.store.Read()
}

// IsRecord reports whether score beats the stored record.
func (b *Book) IsRecord(score int) bool {
	return score > b.store.Read()
}

// Save overwrites the record with score.
func (b *Book) Save(score int) error {
	return b.store.Write(score)
}

// Reset clears the record back to 0.
func (b *Book) Reset() error {
	return b.store.Write(0)
}

// Location describes where the record lives.
func (b *Book) Location() string {
	return b.store.Location()
}
