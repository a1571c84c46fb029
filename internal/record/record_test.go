package record

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"plain", "42", 42},
		{"zero", "0", 0},
		{"trailing newline", "17\n", 17},
		{"empty", "", 0},
		{"garbage", "abc", 0},
		{"negative", "-5", 0},
		{"float", "3.5", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse([]byte(tt.input)); got != tt.expected {
				t.Errorf("Parse(%q) = %d, expected %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := &FileStore{Path: filepath.Join(t.TempDir(), "nested", DefaultFile)}

	if store.Exists() {
		t.Fatal("record should not exist yet")
	}
	if got := store.Read(); got != 0 {
		t.Errorf("Read() on missing file = %d, expected 0", got)
	}

	for _, score := range []int{0, 7, 12345} {
		if err := store.Write(score); err != nil {
			t.Fatalf("Write(%d) error = %v", score, err)
		}
		if got := store.Read(); got != score {
			t.Errorf("Read() = %d, expected %d", got, score)
		}
	}

	data, err := os.ReadFile(store.Path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "12345" {
		t.Errorf("file content = %q, expected a bare decimal", data)
	}
}

func TestFileStoreUnparsable(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	if err := os.WriteFile(path, []byte("not a number"), 0o644); err != nil {
		t.Fatal(err)
	}

	book := NewBook(&FileStore{Path: path})
	if book.Best() != 0 {
		t.Errorf("Best() = %d, expected 0 for an unparsable record", book.Best())
	}
	if !book.IsRecord(1) {
		t.Error("any positive score beats an unparsable record")
	}
}

func TestBookIsRecord(t *testing.T) {
	book := NewBook(&FileStore{Path: filepath.Join(t.TempDir(), DefaultFile)})
	if err := book.Save(10); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		score    int
		expected bool
	}{
		{0, false},
		{9, false},
		{10, false},
		{11, true},
	}
	for _, tt := range tests {
		if got := book.IsRecord(tt.score); got != tt.expected {
			t.Errorf("IsRecord(%d) = %v, expected %v", tt.score, got, tt.expected)
		}
	}

	if err := book.Reset(); err != nil {
		t.Fatal(err)
	}
	if book.Best() != 0 {
		t.Errorf("Best() after Reset = %d", book.Best())
	}
}

func TestNewFileStoreExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewFileStore("~/records.txt")
	if err != nil {
		t.Fatal(err)
	}
	if store.Path != filepath.Join(home, "records.txt") {
		t.Errorf("Path = %q", store.Path)
	}
}

func TestGdataStoreRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))

	store, err := OpenGdata("fruits_record_test")
	if err != nil {
		t.Fatalf("OpenGdata() error = %v", err)
	}
	if got := store.Read(); got != 0 {
		t.Errorf("Read() without record = %d, expected 0", got)
	}

	book := NewBook(store)
	if err := book.Save(33); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if book.Best() != 33 || book.IsRecord(33) || !book.IsRecord(34) {
		t.Errorf("Best() = %d after saving 33", book.Best())
	}
}
