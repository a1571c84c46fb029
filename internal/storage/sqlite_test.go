package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Score: 100, Level: 3, Duration: 20 * time.Second, Difficulty: "normal", Seed: 7},
		{Score: 50, Level: 2, Duration: 10 * time.Second, Difficulty: "normal"},
		{Score: 200, Level: 5, Duration: 40 * time.Second, Difficulty: "normal"},
		{Score: 500, Level: 9, Duration: time.Minute, Difficulty: "easy"},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns("normal", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}
	if top[0].Score != 200 || top[1].Score != 100 || top[2].Score != 50 {
		t.Errorf("Runs not in expected order: %v", top)
	}
	if top[1].Level != 3 || top[1].Duration != 20*time.Second || top[1].Seed != 7 {
		t.Errorf("Run fields not preserved: %+v", top[1])
	}

	all, err := store.TopRuns("", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(all) != 4 || all[0].Difficulty != "easy" {
		t.Errorf("Expected 4 runs led by easy, got %v", all)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{Score: (i + 1) * 100, Difficulty: "hard"})
	}

	top, err := store.TopRuns("hard", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(top))
	}
	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", top)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 4; i++ {
		store.SaveRun(Run{Score: i, Difficulty: "normal"})
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 3 || recent[1].Score != 2 {
		t.Errorf("RecentRuns() = %v, expected the last two", recent)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 with no runs, got %d", high)
	}

	store.SaveRun(Run{Score: 100, Difficulty: "normal"})
	store.SaveRun(Run{Score: 300, Difficulty: "normal"})
	store.SaveRun(Run{Score: 900, Difficulty: "easy"})

	tests := []struct {
		difficulty string
		expected   int
	}{
		{"normal", 300},
		{"easy", 900},
		{"hard", 0},
		{"", 900},
	}
	for _, tt := range tests {
		high, err := store.HighScore(tt.difficulty)
		if err != nil {
			t.Fatalf("HighScore(%q) failed: %v", tt.difficulty, err)
		}
		if high != tt.expected {
			t.Errorf("HighScore(%q) = %d, expected %d", tt.difficulty, high, tt.expected)
		}
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Score: 100, Difficulty: "normal"})
	store.SaveRun(Run{Score: 200, Difficulty: "normal"})
	store.SaveRun(Run{Score: 300, Difficulty: "hard"})

	if err := store.ClearRuns("normal"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	normal, _ := store.TopRuns("normal", 10)
	if len(normal) != 0 {
		t.Errorf("Expected 0 normal runs after clear, got %d", len(normal))
	}
	hard, _ := store.TopRuns("hard", 10)
	if len(hard) != 1 {
		t.Error("Hard runs should not be affected by clearing normal")
	}

	if err := store.ClearRuns(""); err != nil {
		t.Fatalf("ClearRuns(\"\") failed: %v", err)
	}
	all, _ := store.TopRuns("", 10)
	if len(all) != 0 {
		t.Errorf("Expected no runs after clearing all, got %d", len(all))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Score: 10, Level: 2, Duration: 30 * time.Second, Difficulty: "normal"})
	store.SaveRun(Run{Score: 30, Level: 4, Duration: 90 * time.Second, Difficulty: "normal"})
	store.SaveRun(Run{Score: 5, Level: 1, Duration: 5 * time.Second, Difficulty: "easy"})

	st, err := store.DifficultyStats("normal")
	if err != nil {
		t.Fatalf("DifficultyStats() failed: %v", err)
	}
	if st.Runs != 2 || st.HighScore != 30 || st.BestLevel != 4 {
		t.Errorf("DifficultyStats() = %+v", st)
	}
	if st.AvgScore != 20 {
		t.Errorf("AvgScore = %v, expected 20", st.AvgScore)
	}
	if st.TotalTime != 2*time.Minute {
		t.Errorf("TotalTime = %v, expected 2m", st.TotalTime)
	}

	empty, err := store.DifficultyStats("hard")
	if err != nil {
		t.Fatalf("DifficultyStats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats for hard, got %+v", empty)
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 || all["easy"].Runs != 1 || all["normal"].HighScore != 30 {
		t.Errorf("AllStats() = %v", all)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
