package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []struct {
		char  string
		score int
	}{
		{"scout", 100},
		{"scout", 50},
		{"scout", 200},
		{"tank", 500},
	} {
		if _, err := store.SaveRun(r.char, r.score); err != nil {
			t.Fatalf("SaveRun(%s, %d) failed: %v", r.char, r.score, err)
		}
	}

	runs, err := store.TopRunsFor("scout", 10)
	if err != nil {
		t.Fatalf("TopRunsFor() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 scout runs, got %d", len(runs))
	}

	// Should be sorted descending
	if runs[0].Score != 200 || runs[1].Score != 100 || runs[2].Score != 50 {
		t.Errorf("Runs not in expected order: %v", runs)
	}

	all, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("Expected 4 runs across characters, got %d", len(all))
	}
	if all[0].Character != "tank" || all[0].Score != 500 {
		t.Errorf("Expected tank's 500 on top, got %+v", all[0])
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun("scout", (i+1)*100)
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty table, got %d", high)
	}

	store.SaveRun("scout", 100)
	store.SaveRun("scout", 300)
	store.SaveRun("tank", 200)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}

	tankHigh, err := store.HighScoreFor("tank")
	if err != nil {
		t.Fatalf("HighScoreFor() failed: %v", err)
	}
	if tankHigh != 200 {
		t.Errorf("Expected tank high score of 200, got %d", tankHigh)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("scout", 100)
	store.SaveRun("tank", 300)

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}

func TestStoreStatsByCharacter(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("scout", 100)
	store.SaveRun("scout", 300)
	store.SaveRun("wisp", 50)

	stats, err := store.StatsByCharacter()
	if err != nil {
		t.Fatalf("StatsByCharacter() failed: %v", err)
	}

	scout, ok := stats["scout"]
	if !ok {
		t.Fatal("No stats for scout")
	}
	if scout.RunsCount != 2 || scout.HighScore != 300 {
		t.Errorf("Scout stats = %+v, want 2 runs with high 300", scout)
	}
	if scout.AvgScore != 200 {
		t.Errorf("Scout avg = %v, want 200", scout.AvgScore)
	}
	if _, ok := stats["wisp"]; !ok {
		t.Error("No stats for wisp")
	}
}
