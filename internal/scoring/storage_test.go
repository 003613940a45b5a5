package scoring

import (
	"testing"
)

func TestMemoryStorage_SaveAndLoad(t *testing.T) {
	storage := NewMemoryStorage()

	// 1. Load on empty storage
	entries, err := storage.LoadAll()
	if err != nil {
		t.Errorf("LoadAll on empty storage returned error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected 0 entries, got %d", len(entries))
	}

	// 2. Save
	testEntries := []ScoreHistoryEntry{
		{Hash: "abc", Score: 100, Title: "Test1", Timestamp: "2023-01-01"},
		{Hash: "def", Score: 200, Title: "Test2", Timestamp: "2023-01-02", Won: true},
	}
	if err := storage.SaveAll(testEntries); err != nil {
		t.Fatalf("SaveAll returned error: %v", err)
	}

	// 3. Load again
	loaded, err := storage.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll returned error: %v", err)
	}
	if len(loaded) != len(testEntries) {
		t.Fatalf("Expected %d entries, got %d", len(testEntries), len(loaded))
	}
	if loaded[0].Hash != "abc" || loaded[1].Score != 200 || !loaded[1].Won {
		t.Errorf("Loaded content mismatch. Got: %+v", loaded)
	}
	if storage.Len() != 2 {
		t.Errorf("Expected Len 2, got %d", storage.Len())
	}
}

func TestMemoryStorage_LoadReturnsCopy(t *testing.T) {
	storage := NewMemoryStorage()
	_ = storage.SaveAll([]ScoreHistoryEntry{{Hash: "abc", Score: 1}})

	loaded, _ := storage.LoadAll()
	loaded[0].Score = 999

	again, _ := storage.LoadAll()
	if again[0].Score != 1 {
		t.Errorf("Mutating a loaded slice leaked into storage: %+v", again)
	}
}

func TestMemoryStorage_SaveCopiesInput(t *testing.T) {
	storage := NewMemoryStorage()
	in := []ScoreHistoryEntry{{Hash: "abc", Score: 1}}
	_ = storage.SaveAll(in)

	in[0].Score = 42

	loaded, _ := storage.LoadAll()
	if loaded[0].Score != 1 {
		t.Errorf("Mutating the saved slice leaked into storage: %+v", loaded)
	}
}
