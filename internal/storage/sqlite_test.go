package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-caves/internal/cave"
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

func generate(t *testing.T, seed string) *cave.Map {
	t.Helper()
	p := cave.DefaultParams()
	p.Width, p.Height = 40, 30
	p.UseRandomSeed = false
	p.Seed = seed
	m, err := cave.Generate(p)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	return m
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	var ids []int64
	for _, seed := range []string{"one", "two", "three"} {
		rec, err := NewRunRecord(generate(t, seed), true)
		if err != nil {
			t.Fatalf("NewRunRecord() failed: %v", err)
		}
		id, err := store.SaveRun(rec)
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		ids = append(ids, id)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	if runs[0].Seed != "three" || runs[2].Seed != "one" {
		t.Errorf("Expected newest first, got %s..%s", runs[0].Seed, runs[2].Seed)
	}

	limited, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 runs with limit, got %d", len(limited))
	}

	run, err := store.RunByID(ids[1])
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run == nil || run.Seed != "two" || run.Width != 40 || !run.Converged {
		t.Errorf("Unexpected run: %+v", run)
	}
}

func TestRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	run, err := store.RunByID(42)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run != nil {
		t.Errorf("Expected nil for missing run, got %+v", run)
	}
}

func TestRunParamsRegenerate(t *testing.T) {
	store := openTestStore(t)
	first := generate(t, "stored")

	rec, err := NewRunRecord(first, true)
	if err != nil {
		t.Fatalf("NewRunRecord() failed: %v", err)
	}
	id, err := store.SaveRun(rec)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	stored, err := store.RunByID(id)
	if err != nil || stored == nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	p, err := stored.Params()
	if err != nil {
		t.Fatalf("Params() failed: %v", err)
	}
	again, err := cave.Generate(p)
	if err != nil {
		t.Fatalf("regenerate failed: %v", err)
	}
	if !again.Grid.Equal(first.Grid) {
		t.Error("Stored params should reproduce the grid")
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	rec, err := NewRunRecord(generate(t, "clear"), true)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveRun(rec); err != nil {
		t.Fatal(err)
	}

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}

func TestSummary(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastRun.IsZero() {
		t.Errorf("Expected empty summary, got %+v", empty)
	}

	records := []RunRecord{
		{Seed: "a", Width: 10, Height: 10, ParamsYAML: "{}", Rooms: 2, HolesRepaired: 3, FloorRatio: 0.4, Converged: true},
		{Seed: "b", Width: 10, Height: 10, ParamsYAML: "{}", Rooms: 6, HolesRepaired: 1, FloorRatio: 0.6, Converged: false},
	}
	for _, r := range records {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	sum, err := store.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum.Runs != 2 || sum.MaxRooms != 6 || sum.TotalHoles != 4 || sum.Unconverged != 1 {
		t.Errorf("Unexpected summary: %+v", sum)
	}
	if sum.AvgRooms != 4 {
		t.Errorf("Expected average of 4 rooms, got %f", sum.AvgRooms)
	}
	if sum.LastRun.IsZero() {
		t.Error("Expected last run time")
	}
}
