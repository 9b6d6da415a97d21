package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-caves/internal/cave"
	"github.com/vovakirdan/tui-caves/internal/storage"
)

func testViewer(t *testing.T, store *storage.Store) ViewerModel {
	t.Helper()
	p := cave.DefaultParams()
	p.Width, p.Height = 30, 16
	p.UseRandomSeed = false
	p.Seed = "100"
	return NewViewerModel(store, ViewerOptions{Params: p, SaveDir: t.TempDir()}, 40, 20)
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m ViewerModel, msg tea.Msg) (ViewerModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(ViewerModel), cmd
}

func TestViewerSeedStepping(t *testing.T) {
	m := testViewer(t, nil)
	if m.Cave() == nil || m.Cave().Seed != "100" {
		t.Fatalf("expected initial seed 100, got %+v", m.Cave())
	}

	m, _ = press(m, runeKey("n"))
	if m.Cave().Seed != "101" {
		t.Errorf("n should step to seed 101, got %s", m.Cave().Seed)
	}
	m, _ = press(m, runeKey("p"))
	m, _ = press(m, runeKey("p"))
	if m.Cave().Seed != "99" {
		t.Errorf("p should step back to seed 99, got %s", m.Cave().Seed)
	}
}

func TestViewerFillAdjust(t *testing.T) {
	m := testViewer(t, nil)
	seed := m.Cave().Seed

	m, _ = press(m, runeKey("+"))
	if m.params.FillPercent != 51 {
		t.Errorf("expected fill 51, got %d", m.params.FillPercent)
	}
	if m.Cave().Seed != seed {
		t.Error("fill change should keep the seed")
	}
	m, _ = press(m, runeKey("-"))
	m, _ = press(m, runeKey("-"))
	if m.params.FillPercent != 49 {
		t.Errorf("expected fill 49, got %d", m.params.FillPercent)
	}
}

func TestViewerRegenerateUsesNewSeed(t *testing.T) {
	m := testViewer(t, nil)

	m, _ = press(m, runeKey("r"))
	if m.Cave().Seed == "100" {
		t.Error("r should draw a fresh time seed")
	}
	if m.params.UseRandomSeed {
		t.Error("recorded params should be fixed-seed after generation")
	}
}

func TestViewerToggles(t *testing.T) {
	m := testViewer(t, nil)

	m, _ = press(m, runeKey("m"))
	m, _ = press(m, runeKey("c"))
	m, _ = press(m, runeKey("?"))
	if !m.shapes || m.rooms || !m.help.ShowAll {
		t.Errorf("toggles not applied: shapes=%v rooms=%v help=%v", m.shapes, m.rooms, m.help.ShowAll)
	}
	if m.View() == "" {
		t.Error("view should render")
	}
}

func TestViewerAutoCycle(t *testing.T) {
	m := testViewer(t, nil)

	m, cmd := press(m, runeKey("a"))
	if !m.auto || cmd == nil {
		t.Fatal("a should start auto-cycling")
	}
	id := m.autoID

	m, cmd = press(m, TickMsg{ID: id})
	if m.Cave().Seed != "101" || cmd == nil {
		t.Errorf("tick should advance the seed and reschedule, seed %s", m.Cave().Seed)
	}

	m, _ = press(m, runeKey("a"))
	m, cmd = press(m, TickMsg{ID: id})
	if m.Cave().Seed != "101" || cmd != nil {
		t.Error("stale tick after toggling off should be ignored")
	}
}

func TestViewerQuit(t *testing.T) {
	m := testViewer(t, nil)

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.quitting || cmd == nil {
		t.Error("ctrl+c should quit")
	}
	if m.View() != "" {
		t.Error("quitting view should be empty")
	}
}

func TestViewerFitResize(t *testing.T) {
	p := cave.DefaultParams()
	p.UseRandomSeed = false
	p.Seed = "fit"
	m := NewViewerModel(nil, ViewerOptions{Params: p, Fit: true}, 50, 22)

	if m.Cave().Width != 50 || m.Cave().Height != 20 {
		t.Errorf("expected 50x20 cave, got %dx%d", m.Cave().Width, m.Cave().Height)
	}

	m, _ = press(m, tea.WindowSizeMsg{Width: 60, Height: 32})
	if m.Cave().Width != 60 || m.Cave().Height != 30 {
		t.Errorf("expected 60x30 after resize, got %dx%d", m.Cave().Width, m.Cave().Height)
	}
	if m.Cave().Seed != "fit" {
		t.Error("resize should keep the seed")
	}
}

func TestViewerSave(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := testViewer(t, store)
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].Seed != "100" {
		t.Errorf("expected one saved run with seed 100, got %+v", runs)
	}

	entries, err := os.ReadDir(m.opts.SaveDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected one snapshot file, got %d", len(entries))
	}
}

func TestViewerSaveWithoutSnapshots(t *testing.T) {
	tests := []struct {
		name      string
		withStore bool
		runs      int
		status    string
	}{
		{"with store", true, 1, "run recorded"},
		{"without store", false, 0, "saving disabled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var store *storage.Store
			if tt.withStore {
				var err error
				store, err = storage.Open(filepath.Join(t.TempDir(), "runs.db"))
				if err != nil {
					t.Fatalf("Open() failed: %v", err)
				}
				defer store.Close()
			}

			m := testViewer(t, store)
			m.opts.DisableSnapshots = true
			m, _ = press(m, tea.KeyMsg{Type: tea.KeyCtrlS})

			if m.status != tt.status {
				t.Errorf("status = %q, want %q", m.status, tt.status)
			}

			entries, err := os.ReadDir(m.opts.SaveDir)
			if err != nil {
				t.Fatal(err)
			}
			if len(entries) != 0 {
				t.Errorf("expected no snapshot files, got %d", len(entries))
			}

			if store != nil {
				runs, err := store.RecentRuns(10)
				if err != nil {
					t.Fatal(err)
				}
				if len(runs) != tt.runs {
					t.Errorf("expected %d saved runs, got %d", tt.runs, len(runs))
				}
			}
		})
	}
}

func TestHistoryModelSelect(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	rec, err := storage.NewRunRecord(testCave(t), true)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveRun(rec); err != nil {
		t.Fatal(err)
	}

	h := NewHistoryModel(store, 100, 30)
	if len(h.runs) != 1 || h.summary == nil || h.summary.Runs != 1 {
		t.Fatalf("history should load one run, got %d", len(h.runs))
	}
	if h.View() == "" {
		t.Error("history view should render")
	}

	next, cmd := h.Update(tea.KeyMsg{Type: tea.KeyEnter})
	h = next.(HistoryModel)
	if h.Selected() == nil || h.Selected().Seed != "view" || cmd == nil {
		t.Error("enter should select the run and quit")
	}
}

func TestHistoryModelEmpty(t *testing.T) {
	h := NewHistoryModel(nil, 80, 24)

	next, _ := h.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if next.(HistoryModel).Selected() != nil {
		t.Error("nothing to select in an empty history")
	}
}
