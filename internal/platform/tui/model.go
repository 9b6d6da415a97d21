package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-caves/internal/cave"
	"github.com/vovakirdan/tui-caves/internal/core"
	"github.com/vovakirdan/tui-caves/internal/export"
	"github.com/vovakirdan/tui-caves/internal/storage"
)

// Viewer layout and tuning constants.
const (
	statusLines      = 2 // Status bar + help line below the map
	fillStep         = 1
	defaultAutoDelay = 750 * time.Millisecond
)

// ViewerOptions configures a viewer session.
type ViewerOptions struct {
	Params    cave.Params
	Fit       bool          // Size the cave to the terminal on resize
	AutoDelay time.Duration // Delay between auto-cycle steps
	SaveDir   string        // Where ctrl+s writes ASCII snapshots; "" = ~/.caves/snapshots

	// DisableSnapshots makes ctrl+s record the run only, with no file
	// written. SSH sessions set it so clients cannot fill the host disk.
	DisableSnapshots bool

	// Renderer styles output for the session's terminal; nil uses stdout's.
	Renderer *lipgloss.Renderer
}

// ViewerModel is the Bubble Tea model for the interactive cave viewer.
type ViewerModel struct {
	opts     ViewerOptions
	params   cave.Params
	seedNum  int64
	cave     *cave.Map
	err      error
	screen   *core.Screen
	render   *Renderer
	store    *storage.Store
	keys     ViewerKeyMap
	help     help.Model
	shapes   bool
	rooms    bool
	auto     bool
	autoID   int
	status   string
	width    int
	height   int
	quitting bool
}

// NewViewerModel creates a viewer and generates the first cave.
func NewViewerModel(store *storage.Store, opts ViewerOptions, width, height int) ViewerModel {
	if opts.AutoDelay <= 0 {
		opts.AutoDelay = defaultAutoDelay
	}

	m := ViewerModel{
		opts:   opts,
		params: opts.Params,
		screen: core.NewScreen(width, height),
		render: NewRenderer(opts.Renderer),
		store:  store,
		keys:   DefaultViewerKeyMap(),
		help:   help.New(),
		rooms:  true,
		width:  width,
		height: height,
	}
	m.help.Width = width
	if opts.Fit {
		m.fitToScreen()
	}
	m.generate()
	return m
}

// Init initializes the viewer model.
func (m ViewerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m ViewerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Regenerate):
		m.params.UseRandomSeed = true
		m.generate()

	case key.Matches(msg, m.keys.NextSeed):
		m.stepSeed(1)

	case key.Matches(msg, m.keys.PrevSeed):
		m.stepSeed(-1)

	case key.Matches(msg, m.keys.FillUp):
		m.adjustFill(fillStep)

	case key.Matches(msg, m.keys.FillDown):
		m.adjustFill(-fillStep)

	case key.Matches(msg, m.keys.Shapes):
		m.shapes = !m.shapes

	case key.Matches(msg, m.keys.Rooms):
		m.rooms = !m.rooms

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Save):
		m.save()

	case key.Matches(msg, m.keys.Auto):
		m.auto = !m.auto
		m.autoID++
		if m.auto {
			return m, tickCmd(m.opts.AutoDelay, m.autoID)
		}
	}

	return m, nil
}

// handleResize processes window resize events.
func (m ViewerModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	if m.opts.Fit && m.fitToScreen() {
		m.params.UseRandomSeed = false
		m.params.Seed = m.currentSeed()
		m.generate()
	}
	return m, nil
}

// handleTick advances the auto-cycle.
func (m ViewerModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.auto || msg.ID != m.autoID {
		return m, nil
	}
	m.stepSeed(1)
	return m, tickCmd(m.opts.AutoDelay, m.autoID)
}

// fitToScreen sizes the params to the map area. Reports whether they changed.
func (m *ViewerModel) fitToScreen() bool {
	w := max(m.width, 3)
	h := max(m.height-statusLines, 3)
	if w == m.params.Width && h == m.params.Height {
		return false
	}
	m.params.Width, m.params.Height = w, h
	return true
}

// stepSeed regenerates with the neighboring numeric seed.
func (m *ViewerModel) stepSeed(delta int64) {
	m.seedNum += delta
	m.params.UseRandomSeed = false
	m.params.Seed = strconv.FormatInt(m.seedNum, 10)
	m.generate()
}

// adjustFill changes the fill percent and regenerates the same seed.
func (m *ViewerModel) adjustFill(delta int) {
	fill := core.Clamp(m.params.FillPercent+delta, 0, 100)
	if fill == m.params.FillPercent {
		return
	}
	m.params.FillPercent = fill
	m.params.UseRandomSeed = false
	m.params.Seed = m.currentSeed()
	m.generate()
}

func (m *ViewerModel) currentSeed() string {
	if m.cave != nil {
		return m.cave.Seed
	}
	return m.params.Seed
}

// generate runs the generator with the current params and records the seed.
func (m *ViewerModel) generate() {
	result, err := cave.Generate(m.params)
	m.err = err
	m.status = ""
	if result == nil {
		return
	}
	m.cave = result
	m.params = result.Params
	m.seedNum = seedNumber(result.Seed)
}

// seedNumber maps a seed to the integer that n/p step from.
func seedNumber(seed string) int64 {
	if n, err := strconv.ParseInt(seed, 10, 64); err == nil {
		return n
	}
	return int64(core.SeedFromString(seed) % 1_000_000)
}

// save records the current run and writes an ASCII snapshot.
func (m *ViewerModel) save() {
	if m.cave == nil {
		return
	}

	if m.store != nil {
		rec, err := storage.NewRunRecord(m.cave, m.err == nil)
		if err == nil {
			_, err = m.store.SaveRun(rec)
		}
		if err != nil {
			m.status = "save failed: " + err.Error()
			return
		}
	}

	if m.opts.DisableSnapshots {
		if m.store == nil {
			m.status = "saving disabled"
		} else {
			m.status = "run recorded"
		}
		return
	}

	path, err := m.writeSnapshot()
	if err != nil {
		m.status = "snapshot failed: " + err.Error()
		return
	}
	m.status = "saved " + path
}

// writeSnapshot writes the current map as ASCII into the snapshot directory.
func (m *ViewerModel) writeSnapshot() (string, error) {
	dir := m.opts.SaveDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".caves", "snapshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("cave_%s_%s.txt", m.cave.Seed, timestamp))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := export.Write(f, "ascii", m.cave); err != nil {
		return "", err
	}
	return path, nil
}

// statusLine summarizes the current map.
func (m ViewerModel) statusLine() string {
	if m.cave == nil {
		return m.render.err.Render(fmt.Sprintf("generation failed: %v", m.err))
	}

	st := m.cave.Stats
	line := fmt.Sprintf("seed %s  %dx%d  fill %d%%  rooms %d  passages %d  repairs %d/%d",
		m.cave.Seed, m.cave.Width, m.cave.Height, m.params.FillPercent,
		st.Rooms, st.Passages, st.HolesRepaired, st.RepairPasses)
	if m.auto {
		line += "  [auto]"
	}

	switch {
	case errors.Is(m.err, cave.ErrNotConverged):
		return m.render.err.Render(line + "  (repair did not converge)")
	case m.err != nil:
		return m.render.err.Render(m.err.Error())
	case m.status != "":
		return m.render.status.Render(line + "  " + m.status)
	}
	return m.render.status.Render(line)
}

// View renders the current state to a string for display.
func (m ViewerModel) View() string {
	if m.quitting {
		return ""
	}

	mapRows := max(m.height-statusLines, 0)
	m.screen.Clear()
	if m.cave != nil {
		DrawCave(m.screen, m.cave, DrawOptions{Shapes: m.shapes, Rooms: m.rooms})
	} else {
		m.screen.DrawTextCentered(mapRows/2, "no cave to show")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.render.Screen(m.screen, mapRows),
		m.statusLine(),
		m.render.help.Render(m.help.View(m.keys)),
	)
}

// Cave returns the currently displayed map.
func (m ViewerModel) Cave() *cave.Map {
	return m.cave
}

// Err returns the error of the last generation, if any.
func (m ViewerModel) Err() error {
	return m.err
}

// RunViewer starts the Bubble Tea program with a viewer model.
func RunViewer(store *storage.Store, opts ViewerOptions, width, height int) error {
	model := NewViewerModel(store, opts, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
