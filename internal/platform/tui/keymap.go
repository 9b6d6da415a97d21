package tui

import "github.com/charmbracelet/bubbles/key"

// ViewerKeyMap defines the key bindings for the cave viewer.
type ViewerKeyMap struct {
	Regenerate key.Binding
	NextSeed   key.Binding
	PrevSeed   key.Binding
	FillUp     key.Binding
	FillDown   key.Binding
	Shapes     key.Binding
	Rooms      key.Binding
	Auto       key.Binding
	Save       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ViewerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Regenerate, k.NextSeed, k.PrevSeed, k.Auto, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ViewerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Regenerate, k.NextSeed, k.PrevSeed, k.Auto},
		{k.FillUp, k.FillDown, k.Shapes, k.Rooms},
		{k.Save, k.Help, k.Quit},
	}
}

// DefaultViewerKeyMap returns default key bindings.
func DefaultViewerKeyMap() ViewerKeyMap {
	return ViewerKeyMap{
		Regenerate: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new seed"),
		),
		NextSeed: key.NewBinding(
			key.WithKeys("n", "right"),
			key.WithHelp("n", "next seed"),
		),
		PrevSeed: key.NewBinding(
			key.WithKeys("p", "left"),
			key.WithHelp("p", "prev seed"),
		),
		FillUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "more wall"),
		),
		FillDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "less wall"),
		),
		Shapes: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "wall shapes"),
		),
		Rooms: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "room colors"),
		),
		Auto: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "auto cycle"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save run"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
