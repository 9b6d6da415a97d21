// Package export provides a registry of cave map output formats.
// Formats register themselves in init() functions, so the CLI can list and
// select them by name without hardcoded dependencies.
package export

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-caves/internal/cave"
)

// Exporter writes a generated map in one output format.
type Exporter interface {
	// ID returns the format name used on the command line (e.g., "ascii").
	ID() string

	// Title returns a human-readable description.
	Title() string

	// Extension returns the preferred file extension, including the dot.
	Extension() string

	// Export writes m to w.
	Export(w io.Writer, m *cave.Map) error
}

// FormatInfo contains metadata about a registered format.
type FormatInfo struct {
	ID        string
	Title     string
	Extension string
}

var (
	formats = make(map[string]Exporter)
	mu      sync.RWMutex
)

// Register adds an exporter to the registry.
// Panics if a format with the same ID is already registered.
func Register(e Exporter) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := formats[e.ID()]; exists {
		panic(fmt.Sprintf("export: format %q already registered", e.ID()))
	}
	formats[e.ID()] = e
}

// List returns information about all registered formats, sorted by ID.
func List() []FormatInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FormatInfo, 0, len(formats))
	for id, e := range formats {
		result = append(result, FormatInfo{
			ID:        id,
			Title:     e.Title(),
			Extension: e.Extension(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the exporter for a format ID.
// Returns an error if the format is not registered.
func Get(id string) (Exporter, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := formats[id]
	if !ok {
		return nil, fmt.Errorf("export: unknown format %q", id)
	}
	return e, nil
}

// Exists checks if a format with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := formats[id]
	return ok
}

// Write exports m in the named format.
func Write(w io.Writer, id string, m *cave.Map) error {
	e, err := Get(id)
	if err != nil {
		return err
	}
	if err := e.Export(w, m); err != nil {
		return fmt.Errorf("export: %s: %w", id, err)
	}
	return nil
}
