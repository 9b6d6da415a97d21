package storage

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-caves/internal/cave"
	"github.com/vovakirdan/tui-caves/internal/config"
)

// RunRecord is one stored generation run.
type RunRecord struct {
	ID            int64
	Seed          string
	Width         int
	Height        int
	ParamsYAML    string // Effective parameters, including the seed
	Rooms         int
	Passages      int
	RepairPasses  int
	HolesRepaired int
	FloorRatio    float64
	Converged     bool
	CreatedAt     time.Time
}

// NewRunRecord builds a record from a generated map. converged is false when
// the run ended with cave.ErrNotConverged.
func NewRunRecord(m *cave.Map, converged bool) (RunRecord, error) {
	data, err := config.Marshal(config.FromParams(m.Params))
	if err != nil {
		return RunRecord{}, fmt.Errorf("storage: cannot encode params: %w", err)
	}
	return RunRecord{
		Seed:          m.Seed,
		Width:         m.Width,
		Height:        m.Height,
		ParamsYAML:    string(data),
		Rooms:         m.Stats.Rooms,
		Passages:      m.Stats.Passages,
		RepairPasses:  m.Stats.RepairPasses,
		HolesRepaired: m.Stats.HolesRepaired,
		FloorRatio:    m.Stats.FloorRatio,
		Converged:     converged,
	}, nil
}

// Params decodes the stored parameters.
func (r RunRecord) Params() (cave.Params, error) {
	cfg, err := config.Parse([]byte(r.ParamsYAML))
	if err != nil {
		return cave.Params{}, fmt.Errorf("storage: run %d has invalid params: %w", r.ID, err)
	}
	return cfg.Params(), nil
}
