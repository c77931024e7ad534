package flipbook

import (
	"slices"
	"sort"

	"github.com/rs/zerolog"
)

const DefaultHistoryCap = 50

// Manager owns the ordered image sequence, the selection set, and the
// undo/redo history. It is single-owner and not safe for concurrent use;
// the GUI host serializes all calls.
type Manager struct {
	entries []Entry

	selected map[int]struct{}
	anchor   int // last-touched index, -1 when unset

	undo       [][]Entry
	redo       [][]Entry
	historyCap int

	log zerolog.Logger
}

// NewManager creates an empty manager. A historyCap <= 0 selects
// DefaultHistoryCap.
func NewManager(log zerolog.Logger, historyCap int) *Manager {
	if historyCap <= 0 {
		historyCap = DefaultHistoryCap
	}
	return &Manager{
		selected:   make(map[int]struct{}),
		anchor:     -1,
		historyCap: historyCap,
		log:        log.With().Str("component", "sequence").Logger(),
	}
}

// Len returns the number of entries in the sequence.
func (m *Manager) Len() int {
	return len(m.entries)
}

// Entries returns a copy of the current order for read-only use.
func (m *Manager) Entries() []Entry {
	return slices.Clone(m.entries)
}

// Entry returns the entry at index i.
func (m *Manager) Entry(i int) (Entry, error) {
	if i < 0 || i >= len(m.entries) {
		return Entry{}, ErrOutOfRange
	}
	return m.entries[i], nil
}

// ReplaceAll discards the sequence, the selection, and both history
// stacks. A fresh folder load is intentionally not undoable.
func (m *Manager) ReplaceAll(entries []Entry) {
	m.entries = slices.Clone(entries)
	m.clearSelectionState()
	m.undo = nil
	m.redo = nil
	m.log.Info().Int("count", len(entries)).Msg("sequence replaced")
}

// Append extends the sequence. An empty batch is a no-op: no snapshot
// is taken and the redo stack is untouched.
func (m *Manager) Append(entries []Entry) error {
	if len(entries) == 0 {
		return ErrEmptyOperation
	}
	m.pushSnapshot()
	m.entries = append(m.entries, entries...)
	m.log.Debug().Int("added", len(entries)).Int("total", len(m.entries)).Msg("entries appended")
	return nil
}

// Delete removes the entries at the given indices. Invalid indices are
// skipped; valid ones in the same batch are still removed. Selection
// and anchor are cleared.
func (m *Manager) Delete(indices []int) error {
	if len(indices) == 0 {
		return ErrEmptyOperation
	}
	valid := m.validIndices(indices)
	if len(valid) == 0 {
		return ErrOutOfRange
	}
	m.pushSnapshot()

	// Descending order so earlier removals do not shift later ones.
	for i := len(valid) - 1; i >= 0; i-- {
		m.entries = slices.Delete(m.entries, valid[i], valid[i]+1)
	}
	m.clearSelectionState()
	m.log.Debug().Int("removed", len(valid)).Int("total", len(m.entries)).Msg("entries deleted")
	return nil
}

// DeleteSelected removes the currently selected entries.
func (m *Manager) DeleteSelected() error {
	return m.Delete(m.Selected())
}

// Move relocates the entries at sources so the block starts at target,
// preserving their relative order. target addresses the pre-removal
// index space: [0, Len()], where Len() means "move to end". After the
// move the selection is exactly the new positions of the moved block.
func (m *Manager) Move(sources []int, target int) error {
	if len(sources) == 0 {
		return ErrEmptyOperation
	}
	valid := m.validIndices(sources)
	if len(valid) == 0 {
		return ErrOutOfRange
	}
	if target < 0 {
		target = 0
	}
	if target > len(m.entries) {
		target = len(m.entries)
	}

	m.pushSnapshot()

	// Phase one: extract in ascending order, then remove descending,
	// decrementing the target once for every removed index below it so
	// it keeps pointing at the same logical gap.
	moved := make([]Entry, len(valid))
	for i, src := range valid {
		moved[i] = m.entries[src]
	}
	adjusted := target
	for i := len(valid) - 1; i >= 0; i-- {
		src := valid[i]
		m.entries = slices.Delete(m.entries, src, src+1)
		if src < target {
			adjusted--
		}
	}

	// Phase two: insert the block at the adjusted position.
	m.entries = slices.Insert(m.entries, adjusted, moved...)

	m.selected = make(map[int]struct{}, len(moved))
	for i := range moved {
		m.selected[adjusted+i] = struct{}{}
	}
	m.anchor = adjusted

	m.log.Debug().
		Ints("sources", valid).
		Int("target", target).
		Int("placed_at", adjusted).
		Msg("entries moved")
	return nil
}

// validIndices filters to in-range indices, deduplicated, ascending.
func (m *Manager) validIndices(indices []int) []int {
	seen := make(map[int]struct{}, len(indices))
	valid := make([]int, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(m.entries) {
			m.log.Warn().Int("index", i).Int("len", len(m.entries)).Msg("index out of range, skipped")
			continue
		}
		if _, dup := seen[i]; dup {
			continue
		}
		seen[i] = struct{}{}
		valid = append(valid, i)
	}
	sort.Ints(valid)
	return valid
}
