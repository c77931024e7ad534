package flipbook

import "sort"

// SelectSingle replaces the selection with {i} and sets the anchor.
func (m *Manager) SelectSingle(i int) error {
	if i < 0 || i >= len(m.entries) {
		return ErrOutOfRange
	}
	m.selected = map[int]struct{}{i: {}}
	m.anchor = i
	return nil
}

// Toggle adds or removes i from the selection and moves the anchor.
func (m *Manager) Toggle(i int) error {
	if i < 0 || i >= len(m.entries) {
		return ErrOutOfRange
	}
	if _, ok := m.selected[i]; ok {
		delete(m.selected, i)
	} else {
		m.selected[i] = struct{}{}
	}
	m.anchor = i
	return nil
}

// SelectRange adds the closed span between the anchor and i to the
// selection. Without an anchor it degrades to SelectSingle.
func (m *Manager) SelectRange(i int) error {
	if i < 0 || i >= len(m.entries) {
		return ErrOutOfRange
	}
	if m.anchor < 0 || m.anchor >= len(m.entries) {
		return m.SelectSingle(i)
	}
	lo, hi := m.anchor, i
	if lo > hi {
		lo, hi = hi, lo
	}
	for j := lo; j <= hi; j++ {
		m.selected[j] = struct{}{}
	}
	return nil
}

// ClearSelection empties the selection and drops the anchor.
func (m *Manager) ClearSelection() {
	m.clearSelectionState()
}

// Selected returns the selected indices in ascending order.
func (m *Manager) Selected() []int {
	indices := make([]int, 0, len(m.selected))
	for i := range m.selected {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices
}

// IsSelected reports whether index i is in the selection.
func (m *Manager) IsSelected(i int) bool {
	_, ok := m.selected[i]
	return ok
}

// HasSelection reports whether anything is selected.
func (m *Manager) HasSelection() bool {
	return len(m.selected) > 0
}

func (m *Manager) clearSelectionState() {
	m.selected = make(map[int]struct{})
	m.anchor = -1
}
