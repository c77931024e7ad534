package flipbook

import "slices"

// pushSnapshot records the pre-mutation order on the undo stack and
// clears redo. Entries are immutable, so copying the slice is a full
// snapshot of the order.
func (m *Manager) pushSnapshot() {
	m.undo = append(m.undo, slices.Clone(m.entries))
	m.redo = nil
	if len(m.undo) > m.historyCap {
		m.undo = m.undo[1:]
	}
}

// Undo restores the most recent snapshot. Selection and anchor are
// cleared after the restore.
func (m *Manager) Undo() error {
	if len(m.undo) == 0 {
		m.log.Debug().Msg("nothing to undo")
		return ErrNothingToUndo
	}
	m.redo = append(m.redo, slices.Clone(m.entries))
	m.entries = m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	m.clearSelectionState()
	return nil
}

// Redo reverses the most recent Undo. Selection and anchor are cleared.
func (m *Manager) Redo() error {
	if len(m.redo) == 0 {
		m.log.Debug().Msg("nothing to redo")
		return ErrNothingToRedo
	}
	m.undo = append(m.undo, slices.Clone(m.entries))
	m.entries = m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]
	m.clearSelectionState()
	return nil
}

// CanUndo reports whether an undo snapshot exists.
func (m *Manager) CanUndo() bool {
	return len(m.undo) > 0
}

// CanRedo reports whether a redo snapshot exists.
func (m *Manager) CanRedo() bool {
	return len(m.redo) > 0
}
