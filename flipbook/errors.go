package flipbook

import "errors"

// Non-fatal operation outcomes. The manager absorbs bad indices and
// empty batches; callers may surface these to the user but nothing here
// aborts the session.
var (
	ErrOutOfRange     = errors.New("index out of range")
	ErrEmptyOperation = errors.New("no entries given")
	ErrNothingToUndo  = errors.New("nothing to undo")
	ErrNothingToRedo  = errors.New("nothing to redo")
)
