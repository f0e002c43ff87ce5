// Linear undo/redo over immutable processing steps
package history

import (
	"sync"

	"sequential-image-editor/internal/ops"
)

// Step is an immutable (operation, parameter snapshot) pair. Steps are
// created only by AddStep and never mutated afterwards.
type Step struct {
	Op     ops.OpID
	Params ops.Params
}

// History is the linear past/future state machine. past holds applied
// steps oldest first; future holds undone steps soonest-to-redo first.
// Adding a step discards the whole future (branch pruning) - there is no
// tree history and no way back once a new branch is taken.
type History struct {
	mu     sync.RWMutex
	past   []Step
	future []Step
}

func New() *History {
	return &History{}
}

// Reset drops both lists. Called when a new original image is loaded.
func (h *History) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.past = nil
	h.future = nil
}

// AddStep appends a step built from a by-value copy of params, so later
// edits to the live form cannot reach it, and discards any redoable
// steps.
func (h *History) AddStep(op ops.OpID, params ops.Params) Step {
	h.mu.Lock()
	defer h.mu.Unlock()

	step := Step{Op: op, Params: params.Clone()}
	h.past = append(h.past, step)
	h.future = nil
	return step
}

// Undo moves the newest applied step to the front of the redo list.
// Returns false when there is nothing to undo.
func (h *History) Undo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.past) == 0 {
		return false
	}
	last := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append([]Step{last}, h.future...)
	return true
}

// Redo moves the soonest redoable step back to the end of the applied
// list. Returns false when there is nothing to redo.
func (h *History) Redo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.future) == 0 {
		return false
	}
	first := h.future[0]
	h.future = h.future[1:]
	h.past = append(h.past, first)
	return true
}

func (h *History) CanUndo() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.past) > 0
}

func (h *History) CanRedo() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.future) > 0
}

// Past returns a copy of the applied steps, oldest first. This is the
// list the executor replays.
func (h *History) Past() []Step {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]Step(nil), h.past...)
}

// Future returns a copy of the undone steps, soonest-to-redo first.
func (h *History) Future() []Step {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]Step(nil), h.future...)
}

// Len returns the number of applied steps.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.past)
}
