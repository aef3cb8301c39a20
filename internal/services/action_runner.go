package services

import (
	"context"
	"errors"
	"sync"
)

// ErrSuperseded is returned when a newer run of the same action started
// before this one finished; the stale result is discarded.
var ErrSuperseded = errors.New("action superseded by a newer run")

// Action types keyed by the runner. One in-flight run per type.
const (
	ActionRefresh = "refresh"
	ActionFilter  = "filter"
	ActionAdd     = "add"
	ActionDelete  = "delete"
	ActionImport  = "import"
	ActionExport  = "export"
)

type actionSlot struct {
	cancel context.CancelFunc
	seq    uint64
}

// ActionRunner serializes the outcome of concurrent runs of the same
// action type: starting a run cancels the previous in-flight run's
// context, and a run that has been superseded never commits its result.
// This closes the out-of-order response race where a slow stale fetch
// could overwrite fresher data.
type ActionRunner struct {
	mu      sync.Mutex
	nextSeq uint64
	slots   map[string]*actionSlot
}

// NewActionRunner creates an empty runner.
func NewActionRunner() *ActionRunner {
	return &ActionRunner{slots: make(map[string]*actionSlot)}
}

// Do executes fn under a context that is cancelled when a newer run of
// the same action begins. onSuccess runs only when fn succeeded and this
// run is still the latest; it executes under the runner lock, so commits
// of the same action never interleave. Superseded runs return
// ErrSuperseded.
func (r *ActionRunner) Do(ctx context.Context, action string, fn func(context.Context) error, onSuccess func()) error {
	runCtx, cancel := context.WithCancel(ctx)

	r.mu.Lock()
	if slot, ok := r.slots[action]; ok {
		slot.cancel()
	}
	r.nextSeq++
	seq := r.nextSeq
	r.slots[action] = &actionSlot{cancel: cancel, seq: seq}
	r.mu.Unlock()

	err := fn(runCtx)

	r.mu.Lock()
	defer r.mu.Unlock()
	defer cancel()

	slot, ok := r.slots[action]
	if !ok || slot.seq != seq {
		if err == nil {
			return ErrSuperseded
		}
		return err
	}

	delete(r.slots, action)

	if err != nil {
		return err
	}

	if onSuccess != nil {
		onSuccess()
	}
	return nil
}
