package flow

import "github.com/JaimeStill/discourse/internal/composer"

// Snapshot is a flat, serialisable view of a State for templates and JSON.
// At most one of Result and Failure is set.
type Snapshot[R any] struct {
	Status  Status            `json:"status"`
	Input   string            `json:"input,omitempty"`
	Result  *R                `json:"result,omitempty"`
	Failure *composer.Failure `json:"failure,omitempty"`
}

// Pending reports whether the snapshot was taken mid-submission.
func (s Snapshot[R]) Pending() bool {
	return s.Status == StatusPending
}

// Snapshot returns a flat view of the current state.
func (f *Flow[R]) Snapshot() Snapshot[R] {
	return View[R](f.State())
}

// View flattens a State. A Completed of a different result type yields an
// empty completed snapshot.
func View[R any](s State) Snapshot[R] {
	switch v := s.(type) {
	case Pending:
		return Snapshot[R]{Status: StatusPending, Input: v.Input}
	case Completed[R]:
		result := v.Result
		return Snapshot[R]{Status: StatusCompleted, Input: v.Input, Result: &result}
	case Failed:
		return Snapshot[R]{Status: StatusFailed, Input: v.Input, Failure: v.Failure}
	case nil:
		return Snapshot[R]{Status: StatusIdle}
	default:
		return Snapshot[R]{Status: s.Status()}
	}
}
