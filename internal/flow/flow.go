// Package flow implements the submit/complete/reset state machine shared by
// the proposal and polishing flows. Each submission takes a generation
// ticket; results carrying a stale ticket are discarded so the most recent
// submission always determines the final state.
package flow

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/JaimeStill/discourse/internal/composer"
)

// ErrSuperseded is returned when a completion arrives for a submission that
// a later submission or reset has replaced.
var ErrSuperseded = errors.New("submission superseded")

// Status names the variant of a State.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// State is one of Idle, Pending, Completed[R], or Failed.
type State interface {
	Status() Status
}

type Idle struct{}

type Pending struct {
	Input      string
	Generation uint64
}

type Completed[R any] struct {
	Input  string
	Result R
}

type Failed struct {
	Input   string
	Failure *composer.Failure
}

func (Idle) Status() Status         { return StatusIdle }
func (Pending) Status() Status      { return StatusPending }
func (Completed[R]) Status() Status { return StatusCompleted }
func (Failed) Status() Status       { return StatusFailed }

// Ticket identifies one submission.
type Ticket struct {
	Input      string
	generation uint64
}

// Flow holds the state of one independent flow.
type Flow[R any] struct {
	mu         sync.Mutex
	state      State
	generation uint64
}

// New creates an idle Flow.
func New[R any]() *Flow[R] {
	return &Flow[R]{state: Idle{}}
}

// State returns the current state.
func (f *Flow[R]) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Begin enters Pending for input and returns its ticket. Blank input is a
// no-op: the state is unchanged and ok is false.
func (f *Flow[R]) Begin(input string) (t Ticket, ok bool) {
	if strings.TrimSpace(input) == "" {
		return Ticket{}, false
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.generation++
	f.state = Pending{Input: input, Generation: f.generation}
	return Ticket{Input: input, generation: f.generation}, true
}

// Complete records a result for the submission identified by t.
func (f *Flow[R]) Complete(t Ticket, result R) error {
	return f.settle(t, Completed[R]{Input: t.Input, Result: result})
}

// Fail records a classified failure for the submission identified by t.
func (f *Flow[R]) Fail(t Ticket, failure *composer.Failure) error {
	return f.settle(t, Failed{Input: t.Input, Failure: failure})
}

// Reset returns to Idle and invalidates any submission still in flight.
func (f *Flow[R]) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.generation++
	f.state = Idle{}
}

// Submit runs one submission end to end: Begin, run, then Complete or Fail
// with the classified error. It returns the state after the submission
// settles, which reflects a newer submission if this one was superseded.
func (f *Flow[R]) Submit(
	ctx context.Context,
	input string,
	run func(context.Context, string) (R, error),
	classify func(error) *composer.Failure,
) State {
	t, ok := f.Begin(input)
	if !ok {
		return f.State()
	}

	result, err := run(ctx, input)
	if err != nil {
		f.Fail(t, classify(err))
	} else {
		f.Complete(t, result)
	}

	return f.State()
}

func (f *Flow[R]) settle(t Ticket, next State) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if t.generation != f.generation {
		return ErrSuperseded
	}
	if _, ok := f.state.(Pending); !ok {
		return ErrSuperseded
	}

	f.state = next
	return nil
}
