// Package lifecycle coordinates startup, shutdown, and periodic background
// work for long-running services.
package lifecycle

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// Phase is the coordinator's position in the service lifecycle.
type Phase int32

const (
	Starting Phase = iota
	Running
	Stopping
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "ready"
	case Stopping:
		return "stopping"
	default:
		return "starting"
	}
}

// Coordinator runs startup hooks, tracks readiness, and drains shutdown
// hooks and periodic tasks when the service stops.
type Coordinator struct {
	ctx      context.Context
	cancel   context.CancelFunc
	startup  sync.WaitGroup
	shutdown sync.WaitGroup
	phase    atomic.Int32
}

// New creates a Coordinator in the Starting phase.
func New() *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{ctx: ctx, cancel: cancel}
}

// Context is cancelled when Shutdown begins.
func (c *Coordinator) Context() context.Context {
	return c.ctx
}

// OnStartup runs fn concurrently; WaitForStartup waits for it.
func (c *Coordinator) OnStartup(fn func()) {
	c.startup.Go(fn)
}

// OnShutdown runs fn concurrently; Shutdown waits for it. Hooks block on
// <-c.Context().Done() before cleaning up.
func (c *Coordinator) OnShutdown(fn func()) {
	c.shutdown.Go(fn)
}

// Every runs fn each interval until shutdown. Shutdown waits for a run in
// progress. A non-positive interval registers nothing.
func (c *Coordinator) Every(interval time.Duration, fn func(ctx context.Context)) {
	if interval <= 0 {
		return
	}
	c.shutdown.Go(func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-c.ctx.Done():
				return
			case <-ticker.C:
				fn(c.ctx)
			}
		}
	})
}

// Phase reports where the coordinator is in its lifecycle.
func (c *Coordinator) Phase() Phase {
	return Phase(c.phase.Load())
}

// Ready reports whether startup has finished and shutdown has not begun.
func (c *Coordinator) Ready() bool {
	return c.Phase() == Running
}

// WaitForStartup blocks until every startup hook returns, then moves to
// Running unless shutdown has already begun.
func (c *Coordinator) WaitForStartup() {
	c.startup.Wait()
	c.phase.CompareAndSwap(int32(Starting), int32(Running))
}

// Shutdown leaves the Running phase, cancels the context, and waits up to
// timeout for shutdown hooks and periodic tasks to return.
func (c *Coordinator) Shutdown(timeout time.Duration) error {
	c.phase.Store(int32(Stopping))
	c.cancel()

	done := make(chan struct{})
	go func() {
		c.shutdown.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("shutdown timeout after %v", timeout)
	}
}
