package lifecycle_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/JaimeStill/discourse/pkg/lifecycle"
)

func TestNotReadyBeforeStartup(t *testing.T) {
	lc := lifecycle.New()
	if lc.Ready() {
		t.Error("should not be ready before WaitForStartup")
	}
}

func TestReadyAfterStartup(t *testing.T) {
	lc := lifecycle.New()
	lc.WaitForStartup()

	if !lc.Ready() {
		t.Error("should be ready after WaitForStartup")
	}
}

func TestStartupHooksExecute(t *testing.T) {
	lc := lifecycle.New()

	var count atomic.Int32
	for range 3 {
		lc.OnStartup(func() {
			count.Add(1)
		})
	}

	lc.WaitForStartup()

	if got := count.Load(); got != 3 {
		t.Errorf("startup hooks: got %d, want 3", got)
	}
}

func TestShutdownHooksExecute(t *testing.T) {
	lc := lifecycle.New()

	var cleaned atomic.Bool
	lc.OnShutdown(func() {
		<-lc.Context().Done()
		cleaned.Store(true)
	})

	lc.WaitForStartup()

	if err := lc.Shutdown(5 * time.Second); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}

	if !cleaned.Load() {
		t.Error("shutdown hook did not execute")
	}
}

func TestShutdownTimeout(t *testing.T) {
	lc := lifecycle.New()

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		time.Sleep(500 * time.Millisecond)
	})

	lc.WaitForStartup()

	err := lc.Shutdown(50 * time.Millisecond)
	if err == nil {
		t.Error("expected timeout error, got nil")
	}
}

func TestContextCancelledOnShutdown(t *testing.T) {
	lc := lifecycle.New()
	lc.WaitForStartup()

	if err := lc.Shutdown(5 * time.Second); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}

	select {
	case <-lc.Context().Done():
	default:
		t.Error("context should be cancelled after shutdown")
	}
}

func TestPhases(t *testing.T) {
	lc := lifecycle.New()
	if lc.Phase() != lifecycle.Starting {
		t.Errorf("initial phase: got %s, want starting", lc.Phase())
	}

	lc.WaitForStartup()
	if lc.Phase() != lifecycle.Running || !lc.Ready() {
		t.Errorf("after startup: got %s, want ready", lc.Phase())
	}

	if err := lc.Shutdown(time.Second); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}
	if lc.Phase() != lifecycle.Stopping || lc.Ready() {
		t.Errorf("after shutdown: got %s, want stopping", lc.Phase())
	}
}

func TestStartupAfterShutdownStaysStopping(t *testing.T) {
	lc := lifecycle.New()
	if err := lc.Shutdown(time.Second); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}

	lc.WaitForStartup()
	if lc.Ready() {
		t.Error("coordinator became ready after shutdown began")
	}
}

func TestEveryRunsUntilShutdown(t *testing.T) {
	lc := lifecycle.New()

	var runs atomic.Int32
	ticked := make(chan struct{}, 1)
	lc.Every(5*time.Millisecond, func(context.Context) {
		runs.Add(1)
		select {
		case ticked <- struct{}{}:
		default:
		}
	})

	select {
	case <-ticked:
	case <-time.After(time.Second):
		t.Fatal("periodic task never ran")
	}

	if err := lc.Shutdown(time.Second); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}

	after := runs.Load()
	time.Sleep(20 * time.Millisecond)
	if got := runs.Load(); got != after {
		t.Errorf("task ran %d more times after shutdown", got-after)
	}
}

func TestEveryIgnoresNonPositiveInterval(t *testing.T) {
	lc := lifecycle.New()
	lc.Every(0, func(context.Context) {
		t.Error("task with zero interval should not run")
	})

	if err := lc.Shutdown(time.Second); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}
}
