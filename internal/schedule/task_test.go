package schedule

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestEveryRunsUntilStopped(t *testing.T) {
	var n atomic.Int32
	task := Every(5*time.Millisecond, func() { n.Add(1) })

	deadline := time.Now().Add(2 * time.Second)
	for n.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	task.Stop()
	if n.Load() < 3 {
		t.Fatalf("expected at least 3 runs, got %d", n.Load())
	}

	stopped := n.Load()
	time.Sleep(30 * time.Millisecond)
	if got := n.Load(); got != stopped {
		t.Errorf("task kept running after Stop: %d -> %d", stopped, got)
	}

	select {
	case <-task.Done():
	default:
		t.Error("Done not closed after Stop")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	task := Every(time.Hour, func() {})
	task.Stop()
	task.Stop()
}

func TestAfterFiresOnce(t *testing.T) {
	fired := make(chan struct{}, 2)
	task := After(5*time.Millisecond, func() { fired <- struct{}{} })

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("After did not fire")
	}
	<-task.Done()
	task.Stop()
	if len(fired) != 0 {
		t.Error("After fired more than once")
	}
}

func TestAfterCancelled(t *testing.T) {
	var fired atomic.Bool
	task := After(time.Hour, func() { fired.Store(true) })
	task.Stop()
	if fired.Load() {
		t.Error("cancelled task fired")
	}
}

func TestGroupStop(t *testing.T) {
	var g Group
	var n atomic.Int32
	g.Every(time.Millisecond, func() { n.Add(1) })
	g.After(time.Hour, func() { n.Add(100) })

	if g.Len() != 2 {
		t.Errorf("Len() = %d, want 2", g.Len())
	}
	time.Sleep(10 * time.Millisecond)
	g.Stop()

	stopped := n.Load()
	if stopped >= 100 {
		t.Fatalf("delayed task fired: %d", stopped)
	}
	time.Sleep(10 * time.Millisecond)
	if n.Load() != stopped {
		t.Error("group task still running after Stop")
	}
	if g.Len() != 0 {
		t.Errorf("Len() after Stop = %d", g.Len())
	}
}

func TestGroupPrunesFinishedTasks(t *testing.T) {
	var g Group
	done := g.After(0, func() {})
	<-done.Done()
	g.After(time.Hour, func() {})
	if g.Len() != 1 {
		t.Errorf("Len() = %d, want 1", g.Len())
	}
	g.Stop()
}

func TestGroupCancelsTasksAddedAfterStop(t *testing.T) {
	var g Group
	g.Stop()

	var fired atomic.Bool
	task := g.After(0, func() { fired.Store(true) })
	select {
	case <-task.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("task added after Stop never finished")
	}
	if g.Len() != 0 {
		t.Errorf("Len() = %d, want 0", g.Len())
	}

	g.Reset()
	g.After(time.Hour, func() {})
	if g.Len() != 1 {
		t.Errorf("Len() after Reset = %d, want 1", g.Len())
	}
	g.Stop()
}
