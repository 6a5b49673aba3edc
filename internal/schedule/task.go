// Package schedule runs periodic and delayed callbacks that can be cancelled.
package schedule

import (
	"sync"
	"time"
)

// Task is a handle to a scheduled callback.
type Task struct {
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func newTask() *Task {
	return &Task{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
}

// Stop cancels the task and waits for a running callback to return.
// It is safe to call more than once and after the task has finished, but
// not from inside the task's own callback.
func (t *Task) Stop() {
	t.stopOnce.Do(func() { close(t.stop) })
	<-t.done
}

// Done is closed once the task will never run its callback again.
func (t *Task) Done() <-chan struct{} { return t.done }

// Every calls fn every period until the task is stopped. The first call
// happens one period after scheduling.
func Every(period time.Duration, fn func()) *Task {
	t := newTask()
	ticker := time.NewTicker(period)
	go func() {
		defer close(t.done)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				select {
				case <-t.stop:
					return
				default:
				}
				fn()
			case <-t.stop:
				return
			}
		}
	}()
	return t
}

// After calls fn once after delay unless the task is stopped first.
func After(delay time.Duration, fn func()) *Task {
	t := newTask()
	timer := time.NewTimer(delay)
	go func() {
		defer close(t.done)
		select {
		case <-timer.C:
			fn()
		case <-t.stop:
			timer.Stop()
		}
	}()
	return t
}

// Group collects tasks so they can be cancelled together on teardown.
type Group struct {
	mu      sync.Mutex
	tasks   []*Task
	stopped bool
}

// Every schedules a periodic task in the group.
func (g *Group) Every(period time.Duration, fn func()) *Task {
	return g.add(Every(period, fn))
}

// After schedules a delayed task in the group.
func (g *Group) After(delay time.Duration, fn func()) *Task {
	return g.add(After(delay, fn))
}

func (g *Group) add(t *Task) *Task {
	g.mu.Lock()
	defer g.mu.Unlock()
	// A callback may schedule follow-up work while the group is stopping.
	if g.stopped {
		go t.Stop()
		return t
	}
	// Drop handles of one-shot tasks that already finished.
	live := g.tasks[:0]
	for _, old := range g.tasks {
		select {
		case <-old.done:
		default:
			live = append(live, old)
		}
	}
	g.tasks = append(live, t)
	return t
}

// Len returns the number of tasks that have not finished yet.
func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := 0
	for _, t := range g.tasks {
		select {
		case <-t.done:
		default:
			n++
		}
	}
	return n
}

// Stop cancels every task in the group and waits for them to exit. Tasks
// added afterwards are cancelled immediately; Reset makes the group
// usable again.
func (g *Group) Stop() {
	g.mu.Lock()
	tasks := g.tasks
	g.tasks = nil
	g.stopped = true
	g.mu.Unlock()

	for _, t := range tasks {
		t.Stop()
	}
}

// Reset re-opens a stopped group for new tasks.
func (g *Group) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stopped = false
}
