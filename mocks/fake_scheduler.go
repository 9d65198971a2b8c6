//go:build !release

package mocks

import (
	"context"
	"sync"
	"testing"
	"time"
)

// FakeTimer is a delayed task recorded by the fake scheduler.
type FakeTimer struct {
	Delay time.Duration
	Task  func()
}

// FakeScheduler runs posted tasks only when a test asks for it,
// so the test itself plays the role of the single logical thread.
type FakeScheduler struct {
	sync.Mutex

	tasks  chan func()
	timers []*FakeTimer
}

// Start does nothing, tasks are executed manually.
func (f *FakeScheduler) Start(context.Context) {
}

// Post queues a new task.
func (f *FakeScheduler) Post(task func()) {
	f.tasks <- task
}

// After records a new delayed task.
func (f *FakeScheduler) After(delay time.Duration, task func()) {
	f.Lock()
	defer f.Unlock()
	f.timers = append(f.timers, &FakeTimer{Delay: delay, Task: task})
}

// RunNext waits for the next posted task and runs it.
func (f *FakeScheduler) RunNext(t *testing.T) {
	t.Helper()
	select {
	case task := <-f.tasks:
		task()
	case <-time.After(2 * time.Second):
		t.Fatal("no task was posted")
	}
}

// AssertIdle verifies that nothing is queued.
func (f *FakeScheduler) AssertIdle(t *testing.T) {
	t.Helper()
	select {
	case <-f.tasks:
		t.Fatal("unexpected task was posted")
	case <-time.After(50 * time.Millisecond):
	}
}

// Timers returns all recorded delayed tasks.
func (f *FakeScheduler) Timers() []*FakeTimer {
	f.Lock()
	defer f.Unlock()
	result := make([]*FakeTimer, len(f.timers))
	copy(result, f.timers)
	return result
}

// FireTimer removes the oldest delayed task and runs it.
func (f *FakeScheduler) FireTimer(t *testing.T) *FakeTimer {
	t.Helper()
	f.Lock()
	if 0 == len(f.timers) {
		f.Unlock()
		t.Fatal("no timers are scheduled")
		return nil
	}

	timer := f.timers[0]
	f.timers = f.timers[1:]
	f.Unlock()

	timer.Task()
	return timer
}

// FakeNewScheduler creates a new fake scheduler.
func FakeNewScheduler() *FakeScheduler {
	return &FakeScheduler{
		tasks:  make(chan func(), 100),
		timers: make([]*FakeTimer, 0),
	}
}
