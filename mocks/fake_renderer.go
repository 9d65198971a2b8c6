//go:build !release

package mocks

import "sync"

// FakeRenderer is a headless renderer recording every call.
type FakeRenderer struct {
	sync.Mutex

	Built       bool
	BuildCalls  int
	Controls    []bool
	Updates     []int
	OfflineShow int
	OfflineHide int
	Notice      bool

	OnToggle func(int, bool)
	OnRetry  func()
}

// Build creates controls.
func (f *FakeRenderer) Build(states []bool, onToggle func(int, bool)) {
	f.Lock()
	defer f.Unlock()
	f.Built = true
	f.BuildCalls++
	f.Controls = make([]bool, len(states))
	copy(f.Controls, states)
	f.OnToggle = onToggle
}

// Update changes a single control.
func (f *FakeRenderer) Update(index int, state bool) {
	f.Lock()
	defer f.Unlock()
	f.Updates = append(f.Updates, index)
	f.Controls[index] = state
}

// ShowOffline attaches the notice.
func (f *FakeRenderer) ShowOffline(onRetry func()) {
	f.Lock()
	defer f.Unlock()
	f.OfflineShow++
	f.Notice = true
	f.OnRetry = onRetry
}

// HideOffline removes the notice.
func (f *FakeRenderer) HideOffline() {
	f.Lock()
	defer f.Unlock()
	f.OfflineHide++
	f.Notice = false
}

// Click imitates user interaction with a control: control changes first.
func (f *FakeRenderer) Click(index int, state bool) {
	f.Lock()
	f.Controls[index] = state
	cb := f.OnToggle
	f.Unlock()
	cb(index, state)
}

// FakeNewRenderer creates a new fake renderer.
func FakeNewRenderer() *FakeRenderer {
	return &FakeRenderer{
		Updates: make([]int, 0),
	}
}
