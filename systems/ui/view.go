// Package ui contains server-side view of the panel page.
package ui

import (
	"sync"

	"github.com/go-home-io/panel/common"
	"github.com/go-home-io/panel/providers"
	"github.com/go-home-io/panel/utils"
)

const (
	// Logger system representation.
	logSystem = "ui"
)

// ConstructView has data required for a new view.
type ConstructView struct {
	Logger common.ILoggerProvider
	FanOut providers.IFanOutProvider
}

// View implementation.
// Renderer calls arrive from the panel loop, interactions and snapshots
// arrive from browser sessions.
type view struct {
	sync.Mutex

	logger common.ILoggerProvider
	fanOut providers.IFanOutProvider

	built    bool
	controls []*common.ViewControl
	offline  bool

	onToggle func(int, bool)
	onRetry  func()
}

// NewView constructs a new browser view.
func NewView(ctor *ConstructView) providers.IViewProvider {
	return &view{
		logger:   ctor.Logger,
		fanOut:   ctor.FanOut,
		controls: make([]*common.ViewControl, 0),
	}
}

// Build creates one control per output.
func (v *view) Build(states []bool, onToggle func(int, bool)) {
	v.Lock()
	defer v.Unlock()

	v.controls = make([]*common.ViewControl, len(states))
	for ii, s := range states {
		v.controls[ii] = &common.ViewControl{
			Index:   ii,
			Label:   utils.OutputLabel(ii),
			Checked: s,
		}
	}

	v.built = true
	v.onToggle = onToggle

	v.logger.Debug("Controls are built", common.LogSystemToken, logSystem)
	v.publish(&common.MsgViewUpdate{
		Type:     common.ViewBuild,
		Controls: v.copyControls(),
		Style:    v.style(),
	})
}

// Update sets a single control.
func (v *view) Update(index int, state bool) {
	v.Lock()
	defer v.Unlock()

	if !v.knownControl(index) {
		return
	}

	v.controls[index].Checked = state
	v.publish(&common.MsgViewUpdate{
		Type:  common.ViewUpdate,
		Index: index,
		State: state,
	})
}

// ShowOffline attaches the notice and disables controls.
func (v *view) ShowOffline(onRetry func()) {
	v.Lock()
	defer v.Unlock()

	v.offline = true
	v.onRetry = onRetry
	v.publish(&common.MsgViewUpdate{
		Type:   common.ViewOffline,
		Notice: v.notice(),
		Style:  v.style(),
	})
}

// HideOffline removes the notice and enables controls.
func (v *view) HideOffline() {
	v.Lock()
	defer v.Unlock()

	v.offline = false
	v.publish(&common.MsgViewUpdate{
		Type:  common.ViewOnline,
		Style: v.style(),
	})
}

// Snapshot returns the whole current view.
func (v *view) Snapshot() *common.ViewState {
	v.Lock()
	defer v.Unlock()

	return &common.ViewState{
		Built:    v.built,
		Controls: v.copyControls(),
		Notice:   v.notice(),
		Style:    v.style(),
	}
}

// Toggle processes browser interaction with a control.
// Control changes first, so every viewer sees it before the device confirms.
func (v *view) Toggle(index int, state bool) error {
	v.Lock()

	switch {
	case !v.built:
		v.Unlock()
		return &ErrNotReady{}
	case v.offline:
		v.Unlock()
		return &ErrDisabled{}
	case !v.knownControl(index):
		v.Unlock()
		return &ErrUnknownOutput{Index: index}
	}

	v.controls[index].Checked = state
	v.publish(&common.MsgViewUpdate{
		Type:  common.ViewUpdate,
		Index: index,
		State: state,
	})

	cb := v.onToggle
	v.Unlock()

	cb(index, state)
	return nil
}

// Retry processes browser interaction with the notice.
func (v *view) Retry() error {
	v.Lock()
	if !v.offline {
		v.Unlock()
		return &ErrNotOffline{}
	}

	cb := v.onRetry
	v.Unlock()

	v.logger.Debug("Retry is requested", common.LogSystemToken, logSystem)
	cb()
	return nil
}

// Checks whether control exists.
func (v *view) knownControl(index int) bool {
	return index >= 0 && index < len(v.controls)
}

// Returns a copy of controls, safe to hand out.
func (v *view) copyControls() []*common.ViewControl {
	result := make([]*common.ViewControl, len(v.controls))
	for ii, c := range v.controls {
		cp := *c
		result[ii] = &cp
	}

	return result
}

// Returns the notice if it's visible.
func (v *view) notice() *common.ViewNotice {
	if !v.offline {
		return nil
	}

	return &common.ViewNotice{
		Text:  common.NoticeText,
		Retry: common.NoticeRetryLabel,
	}
}

// Returns container treatment.
func (v *view) style() *common.ViewStyle {
	if v.offline {
		return &common.ViewStyle{
			Filter:        common.DisabledFilter,
			PointerEvents: common.DisabledPointerEvents,
		}
	}

	return &common.ViewStyle{
		Filter:        common.EnabledFilter,
		PointerEvents: common.EnabledPointerEvents,
	}
}

// Sends change to all connected browsers.
func (v *view) publish(msg *common.MsgViewUpdate) {
	if nil == v.fanOut {
		return
	}

	v.fanOut.ChannelInViewUpdates() <- msg
}
