//go:build !release

package mocks

import (
	"github.com/go-home-io/panel/common"
	"github.com/go-home-io/panel/providers"
)

type fakeFanOut struct {
	inViewUpdates chan *common.MsgViewUpdate
}

func (f *fakeFanOut) SubscribeViewUpdates() (int64, chan *common.MsgViewUpdate) {
	return 1, f.inViewUpdates
}

func (f *fakeFanOut) UnSubscribeViewUpdates(int64) {
}

func (f *fakeFanOut) ChannelInViewUpdates() chan *common.MsgViewUpdate {
	return f.inViewUpdates
}

// FakeNewFanOut creates a fan-out which loops published updates
// back to the single subscriber.
func FakeNewFanOut() providers.IFanOutProvider {
	return &fakeFanOut{
		inViewUpdates: make(chan *common.MsgViewUpdate, 100),
	}
}
