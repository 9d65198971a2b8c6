// Package fanout contains implementation of pub-sub fanout channels.
package fanout

import (
	"math/rand"
	"sync"

	"github.com/go-home-io/panel/common"
	"github.com/go-home-io/panel/providers"
	"github.com/go-home-io/panel/utils"
)

const (
	// Size of the input and per-subscriber buffers.
	bufferSize = 100
)

// Implements IFanOutProvider.
type provider struct {
	sync.Mutex

	inViewUpdates  chan *common.MsgViewUpdate
	outViewUpdates map[int64]chan *common.MsgViewUpdate
}

// NewFanOut constructs new FanOut provider.
func NewFanOut() providers.IFanOutProvider {
	p := &provider{
		inViewUpdates:  make(chan *common.MsgViewUpdate, bufferSize),
		outViewUpdates: make(map[int64]chan *common.MsgViewUpdate),
	}

	go p.internalCycle()
	return p
}

// SubscribeViewUpdates allows to subscribe to the view updates.
func (p *provider) SubscribeViewUpdates() (int64, chan *common.MsgViewUpdate) {
	p.Lock()
	defer p.Unlock()

	c := make(chan *common.MsgViewUpdate, bufferSize)
	rnd := p.getID()
	for {
		if _, ok := p.outViewUpdates[rnd]; !ok {
			break
		}

		rnd = p.getID()
	}

	p.outViewUpdates[rnd] = c
	return rnd, c
}

// UnSubscribeViewUpdates allows to un-subscribe from the view updates.
func (p *provider) UnSubscribeViewUpdates(id int64) {
	p.Lock()
	defer p.Unlock()

	c, ok := p.outViewUpdates[id]
	if !ok {
		return
	}

	close(c)
	delete(p.outViewUpdates, id)
}

// ChannelInViewUpdates returns input channel for the view updates.
func (p *provider) ChannelInViewUpdates() chan *common.MsgViewUpdate {
	return p.inViewUpdates
}

// Returns random ID.
func (p *provider) getID() int64 {
	return utils.TimeNow() + rand.Int63()
}

// Updates are broadcast one by one, so every subscriber
// receives them in the publishing order.
func (p *provider) internalCycle() {
	for u := range p.inViewUpdates {
		p.viewUpdates(u)
	}
}

// Broadcasts view updates.
// Subscriber with a full buffer misses the update.
func (p *provider) viewUpdates(update *common.MsgViewUpdate) {
	p.Lock()
	defer p.Unlock()

	for _, v := range p.outViewUpdates {
		select {
		case v <- update:
		default:
		}
	}
}
