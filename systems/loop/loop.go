// Package loop contains single-threaded event loop.
package loop

import (
	"context"
	"time"

	"github.com/go-home-io/panel/common"
	"github.com/go-home-io/panel/providers"
)

const (
	// Logger system representation.
	logSystem = "loop"

	// Default queue capacity.
	queueSize = 100
)

// Implements IScheduler.
type provider struct {
	logger common.ILoggerProvider
	tasks  chan func()
	done   chan struct{}
}

// NewLoop constructs a new event loop.
func NewLoop(logger common.ILoggerProvider) providers.IScheduler {
	return &provider{
		logger: logger,
		tasks:  make(chan func(), queueSize),
		done:   make(chan struct{}),
	}
}

// Start executes posted tasks one by one until context is done.
func (p *provider) Start(ctx context.Context) {
	go p.cycle(ctx)
}

// Post queues a new task.
// Tasks posted after the loop is stopped are dropped.
func (p *provider) Post(task func()) {
	select {
	case p.tasks <- task:
	case <-p.done:
	}
}

// After queues a new task once delay expires.
func (p *provider) After(delay time.Duration, task func()) {
	time.AfterFunc(delay, func() {
		p.Post(task)
	})
}

// Internal loop cycle.
func (p *provider) cycle(ctx context.Context) {
	defer close(p.done)
	p.logger.Debug("Event loop started", common.LogSystemToken, logSystem)
	for {
		select {
		case <-ctx.Done():
			p.logger.Debug("Event loop stopped", common.LogSystemToken, logSystem)
			return
		case task := <-p.tasks:
			task()
		}
	}
}
