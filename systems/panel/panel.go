// Package panel contains output synchronization logic: poll loop,
// command dispatcher and connectivity monitor.
package panel

import (
	"context"
	"time"

	"github.com/go-home-io/panel/common"
	"github.com/go-home-io/panel/providers"
)

const (
	// Logger system representation.
	logSystem = "panel"

	// DefaultPollInterval is a delay between two successful poll cycles.
	DefaultPollInterval = 500 * time.Millisecond
)

// ConstructPanel has data required for a new panel.
type ConstructPanel struct {
	Logger       common.ILoggerProvider
	Client       providers.IRemoteClient
	Renderer     providers.IRenderer
	Scheduler    providers.IScheduler
	PollInterval time.Duration
}

// Panel implementation.
// Every field below is owned by the scheduler's goroutine.
type panel struct {
	logger    common.ILoggerProvider
	client    providers.IRemoteClient
	renderer  providers.IRenderer
	scheduler providers.IScheduler
	interval  time.Duration

	ctx context.Context

	registry     *registry
	connectivity *connectivity

	// Set by a user command, cleared when a poll cycle begins.
	changed  bool
	inFlight bool
	cycle    uint64
}

// NewPanel constructs a new panel.
func NewPanel(ctor *ConstructPanel) providers.IPanelProvider {
	p := &panel{
		logger:    ctor.Logger,
		client:    ctor.Client,
		renderer:  ctor.Renderer,
		scheduler: ctor.Scheduler,
		interval:  ctor.PollInterval,
		ctx:       context.Background(),
		registry:  newRegistry(),
	}

	if p.interval <= 0 {
		p.interval = DefaultPollInterval
	}

	p.connectivity = newConnectivity(p.renderer, p.logger, p.Retry)
	return p
}

// Start issues the initial fetch.
// Context is used for all requests issued by the panel.
func (p *panel) Start(ctx context.Context) {
	p.scheduler.Post(func() {
		p.ctx = ctx
		p.logger.Info("Starting output synchronization", common.LogSystemToken, logSystem)
		p.startCycle()
	})
}

// Toggle dispatches user command.
func (p *panel) Toggle(index int, state bool) {
	p.scheduler.Post(func() {
		p.dispatch(index, state)
	})
}

// Retry restarts polling after a failure.
func (p *panel) Retry() {
	p.scheduler.Post(p.retry)
}

// Restarts the poll loop, if it's halted.
func (p *panel) retry() {
	if p.inFlight || p.connectivity.state == Online {
		p.logger.Debug("Ignoring retry, polling is active", common.LogSystemToken, logSystem,
			common.LogConnectivityToken, p.connectivity.state.String())
		return
	}

	p.logger.Info("Retrying device connection", common.LogSystemToken, logSystem)
	p.startCycle()
}
