package panel

import (
	"strconv"

	"github.com/go-home-io/panel/common"
)

// Begins a new poll cycle.
func (p *panel) startCycle() {
	if p.ctx.Err() != nil {
		p.logger.Debug("Panel is stopped, skipping poll", common.LogSystemToken, logSystem)
		return
	}

	p.changed = false
	p.inFlight = true
	p.cycle++

	ctx := p.ctx
	cycle := p.cycle
	go func() {
		states, err := p.client.FetchStates(ctx)
		p.scheduler.Post(func() {
			p.completeCycle(cycle, states, err)
		})
	}()
}

// Processes poll cycle result.
func (p *panel) completeCycle(cycle uint64, states []bool, err error) {
	p.inFlight = false
	cycleStr := strconv.FormatUint(cycle, 10)

	if err != nil {
		p.logger.Error("Failed to fetch output states", err, common.LogSystemToken, logSystem,
			common.LogCycleToken, cycleStr)
		p.connectivity.markOffline()
		return
	}

	if !p.registry.built {
		p.build(states)
		p.connectivity.markOnline()
		p.scheduler.After(p.interval, p.startCycle)
		return
	}

	if p.changed {
		p.logger.Debug("Output was changed during the poll, discarding result",
			common.LogSystemToken, logSystem, common.LogCycleToken, cycleStr)
		p.startCycle()
		return
	}

	if len(states) != p.registry.size() {
		p.logger.Warn("Device returned unexpected number of outputs", common.LogSystemToken, logSystem,
			common.LogCycleToken, cycleStr, "expected", strconv.Itoa(p.registry.size()),
			"received", strconv.Itoa(len(states)))
	}

	for _, ii := range p.registry.reconcile(states) {
		p.logger.Debug("Output state changed on device", common.LogSystemToken, logSystem,
			common.LogOutputToken, strconv.Itoa(ii), common.LogStateToken, strconv.FormatBool(states[ii]))
		p.renderer.Update(ii, states[ii])
	}

	p.connectivity.markOnline()
	p.scheduler.After(p.interval, p.startCycle)
}

// Creates the view from the first fetched states.
func (p *panel) build(states []bool) {
	p.registry.build(states)
	p.logger.Info("Received initial output states", common.LogSystemToken, logSystem,
		"outputs", strconv.Itoa(len(states)))
	p.renderer.Build(states, p.Toggle)
}
