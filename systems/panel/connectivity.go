package panel

import (
	"github.com/go-home-io/panel/common"
	"github.com/go-home-io/panel/providers"
)

// ConnectivityState describes whether device is reachable.
type ConnectivityState int

const (
	// Online describes reachable device.
	Online ConnectivityState = iota
	// Offline describes device which failed the last request.
	Offline
)

// String formats output.
func (c ConnectivityState) String() string {
	if c == Offline {
		return "offline"
	}

	return "online"
}

// Connectivity monitor.
// Transitions happen only on request completion.
type connectivity struct {
	state    ConnectivityState
	renderer providers.IRenderer
	logger   common.ILoggerProvider
	onRetry  func()
}

// Creates a new connectivity monitor, initial state is online.
func newConnectivity(renderer providers.IRenderer, logger common.ILoggerProvider, onRetry func()) *connectivity {
	return &connectivity{
		state:    Online,
		renderer: renderer,
		logger:   logger,
		onRetry:  onRetry,
	}
}

// Enters offline state, showing notice with the retry control.
func (c *connectivity) markOffline() {
	if c.state == Offline {
		return
	}

	c.state = Offline
	c.logger.Warn("Device is not reachable", common.LogSystemToken, logSystem,
		common.LogConnectivityToken, c.state.String())
	c.renderer.ShowOffline(c.onRetry)
}

// Leaves offline state.
func (c *connectivity) markOnline() {
	if c.state == Online {
		return
	}

	c.state = Online
	c.logger.Info("Device is reachable again", common.LogSystemToken, logSystem,
		common.LogConnectivityToken, c.state.String())
	c.renderer.HideOffline()
}
