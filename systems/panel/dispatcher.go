package panel

import (
	"strconv"

	"github.com/go-home-io/panel/common"
)

// Sends user command to the device.
// Changed flag must be set before the command leaves.
func (p *panel) dispatch(index int, state bool) {
	indexStr := strconv.Itoa(index)
	stateStr := strconv.FormatBool(state)

	if !p.registry.set(index, state) {
		p.logger.Warn("Received command for unknown output", common.LogSystemToken, logSystem,
			common.LogOutputToken, indexStr)
		return
	}

	p.changed = true
	p.logger.Debug("Sending output command", common.LogSystemToken, logSystem,
		common.LogOutputToken, indexStr, common.LogStateToken, stateStr)

	ctx := p.ctx
	go func() {
		if err := p.client.SendCommand(ctx, index, state); err != nil {
			p.logger.Debug("Output command failed", common.LogSystemToken, logSystem,
				common.LogOutputToken, indexStr, common.LogStateToken, stateStr,
				common.LogErrorToken, err.Error())
		}
	}()
}
