//go:build !release

package mocks

import (
	"time"

	"github.com/go-home-io/panel/common"
	"github.com/go-home-io/panel/providers"
)

// IFakeSettings adds additional capabilities to a fake settings provider.
type IFakeSettings interface {
	providers.ISettingsProvider
	FakeCron() *FakeCron
	SetOrigins(origins []string)
	EnableMQTT(broker string)
}

type fakeSettings struct {
	logger   common.ILoggerProvider
	cron     *FakeCron
	device   *providers.DeviceSettings
	server   *providers.ServerSettings
	mqtt     *providers.MQTTSettings
	emulator *providers.EmulatorSettings
}

func (f *fakeSettings) SystemLogger() common.ILoggerProvider {
	return f.logger
}

func (f *fakeSettings) NodeID() string {
	return "go-home-tests"
}

func (f *fakeSettings) Cron() providers.ICronProvider {
	return f.cron
}

func (f *fakeSettings) Validator() providers.IValidatorProvider {
	return FakeNewValidator(true)
}

func (f *fakeSettings) IsDevice() bool {
	return false
}

func (f *fakeSettings) DeviceSettings() *providers.DeviceSettings {
	return f.device
}

func (f *fakeSettings) ServerSettings() *providers.ServerSettings {
	return f.server
}

func (f *fakeSettings) MQTTSettings() *providers.MQTTSettings {
	return f.mqtt
}

func (f *fakeSettings) EmulatorSettings() *providers.EmulatorSettings {
	return f.emulator
}

func (f *fakeSettings) FakeCron() *FakeCron {
	return f.cron
}

func (f *fakeSettings) SetOrigins(origins []string) {
	f.server.Origins = origins
}

func (f *fakeSettings) EnableMQTT(broker string) {
	f.mqtt.Enabled = true
	f.mqtt.Broker = broker
}

// FakeNewSettings creates a new fake settings provider.
func FakeNewSettings(deviceURL string, pollInterval time.Duration, logCallback func(string)) IFakeSettings {
	return &fakeSettings{
		logger: FakeNewLogger(logCallback),
		cron:   FakeNewCron(),
		device: &providers.DeviceSettings{
			URL:          deviceURL,
			PollInterval: pollInterval,
		},
		server: &providers.ServerSettings{
			Port:         9999,
			Origins:      make([]string, 0),
			StatusReport: "@every 1m",
		},
		mqtt: &providers.MQTTSettings{
			ClientID: "go-home-tests",
			Prefix:   "go-home/panel",
		},
		emulator: &providers.EmulatorSettings{
			Port:    9998,
			Outputs: 4,
		},
	}
}
