package settings

import (
	"github.com/go-home-io/panel/common"
	"github.com/go-home-io/panel/providers"
)

// SystemLogger returns default system logger.
func (s *settingsProvider) SystemLogger() common.ILoggerProvider {
	return s.logger
}

// NodeID returns current instance node ID.
func (s *settingsProvider) NodeID() string {
	return s.nodeID
}

// Cron returns system's cron provider.
func (s *settingsProvider) Cron() providers.ICronProvider {
	return s.cron
}

// Validator returns yaml validator provider.
func (s *settingsProvider) Validator() providers.IValidatorProvider {
	return s.validator
}

// IsDevice returns a flag indicating whether this instance emulates the device.
func (s *settingsProvider) IsDevice() bool {
	return s.isDevice
}

// DeviceSettings returns remote device settings.
func (s *settingsProvider) DeviceSettings() *providers.DeviceSettings {
	return s.file.Device
}

// ServerSettings returns panel server settings.
func (s *settingsProvider) ServerSettings() *providers.ServerSettings {
	return s.file.Server
}

// MQTTSettings returns MQTT mirror settings.
func (s *settingsProvider) MQTTSettings() *providers.MQTTSettings {
	return s.file.MQTT
}

// EmulatorSettings returns device emulator settings.
func (s *settingsProvider) EmulatorSettings() *providers.EmulatorSettings {
	return s.file.Emulator
}
