package providers

import (
	"time"

	"github.com/go-home-io/panel/common"
)

// ISettingsProvider defines settings loader provider logic.
type ISettingsProvider interface {
	SystemLogger() common.ILoggerProvider
	NodeID() string
	Cron() ICronProvider
	Validator() IValidatorProvider
	IsDevice() bool
	DeviceSettings() *DeviceSettings
	ServerSettings() *ServerSettings
	MQTTSettings() *MQTTSettings
	EmulatorSettings() *EmulatorSettings
}

// LoggerSettings has configured data for the system logger.
type LoggerSettings struct {
	Provider string `yaml:"provider" validate:"oneof=console json" default:"console"`
	Level    string `yaml:"level" default:"info"`
}

// DeviceSettings has data describing the remote relay device.
type DeviceSettings struct {
	URL          string        `yaml:"url" validate:"required,url"`
	PollInterval time.Duration `yaml:"pollInterval" validate:"gt=0" default:"500ms"`
}

// ServerSettings has configured data for the panel web server.
type ServerSettings struct {
	Port         int      `yaml:"port" validate:"required,port" default:"8000"`
	Origins      []string `yaml:"origins" validate:"dive,origin"`
	StatusReport string   `yaml:"statusReport" default:"@every 1m"`
}

// MQTTSettings has configured data for the optional MQTT mirror.
type MQTTSettings struct {
	Enabled  bool   `yaml:"enabled"`
	Broker   string `yaml:"broker" validate:"required_with=Enabled"`
	ClientID string `yaml:"clientID" default:"go-home-panel"`
	Prefix   string `yaml:"prefix" validate:"topic" default:"go-home/panel"`
	QOS      int    `yaml:"qos" validate:"gte=0,lte=2"`
}

// EmulatorSettings has configured data for the device emulator.
type EmulatorSettings struct {
	Port    int    `yaml:"port" validate:"required,port" default:"8080"`
	Outputs int    `yaml:"outputs" validate:"gte=1,lte=64" default:"4"`
	Numeric bool   `yaml:"numeric"`
	Initial []bool `yaml:"initial"`
}
