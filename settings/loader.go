// Package settings is responsible for parsing yaml-based configuration.
package settings

import (
	"io/ioutil"
	"strings"

	"github.com/docker/docker/pkg/namesgenerator"
	"github.com/go-home-io/panel/common"
	"github.com/go-home-io/panel/providers"
	"github.com/go-home-io/panel/systems/logger"
	"github.com/go-home-io/panel/utils"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	// Logger system.
	logSystem = "settings"

	// Interval of the logger buffer flushing.
	flushInterval = "@every 10s"
)

const (
	sectionLogger   = "logger"
	sectionDevice   = "device"
	sectionServer   = "server"
	sectionMQTT     = "mqtt"
	sectionEmulator = "emulator"
)

// StartUpOptions defines arguments allowed by the system.
type StartUpOptions struct {
	Config   string `short:"c" long:"config" description:"Config file location. Defaults to ./configs/panel.yaml."`
	IsDevice bool   `short:"d" long:"device" description:"Flag indicating device emulator instance."`
	LogLevel string `short:"l" long:"log-level" description:"Overrides configured log level."`
}

// Config file layout.
type fileSettings struct {
	Node     string                      `yaml:"node"`
	Logger   *providers.LoggerSettings   `yaml:"logger"`
	Device   *providers.DeviceSettings   `yaml:"device"`
	Server   *providers.ServerSettings   `yaml:"server"`
	MQTT     *providers.MQTTSettings     `yaml:"mqtt"`
	Emulator *providers.EmulatorSettings `yaml:"emulator"`
}

// System settings.
type settingsProvider struct {
	logger    common.ILoggerProvider
	nodeID    string
	cron      providers.ICronProvider
	validator providers.IValidatorProvider
	isDevice  bool

	file *fileSettings
}

// Load system configuration.
func Load(options *StartUpOptions) (providers.ISettingsProvider, error) {
	fileName := options.Config
	if "" == fileName {
		fileName = utils.GetDefaultConfigFile()
	}

	data, err := ioutil.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	return load(options, data)
}

// Parses and validates raw config.
func load(options *StartUpOptions, data []byte) (*settingsProvider, error) {
	bootLogger, err := logger.NewLoggerProvider(&logger.ConstructLogger{Provider: logger.ProviderConsole})
	if err != nil {
		return nil, err
	}

	s := &settingsProvider{
		logger:   bootLogger,
		isDevice: options.IsDevice,
		file:     &fileSettings{},
	}

	s.validator = utils.NewValidator(s.logger)

	data, err = newTemplateProvider(&constructTemplate{Logger: s.logger}).Process(data)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, s.file); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	s.fillSections()

	if err := s.loadLogger(options.LogLevel); err != nil {
		return nil, err
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	s.cron = utils.NewCron()
	if _, err := s.cron.AddFunc(flushInterval, s.logger.Flush); err != nil {
		return nil, errors.Wrap(err, "failed to register logger flushing")
	}

	return s, nil
}

// Missing sections are treated as empty ones, so defaults apply.
func (s *settingsProvider) fillSections() {
	if nil == s.file.Logger {
		s.file.Logger = &providers.LoggerSettings{}
	}

	if nil == s.file.Device {
		s.file.Device = &providers.DeviceSettings{}
	}

	if nil == s.file.Server {
		s.file.Server = &providers.ServerSettings{}
	}

	if nil == s.file.MQTT {
		s.file.MQTT = &providers.MQTTSettings{}
	}

	if nil == s.file.Emulator {
		s.file.Emulator = &providers.EmulatorSettings{}
	}
}

// Replaces bootstrap logger with the configured one.
func (s *settingsProvider) loadLogger(levelOverride string) error {
	if !s.validator.Validate(s.file.Logger) {
		return &utils.ErrInvalidConfig{Section: sectionLogger}
	}

	if "" != levelOverride {
		s.file.Logger.Level = levelOverride
	}

	s.nodeID = strings.TrimSpace(s.file.Node)
	if "" == s.nodeID {
		s.nodeID = namesgenerator.GetRandomName(0)
	}

	l, err := logger.NewLoggerProvider(&logger.ConstructLogger{
		Provider: s.file.Logger.Provider,
		Level:    s.file.Logger.Level,
		NodeID:   s.nodeID,
	})

	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}

	s.logger = l
	s.validator.SetLogger(l)
	return nil
}

// Validates sections required by the current mode.
func (s *settingsProvider) validate() error {
	if s.isDevice {
		if !s.validator.Validate(s.file.Emulator) {
			return &utils.ErrInvalidConfig{Section: sectionEmulator}
		}

		return nil
	}

	if !s.validator.Validate(s.file.Device) {
		return &utils.ErrInvalidConfig{Section: sectionDevice}
	}

	if !s.validator.Validate(s.file.Server) {
		return &utils.ErrInvalidConfig{Section: sectionServer}
	}

	if !s.validator.Validate(s.file.MQTT) {
		return &utils.ErrInvalidConfig{Section: sectionMQTT}
	}

	if !s.file.MQTT.Enabled {
		s.logger.Debug("MQTT mirror is disabled", common.LogSystemToken, logSystem)
	}

	return nil
}
