package utils

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// TimeNow returns epoch UTC.
func TimeNow() int64 {
	return time.Now().UTC().Unix()
}

// ParseSwitchState converts user-provided switch value into a boolean.
func ParseSwitchState(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "on", "true":
		return true, nil
	case "0", "off", "false":
		return false, nil
	}

	return false, &ErrUnknownState{Value: raw}
}

// FormatSwitchState converts boolean into device wire representation.
func FormatSwitchState(state bool) string {
	if state {
		return "1"
	}

	return "0"
}

// OutputLabel returns user-facing label of the output with zero-based index.
func OutputLabel(index int) string {
	return fmt.Sprintf("Output %d", index+1)
}

// GetCurrentWorkingDir returns application working directory.
func GetCurrentWorkingDir() string {
	cwd, err := os.Getwd()
	if err != nil {
		panic("Failed to get current working dir")
	}

	return cwd
}

// GetDefaultConfigFile returns default config file which is cwd/configs/panel.yaml.
func GetDefaultConfigFile() string {
	if ConfigFile != "" {
		return ConfigFile
	}

	return fmt.Sprintf("%s/configs/panel.yaml", GetCurrentWorkingDir())
}

// ConfigFile allows to re-write default config file.
var ConfigFile = ""
