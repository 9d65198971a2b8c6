package logger

import "strings"

// LogLevel represents minimal level of the messages which are written.
type LogLevel int

const (
	// Debug describes debug log level.
	Debug LogLevel = iota
	// Info describes info log level.
	Info
	// Warning describes warn log level.
	Warning
	// Error describes error log level.
	Error
)

// String formats level name.
func (l LogLevel) String() string {
	switch l {
	case Debug:
		return "debug"
	case Warning:
		return "warning"
	case Error:
		return "error"
	}

	return "info"
}

// Converts configured level, unknown values fall back to info.
func getLogLevel(level string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "dbg":
		return Debug
	case "warning", "warn":
		return Warning
	case "error", "err":
		return Error
	}

	return Info
}
