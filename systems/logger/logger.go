// Package logger provides panel logger implementations.
package logger

import (
	"fmt"
	"io"

	"github.com/go-home-io/panel/common"
)

const (
	// ProviderConsole is a colored console logger.
	ProviderConsole = "console"
	// ProviderJSON is a structured JSON logger.
	ProviderJSON = "json"
)

// ErrUnknownProvider defines unsupported logger provider.
type ErrUnknownProvider struct {
	Provider string
}

// Error formats output.
func (e *ErrUnknownProvider) Error() string {
	return fmt.Sprintf("logger provider %s is not supported", e.Provider)
}

// Logger provider wrapper implementation.
type provider struct {
	logger common.ILoggerProvider
	level  LogLevel
	nodeID string
}

// ConstructLogger has data required for a new logger.
type ConstructLogger struct {
	Provider string
	Level    string
	NodeID   string
	Output   io.Writer
}

// NewLoggerProvider constructs a new logger.
func NewLoggerProvider(ctor *ConstructLogger) (common.ILoggerProvider, error) {
	prov := &provider{
		nodeID: ctor.NodeID,
		level:  getLogLevel(ctor.Level),
	}

	switch ctor.Provider {
	case ProviderConsole, "":
		prov.logger = newConsoleLogger(ctor.Output)
	case ProviderJSON:
		prov.logger = newJSONLogger(ctor.Output)
	default:
		return nil, &ErrUnknownProvider{Provider: ctor.Provider}
	}

	return prov, nil
}

// Debug sends debug level message.
func (p *provider) Debug(msg string, fields ...string) {
	if p.level > Debug {
		return
	}

	p.logger.Debug(msg, p.prepareFields(fields...)...)
}

// Info sends info level message.
func (p *provider) Info(msg string, fields ...string) {
	if p.level > Info {
		return
	}

	p.logger.Info(msg, p.prepareFields(fields...)...)
}

// Warn sends warning level message.
func (p *provider) Warn(msg string, fields ...string) {
	if p.level > Warning {
		return
	}

	p.logger.Warn(msg, p.prepareFields(fields...)...)
}

// Error sends error level message.
func (p *provider) Error(msg string, err error, fields ...string) {
	p.logger.Error(msg, err, p.prepareFields(fields...)...)
}

// Fatal sends fatal level message and exits.
func (p *provider) Fatal(msg string, err error, fields ...string) {
	p.logger.Fatal(msg, err, p.prepareFields(fields...)...)
}

// Flush flushes logger buffer if any.
func (p *provider) Flush() {
	p.logger.Flush()
}

// Extending logger fields with current node ID.
func (p *provider) prepareFields(fields ...string) []string {
	if "" == p.nodeID {
		return fields
	}

	return append(fields, common.LogNodeToken, p.nodeID)
}
