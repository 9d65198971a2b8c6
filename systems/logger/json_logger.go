package logger

import (
	"io"
	"os"

	"github.com/go-home-io/panel/common"
	"github.com/sirupsen/logrus"
)

// Structured logger, one JSON object per line.
type jsonLogger struct {
	log *logrus.Logger
}

// Debug writes debug level message.
func (p *jsonLogger) Debug(msg string, fields ...string) {
	p.entry(fields).Debug(msg)
}

// Info writes info level message.
func (p *jsonLogger) Info(msg string, fields ...string) {
	p.entry(fields).Info(msg)
}

// Warn writes warning level message.
func (p *jsonLogger) Warn(msg string, fields ...string) {
	p.entry(fields).Warn(msg)
}

// Error writes error level message.
func (p *jsonLogger) Error(msg string, err error, fields ...string) {
	p.entry(withError(err, fields)).Error(msg)
}

// Fatal writes fatal level message and exits.
func (p *jsonLogger) Fatal(msg string, err error, fields ...string) {
	p.entry(withError(err, fields)).Fatal(msg)
}

// Flush isn't needed, logrus writes synchronously.
func (p *jsonLogger) Flush() {
}

// Creates a new JSON logger.
// Level filtering is done by the wrapper, so logrus accepts everything.
func newJSONLogger(out io.Writer) common.ILoggerProvider {
	if nil == out {
		out = os.Stdout
	}

	return &jsonLogger{
		log: &logrus.Logger{
			Out:       out,
			Formatter: new(logrus.JSONFormatter),
			Hooks:     make(logrus.LevelHooks),
			Level:     logrus.DebugLevel,
			ExitFunc:  os.Exit,
		},
	}
}

// Converts key-value pairs into logrus entry.
func (p *jsonLogger) entry(fields []string) *logrus.Entry {
	f := make(logrus.Fields)
	for k, v := range withFields(fields...) {
		f[k] = v
	}

	return p.log.WithFields(f)
}
