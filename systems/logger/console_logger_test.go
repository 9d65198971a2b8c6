package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Tests proper fields allocation.
func TestCorrectFields(t *testing.T) {
	r := withFields("f1", "f1", "f2", "f2")
	assert.Equal(t, 2, len(r))

	r = withFields("f1", "f1", "f2", "f2", "f3")
	assert.Equal(t, 2, len(r))
}

// Tests console output format.
func TestConsoleOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	l := newConsoleLogger(buf)
	l.Error("Request failed", errors.New("boom"), "system", "device", "output", "2")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, 4, len(lines))
	assert.True(t, strings.HasSuffix(lines[0], "Request failed"))
	assert.Equal(t, "error: boom", strings.TrimSpace(lines[1]))
	assert.Equal(t, "output: 2", strings.TrimSpace(lines[2]))
	assert.Equal(t, "system: device", strings.TrimSpace(lines[3]))
}
