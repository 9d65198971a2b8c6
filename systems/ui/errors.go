package ui

import "fmt"

// ErrNotReady defines interaction before controls are built.
type ErrNotReady struct {
}

// Error formats output.
func (*ErrNotReady) Error() string {
	return "outputs are not loaded yet"
}

// ErrDisabled defines interaction with disabled outputs.
type ErrDisabled struct {
}

// Error formats output.
func (*ErrDisabled) Error() string {
	return "outputs are disabled while connection is lost"
}

// ErrUnknownOutput defines interaction with non-existing output.
type ErrUnknownOutput struct {
	Index int
}

// Error formats output.
func (e *ErrUnknownOutput) Error() string {
	return fmt.Sprintf("output %d is unknown", e.Index)
}

// ErrNotOffline defines retry request while connection is fine.
type ErrNotOffline struct {
}

// Error formats output.
func (*ErrNotOffline) Error() string {
	return "connection is not lost"
}
