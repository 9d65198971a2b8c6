package utils

import "fmt"

// ErrInvalidConfig defines wrong configuration error.
type ErrInvalidConfig struct {
	Section string
}

// Error formats output.
func (e *ErrInvalidConfig) Error() string {
	return fmt.Sprintf("%s config validation error", e.Section)
}

// ErrUnknownState defines a switch state which can't be parsed.
type ErrUnknownState struct {
	Value string
}

// Error formats output.
func (e *ErrUnknownState) Error() string {
	return fmt.Sprintf("state %s is unknown", e.Value)
}
