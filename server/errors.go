package server

import "fmt"

// ErrBadRequest defines generic server error.
type ErrBadRequest struct {
}

// Error formats output.
func (e *ErrBadRequest) Error() string {
	return "bad request"
}

// ErrBadOutputIndex defines output index which is not a number.
type ErrBadOutputIndex struct {
	Value string
}

// Error formats output.
func (e *ErrBadOutputIndex) Error() string {
	return fmt.Sprintf("output %s is not a number", e.Value)
}

// ErrUnknownCommand defines unknown websocket command error.
type ErrUnknownCommand struct {
	Name string
}

// Error formats output.
func (e *ErrUnknownCommand) Error() string {
	return fmt.Sprintf("command %s is unknown", e.Name)
}
