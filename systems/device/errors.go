package device

import "fmt"

// ErrRequestFailed defines transport or status failure of a device request.
type ErrRequestFailed struct {
	Method string
	Status int
	Reason error
}

// Error formats output.
func (e *ErrRequestFailed) Error() string {
	if nil != e.Reason {
		return fmt.Sprintf("%s request failed: %s", e.Method, e.Reason.Error())
	}

	return fmt.Sprintf("%s request failed with status %d", e.Method, e.Status)
}

// Cause returns underlying transport error, if any.
func (e *ErrRequestFailed) Cause() error {
	return e.Reason
}

// ErrBadState defines state array element which is neither boolean nor 0/1.
type ErrBadState struct {
	Index int
}

// Error formats output.
func (e *ErrBadState) Error() string {
	return fmt.Sprintf("output %d has unsupported state", e.Index)
}
