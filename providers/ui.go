package providers

import "github.com/go-home-io/panel/common"

// IViewProvider defines the browser view: a renderer which also
// accepts browser interactions and exposes its current state.
type IViewProvider interface {
	IRenderer
	Snapshot() *common.ViewState
	Toggle(index int, state bool) error
	Retry() error
}
