// Package providers contains interfaces for internal system providers.
package providers

import (
	"context"
	"time"
)

// IScheduler defines the single logical thread every panel callback runs on.
// Posted functions never run concurrently with each other.
type IScheduler interface {
	Start(ctx context.Context)
	Post(task func())
	After(delay time.Duration, task func())
}

// IRemoteClient defines access to the device's output endpoint.
type IRemoteClient interface {
	FetchStates(ctx context.Context) ([]bool, error)
	SendCommand(ctx context.Context, index int, state bool) error
}

// IRenderer defines the output view.
// Build is invoked once with the first fetched states, onToggle must be
// called on user interaction only. Update must not call onToggle.
type IRenderer interface {
	Build(states []bool, onToggle func(index int, state bool))
	Update(index int, state bool)
	ShowOffline(onRetry func())
	HideOffline()
}

// IPanelProvider defines the output synchronization logic.
type IPanelProvider interface {
	Start(ctx context.Context)
	Toggle(index int, state bool)
	Retry()
}
