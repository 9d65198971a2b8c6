//go:build !release

package mocks

import (
	"context"
	"sync"
	"testing"
	"time"
)

// FakeFetch is an in-flight states request.
type FakeFetch struct {
	response chan *fakeFetchResponse
}

type fakeFetchResponse struct {
	states []bool
	err    error
}

// Respond completes the request.
func (f *FakeFetch) Respond(states []bool, err error) {
	f.response <- &fakeFetchResponse{states: states, err: err}
}

// FakeCommand is a recorded command.
type FakeCommand struct {
	Index int
	State bool
}

// FakeClient is a remote client which keeps every fetch in flight
// until a test responds to it.
type FakeClient struct {
	sync.Mutex

	fetches  chan *FakeFetch
	commands chan *FakeCommand
	sendErr  error
}

// FetchStates blocks until the test responds.
func (f *FakeClient) FetchStates(ctx context.Context) ([]bool, error) {
	fetch := &FakeFetch{response: make(chan *fakeFetchResponse, 1)}
	f.fetches <- fetch
	select {
	case r := <-fetch.response:
		return r.states, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// SendCommand records the command.
func (f *FakeClient) SendCommand(_ context.Context, index int, state bool) error {
	f.commands <- &FakeCommand{Index: index, State: state}
	f.Lock()
	defer f.Unlock()
	return f.sendErr
}

// SetSendError makes every following command fail.
func (f *FakeClient) SetSendError(err error) {
	f.Lock()
	defer f.Unlock()
	f.sendErr = err
}

// NextFetch waits for the next fetch request.
func (f *FakeClient) NextFetch(t *testing.T) *FakeFetch {
	t.Helper()
	select {
	case fetch := <-f.fetches:
		return fetch
	case <-time.After(2 * time.Second):
		t.Fatal("no fetch was issued")
		return nil
	}
}

// NextCommand waits for the next command.
func (f *FakeClient) NextCommand(t *testing.T) *FakeCommand {
	t.Helper()
	select {
	case cmd := <-f.commands:
		return cmd
	case <-time.After(2 * time.Second):
		t.Fatal("no command was sent")
		return nil
	}
}

// AssertNoFetch verifies that no fetch was issued.
func (f *FakeClient) AssertNoFetch(t *testing.T) {
	t.Helper()
	select {
	case <-f.fetches:
		t.Fatal("unexpected fetch was issued")
	case <-time.After(50 * time.Millisecond):
	}
}

// AssertNoCommand verifies that no command was sent.
func (f *FakeClient) AssertNoCommand(t *testing.T) {
	t.Helper()
	select {
	case <-f.commands:
		t.Fatal("unexpected command was sent")
	case <-time.After(50 * time.Millisecond):
	}
}

// FakeNewClient creates a new fake remote client.
func FakeNewClient() *FakeClient {
	return &FakeClient{
		fetches:  make(chan *FakeFetch, 10),
		commands: make(chan *FakeCommand, 10),
	}
}
