package panel

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-home-io/panel/mocks"
	"github.com/go-home-io/panel/providers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	scheduler *mocks.FakeScheduler
	client    *mocks.FakeClient
	renderer  *mocks.FakeRenderer
	panel     providers.IPanelProvider
}

// Creates panel with fake collaborators.
func newFixture() *fixture {
	f := &fixture{
		scheduler: mocks.FakeNewScheduler(),
		client:    mocks.FakeNewClient(),
		renderer:  mocks.FakeNewRenderer(),
	}

	f.panel = NewPanel(&ConstructPanel{
		Logger:    mocks.FakeNewLogger(nil),
		Client:    f.client,
		Renderer:  f.renderer,
		Scheduler: f.scheduler,
	})

	return f
}

// Runs the initial fetch.
func (f *fixture) start(t *testing.T, states []bool, err error) {
	f.panel.Start(context.Background())
	f.scheduler.RunNext(t)
	f.client.NextFetch(t).Respond(states, err)
	f.scheduler.RunNext(t)
}

// Fires the pending poll timer and completes the fetch.
func (f *fixture) poll(t *testing.T, states []bool, err error) {
	f.scheduler.FireTimer(t)
	f.client.NextFetch(t).Respond(states, err)
	f.scheduler.RunNext(t)
}

// Tests initial build of the controls.
func TestInitialBuild(t *testing.T) {
	f := newFixture()
	f.start(t, []bool{false, false, true}, nil)

	assert.True(t, f.renderer.Built)
	assert.Equal(t, 1, f.renderer.BuildCalls)
	assert.Equal(t, []bool{false, false, true}, f.renderer.Controls)
	assert.Equal(t, 0, f.renderer.OfflineShow)

	timers := f.scheduler.Timers()
	require.Equal(t, 1, len(timers))
	assert.Equal(t, 500*time.Millisecond, timers[0].Delay)
}

// Tests that only changed outputs are updated.
func TestReconcileUpdatesOnlyChanged(t *testing.T) {
	f := newFixture()
	f.start(t, []bool{false, false, true, false}, nil)

	f.poll(t, []bool{true, false, false, false}, nil)
	assert.Equal(t, []int{0, 2}, f.renderer.Updates)
	assert.Equal(t, []bool{true, false, false, false}, f.renderer.Controls)

	f.poll(t, []bool{true, false, false, false}, nil)
	assert.Equal(t, []int{0, 2}, f.renderer.Updates, "no changes")
	assert.Equal(t, 1, f.renderer.BuildCalls, "controls re-created")
}

// Tests that every successful poll schedules next one with the poll interval.
func TestPollCadence(t *testing.T) {
	f := newFixture()
	f.start(t, []bool{true}, nil)

	for ii := 0; ii < 3; ii++ {
		f.poll(t, []bool{true}, nil)
		timers := f.scheduler.Timers()
		require.Equal(t, 1, len(timers), "cycle %d", ii)
		assert.Equal(t, 500*time.Millisecond, timers[0].Delay, "cycle %d", ii)
	}

	f.client.AssertNoFetch(t)
}

// Tests custom poll interval.
func TestCustomInterval(t *testing.T) {
	s := mocks.FakeNewScheduler()
	c := mocks.FakeNewClient()
	p := NewPanel(&ConstructPanel{
		Logger:       mocks.FakeNewLogger(nil),
		Client:       c,
		Renderer:     mocks.FakeNewRenderer(),
		Scheduler:    s,
		PollInterval: 2 * time.Second,
	})

	p.Start(context.Background())
	s.RunNext(t)
	c.NextFetch(t).Respond([]bool{false}, nil)
	s.RunNext(t)

	timers := s.Timers()
	require.Equal(t, 1, len(timers))
	assert.Equal(t, 2*time.Second, timers[0].Delay)
}

// Tests command sent while poll is in flight: result is discarded and
// a new poll is issued right away.
func TestCommandDuringPoll(t *testing.T) {
	f := newFixture()
	f.start(t, []bool{false}, nil)

	f.scheduler.FireTimer(t)
	fetch := f.client.NextFetch(t)

	f.renderer.Click(0, true)
	f.scheduler.RunNext(t)
	cmd := f.client.NextCommand(t)
	assert.Equal(t, 0, cmd.Index)
	assert.True(t, cmd.State)

	fetch.Respond([]bool{false}, nil)
	f.scheduler.RunNext(t)

	assert.Equal(t, 0, len(f.renderer.Updates), "stale result was applied")
	assert.Equal(t, 0, len(f.scheduler.Timers()), "re-poll was delayed")
	assert.Equal(t, []bool{true}, f.renderer.Controls)

	f.client.NextFetch(t).Respond([]bool{true}, nil)
	f.scheduler.RunNext(t)
	assert.Equal(t, 0, len(f.renderer.Updates), "optimistic state was not kept")
	require.Equal(t, 1, len(f.scheduler.Timers()))
}

// Tests stale positive result is discarded as well.
func TestCommandDuringPollPositiveResult(t *testing.T) {
	f := newFixture()
	f.start(t, []bool{false}, nil)

	f.scheduler.FireTimer(t)
	fetch := f.client.NextFetch(t)
	f.panel.Toggle(0, true)
	f.scheduler.RunNext(t)
	f.client.NextCommand(t)

	fetch.Respond([]bool{true}, nil)
	f.scheduler.RunNext(t)
	f.client.NextFetch(t)
	assert.Equal(t, 0, len(f.scheduler.Timers()))
}

// Tests that command sent between cycles doesn't discard the next cycle.
func TestCommandBetweenPolls(t *testing.T) {
	f := newFixture()
	f.start(t, []bool{false, false}, nil)

	f.panel.Toggle(1, true)
	f.scheduler.RunNext(t)
	f.client.NextCommand(t)

	f.poll(t, []bool{false, true}, nil)
	assert.Equal(t, 0, len(f.renderer.Updates))
	require.Equal(t, 1, len(f.scheduler.Timers()), "result was discarded")
}

// Tests that device reverting a command is displayed.
func TestDeviceRejectsCommand(t *testing.T) {
	f := newFixture()
	f.start(t, []bool{false}, nil)

	f.renderer.Click(0, true)
	f.scheduler.RunNext(t)
	f.client.NextCommand(t)

	f.poll(t, []bool{false}, nil)
	assert.Equal(t, []int{0}, f.renderer.Updates)
	assert.Equal(t, []bool{false}, f.renderer.Controls)
}

// Tests commands for unknown outputs.
func TestUnknownOutput(t *testing.T) {
	f := newFixture()
	f.start(t, []bool{false}, nil)

	f.panel.Toggle(1, true)
	f.scheduler.RunNext(t)
	f.panel.Toggle(-1, true)
	f.scheduler.RunNext(t)

	f.client.AssertNoCommand(t)

	f.poll(t, []bool{false}, nil)
	require.Equal(t, 1, len(f.scheduler.Timers()), "result was discarded")
}

// Tests that failed commands are ignored.
func TestCommandFailure(t *testing.T) {
	f := newFixture()
	f.start(t, []bool{false}, nil)
	f.client.SetSendError(errors.New("connection refused"))

	f.panel.Toggle(0, true)
	f.scheduler.RunNext(t)
	f.client.NextCommand(t)
	f.scheduler.AssertIdle(t)

	assert.Equal(t, 0, f.renderer.OfflineShow)
}

// Tests poll failure and manual retry.
func TestFailureAndRetry(t *testing.T) {
	f := newFixture()
	f.start(t, []bool{true, false}, nil)

	f.poll(t, nil, errors.New("status 500"))
	assert.Equal(t, 1, f.renderer.OfflineShow)
	assert.True(t, f.renderer.Notice)
	assert.Equal(t, 0, len(f.scheduler.Timers()), "polling was not halted")
	f.client.AssertNoFetch(t)

	f.renderer.OnRetry()
	f.scheduler.RunNext(t)
	f.client.NextFetch(t).Respond(nil, errors.New("status 500"))
	f.scheduler.RunNext(t)
	assert.Equal(t, 1, f.renderer.OfflineShow, "offline is not idempotent")
	assert.Equal(t, 0, f.renderer.OfflineHide)

	f.renderer.OnRetry()
	f.scheduler.RunNext(t)
	f.client.NextFetch(t).Respond([]bool{true, true}, nil)
	f.scheduler.RunNext(t)

	assert.Equal(t, 1, f.renderer.OfflineHide)
	assert.False(t, f.renderer.Notice)
	assert.Equal(t, []int{1}, f.renderer.Updates)
	timers := f.scheduler.Timers()
	require.Equal(t, 1, len(timers))
	assert.Equal(t, 500*time.Millisecond, timers[0].Delay)
}

// Tests initial fetch failure: retry builds controls.
func TestInitialFailure(t *testing.T) {
	f := newFixture()
	f.start(t, nil, errors.New("no route to host"))

	assert.False(t, f.renderer.Built)
	assert.Equal(t, 1, f.renderer.OfflineShow)

	f.panel.Retry()
	f.scheduler.RunNext(t)
	f.client.NextFetch(t).Respond([]bool{false, true}, nil)
	f.scheduler.RunNext(t)

	assert.True(t, f.renderer.Built)
	assert.Equal(t, []bool{false, true}, f.renderer.Controls)
	assert.Equal(t, 1, f.renderer.OfflineHide)
	assert.Equal(t, 1, len(f.scheduler.Timers()))
}

// Tests that retry doesn't start a second poll chain.
func TestRetryIgnored(t *testing.T) {
	f := newFixture()
	f.start(t, []bool{false}, nil)

	f.panel.Retry()
	f.scheduler.RunNext(t)
	f.client.AssertNoFetch(t)

	f.poll(t, nil, errors.New("timeout"))
	f.panel.Retry()
	f.panel.Retry()
	f.scheduler.RunNext(t)
	fetch := f.client.NextFetch(t)
	f.scheduler.RunNext(t)
	f.client.AssertNoFetch(t)

	fetch.Respond([]bool{false}, nil)
	f.scheduler.RunNext(t)
	assert.Equal(t, 1, len(f.scheduler.Timers()))
}

// Tests device changing number of outputs.
func TestOutputsCountMismatch(t *testing.T) {
	f := newFixture()
	f.start(t, []bool{false, false}, nil)

	f.poll(t, []bool{true}, nil)
	assert.Equal(t, []int{0}, f.renderer.Updates)

	f.poll(t, []bool{true, true, true}, nil)
	assert.Equal(t, []int{0, 1}, f.renderer.Updates)
	assert.Equal(t, 2, len(f.renderer.Controls))
}

// Tests that stopped panel doesn't poll.
func TestStopped(t *testing.T) {
	f := newFixture()
	ctx, cancel := context.WithCancel(context.Background())
	f.panel.Start(ctx)
	f.scheduler.RunNext(t)
	f.client.NextFetch(t).Respond([]bool{false}, nil)
	f.scheduler.RunNext(t)

	cancel()
	f.scheduler.FireTimer(t)
	f.client.AssertNoFetch(t)
}
