package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Tests reconciliation against different fetched states.
func TestReconcile(t *testing.T) {
	data := []struct {
		initial []bool
		fetched []bool
		changed []int
		final   []bool
	}{
		{
			initial: []bool{false, false, true},
			fetched: []bool{false, false, true},
			changed: []int{},
			final:   []bool{false, false, true},
		},
		{
			initial: []bool{false, false, true},
			fetched: []bool{true, false, false},
			changed: []int{0, 2},
			final:   []bool{true, false, false},
		},
		{
			initial: []bool{false, false},
			fetched: []bool{true},
			changed: []int{0},
			final:   []bool{true, false},
		},
		{
			initial: []bool{false},
			fetched: []bool{false, true, true},
			changed: []int{},
			final:   []bool{false},
		},
		{
			initial: []bool{},
			fetched: []bool{},
			changed: []int{},
			final:   []bool{},
		},
	}

	for k, v := range data {
		r := newRegistry()
		r.build(v.initial)
		assert.Equal(t, v.changed, r.reconcile(v.fetched), "changed %d", k)
		assert.Equal(t, v.final, r.states, "final %d", k)
	}
}

// Tests that registry keeps its own copy of states.
func TestBuildCopies(t *testing.T) {
	states := []bool{true, false}
	r := newRegistry()
	r.build(states)
	states[0] = false

	assert.True(t, r.states[0])
	assert.Equal(t, 2, r.size())
	assert.True(t, r.built)
}

// Tests optimistic update.
func TestSet(t *testing.T) {
	r := newRegistry()
	assert.False(t, r.set(0, true), "empty registry")

	r.build([]bool{false, false})
	assert.True(t, r.set(1, true))
	assert.False(t, r.set(2, true))
	assert.False(t, r.set(-1, true))
	assert.Equal(t, []bool{false, true}, r.states)
}
