package panel

// Output registry: displayed state of every output, position is the output index.
// Owned by the scheduler's goroutine.
type registry struct {
	built  bool
	states []bool
}

// Creates an empty registry.
func newRegistry() *registry {
	return &registry{
		states: make([]bool, 0),
	}
}

// Creates all outputs from the first fetched states.
func (r *registry) build(states []bool) {
	r.states = make([]bool, len(states))
	copy(r.states, states)
	r.built = true
}

// Returns number of known outputs.
func (r *registry) size() int {
	return len(r.states)
}

// Sets output state.
func (r *registry) set(index int, state bool) bool {
	if index < 0 || index >= len(r.states) {
		return false
	}

	r.states[index] = state
	return true
}

// Applies freshly fetched states and returns indexes which were changed.
// Only the common part is applied, outputs are never added or removed.
func (r *registry) reconcile(fetched []bool) []int {
	changed := make([]int, 0)
	for ii, state := range fetched {
		if ii >= len(r.states) {
			break
		}

		if r.states[ii] != state {
			r.states[ii] = state
			changed = append(changed, ii)
		}
	}

	return changed
}
