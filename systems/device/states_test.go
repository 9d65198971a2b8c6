package device

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests index of the bad element.
func TestBadStateIndex(t *testing.T) {
	s := make(States, 0)
	err := json.Unmarshal([]byte(`[1, 0, 5]`), &s)
	e, ok := err.(*ErrBadState)
	require.True(t, ok)
	assert.Equal(t, 2, e.Index)
}

// Tests null state.
func TestNullState(t *testing.T) {
	s := make(States, 0)
	assert.Error(t, json.Unmarshal([]byte(`[null]`), &s))
}
