package device

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// States is a device state array.
// Device may report every output either as a boolean or as 0/1.
type States []bool

// UnmarshalJSON decodes state array.
func (s *States) UnmarshalJSON(data []byte) error {
	raw := make([]json.RawMessage, 0)
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "states are not an array")
	}

	result := make(States, len(raw))
	for ii, v := range raw {
		state, err := parseState(v)
		if err != nil {
			return &ErrBadState{Index: ii}
		}

		result[ii] = state
	}

	*s = result
	return nil
}

// Parses a single array element.
func parseState(raw json.RawMessage) (bool, error) {
	if "null" == string(raw) {
		return false, errors.New("state is null")
	}

	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b, nil
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		return false, err
	}

	switch n {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}

	return false, errors.New("number is out of range")
}
