package entity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrInvalidMany2One = errors.New("invalid many2one value")

// Many2One is a relational reference as the ERP returns it: either
// [id, "display name"] or false when unset.
type Many2One struct {
	ID   int
	Name string
}

// IsSet -.
func (m Many2One) IsSet() bool {
	return m.ID != 0
}

// UnmarshalJSON accepts [id, name], [id], a bare id, false and null.
func (m *Many2One) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("false")), bytes.Equal(data, []byte("null")):
		*m = Many2One{}

		return nil
	case len(data) > 0 && data[0] == '[':
		var pair []json.RawMessage
		if err := json.Unmarshal(data, &pair); err != nil {
			return err
		}

		*m = Many2One{}

		if len(pair) == 0 {
			return nil
		}

		if err := json.Unmarshal(pair[0], &m.ID); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidMany2One, data)
		}

		if len(pair) > 1 {
			_ = json.Unmarshal(pair[1], &m.Name)
		}

		return nil
	default:
		*m = Many2One{}

		if err := json.Unmarshal(data, &m.ID); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidMany2One, data)
		}

		return nil
	}
}

// MarshalJSON writes the same wire form the ERP uses.
func (m Many2One) MarshalJSON() ([]byte, error) {
	if !m.IsSet() {
		return []byte("false"), nil
	}

	return json.Marshal([]interface{}{m.ID, m.Name})
}

// OptString is a string attribute the ERP reports as false when unset.
type OptString string

// UnmarshalJSON -.
func (s *OptString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("false")) || bytes.Equal(data, []byte("null")) {
		*s = ""

		return nil
	}

	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*s = OptString(v)

	return nil
}
