package tree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

var jsonNull = []byte("null")

// MarshalJSON encodes an absent slot as null and a present one as a number.
func (s Slot) MarshalJSON() ([]byte, error) {
	if !s.Present {
		return jsonNull, nil
	}
	if err := s.validate(); err != nil {
		return nil, err
	}

	return strconv.AppendFloat(nil, s.Value, 'g', -1, 64), nil
}

// UnmarshalJSON accepts null or a JSON number. Anything else
// (strings, booleans, objects, arrays) wraps ErrInvalidInput.
func (s *Slot) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		*s = Absent()
		return nil
	}

	// json.Number would also accept a quoted "5"; only bare literals count.
	if len(data) == 0 || (data[0] != '-' && (data[0] < '0' || data[0] > '9')) {
		return fmt.Errorf("%w: %s is not a number or null", ErrInvalidInput, data)
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: %s is not a number or null", ErrInvalidInput, data)
	}
	v, err := n.Float64()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidInput, data, err)
	}
	*s = Val(v)

	return s.validate()
}
