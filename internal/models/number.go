package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Int is an optional JSON integer.
// Decoding never fails: a value that is not a whole JSON number is recorded
// as present but invalid so that validators can reject it with a field message
// instead of the whole body being refused.
type Int struct {
	Value   int64
	Present bool
	Valid   bool
}

// NewInt returns a present, valid Int
func NewInt(v int64) Int {
	return Int{Value: v, Present: true, Valid: true}
}

// UnmarshalJSON implements json.Unmarshaler
func (i *Int) UnmarshalJSON(data []byte) error {
	*i = Int{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	i.Present = true

	// Integer literals are parsed exactly before falling back to float64
	if v, err := strconv.ParseInt(string(data), 10, 64); err == nil {
		i.Value = v
		i.Valid = true
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return nil
	}
	if math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return nil
	}
	// float64(math.MaxInt64) rounds up to 2^63, which does not fit
	if f >= 1<<63 || f < -(1<<63) {
		return nil
	}
	i.Value = int64(f)
	i.Valid = true
	return nil
}

// MarshalJSON implements json.Marshaler
func (i Int) MarshalJSON() ([]byte, error) {
	if !i.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(i.Value, 10)), nil
}

// Positive reports whether the value is a valid integer greater than zero
func (i Int) Positive() bool {
	return i.Valid && i.Value > 0
}
