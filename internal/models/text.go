package models

import (
	"bytes"
	"encoding/json"
)

// Text is an optional JSON string.
// Like Int it never fails decoding: a number, bool, object or array is kept
// as present but invalid together with its raw JSON so messages can echo it.
type Text struct {
	Value   string
	Present bool
	Valid   bool
	raw     string
}

// NewText returns a present, valid Text
func NewText(v string) Text {
	return Text{Value: v, Present: true, Valid: true}
}

// UnmarshalJSON implements json.Unmarshaler
func (t *Text) UnmarshalJSON(data []byte) error {
	*t = Text{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	t.Present = true
	if err := json.Unmarshal(data, &t.Value); err != nil {
		t.Value = ""
		t.raw = string(data)
		return nil
	}
	t.Valid = true
	return nil
}

// MarshalJSON implements json.Marshaler
func (t Text) MarshalJSON() ([]byte, error) {
	switch {
	case !t.Present:
		return []byte("null"), nil
	case t.Valid:
		return json.Marshal(t.Value)
	case t.raw != "":
		return []byte(t.raw), nil
	default:
		return []byte("null"), nil
	}
}

// Empty reports whether the value is absent, null or the empty string
func (t Text) Empty() bool {
	return !t.Present || (t.Valid && t.Value == "")
}

// String returns the decoded string, or the raw JSON of a non-string value
func (t Text) String() string {
	if t.Valid {
		return t.Value
	}
	return t.raw
}

// objectFields splits a JSON object into its raw members.
// Anything other than an object yields an empty map.
func objectFields(data []byte) map[string]json.RawMessage {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return map[string]json.RawMessage{}
	}
	return fields
}

// stringField returns the string held by a member, or "" when it is absent
// or not a JSON string
func stringField(fields map[string]json.RawMessage, name string) string {
	var t Text
	if raw, ok := fields[name]; ok {
		_ = t.UnmarshalJSON(raw)
	}
	return t.Value
}

// textField decodes a member into a Text
func textField(fields map[string]json.RawMessage, name string) Text {
	var t Text
	if raw, ok := fields[name]; ok {
		_ = t.UnmarshalJSON(raw)
	}
	return t
}

// intField decodes a member into an Int
func intField(fields map[string]json.RawMessage, name string) Int {
	var i Int
	if raw, ok := fields[name]; ok {
		_ = i.UnmarshalJSON(raw)
	}
	return i
}
