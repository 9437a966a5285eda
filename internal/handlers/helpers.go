package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// bodyEnvelope is the {"data": {...}} wrapper every request body uses
type bodyEnvelope[T any] struct {
	Data T `json:"data"`
}

// decodeData reads a {"data": ...} body into payload.
// An empty body or a body without data leaves payload zero so that the
// field validators report what is missing. Payload types decode fields of the
// wrong JSON type as invalid, so only malformed JSON or a body that is not an
// object returns an error.
func decodeData[T any](r *http.Request, payload *T) error {
	var body bodyEnvelope[T]
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	*payload = body.Data
	return nil
}
