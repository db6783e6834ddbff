// Package query implements the SatFab contract: a single endpoint that
// dispatches typed query and mutation operations by name, enforces
// per-operation role authorization, and wraps results in the data/errors
// envelope the mobile client expects.
package query

import (
	"bytes"
	"encoding/json"
	"time"

	apperrors "satfab.io/satfab/internal/pkg/errors"
)

// Request is the contract's wire request: an operation name plus an arguments
// object whose shape depends on the operation.
type Request struct {
	OperationName string          `json:"operationName"`
	Arguments     json.RawMessage `json:"arguments"`
}

// decodeArgs decodes an operation's arguments into its typed struct. Absent
// arguments decode as an empty object; unknown fields are rejected so that a
// misspelled argument fails loudly instead of being silently ignored.
func decodeArgs(raw json.RawMessage, dst any) error {
	if len(raw) == 0 {
		raw = []byte("{}")
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperrors.BadRequest(apperrors.CodeInvalidRequest, "invalid arguments: "+err.Error())
	}
	return nil
}

// Accepted timeOfFrame layouts. Clients send either a bare date or a full
// RFC 3339 timestamp.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// parseDate parses a timeOfFrame argument.
func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, apperrors.BadRequest(apperrors.CodeInvalidDate, "invalid date: "+s)
}
