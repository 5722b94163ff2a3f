package mockapi

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Placeholder values the simulated server backfills into responses.
const (
	placeholderGUID   = "77777777777777"
	placeholderExpire = "999999999999"
	placeholderUser   = "mock generated"
)

// Fixed field values returned by simulated reads.
const (
	readExpire = "1234123123123"
	readUser   = "foo"
)

// Diagnostic reason phrases for injected faults.
const (
	reasonServerFault = "mock server error test"
	reasonClientFault = "mock client error test"
)

// statusFor maps an id to its simulated status. The mapping reads only the
// first character and is identical for every operation: '9' injects a
// server fault, '8' a client fault, anything else succeeds.
func statusFor(id string) (int, string) {
	if id == "" {
		return http.StatusOK, "OK"
	}
	switch id[0] {
	case '9':
		return http.StatusServiceUnavailable, reasonServerFault
	case '8':
		return http.StatusNotFound, reasonClientFault
	default:
		return http.StatusOK, "OK"
	}
}

// synthesizeRead simulates GET /guid/<id>. The body echoes the id with
// fixed expire and user values, and is produced for fault statuses too.
func synthesizeRead(id string, _ []byte) (*synthesized, error) {
	if id == "" {
		return nil, fmt.Errorf("read: %w", ErrMissingGUID)
	}

	status, reason := statusFor(id)
	body, err := json.Marshal(map[string]string{
		"guid":   id,
		"expire": readExpire,
		"user":   readUser,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding read response: %w", err)
	}
	return &synthesized{status: status, reason: reason, body: body}, nil
}

// synthesizeCreateUpdate simulates POST /guid and POST /guid/<id>. The
// response echoes every supplied field, backfills missing expire and user
// values, and always sets guid to the resolved id: the path segment when
// present, a fixed placeholder otherwise. Caller data is never dropped.
func synthesizeCreateUpdate(id string, body []byte) (*synthesized, error) {
	fields := make(map[string]string)
	if len(body) > 0 {
		if err := json.Unmarshal(body, &fields); err != nil {
			return nil, fmt.Errorf("request body is not a string-valued JSON object: %w", err)
		}
	}

	if id == "" {
		id = placeholderGUID
	}
	if _, ok := fields["expire"]; !ok {
		fields["expire"] = placeholderExpire
	}
	if _, ok := fields["user"]; !ok {
		fields["user"] = placeholderUser
	}
	fields["guid"] = id

	status, reason := statusFor(id)
	out, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encoding create/update response: %w", err)
	}
	return &synthesized{status: status, reason: reason, body: out}, nil
}

// synthesizeDelete simulates DELETE /guid/<id>. The body is empty for
// every status.
func synthesizeDelete(id string, _ []byte) (*synthesized, error) {
	if id == "" {
		return nil, fmt.Errorf("delete: %w", ErrMissingGUID)
	}

	status, reason := statusFor(id)
	return &synthesized{status: status, reason: reason}, nil
}
