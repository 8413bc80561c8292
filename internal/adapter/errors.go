// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedEnvelope is returned when a successful HTTP response does
	// not carry a {meta, data} envelope.
	ErrMalformedEnvelope = errors.New("malformed response envelope")
	// ErrMissingUserToken is returned when login or refresh succeeds without
	// a user_token in the payload.
	ErrMissingUserToken = errors.New("response has no user token")
	// ErrUnknownAPIVersion is returned by [ParseAPIVersion].
	ErrUnknownAPIVersion = errors.New("unknown api version")
	// ErrUnsupportedParams is returned when query params are not a map.
	ErrUnsupportedParams = errors.New("unsupported query params")
)

// APIError is a failure reported by the remote service: either a non-success
// envelope code, or an HTTP error status when the body was not an envelope.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("eero api error %d", e.Code)
	}
	return fmt.Sprintf("eero api error %d: %s", e.Code, e.Message)
}

// IsUnauthorized reports whether err is an [APIError] with code 401.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == 401
}
