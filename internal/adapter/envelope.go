// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-eero/models"
)

// emptyData is returned when a successful envelope has no data member.
var emptyData = json.RawMessage(`""`)

// decodeEnvelope maps a response to its data or to an error. The envelope
// code decides success whenever the body is an envelope; the HTTP status is
// only consulted for bodies that are not.
func decodeEnvelope(resp *resty.Response) (json.RawMessage, error) {
	var env models.Envelope
	body := bytes.TrimSpace(resp.Body())

	if err := json.Unmarshal(body, &env); err != nil || env.Meta == nil {
		if !resp.IsSuccess() {
			return nil, &APIError{
				Code:    resp.StatusCode(),
				Message: http.StatusText(resp.StatusCode()),
			}
		}
		return nil, fmt.Errorf("%w: http %d", ErrMalformedEnvelope, resp.StatusCode())
	}

	if !env.Meta.IsSuccess() {
		return nil, &APIError{Code: env.Meta.Code, Message: env.Meta.Error}
	}

	if env.Data == nil {
		return emptyData, nil
	}
	return env.Data, nil
}

// DecodeData unmarshals envelope data into T. An empty string or null
// payload is a valid success and decodes to the zero value of T.
func DecodeData[T any](data json.RawMessage, what string) (T, error) {
	var v T
	switch string(bytes.TrimSpace(data)) {
	case "", `""`, "null":
		return v, nil
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("decode %s: %w", what, err)
	}
	return v, nil
}
