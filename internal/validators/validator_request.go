// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-eero/internal/adapter"
	"github.com/MKhiriev/go-eero/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldAPIVersion = "api_version"
	FieldParams     = "params"
	FieldLogin      = "login"
)

var allowedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
}

type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RawRequest:
		return v.validateRawRequest(ctx, value, fields...)
	case *models.RawRequest:
		return v.validateRawRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isAllowedMethod(method string) bool {
	method = strings.ToUpper(strings.TrimSpace(method))
	for _, m := range allowedMethods {
		if method == m {
			return true
		}
	}
	return false
}

func (v *RequestValidator) validateRawRequest(_ context.Context, request models.RawRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMethod, FieldPath, FieldAPIVersion, FieldParams}
	}

	for _, f := range fields {
		switch f {
		case FieldMethod:
			if !isAllowedMethod(request.Method) {
				return ErrInvalidMethod
			}
		case FieldPath:
			path := strings.Trim(strings.TrimSpace(request.Path), "/")
			if path == "" {
				return ErrEmptyPath
			}
			if strings.Contains(path, "://") {
				return ErrAbsolutePath
			}
			first, _, _ := strings.Cut(path, "/")
			if _, err := adapter.ParseAPIVersion(first); err == nil {
				return ErrVersionInPath
			}
		case FieldAPIVersion:
			if _, err := adapter.ParseAPIVersion(request.APIVersion); err != nil {
				return ErrInvalidAPIVersion
			}
		case FieldParams:
			for key := range request.Params {
				if strings.TrimSpace(key) == "" {
					return ErrEmptyParamKey
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateLoginRequest accepts an email address or a phone number made of
// digits with optional "+", spaces, dashes and parentheses.
func (v *RequestValidator) validateLoginRequest(_ context.Context, request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			login := strings.TrimSpace(request.Login)
			if login == "" {
				return ErrEmptyLogin
			}
			if !isEmail(login) && !isPhone(login) {
				return ErrInvalidLogin
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isEmail(s string) bool {
	local, domain, ok := strings.Cut(s, "@")
	return ok && local != "" && strings.Contains(domain, ".") && !strings.ContainsAny(s, " \t")
}

func isPhone(s string) bool {
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' || r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return digits >= 5
}
