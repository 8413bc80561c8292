package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidMethod     = errors.New("invalid method: expected GET, POST, PUT or DELETE")
	ErrEmptyPath         = errors.New("path is required")
	ErrAbsolutePath      = errors.New("path must be relative to the API root")
	ErrVersionInPath     = errors.New("path must not start with an api version, use --api-version")
	ErrInvalidAPIVersion = errors.New("invalid api version")
	ErrEmptyParamKey     = errors.New("param key is required")
	ErrEmptyLogin        = errors.New("login is required")
	ErrInvalidLogin      = errors.New("login must be an email address or a phone number")
)
