package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConfig indicates that a required configuration value is missing or invalid.
// There is no degraded behaviour for it; callers surface it as an internal error.
var ErrConfig = errors.New("configuration error")

// ErrUnauthorized indicates that a shared secret did not match.
var ErrUnauthorized = errors.New("unauthorized")
