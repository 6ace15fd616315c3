// Package common defines shared constants and sentinel errors used across
// client and server layers of LibKeeper. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation error")

	// Credential verification errors. ErrIncorrectPassword means the stored
	// hash parsed fine but the plaintext did not match; ErrMalformedHash means
	// the stored blob could not be parsed under the configured scheme.
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrMalformedHash     = errors.New("malformed password hash")
)
