// Package models holds the server-side data model.
package models

import "time"

// Credential is a stored username + password-hash pair. The hash is an
// opaque, self-describing blob produced by the configured password scheme;
// it is never mutated in place.
type Credential struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
