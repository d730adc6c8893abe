package utils

import "github.com/google/uuid"

// NewID mints an opaque globally-unique identifier. Records are always
// created with a fresh server-side id; client-supplied ids are ignored.
func NewID() string {
	return uuid.NewString()
}
