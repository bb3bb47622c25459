package utils

import (
	"github.com/google/uuid"
)

// GenerateUUIDv7 generates a time-ordered UUID v7, falling back to v4
// if the system clock misbehaves.
func GenerateUUIDv7() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}
