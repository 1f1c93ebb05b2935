package utils

import "github.com/google/uuid"

// NewID returns a fresh entry or field list id. UUIDv7 carries a millisecond
// timestamp followed by random bits, so ids sort by creation time and do not collide.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
