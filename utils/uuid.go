package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier. Ids are version 7 UUIDs, so ids
// generated later by this process sort after earlier ones.
func GenerateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
