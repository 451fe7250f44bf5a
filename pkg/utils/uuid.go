package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// GenerateObjectName builds a collision-resistant storage object name,
// keeping the original file extension.
func GenerateObjectName(filename string) string {
	ext := ""
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		ext = strings.ToLower(filename[idx:])
	}
	return uuid.New().String() + ext
}

// TemporaryPassword generates a one-time password for invited members
func TemporaryPassword() string {
	return strings.ToUpper(uuid.New().String()[:8])
}
