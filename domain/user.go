package domain

import (
	"strings"
	"time"
)

// User represents an identity owning all other entities. Users are created on
// first sight of a display name and never mutated or deleted afterwards.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// NormalizeUsername maps a display name onto its case-insensitive identity.
// An empty result means the input has no usable name in it.
func NormalizeUsername(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
