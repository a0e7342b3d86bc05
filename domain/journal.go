package domain

import "time"

// JournalEntry is a dated free-form note with a mood marker.
type JournalEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Entry     string    `json:"entry"`
	Mood      string    `json:"mood,omitempty"`
	Date      Date      `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}
