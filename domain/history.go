package domain

// HistoryPoint records one day's completed-task count for a user. At most one
// point exists per (user, date); only today's point is ever rewritten, past
// dates are frozen at their last observed count.
type HistoryPoint struct {
	UserID         string `json:"user_id"`
	Date           Date   `json:"date"`
	CompletedCount int    `json:"completed_count"`
}
