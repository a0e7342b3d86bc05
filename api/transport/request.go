package transport

// ResolveRequest opens (or creates) a user session from a display name.
type ResolveRequest struct {
	Username string `json:"username"`
}

type TaskCreateRequest struct {
	Title    string `json:"title"`
	DueDate  string `json:"due_date"`
	Category string `json:"category"`
}

type TaskDoneRequest struct {
	Done bool `json:"done"`
}

type JournalCreateRequest struct {
	Entry string `json:"entry"`
	Mood  string `json:"mood"`
}

type MealCreateRequest struct {
	MealType string `json:"meal_type"`
	MealName string `json:"meal_name"`
	Mood     string `json:"mood"`
}
