package domain

import "time"

// MealType is the slot a meal was eaten in.
type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
	MealSnack     MealType = "Snack"
)

// MealTypes lists every valid meal slot.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

func (m MealType) IsValid() bool {
	for _, known := range MealTypes {
		if m == known {
			return true
		}
	}
	return false
}

// Meal is one logged meal.
type Meal struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Date      Date      `json:"date"`
	Type      MealType  `json:"meal_type"`
	Name      string    `json:"meal_name"`
	Mood      string    `json:"mood,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// MealCount is one day's number of logged meals, used for the overview chart.
type MealCount struct {
	Date  Date `json:"date"`
	Meals int  `json:"meals"`
}
