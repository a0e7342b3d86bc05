package sqlite

// Models returns every record type to auto-migrate on startup.
func Models() []interface{} {
	return []interface{}{
		&userRecord{},
		&taskRecord{},
		&historyRecord{},
		&journalRecord{},
		&mealRecord{},
	}
}
