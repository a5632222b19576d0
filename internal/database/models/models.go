package models

// All returns every model managed by the schema bootstrapper, in creation order
func All() []interface{} {
	return []interface{}{
		&Team{},
		&Match{},
		&Standing{},
		&Player{},
	}
}
