package models

// All lists every table in dependency order, ready for AutoMigrate.
func All() []any {
	return []any{
		&User{},
		&Company{},
		&Pet{},
		&Services{},
		&Favorites{},
		&Appointments{},
	}
}
