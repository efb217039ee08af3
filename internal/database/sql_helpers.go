package database

import "database/sql"

// nullableString converts a string to sql.NullString for optional fields.
// Empty strings are treated as NULL.
func nullableString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}
