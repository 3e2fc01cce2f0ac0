package db

// SchemaSQL is the complete schema for fresh pulse installs.
//
// The check-in log is persisted as one JSON blob per state key in app_state,
// mirroring the browser-local-storage model the data format comes from. This
// is the single source of truth for the schema; tests load it via
// GetSchemaSQL() instead of hardcoding CREATE TABLE statements.
const SchemaSQL = `
-- Application state blobs (key/value, one row per state key)
CREATE TABLE IF NOT EXISTS app_state (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// GetSchemaSQL returns the authoritative schema SQL.
func GetSchemaSQL() string {
	return SchemaSQL
}

// InitSchema applies the schema to the current database connection.
// Statements are idempotent, safe to run on every start.
func InitSchema() error {
	database, err := GetDB()
	if err != nil {
		return err
	}
	_, err = database.Exec(SchemaSQL)
	return err
}
