package state

import (
	"database/sql"
)

const currentSchemaVersion = 2

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS drafts (
			channel TEXT PRIMARY KEY,
			message TEXT NOT NULL,
			caret INTEGER NOT NULL DEFAULT 0,
			history TEXT,
			updated_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_drafts_updated_at ON drafts(updated_at DESC);

		CREATE TABLE IF NOT EXISTS sent_messages (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			channel TEXT NOT NULL,
			body TEXT NOT NULL,
			sent_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_sent_messages_channel ON sent_messages(channel, id);

		CREATE TABLE IF NOT EXISTS session_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			active_channel TEXT
		);
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO schema_version (version) VALUES (?)`, currentSchemaVersion)
	if err != nil {
		return err
	}

	// Migration: v1 stored no caret position
	_, _ = db.Exec(`ALTER TABLE drafts ADD COLUMN caret INTEGER NOT NULL DEFAULT 0`)

	return nil
}
