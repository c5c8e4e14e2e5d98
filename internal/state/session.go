package state

import (
	"database/sql"
	"errors"

	dbutil "github.com/llehouerou/drafts/internal/db"
)

// SessionState is what the app restores on startup.
type SessionState struct {
	ActiveChannel string
}

// GetSession returns the saved session, or nil on first run.
func (m *Manager) GetSession() (*SessionState, error) {
	var active sql.NullString
	err := m.db.QueryRow(`SELECT active_channel FROM session_state WHERE id = 1`).Scan(&active)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved session on first run
	}
	if err != nil {
		return nil, err
	}
	return &SessionState{ActiveChannel: dbutil.NullStringValue(active)}, nil
}

// SaveSession stores the session.
func (m *Manager) SaveSession(s SessionState) error {
	_, err := m.db.Exec(`
		INSERT INTO session_state (id, active_channel) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET active_channel = excluded.active_channel
	`, s.ActiveChannel)
	return err
}
