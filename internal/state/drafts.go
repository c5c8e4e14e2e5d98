package state

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dbutil "github.com/llehouerou/drafts/internal/db"
	"github.com/llehouerou/drafts/internal/edithistory"
)

// Draft is the unsent text of one channel along with its edit history.
type Draft struct {
	Channel   string
	Message   string
	Caret     int
	History   *edithistory.State // nil when no history was saved
	UpdatedAt time.Time
}

// GetDraft returns the draft for channel, or nil when there is none.
// Drafts still waiting for the debounced write are returned as well.
func (m *Manager) GetDraft(channel string) (*Draft, error) {
	if d, ok := m.pendingDraft(channel); ok {
		return &d, nil
	}
	d, err := getDraft(m.db, channel)
	if errors.Is(err, errCorruptHistory) {
		m.log.Warn("dropping unreadable draft history", "channel", channel, "err", err)
		return d, nil
	}
	return d, err
}

// ListDrafts returns all stored drafts, most recently edited first.
func (m *Manager) ListDrafts() ([]Draft, error) {
	if err := m.FlushDrafts(); err != nil {
		return nil, err
	}
	return listDrafts(m.db)
}

// DeleteDraft removes the draft for channel, including any pending write.
// It waits for a running flush so that flush cannot bring the row back.
func (m *Manager) DeleteDraft(channel string) error {
	m.flushMu.Lock()
	defer m.flushMu.Unlock()

	m.saveMu.Lock()
	delete(m.pending, channel)
	m.saveMu.Unlock()
	return deleteDraft(m.db, channel)
}

var errCorruptHistory = errors.New("corrupt draft history")

func getDraft(db *sql.DB, channel string) (*Draft, error) {
	row := db.QueryRow(`
		SELECT channel, message, caret, history, updated_at
		FROM drafts WHERE channel = ?
	`, channel)

	d, err := scanDraft(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no draft is a valid state
	}
	return d, err
}

func listDrafts(db *sql.DB) ([]Draft, error) {
	rows, err := db.Query(`
		SELECT channel, message, caret, history, updated_at
		FROM drafts
		ORDER BY updated_at DESC, channel
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drafts []Draft
	for rows.Next() {
		d, err := scanDraft(rows)
		if d == nil {
			return nil, err
		}
		// A draft with unreadable history is still listed.
		drafts = append(drafts, *d)
	}
	return drafts, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

// scanDraft reads one row. When only the history column is unreadable it
// returns the draft without history together with errCorruptHistory.
func scanDraft(s scanner) (*Draft, error) {
	var d Draft
	var history sql.NullString
	var updatedAt sql.NullInt64

	if err := s.Scan(&d.Channel, &d.Message, &d.Caret, &history, &updatedAt); err != nil {
		return nil, err
	}
	d.UpdatedAt = dbutil.UnixTime(updatedAt)

	raw := dbutil.NullStringValue(history)
	if raw == "" {
		return &d, nil
	}
	var hs edithistory.State
	if err := json.Unmarshal([]byte(raw), &hs); err != nil {
		return &d, fmt.Errorf("%w: %w", errCorruptHistory, err)
	}
	if err := hs.Validate(); err != nil {
		return &d, fmt.Errorf("%w: %w", errCorruptHistory, err)
	}
	d.History = &hs
	return &d, nil
}

func saveDrafts(db *sql.DB, drafts []Draft) error {
	return dbutil.WithTx(db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO drafts (channel, message, caret, history, updated_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(channel) DO UPDATE SET
				message = excluded.message,
				caret = excluded.caret,
				history = excluded.history,
				updated_at = excluded.updated_at
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, d := range drafts {
			var history sql.NullString
			if d.History != nil {
				data, err := json.Marshal(d.History)
				if err != nil {
					return fmt.Errorf("encode history for %s: %w", d.Channel, err)
				}
				history = sql.NullString{String: string(data), Valid: true}
			}
			if _, err := stmt.Exec(d.Channel, d.Message, d.Caret, history, d.UpdatedAt.Unix()); err != nil {
				return fmt.Errorf("save draft %s: %w", d.Channel, err)
			}
		}
		return nil
	})
}

func deleteDraft(db *sql.DB, channel string) error {
	_, err := db.Exec(`DELETE FROM drafts WHERE channel = ?`, channel)
	return err
}
