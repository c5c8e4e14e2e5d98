package state

import (
	"database/sql"
	"time"

	dbutil "github.com/llehouerou/drafts/internal/db"
)

// Message is a message sent to a channel.
type Message struct {
	ID      int64
	Channel string
	Body    string
	SentAt  time.Time
}

// AppendMessage stores body as sent to channel and clears its draft.
func (m *Manager) AppendMessage(channel, body string) (Message, error) {
	m.saveMu.Lock()
	delete(m.pending, channel)
	m.saveMu.Unlock()

	msg := Message{Channel: channel, Body: body, SentAt: m.now()}
	err := dbutil.WithTx(m.db, func(tx *sql.Tx) error {
		res, err := tx.Exec(`
			INSERT INTO sent_messages (channel, body, sent_at) VALUES (?, ?, ?)
		`, channel, body, msg.SentAt.Unix())
		if err != nil {
			return err
		}
		if msg.ID, err = res.LastInsertId(); err != nil {
			return err
		}
		_, err = tx.Exec(`DELETE FROM drafts WHERE channel = ?`, channel)
		return err
	})
	return msg, err
}

// ListMessages returns up to limit of the newest messages of channel,
// oldest first.
func (m *Manager) ListMessages(channel string, limit int) ([]Message, error) {
	return listMessages(m.db, channel, limit)
}

func listMessages(db *sql.DB, channel string, limit int) ([]Message, error) {
	rows, err := db.Query(`
		SELECT id, channel, body, sent_at FROM (
			SELECT id, channel, body, sent_at FROM sent_messages
			WHERE channel = ?
			ORDER BY id DESC
			LIMIT ?
		) ORDER BY id
	`, channel, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []Message
	for rows.Next() {
		var msg Message
		var sentAt sql.NullInt64
		if err := rows.Scan(&msg.ID, &msg.Channel, &msg.Body, &sentAt); err != nil {
			return nil, err
		}
		msg.SentAt = dbutil.UnixTime(sentAt)
		msgs = append(msgs, msg)
	}
	return msgs, rows.Err()
}
