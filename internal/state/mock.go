package state

import (
	"errors"
	"slices"
	"time"
)

// Mock is an in-memory test double for Manager. Saves are applied
// immediately.
type Mock struct {
	Drafts   map[string]Draft
	Messages []Message
	Session  *SessionState
	Closed   bool
	Flushes  int

	// SaveErr, when set, is returned by AppendMessage and SaveSession.
	SaveErr error
	// LoadErr, when set, is returned by GetDraft.
	LoadErr error
}

var _ Interface = (*Mock)(nil)

// NewMock creates an empty mock state manager.
func NewMock() *Mock {
	return &Mock{Drafts: make(map[string]Draft)}
}

func (m *Mock) SaveDraft(d Draft) {
	if d.UpdatedAt.IsZero() {
		d.UpdatedAt = time.Now()
	}
	m.Drafts[d.Channel] = d
}

func (m *Mock) FlushDrafts() error {
	m.Flushes++
	return nil
}

func (m *Mock) GetDraft(channel string) (*Draft, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	d, ok := m.Drafts[channel]
	if !ok {
		return nil, nil //nolint:nilnil // mirrors Manager
	}
	return &d, nil
}

func (m *Mock) ListDrafts() ([]Draft, error) {
	drafts := make([]Draft, 0, len(m.Drafts))
	for _, d := range m.Drafts {
		drafts = append(drafts, d)
	}
	slices.SortFunc(drafts, func(a, b Draft) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return drafts, nil
}

func (m *Mock) DeleteDraft(channel string) error {
	delete(m.Drafts, channel)
	return nil
}

func (m *Mock) AppendMessage(channel, body string) (Message, error) {
	if m.SaveErr != nil {
		return Message{}, m.SaveErr
	}
	msg := Message{
		ID:      int64(len(m.Messages) + 1),
		Channel: channel,
		Body:    body,
		SentAt:  time.Now(),
	}
	m.Messages = append(m.Messages, msg)
	delete(m.Drafts, channel)
	return msg, nil
}

func (m *Mock) ListMessages(channel string, limit int) ([]Message, error) {
	var out []Message
	for _, msg := range m.Messages {
		if msg.Channel == channel {
			out = append(out, msg)
		}
	}
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (m *Mock) GetSession() (*SessionState, error) {
	return m.Session, nil
}

func (m *Mock) SaveSession(s SessionState) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Session = &s
	return nil
}

func (m *Mock) Close() error {
	if m.Closed {
		return errors.New("already closed")
	}
	m.Closed = true
	return nil
}
