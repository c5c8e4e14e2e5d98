package state

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	SaveDraft(d Draft)
	FlushDrafts() error
	GetDraft(channel string) (*Draft, error)
	ListDrafts() ([]Draft, error)
	DeleteDraft(channel string) error
	AppendMessage(channel, body string) (Message, error)
	ListMessages(channel string, limit int) ([]Message, error)
	GetSession() (*SessionState, error)
	SaveSession(s SessionState) error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
