// Package state persists drafts, their edit history and sent messages.
package state

import (
	"database/sql"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/adrg/xdg"

	dbutil "github.com/llehouerou/drafts/internal/db"
	"github.com/llehouerou/drafts/internal/logging"
)

const (
	appName = "drafts"
	dbFile  = "drafts.db"

	// DefaultSaveDebounce is how long SaveDraft waits for further edits
	// before writing.
	DefaultSaveDebounce = 500 * time.Millisecond
)

// Manager owns the database and batches draft writes.
type Manager struct {
	db       *sql.DB
	log      *slog.Logger
	debounce time.Duration
	now      func() time.Time

	// flushMu serializes flushes so commits land in save order.
	flushMu sync.Mutex

	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   map[string]Draft
	inflight  map[string]Draft // being written by the running flush
	closed    bool
}

// Open opens (creating if needed) the database at path. An empty path
// selects the XDG data directory.
func Open(path string) (*Manager, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	if path != dbutil.Memory {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := dbutil.Open(path)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return newManager(db), nil
}

func newManager(db *sql.DB) *Manager {
	return &Manager{
		db:       db,
		log:      logging.For("state"),
		debounce: DefaultSaveDebounce,
		now:      time.Now,
		pending:  make(map[string]Draft),
	}
}

// DefaultPath returns the database location under the XDG data directory.
func DefaultPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFile))
}

// SetSaveDebounce changes the delay used by SaveDraft.
func (m *Manager) SetSaveDebounce(d time.Duration) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()
	m.debounce = d
}

// DB exposes the underlying database.
func (m *Manager) DB() *sql.DB {
	return m.db
}

// SaveDraft schedules d to be written. Repeated saves for the same channel
// within the debounce window collapse into one write.
func (m *Manager) SaveDraft(d Draft) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	if d.UpdatedAt.IsZero() {
		d.UpdatedAt = m.now()
	}
	m.pending[d.Channel] = d
	m.scheduleFlush()
}

// scheduleFlush (re)starts the debounce timer. saveMu must be held.
func (m *Manager) scheduleFlush() {
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	if m.closed {
		m.saveTimer = nil
		return
	}
	m.saveTimer = time.AfterFunc(m.debounce, func() {
		if err := m.FlushDrafts(); err != nil {
			m.log.Error("flush drafts", "err", err)
		}
	})
}

// FlushDrafts writes all pending drafts immediately. Drafts stay readable
// through GetDraft while they are written, and are queued again when the
// write fails.
func (m *Manager) FlushDrafts() error {
	m.flushMu.Lock()
	defer m.flushMu.Unlock()

	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
		m.saveTimer = nil
	}
	pending := m.pending
	if len(pending) == 0 {
		m.saveMu.Unlock()
		return nil
	}
	m.pending = make(map[string]Draft)
	m.inflight = pending
	m.saveMu.Unlock()

	defer logging.Timed(m.log, "flush drafts", "count", len(pending))()

	channels := slices.Sorted(maps.Keys(pending))
	drafts := make([]Draft, 0, len(channels))
	for _, ch := range channels {
		drafts = append(drafts, pending[ch])
	}
	err := saveDrafts(m.db, drafts)

	m.saveMu.Lock()
	defer m.saveMu.Unlock()
	m.inflight = nil
	if err != nil {
		m.requeue(pending)
		m.scheduleFlush()
	}
	return err
}

// requeue puts drafts back into the pending set. Drafts saved again in the
// meantime are newer and win. saveMu must be held.
func (m *Manager) requeue(drafts map[string]Draft) {
	for ch, d := range drafts {
		if _, newer := m.pending[ch]; !newer {
			m.pending[ch] = d
		}
	}
}

// pendingDraft returns an unflushed draft for channel, if any.
func (m *Manager) pendingDraft(channel string) (Draft, bool) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()
	if d, ok := m.pending[channel]; ok {
		return d, true
	}
	d, ok := m.inflight[channel]
	return d, ok
}

// Close flushes pending drafts and closes the database.
func (m *Manager) Close() error {
	err := m.FlushDrafts()
	m.saveMu.Lock()
	m.closed = true
	if m.saveTimer != nil {
		m.saveTimer.Stop()
		m.saveTimer = nil
	}
	m.saveMu.Unlock()
	if cerr := m.db.Close(); err == nil {
		err = cerr
	}
	return err
}
