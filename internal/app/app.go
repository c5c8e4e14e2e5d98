// Package app is the root Bubble Tea model: channel tabs, the transcript of
// sent messages and the composer holding each channel's draft.
package app

import (
	"log/slog"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/drafts/internal/app/popupctl"
	"github.com/llehouerou/drafts/internal/config"
	"github.com/llehouerou/drafts/internal/errmsg"
	"github.com/llehouerou/drafts/internal/keymap"
	"github.com/llehouerou/drafts/internal/logging"
	"github.com/llehouerou/drafts/internal/state"
	"github.com/llehouerou/drafts/internal/ui/channelpicker"
	"github.com/llehouerou/drafts/internal/ui/composer"
	"github.com/llehouerou/drafts/internal/ui/helpbindings"
)

// transcriptLimit is how many sent messages are kept on screen.
const transcriptLimit = 200

// Model is the root application model.
type Model struct {
	StateMgr state.Interface
	Keys     *keymap.Resolver

	Channels   []string
	Active     string
	Composer   *composer.Model
	Picker     *channelpicker.Model
	Help       *helpbindings.Model
	Popups     *popupctl.Manager
	Transcript []state.Message
	HasDraft   map[string]bool
	ErrorMsg   string

	Width  int
	Height int

	// loadFailed marks channels whose stored draft could not be read.
	loadFailed map[string]bool

	log *slog.Logger
	now func() time.Time
}

// New creates the application model and loads the draft of the starting
// channel: the one active when the program last exited, or the configured
// default.
func New(cfg *config.Config, stateMgr state.Interface) Model {
	keys := keymap.Default()
	comp := composer.New(keys, cfg.GetHistoryConfig().Cooldown)
	picker := channelpicker.New(keys)
	help := helpbindings.New()

	m := Model{
		StateMgr: stateMgr,
		Keys:     keys,
		Channels: cfg.ChannelList(),
		Composer: &comp,
		Picker:   &picker,
		Help:     &help,
		Popups:   popupctl.New(),
		HasDraft: make(map[string]bool),

		loadFailed: make(map[string]bool),
		log:        logging.For("app"),
		now:        time.Now,
	}
	m.Composer.SetFocused(true)

	// Channels removed from the config keep their drafts reachable.
	drafts, err := stateMgr.ListDrafts()
	if err != nil {
		m.setError(errmsg.OpDraftList, "", err)
	}
	for _, d := range drafts {
		if !slices.Contains(m.Channels, d.Channel) {
			m.Channels = append(m.Channels, d.Channel)
		}
		m.HasDraft[d.Channel] = d.Message != ""
	}

	start := cfg.StartChannel()
	session, err := stateMgr.GetSession()
	switch {
	case err != nil:
		m.setError(errmsg.OpSessionLoad, "", err)
	case session != nil && slices.Contains(m.Channels, session.ActiveChannel):
		start = session.ActiveChannel
	}
	m.loadChannel(start)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// setError shows a formatted error in the status line and logs it.
func (m *Model) setError(op errmsg.Op, channel string, err error) {
	m.ErrorMsg = errmsg.FormatWith(op, channel, err)
	m.log.Error("operation failed", "op", string(op), "channel", channel, "err", err)
}
