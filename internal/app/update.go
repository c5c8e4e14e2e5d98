package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/drafts/internal/app/handler"
	"github.com/llehouerou/drafts/internal/app/popupctl"
	"github.com/llehouerou/drafts/internal/errmsg"
	"github.com/llehouerou/drafts/internal/keymap"
	"github.com/llehouerou/drafts/internal/ui/action"
	"github.com/llehouerou/drafts/internal/ui/channelpicker"
	"github.com/llehouerou/drafts/internal/ui/composer"
	"github.com/llehouerou/drafts/internal/ui/helpbindings"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.resize()
		return m, nil

	case action.Msg:
		return m.handleAction(msg)

	case tea.KeyMsg:
		_, cmd := handler.Chain(msg, m.handleQuitKey, m.handlePopupKey, m.handleGlobalKey, m.handleComposerKey)
		return m, cmd
	}

	// Anything else belongs to the composer (clipboard reads).
	_, cmd := m.Composer.Update(msg)
	return m, cmd
}

func (m *Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case composer.Changed:
		// Edits queued before a channel switch were already saved.
		if a.Channel == m.Composer.Channel() {
			m.saveDraft()
		}
	case composer.Sent:
		m.send(a.Channel, a.Text)
	case composer.Failed:
		m.setError(a.Op, m.Active, a.Err)
	case channelpicker.Selected:
		m.Popups.Hide(popupctl.Picker)
		m.switchTo(a.Channel)
	case channelpicker.Canceled:
		m.Popups.Hide(popupctl.Picker)
	case helpbindings.Closed:
		m.Popups.Hide(popupctl.Help)
	default:
		m.log.Debug("unhandled action", "source", msg.Source, "type", msg.Action.ActionType())
	}
	return *m, nil
}

// handleQuitKey quits from anywhere, popups included.
func (m *Model) handleQuitKey(msg tea.KeyMsg) handler.Result {
	if m.Keys.Resolve(keymap.ContextGlobal, msg.String()) != keymap.ActionQuit {
		return handler.NotHandled
	}
	m.Shutdown()
	return handler.Handled(tea.Quit)
}

func (m *Model) handlePopupKey(msg tea.KeyMsg) handler.Result {
	handled, cmd := m.Popups.Update(msg)
	if !handled {
		return handler.NotHandled
	}
	return handler.Handled(cmd)
}

func (m *Model) handleGlobalKey(msg tea.KeyMsg) handler.Result {
	switch m.Keys.Resolve(keymap.ContextGlobal, msg.String()) {
	case keymap.ActionNextChannel:
		m.cycle(1)
	case keymap.ActionPrevChannel:
		m.cycle(-1)
	case keymap.ActionPickChannel:
		m.Picker.Open(m.pickerEntries(), m.Active)
		return handler.Handled(m.Popups.Show(popupctl.Picker, m.Picker))
	case keymap.ActionToggleHelp:
		return handler.Handled(m.Popups.Show(popupctl.Help, m.Help))
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

func (m *Model) handleComposerKey(msg tea.KeyMsg) handler.Result {
	_, cmd := m.Composer.Update(msg)
	return handler.Handled(cmd)
}

// Shutdown writes pending drafts and the active channel. It is called on
// quit; the caller still closes the state manager.
func (m *Model) Shutdown() {
	m.saveDraft()
	if err := m.StateMgr.FlushDrafts(); err != nil {
		m.setError(errmsg.OpDraftSave, m.Active, err)
	}
	m.log.Info("shutting down", "channel", m.Active)
}

func (m *Model) resize() {
	m.Popups.SetSize(m.Width, m.Height)
	m.Composer.SetSize(m.Width, m.composerHeight())
}
