package app

import (
	"slices"

	"github.com/llehouerou/drafts/internal/edithistory"
	"github.com/llehouerou/drafts/internal/errmsg"
	"github.com/llehouerou/drafts/internal/state"
	"github.com/llehouerou/drafts/internal/ui/channelpicker"
	"github.com/llehouerou/drafts/internal/ui/headerbar"
)

// loadChannel makes channel active and rehydrates its draft, including the
// undo/redo timeline, into the composer.
func (m *Model) loadChannel(channel string) {
	m.Active = channel

	var current edithistory.InputData
	var saved *edithistory.State
	d, err := m.StateMgr.GetDraft(channel)
	if err != nil {
		m.setError(errmsg.OpDraftLoad, channel, err)
		m.loadFailed[channel] = true
	} else {
		delete(m.loadFailed, channel)
	}
	if d != nil {
		current = edithistory.InputData{Message: d.Message, CaretPosition: d.Caret}
		saved = d.History
	}
	if err := m.Composer.Load(channel, current, saved); err != nil {
		m.log.Warn("discarding saved edit history", "channel", channel, "err", err)
		m.setError(errmsg.OpHistoryLoad, channel, err)
	}

	m.reloadTranscript()
	if err := m.StateMgr.SaveSession(state.SessionState{ActiveChannel: channel}); err != nil {
		m.setError(errmsg.OpSessionSave, "", err)
	}
	m.log.Debug("channel loaded", "channel", channel, "draft", d != nil)
}

// saveDraft schedules a write of the composer's draft. A draft with no text
// and nothing to undo or redo is deleted instead, unless the stored draft
// could not be read: that row stays until the user edits the channel.
func (m *Model) saveDraft() {
	data, history := m.Composer.Draft()
	channel := m.Composer.Channel()
	untouched := data.Message == "" && len(history.Stack) == 1

	if untouched && m.loadFailed[channel] {
		return
	}
	delete(m.loadFailed, channel)
	m.HasDraft[channel] = data.Message != ""

	if untouched {
		if err := m.StateMgr.DeleteDraft(channel); err != nil {
			m.setError(errmsg.OpDraftSave, channel, err)
		}
		return
	}
	m.StateMgr.SaveDraft(state.Draft{
		Channel:   channel,
		Message:   data.Message,
		Caret:     data.CaretPosition,
		History:   &history,
		UpdatedAt: m.now(),
	})
}

// switchTo saves the current draft and loads channel.
func (m *Model) switchTo(channel string) {
	if channel == m.Active {
		return
	}
	m.saveDraft()
	m.ErrorMsg = ""
	m.loadChannel(channel)
}

// cycle switches to the channel delta positions away, wrapping around.
func (m *Model) cycle(delta int) {
	n := len(m.Channels)
	if n == 0 {
		return
	}
	i := slices.Index(m.Channels, m.Active)
	m.switchTo(m.Channels[((i+delta)%n+n)%n])
}

// send stores a sent message. On failure the text goes back into the
// composer so nothing is lost.
func (m *Model) send(channel, text string) {
	if _, err := m.StateMgr.AppendMessage(channel, text); err != nil {
		m.setError(errmsg.OpMessageSend, channel, err)
		_ = m.Composer.Load(channel, edithistory.InputData{Message: text, CaretPosition: len([]rune(text))}, nil)
		m.saveDraft()
		return
	}
	m.ErrorMsg = ""
	m.HasDraft[channel] = false
	m.log.Info("message sent", "channel", channel, "chars", len([]rune(text)))
	m.reloadTranscript()
}

func (m *Model) reloadTranscript() {
	msgs, err := m.StateMgr.ListMessages(m.Active, transcriptLimit)
	if err != nil {
		m.setError(errmsg.OpMessageLoad, m.Active, err)
		return
	}
	m.Transcript = msgs
}

// pickerEntries lists every channel with its saved draft, if any.
func (m *Model) pickerEntries() []channelpicker.Entry {
	m.saveDraft()
	drafts, err := m.StateMgr.ListDrafts()
	if err != nil {
		m.setError(errmsg.OpDraftList, "", err)
	}
	byChannel := make(map[string]state.Draft, len(drafts))
	for _, d := range drafts {
		byChannel[d.Channel] = d
	}

	entries := make([]channelpicker.Entry, len(m.Channels))
	for i, ch := range m.Channels {
		entries[i] = channelpicker.Entry{Channel: ch}
		if d, ok := byChannel[ch]; ok {
			entries[i].Draft = d.Message
			entries[i].Edited = d.UpdatedAt
		}
	}
	return entries
}

func (m *Model) tabs() []headerbar.Tab {
	tabs := make([]headerbar.Tab, len(m.Channels))
	for i, ch := range m.Channels {
		tabs[i] = headerbar.Tab{Channel: ch, HasDraft: m.HasDraft[ch]}
	}
	return tabs
}
