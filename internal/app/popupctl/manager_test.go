package popupctl

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/drafts/internal/ui"
)

type fakePopup struct {
	ui.Base
	view string
	got  []tea.Msg
}

func (f *fakePopup) Init() tea.Cmd { return nil }

func (f *fakePopup) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	f.got = append(f.got, msg)
	return f, nil
}

func (f *fakePopup) View() string { return f.view }

func TestShowHide(t *testing.T) {
	p := New()
	p.SetSize(20, 5)
	assert.Equal(t, None, p.Active())

	pop := &fakePopup{view: "x"}
	p.Show(Picker, pop)

	assert.True(t, p.IsVisible(Picker))
	assert.Equal(t, Picker, p.Active())
	assert.Equal(t, 20, pop.Width())
	assert.Equal(t, 5, pop.Height())

	p.Hide(Picker)
	assert.Equal(t, None, p.Active())
}

func TestActive_Priority(t *testing.T) {
	p := New()
	p.Show(Picker, &fakePopup{})
	p.Show(Help, &fakePopup{})

	assert.Equal(t, Help, p.Active())

	p.Hide(Help)
	assert.Equal(t, Picker, p.Active())
}

func TestUpdate_RoutesToActive(t *testing.T) {
	p := New()
	picker := &fakePopup{}
	help := &fakePopup{}
	p.Show(Picker, picker)
	p.Show(Help, help)

	handled, _ := p.Update(tea.KeyMsg{Type: tea.KeyDown})

	require.True(t, handled)
	assert.Len(t, help.got, 1)
	assert.Empty(t, picker.got)
}

func TestUpdate_NoPopup(t *testing.T) {
	handled, cmd := New().Update(tea.KeyMsg{Type: tea.KeyDown})

	assert.False(t, handled)
	assert.Nil(t, cmd)
}

func TestRender(t *testing.T) {
	p := New()
	p.SetSize(6, 3)
	base := "......\n......\n......"

	assert.Equal(t, base, p.Render(base))

	p.Show(Picker, &fakePopup{view: "##"})
	assert.Equal(t, "......\n..##..\n......", p.Render(base))
}

func TestSetSize_ResizesOpenPopups(t *testing.T) {
	p := New()
	pop := &fakePopup{}
	p.Show(Help, pop)

	p.SetSize(40, 10)

	assert.Equal(t, 40, pop.Width())
}
