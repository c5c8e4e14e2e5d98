//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionQuit, []string{"ctrl+c"}, "Quit", ContextGlobal},
		{ActionUndo, []string{"ctrl+z"}, "Undo", ContextComposer},
		{ActionSend, []string{"enter"}, "Send", ContextComposer},
		{ActionConfirm, []string{"enter"}, "Confirm", ContextPicker},
	})

	tests := []struct {
		context  string
		key      string
		expected Action
	}{
		{ContextGlobal, "ctrl+c", ActionQuit},
		{ContextComposer, "ctrl+z", ActionUndo},
		{ContextComposer, "enter", ActionSend},
		{ContextPicker, "enter", ActionConfirm},
		{ContextPicker, "ctrl+z", ""},
		{ContextComposer, "ctrl+c", ""},
		{"unknown", "enter", ""},
	}

	for _, tt := range tests {
		t.Run(tt.context+"/"+tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.Resolve(tt.context, tt.key))
		})
	}
}

func TestResolver_ResolveWithGlobal(t *testing.T) {
	r := Default()

	assert.Equal(t, ActionUndo, r.ResolveWithGlobal(ContextComposer, "ctrl+z"))
	assert.Equal(t, ActionQuit, r.ResolveWithGlobal(ContextComposer, "ctrl+c"))
	assert.Equal(t, ActionMoveDown, r.ResolveWithGlobal(ContextPicker, "ctrl+n"), "picker binding wins over global")
	assert.Equal(t, ActionNextChannel, r.ResolveWithGlobal(ContextComposer, "ctrl+n"))
	assert.Equal(t, Action(""), r.ResolveWithGlobal(ContextComposer, "x"))
}

func TestResolver_FirstBindingWins(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionUndo, []string{"ctrl+z"}, "Undo", ContextComposer},
		{ActionRedo, []string{"ctrl+z"}, "Redo", ContextComposer},
	})
	assert.Equal(t, ActionUndo, r.Resolve(ContextComposer, "ctrl+z"))
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionBackspace, []string{"backspace", "ctrl+h"}, "Delete", ContextComposer},
		{ActionBackspace, []string{"backspace"}, "Delete", ContextPicker},
	})

	assert.Equal(t, []string{"backspace", "ctrl+h"}, r.KeysFor(ActionBackspace))
	assert.Nil(t, r.KeysFor(ActionSend))
}
