package keymap

// Context names scoping a binding.
const (
	ContextGlobal   = "global"
	ContextComposer = "composer"
	ContextPicker   = "picker"
)

// Binding maps keys to an action within a context.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// All contains all key bindings, used for dispatch and help.
var All = []Binding{
	// Global
	{ActionQuit, []string{"ctrl+c", "ctrl+q"}, "Quit", ContextGlobal},
	{ActionNextChannel, []string{"ctrl+n", "alt+down"}, "Next channel", ContextGlobal},
	{ActionPrevChannel, []string{"ctrl+p", "alt+up"}, "Previous channel", ContextGlobal},
	{ActionPickChannel, []string{"ctrl+k"}, "Jump to channel", ContextGlobal},
	{ActionToggleHelp, []string{"f1"}, "Toggle help", ContextGlobal},

	// Composer
	{ActionUndo, []string{"ctrl+z"}, "Undo", ContextComposer},
	{ActionRedo, []string{"ctrl+y"}, "Redo", ContextComposer},
	{ActionSend, []string{"enter"}, "Send message", ContextComposer},
	{ActionNewline, []string{"alt+enter", "ctrl+j"}, "New line", ContextComposer},
	{ActionPaste, []string{"ctrl+v"}, "Paste", ContextComposer},
	{ActionClear, []string{"ctrl+u"}, "Clear draft", ContextComposer},
	{ActionBackspace, []string{"backspace", "ctrl+h"}, "Delete left", ContextComposer},
	{ActionDelete, []string{"delete", "ctrl+d"}, "Delete right", ContextComposer},
	{ActionDeleteWord, []string{"ctrl+w", "alt+backspace"}, "Delete word", ContextComposer},
	{ActionCaretLeft, []string{"left", "ctrl+b"}, "Caret left", ContextComposer},
	{ActionCaretRight, []string{"right", "ctrl+f"}, "Caret right", ContextComposer},
	{ActionCaretWordLeft, []string{"alt+left", "alt+b"}, "Word left", ContextComposer},
	{ActionCaretWordRight, []string{"alt+right", "alt+f"}, "Word right", ContextComposer},
	{ActionCaretHome, []string{"home", "ctrl+a"}, "Line start", ContextComposer},
	{ActionCaretEnd, []string{"end", "ctrl+e"}, "Line end", ContextComposer},

	// Channel picker
	{ActionMoveUp, []string{"up", "ctrl+p"}, "Move up", ContextPicker},
	{ActionMoveDown, []string{"down", "ctrl+n"}, "Move down", ContextPicker},
	{ActionConfirm, []string{"enter"}, "Switch channel", ContextPicker},
	{ActionCancel, []string{"esc"}, "Cancel", ContextPicker},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
