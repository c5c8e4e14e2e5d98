// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionNextChannel Action = "next_channel"
	ActionPrevChannel Action = "prev_channel"
	ActionPickChannel Action = "pick_channel"
	ActionToggleHelp  Action = "toggle_help"

	// Composer editing
	ActionUndo       Action = "undo"
	ActionRedo       Action = "redo"
	ActionSend       Action = "send"
	ActionPaste      Action = "paste"
	ActionClear      Action = "clear"
	ActionBackspace  Action = "backspace"
	ActionDelete     Action = "delete"
	ActionDeleteWord Action = "delete_word"
	ActionNewline    Action = "newline"

	// Caret movement
	ActionCaretLeft      Action = "caret_left"
	ActionCaretRight     Action = "caret_right"
	ActionCaretWordLeft  Action = "caret_word_left"
	ActionCaretWordRight Action = "caret_word_right"
	ActionCaretHome      Action = "caret_home"
	ActionCaretEnd       Action = "caret_end"

	// Channel picker
	ActionMoveUp   Action = "move_up"
	ActionMoveDown Action = "move_down"
	ActionConfirm  Action = "confirm"
	ActionCancel   Action = "cancel"
)
