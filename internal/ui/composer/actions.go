package composer

import (
	"github.com/llehouerou/drafts/internal/errmsg"
)

const source = "composer"

// Sent is emitted when the user sends a non-blank draft.
type Sent struct {
	Channel string
	Text    string
}

// ActionType implements action.Action.
func (Sent) ActionType() string { return "composer.sent" }

// Changed is emitted after any edit, undo, redo or caret move.
type Changed struct {
	Channel string
}

// ActionType implements action.Action.
func (Changed) ActionType() string { return "composer.changed" }

// Failed reports an error the composer could not handle itself.
type Failed struct {
	Op  errmsg.Op
	Err error
}

// ActionType implements action.Action.
func (Failed) ActionType() string { return "composer.failed" }

// pasteMsg carries clipboard text read asynchronously for channel.
type pasteMsg struct {
	channel string
	text    string
}
