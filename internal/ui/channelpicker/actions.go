package channelpicker

const source = "channelpicker"

// Selected is emitted when the user confirms a channel.
type Selected struct {
	Channel string
}

// ActionType implements action.Action.
func (Selected) ActionType() string { return "channelpicker.selected" }

// Canceled is emitted when the picker is dismissed.
type Canceled struct{}

// ActionType implements action.Action.
func (Canceled) ActionType() string { return "channelpicker.canceled" }
