package helpbindings

const source = "helpbindings"

// Closed is emitted when the user dismisses the help popup.
type Closed struct{}

// ActionType implements action.Action.
func (Closed) ActionType() string { return "helpbindings.closed" }
