// Package edithistory provides a linear undo/redo timeline for an editable
// text value. Rapid successive edits are coalesced into a single undo step
// until a cooldown threshold of edits is reached.
package edithistory

import (
	"errors"
	"fmt"
)

// ErrInvalidState is returned by Restore when a saved State is malformed.
var ErrInvalidState = errors.New("invalid edit history state")

// InputData is one point in the history of a text box.
type InputData struct {
	Message       string `json:"message"`
	CaretPosition int    `json:"caretPosition"`
}

// State is the serializable form of a History.
type State struct {
	Stack                 []InputData `json:"stack"`
	CurrentNumber         int         `json:"currentNumber"`
	CurrentCooldownNumber int         `json:"currentCooldownNumber"`
}

// History is an undo/redo stack of InputData values.
//
// A History is owned by a single text box and is not safe for concurrent use.
type History struct {
	stack                 []InputData
	currentNumber         int
	currentCooldownNumber int
	cooldownNumber        int
}

// New creates a history holding only initial. cooldown is the number of soft
// edits that may be coalesced into one entry before a new entry is started.
func New(initial InputData, cooldown int) *History {
	return &History{
		stack:          []InputData{initial},
		cooldownNumber: max(cooldown, 0),
	}
}

// Record adds data to the history.
//
// A forced record always becomes its own entry. A soft record overwrites the
// newest entry while the cooldown window is open, and starts a new entry once
// it has elapsed. Recording after an undo discards the redo branch.
func (h *History) Record(data InputData, force bool) {
	if h.currentNumber < len(h.stack)-1 {
		h.stack = h.stack[:h.currentNumber+1]
		h.push(data)
		if force {
			h.currentCooldownNumber = h.cooldownNumber
		} else {
			h.currentCooldownNumber = 1
		}
		return
	}

	switch {
	case force:
		h.push(data)
		h.currentCooldownNumber = h.cooldownNumber
	case h.currentCooldownNumber >= h.cooldownNumber || h.currentCooldownNumber == 0:
		h.push(data)
		h.currentCooldownNumber = 1
	default:
		h.stack[h.currentNumber] = data
		h.currentCooldownNumber++
	}
}

func (h *History) push(data InputData) {
	h.stack = append(h.stack, data)
	h.currentNumber++
}

// Undo steps back one entry and returns it. With readOnly set the position
// is left untouched. At the oldest entry it returns that entry unchanged.
func (h *History) Undo(readOnly bool) InputData {
	if h.currentNumber == 0 {
		return h.stack[0]
	}
	if readOnly {
		return h.stack[h.currentNumber-1]
	}
	h.currentNumber--
	return h.stack[h.currentNumber]
}

// Redo steps forward one entry and returns it. With readOnly set the position
// is left untouched. At the newest entry it returns that entry unchanged.
func (h *History) Redo(readOnly bool) InputData {
	if h.currentNumber >= len(h.stack)-1 {
		return h.stack[h.currentNumber]
	}
	if readOnly {
		return h.stack[h.currentNumber+1]
	}
	h.currentNumber++
	return h.stack[h.currentNumber]
}

// Current returns the entry at the current position.
func (h *History) Current() InputData {
	return h.stack[h.currentNumber]
}

// SetCurrent replaces the entry at the current position without going
// through coalescing, and returns it.
func (h *History) SetCurrent(data InputData) InputData {
	h.stack[h.currentNumber] = data
	return data
}

// Reset drops all entries. The history restarts from initial, or from an
// empty value when none is given.
func (h *History) Reset(initial ...InputData) {
	var first InputData
	if len(initial) > 0 {
		first = initial[0]
	}
	h.stack = []InputData{first}
	h.currentNumber = 0
	h.currentCooldownNumber = 0
}

// Save returns a copy of the history suitable for persisting.
func (h *History) Save() State {
	stack := make([]InputData, len(h.stack))
	copy(stack, h.stack)
	return State{
		Stack:                 stack,
		CurrentNumber:         h.currentNumber,
		CurrentCooldownNumber: h.currentCooldownNumber,
	}
}

// Restore replaces the history with a previously saved State. The cooldown
// threshold is kept. A malformed state leaves the history unchanged.
func (h *History) Restore(s State) error {
	if err := s.Validate(); err != nil {
		return err
	}
	stack := make([]InputData, len(s.Stack))
	copy(stack, s.Stack)
	h.stack = stack
	h.currentNumber = s.CurrentNumber
	h.currentCooldownNumber = s.CurrentCooldownNumber
	return nil
}

// Validate reports whether s could have been produced by Save.
func (s State) Validate() error {
	if len(s.Stack) == 0 {
		return fmt.Errorf("%w: empty stack", ErrInvalidState)
	}
	if s.CurrentNumber < 0 || s.CurrentNumber >= len(s.Stack) {
		return fmt.Errorf("%w: position %d outside stack of %d", ErrInvalidState, s.CurrentNumber, len(s.Stack))
	}
	if s.CurrentCooldownNumber < 0 {
		return fmt.Errorf("%w: negative cooldown %d", ErrInvalidState, s.CurrentCooldownNumber)
	}
	return nil
}

// CanUndo reports whether Undo would move.
func (h *History) CanUndo() bool { return h.currentNumber > 0 }

// CanRedo reports whether Redo would move.
func (h *History) CanRedo() bool { return h.currentNumber < len(h.stack)-1 }

// Len returns the number of entries.
func (h *History) Len() int { return len(h.stack) }

// Position returns the index of the current entry.
func (h *History) Position() int { return h.currentNumber }

// CooldownThreshold returns the threshold the history was created with.
func (h *History) CooldownThreshold() int { return h.cooldownNumber }
