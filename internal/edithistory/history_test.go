package edithistory

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func in(msg string) InputData {
	return InputData{Message: msg, CaretPosition: len([]rune(msg))}
}

// assertInvariants checks that the stack is never empty and the position
// always points into it.
func assertInvariants(t *testing.T, h *History) {
	t.Helper()
	require.NotEmpty(t, h.stack)
	assert.GreaterOrEqual(t, h.currentNumber, 0)
	assert.LessOrEqual(t, h.currentNumber, len(h.stack)-1)
}

func TestNew(t *testing.T) {
	h := New(in("hi"), 2)

	assert.Equal(t, []InputData{in("hi")}, h.stack)
	assert.Equal(t, 0, h.currentNumber)
	assert.Equal(t, 0, h.currentCooldownNumber)
	assert.Equal(t, 2, h.CooldownThreshold())
}

func TestNew_NegativeCooldownClamped(t *testing.T) {
	h := New(InputData{}, -4)
	assert.Equal(t, 0, h.CooldownThreshold())
}

func TestWalkthrough(t *testing.T) {
	h := New(InputData{Message: "", CaretPosition: 0}, 2)

	h.Record(InputData{Message: "a", CaretPosition: 1}, false)
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, 1, h.currentNumber)
	assert.Equal(t, 1, h.currentCooldownNumber)

	h.Record(InputData{Message: "ab", CaretPosition: 2}, false)
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, InputData{Message: "ab", CaretPosition: 2}, h.stack[1])
	assert.Equal(t, 2, h.currentCooldownNumber)

	h.Record(InputData{Message: "abc", CaretPosition: 3}, false)
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, 2, h.currentNumber)
	assert.Equal(t, 1, h.currentCooldownNumber)

	assert.Equal(t, InputData{Message: "ab", CaretPosition: 2}, h.Undo(false))
	assert.Equal(t, 1, h.currentNumber)

	assert.Equal(t, InputData{Message: "", CaretPosition: 0}, h.Undo(false))
	assert.Equal(t, 0, h.currentNumber)

	assert.Equal(t, InputData{Message: "", CaretPosition: 0}, h.Undo(false))
	assert.Equal(t, 0, h.currentNumber)
}

func TestRecord_Coalescing(t *testing.T) {
	h := New(InputData{}, 3)

	h.Record(in("a"), false)
	h.Record(in("ab"), false)
	h.Record(in("abc"), false)
	assert.Equal(t, 2, h.Len(), "three soft records should share one entry")
	assert.Equal(t, in("abc"), h.Current())

	h.Record(in("abcd"), false)
	assert.Equal(t, 3, h.Len(), "fourth soft record should start a new entry")
	assert.Equal(t, 1, h.currentCooldownNumber)
}

func TestRecord_ZeroCooldownNeverCoalesces(t *testing.T) {
	h := New(InputData{}, 0)

	for _, s := range []string{"a", "ab", "abc"} {
		h.Record(in(s), false)
	}
	assert.Equal(t, 4, h.Len())
}

func TestRecord_ForcedAlwaysAppends(t *testing.T) {
	tests := []struct {
		name     string
		cooldown int
		soft     int
	}{
		{name: "fresh history", cooldown: 3, soft: 0},
		{name: "inside cooldown window", cooldown: 5, soft: 2},
		{name: "cooldown exhausted", cooldown: 2, soft: 3},
		{name: "zero cooldown", cooldown: 0, soft: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(InputData{}, tt.cooldown)
			for i := range tt.soft {
				h.Record(InputData{Message: string(rune('a' + i))}, false)
			}
			before := h.Len()

			h.Record(in("pasted"), true)

			assert.Equal(t, before+1, h.Len())
			assert.Equal(t, in("pasted"), h.Current())
			assert.Equal(t, tt.cooldown, h.currentCooldownNumber)
		})
	}
}

func TestRecord_SoftAfterForcedStartsNewEntry(t *testing.T) {
	h := New(InputData{}, 3)

	h.Record(in("pasted"), true)
	h.Record(in("pasted!"), false)

	assert.Equal(t, 3, h.Len())
	assert.Equal(t, in("pasted"), h.stack[1])
	assert.Equal(t, in("pasted!"), h.stack[2])
	assert.Equal(t, 1, h.currentCooldownNumber)
}

func TestRecord_DiscardsRedoBranch(t *testing.T) {
	h := New(InputData{}, 0)
	for _, s := range []string{"a", "b", "c", "d"} {
		h.Record(in(s), false)
	}
	require.Equal(t, 5, h.Len())

	h.Undo(false)
	h.Undo(false)
	h.Undo(false)
	require.Equal(t, 1, h.currentNumber)

	h.Record(in("x"), false)

	assert.Equal(t, []InputData{{}, in("a"), in("x")}, h.stack)
	assert.Equal(t, 2, h.currentNumber)
	assert.Equal(t, 1, h.currentCooldownNumber)
	assert.False(t, h.CanRedo())
}

func TestRecord_ForcedAfterUndo(t *testing.T) {
	h := New(InputData{}, 4)
	h.Record(in("a"), true)
	h.Record(in("b"), true)
	h.Undo(false)

	h.Record(in("z"), true)

	assert.Equal(t, []InputData{{}, in("a"), in("z")}, h.stack)
	assert.Equal(t, 4, h.currentCooldownNumber)
}

func TestUndoRedo_Inverse(t *testing.T) {
	h := New(InputData{}, 0)
	h.Record(in("a"), false)
	h.Record(in("ab"), false)
	h.Record(in("abc"), false)
	h.Undo(false)

	pos := h.currentNumber
	cur := h.Current()

	h.Undo(false)
	got := h.Redo(false)

	assert.Equal(t, pos, h.currentNumber)
	assert.Equal(t, cur, got)
}

func TestUndoRedo_ReadOnly(t *testing.T) {
	h := New(InputData{}, 0)
	h.Record(in("a"), false)
	h.Record(in("ab"), false)
	h.Undo(false)

	assert.Equal(t, InputData{}, h.Undo(true))
	assert.Equal(t, in("ab"), h.Redo(true))
	assert.Equal(t, 1, h.currentNumber, "peeking must not move")
}

func TestUndoRedo_Boundaries(t *testing.T) {
	h := New(in("start"), 0)
	h.Record(in("end"), false)
	h.Undo(false)

	stack := append([]InputData(nil), h.stack...)
	assert.Equal(t, in("start"), h.Undo(false))
	assert.Equal(t, in("start"), h.Undo(true))
	assert.Equal(t, 0, h.currentNumber)
	assert.Equal(t, stack, h.stack)

	h.Redo(false)
	assert.Equal(t, in("end"), h.Redo(false))
	assert.Equal(t, in("end"), h.Redo(true))
	assert.Equal(t, 1, h.currentNumber)
	assert.Equal(t, stack, h.stack)
}

func TestCanUndoRedo(t *testing.T) {
	h := New(InputData{}, 0)
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())

	h.Record(in("a"), false)
	assert.True(t, h.CanUndo())
	assert.False(t, h.CanRedo())

	h.Undo(false)
	assert.False(t, h.CanUndo())
	assert.True(t, h.CanRedo())
}

func TestSetCurrent(t *testing.T) {
	h := New(InputData{}, 3)
	h.Record(in("abc"), false)

	moved := InputData{Message: "abc", CaretPosition: 1}
	assert.Equal(t, moved, h.SetCurrent(moved))
	assert.Equal(t, moved, h.Current())
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, 1, h.currentNumber)
	assert.Equal(t, 1, h.currentCooldownNumber)
}

func TestReset(t *testing.T) {
	h := New(InputData{}, 2)
	h.Record(in("a"), false)
	h.Record(in("b"), true)
	h.Undo(false)

	h.Reset(in("fresh"))
	assert.Equal(t, []InputData{in("fresh")}, h.stack)
	assert.Equal(t, 0, h.currentNumber)
	assert.Equal(t, 0, h.currentCooldownNumber)
	assert.Equal(t, 2, h.CooldownThreshold())

	h.Reset()
	assert.Equal(t, []InputData{{}}, h.stack)
}

func TestSaveRestore_RoundTrip(t *testing.T) {
	h := New(InputData{}, 3)
	h.Record(in("a"), false)
	h.Record(in("ab"), false)
	h.Record(in("ab cd"), true)
	h.Record(in("ab cde"), false)
	h.Undo(false)

	saved := h.Save()

	restored := New(InputData{}, 3)
	require.NoError(t, restored.Restore(saved))

	assert.Equal(t, h.stack, restored.stack)
	assert.Equal(t, h.currentNumber, restored.currentNumber)
	assert.Equal(t, h.currentCooldownNumber, restored.currentCooldownNumber)
}

func TestSave_IsACopy(t *testing.T) {
	h := New(InputData{}, 3)
	h.Record(in("a"), false)
	saved := h.Save()

	h.Record(in("ab"), false)

	assert.Equal(t, in("a"), saved.Stack[1])
}

func TestState_JSON(t *testing.T) {
	h := New(InputData{}, 2)
	h.Record(InputData{Message: "hé", CaretPosition: 2}, false)

	data, err := json.Marshal(h.Save())
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"stack":[{"message":"","caretPosition":0},{"message":"hé","caretPosition":2}],"currentNumber":1,"currentCooldownNumber":1}`,
		string(data))

	var s State
	require.NoError(t, json.Unmarshal(data, &s))
	assert.Equal(t, h.Save(), s)
}

func TestRestore_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		state State
	}{
		{name: "empty stack", state: State{}},
		{name: "position past end", state: State{Stack: []InputData{{}}, CurrentNumber: 1}},
		{name: "negative position", state: State{Stack: []InputData{{}}, CurrentNumber: -1}},
		{name: "negative cooldown", state: State{Stack: []InputData{{}}, CurrentCooldownNumber: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(in("keep"), 2)
			h.Record(in("keep me"), false)
			before := h.Save()

			err := h.Restore(tt.state)

			require.ErrorIs(t, err, ErrInvalidState)
			assert.Equal(t, before, h.Save())
		})
	}
}

// TestInvariants_RandomOps runs a deterministic mix of operations and checks
// the stack and position invariants after each one.
func TestInvariants_RandomOps(t *testing.T) {
	h := New(InputData{}, 3)
	ops := "rrRuuurRuRrruuuuuRRRRxrrsrruR"
	text := ""

	for i, op := range ops {
		switch op {
		case 'r':
			text += string(rune('a' + i%26))
			h.Record(in(text), false)
		case 'R':
			text += "!"
			h.Record(in(text), true)
		case 'u':
			h.Undo(false)
		case 'x':
			h.Reset(in(text))
		case 's':
			require.NoError(t, h.Restore(h.Save()))
		}
		assertInvariants(t, h)
	}
}
