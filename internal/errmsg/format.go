// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Draft operations
	OpDraftLoad    Op = "load draft"
	OpDraftSave    Op = "save draft"
	OpDraftList    Op = "list drafts"
	OpHistoryLoad  Op = "restore edit history"
	OpMessageSend  Op = "send message"
	OpMessageLoad  Op = "load messages"
	OpSessionSave  Op = "save session"
	OpSessionLoad  Op = "load session"
	OpClipboardGet Op = "read clipboard"

	// Initialization
	OpConfigLoad Op = "load configuration"
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message naming the object the operation was
// applied to, e.g. a channel.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
