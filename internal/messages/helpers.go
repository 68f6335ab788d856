package messages

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/yank/internal/types"
)

// ErrorCmd returns a tea.Cmd that produces an error status message.
//
// Example:
//
//	return messages.ErrorCmd("Copy failed: %v", err)
func ErrorCmd(format string, args ...any) tea.Cmd {
	msg := fmt.Sprintf(format, args...)
	return func() tea.Msg {
		return types.ErrorStatusMsg(msg)
	}
}

// SuccessCmd returns a tea.Cmd that produces a success status message
func SuccessCmd(format string, args ...any) tea.Cmd {
	msg := fmt.Sprintf(format, args...)
	return func() tea.Msg {
		return types.SuccessMsg(msg)
	}
}

// InfoCmd returns a tea.Cmd that produces an info status message
func InfoCmd(format string, args ...any) tea.Cmd {
	msg := fmt.Sprintf(format, args...)
	return func() tea.Msg {
		return types.InfoMsg(msg)
	}
}

// WrapError wraps err with context, preserving the chain for errors.Is.
//
// Example:
//
//	data, err := os.ReadFile(path)
//	if err != nil {
//	    return nil, messages.WrapError(err, "failed to read config %s", path)
//	}
func WrapError(err error, format string, args ...any) error {
	context := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", context, err)
}
