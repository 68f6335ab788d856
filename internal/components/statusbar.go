package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/yank/internal/types"
	"github.com/renato0307/yank/internal/ui"
)

// StatusBar displays the latest status message (success, errors, info)
type StatusBar struct {
	message     string
	messageType types.MessageType
	seq         int
	width       int
	theme       *ui.Theme
}

// NewStatusBar creates a new status bar
func NewStatusBar(theme *ui.Theme) *StatusBar {
	return &StatusBar{
		theme: theme,
	}
}

// SetMessage shows msg and returns its sequence number. Pass the number to
// Clear so a stale clear does not remove a newer message.
func (sb *StatusBar) SetMessage(msg string, msgType types.MessageType) int {
	sb.seq++
	sb.message = msg
	sb.messageType = msgType
	return sb.seq
}

// Clear removes the message if seq is still the current one
func (sb *StatusBar) Clear(seq int) {
	if seq != sb.seq {
		return
	}
	sb.message = ""
	sb.messageType = types.MessageTypeInfo
}

// Message returns the current message and type
func (sb *StatusBar) Message() (string, types.MessageType) {
	return sb.message, sb.messageType
}

// SetWidth sets the status bar width
func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
}

// View renders the status bar. An empty bar still takes one line.
func (sb *StatusBar) View() string {
	if sb.message == "" {
		return lipgloss.NewStyle().Width(sb.width).Render("")
	}
	return ui.RenderMessage(sb.message, sb.messageType, sb.theme, sb.width)
}
