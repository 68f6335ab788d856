package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/yank/internal/types"
)

// RenderMessage renders a status message coloured by type.
// Long messages are truncated to fit the terminal width.
func RenderMessage(text string, msgType types.MessageType, theme *Theme, width int) string {
	if text == "" {
		return ""
	}

	// prefix (2) + margin (5)
	maxLen := width - 7
	if maxLen < 20 {
		maxLen = 20
	}
	runes := []rune(text)
	if len(runes) > maxLen {
		text = string(runes[:maxLen-1]) + "…"
	}

	var color lipgloss.AdaptiveColor
	prefix := "⏺ "
	switch msgType {
	case types.MessageTypeSuccess:
		color = theme.Success
		prefix = "✓ "
	case types.MessageTypeError:
		color = theme.Error
		prefix = "✗ "
	default:
		color = theme.Primary
	}

	return lipgloss.NewStyle().Foreground(color).Render(prefix + text)
}
