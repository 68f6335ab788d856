package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/yank/internal/ui"
)

// Header shows the app name and the snippet count
type Header struct {
	appName string
	count   int
	total   int
	width   int
	theme   *ui.Theme
}

func NewHeader(appName string, theme *ui.Theme) *Header {
	return &Header{
		appName: appName,
		theme:   theme,
	}
}

func (h *Header) SetCounts(count, total int) {
	h.count = count
	h.total = total
}

func (h *Header) SetWidth(width int) {
	h.width = width
}

func (h *Header) View() string {
	title := h.theme.AppTitle.Render(h.appName)

	countStyle := lipgloss.NewStyle().Foreground(h.theme.Muted)
	noun := "snippets"
	if h.total == 1 {
		noun = "snippet"
	}
	var count string
	if h.count == h.total {
		count = countStyle.Render(fmt.Sprintf("%d %s", h.total, noun))
	} else {
		count = countStyle.Render(fmt.Sprintf("%d of %d %s", h.count, h.total, noun))
	}

	gap := h.width - lipgloss.Width(title) - lipgloss.Width(count)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + count
}
