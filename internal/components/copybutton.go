package components

import (
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/yank/internal/copystatus"
	"github.com/renato0307/yank/internal/messages"
	"github.com/renato0307/yank/internal/types"
	"github.com/renato0307/yank/internal/ui"
)

// CopyButton binds a copystatus.Controller to the Bubble Tea loop. Status
// changes, including the reset timer firing on its own goroutine, wake the
// program through a types.CopyStatusMsg so the button re-renders.
type CopyButton struct {
	ctrl        *copystatus.Controller
	theme       *ui.Theme
	updates     chan copystatus.Status
	done        chan struct{}
	unsubscribe func()
}

// NewCopyButton mounts a button on ctrl
func NewCopyButton(ctrl *copystatus.Controller, theme *ui.Theme) *CopyButton {
	b := &CopyButton{
		ctrl:    ctrl,
		theme:   theme,
		updates: make(chan copystatus.Status, 1),
		done:    make(chan struct{}),
	}
	b.unsubscribe = ctrl.Subscribe(func(s copystatus.Status) {
		select {
		case b.updates <- s:
		default:
			// A wake-up is already pending; View reads the live status
		}
	})
	return b
}

// Init starts listening for status changes
func (b *CopyButton) Init() tea.Cmd {
	return b.waitForStatus()
}

func (b *CopyButton) waitForStatus() tea.Cmd {
	updates, done := b.updates, b.done
	return func() tea.Msg {
		select {
		case s := <-updates:
			return types.CopyStatusMsg{Status: s}
		case <-done:
			return nil
		}
	}
}

// Update re-arms the listener after each status message
func (b *CopyButton) Update(msg tea.Msg) (*CopyButton, tea.Cmd) {
	if _, ok := msg.(types.CopyStatusMsg); ok {
		return b, b.waitForStatus()
	}
	return b, nil
}

// Copy copies content (or the default content when empty) and returns a
// command reporting the outcome to the status bar
func (b *CopyButton) Copy(content string) tea.Cmd {
	text := content
	if text == "" {
		text = b.ctrl.DefaultContent()
	}

	var failure error
	b.ctrl.Trigger(content, func(err error) {
		failure = err
	})
	if failure != nil {
		return messages.ErrorCmd("Copy failed: %v", failure)
	}
	return messages.SuccessCmd("Copied %q", Preview(text, PreviewLength))
}

// Copied reports the controller status
func (b *CopyButton) Copied() bool {
	return b.ctrl.Copied()
}

// Unmount cancels the reset timer and stops the listener. The button must
// not be used afterwards.
func (b *CopyButton) Unmount() {
	select {
	case <-b.done:
		return
	default:
	}
	b.unsubscribe()
	b.ctrl.Close()
	close(b.done)
}

// View renders the button label
func (b *CopyButton) View() string {
	if b.ctrl.Copied() {
		return b.theme.ButtonCopied.Render("✓ Copied!")
	}
	return b.theme.ButtonIdle.Render("Copy")
}

// Preview flattens text to one line and truncates it to limit runes
func Preview(text string, limit int) string {
	flat := strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(flat) <= limit {
		return flat
	}
	runes := []rune(flat)
	return string(runes[:limit-1]) + "…"
}
