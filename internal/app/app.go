package app

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/yank/internal/components"
	"github.com/renato0307/yank/internal/copystatus"
	"github.com/renato0307/yank/internal/keyboard"
	"github.com/renato0307/yank/internal/logging"
	"github.com/renato0307/yank/internal/types"
	"github.com/renato0307/yank/internal/ui"
)

// AppContext holds app-wide configuration and dependencies
type AppContext struct {
	Theme      *ui.Theme
	Keys       *keyboard.Keys
	Controller *copystatus.Controller
	Snippets   []types.Snippet
}

// NewAppContext creates a new application context
func NewAppContext(theme *ui.Theme, ctrl *copystatus.Controller, snippets []types.Snippet) *AppContext {
	return &AppContext{
		Theme:      theme,
		Keys:       keyboard.Default(),
		Controller: ctrl,
		Snippets:   snippets,
	}
}

// Model is the root Bubble Tea model
type Model struct {
	ctx       *AppContext
	header    *components.Header
	picker    *components.Picker
	button    *components.CopyButton
	statusBar *components.StatusBar
	help      help.Model
	width     int
	height    int
	quitting  bool
}

// NewModel mounts the copy button on ctx.Controller. Call Unmount (or quit
// the program) to release it.
func NewModel(ctx *AppContext) *Model {
	h := help.New()
	h.Styles.ShortKey = ctx.Theme.Help.Bold(true)
	h.Styles.ShortDesc = ctx.Theme.Help
	h.Styles.ShortSeparator = ctx.Theme.Help

	m := &Model{
		ctx:       ctx,
		header:    components.NewHeader("yank", ctx.Theme),
		picker:    components.NewPicker(ctx.Snippets, ctx.Theme),
		button:    components.NewCopyButton(ctx.Controller, ctx.Theme),
		statusBar: components.NewStatusBar(ctx.Theme),
		help:      h,
	}
	m.setSize(80, 24)
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.button.Init(), m.picker.Init())
}

func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height
	m.header.SetWidth(width)
	m.picker.SetWidth(width)
	m.statusBar.SetWidth(width)
	m.help.Width = width
}

// Unmount releases the copy button and its reset timer
func (m *Model) Unmount() {
	m.button.Unmount()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case types.CopyStatusMsg:
		logging.Debug("copy status changed", "status", msg.Status.String())
		var cmd tea.Cmd
		m.button, cmd = m.button.Update(msg)
		return m, cmd

	case types.StatusMsg:
		seq := m.statusBar.SetMessage(msg.Message, msg.Type)
		return m, tea.Tick(components.StatusBarDisplayDuration, func(time.Time) tea.Msg {
			return types.ClearStatusMsg{Seq: seq}
		})

	case types.ClearStatusMsg:
		m.statusBar.Clear(msg.Seq)
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.ctx.Keys
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		m.Unmount()
		return m, tea.Quit

	case key.Matches(msg, keys.Copy):
		return m, m.button.Copy(m.selectedContent())

	case key.Matches(msg, keys.CopyDefault):
		return m, m.button.Copy("")

	case key.Matches(msg, keys.Up):
		m.picker.MoveUp()
		return m, nil

	case key.Matches(msg, keys.Down):
		m.picker.MoveDown()
		return m, nil

	case key.Matches(msg, keys.ClearFilter):
		m.picker.SetQuery("")
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

// selectedContent returns the highlighted snippet, or "" for the default
func (m *Model) selectedContent() string {
	if s, ok := m.picker.Selected(); ok {
		return s.Content
	}
	return ""
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	m.header.SetCounts(len(m.picker.Filtered()), m.picker.Total())

	target := m.selectedContent()
	if target == "" {
		target = m.ctx.Controller.DefaultContent()
	}
	preview := lipgloss.NewStyle().
		Foreground(m.ctx.Theme.Muted).
		Render(components.Preview(target, components.PreviewLength))

	sections := []string{
		m.header.View(),
		"",
		m.picker.View(),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, m.button.View(), " ", preview),
		"",
		m.statusBar.View(),
		m.help.View(m.ctx.Keys),
	}
	return strings.Join(sections, "\n")
}
