package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/renato0307/yank/internal/types"
	"github.com/renato0307/yank/internal/ui"
)

// Picker lists snippets and filters them as the user types. A query
// starting with "!" excludes matching snippets instead.
type Picker struct {
	snippets     []types.Snippet
	filtered     []types.Snippet
	input        textinput.Model
	index        int
	scrollOffset int
	width        int
	theme        *ui.Theme
}

// NewPicker creates a picker over snippets
func NewPicker(snippets []types.Snippet, theme *ui.Theme) *Picker {
	input := textinput.New()
	input.Prompt = "› "
	input.Placeholder = "filter snippets"
	input.Focus()

	p := &Picker{
		snippets: snippets,
		input:    input,
		theme:    theme,
	}
	p.applyFilter()
	return p
}

// Init starts the cursor blink
func (p *Picker) Init() tea.Cmd {
	return textinput.Blink
}

// SetWidth sets the picker width
func (p *Picker) SetWidth(width int) {
	p.width = width
	p.input.Width = width - 4
}

// Query returns the current filter text
func (p *Picker) Query() string {
	return p.input.Value()
}

// SetQuery replaces the filter text
func (p *Picker) SetQuery(q string) {
	p.input.SetValue(q)
	p.applyFilter()
}

// Filtered returns the snippets matching the current query
func (p *Picker) Filtered() []types.Snippet {
	return p.filtered
}

// Total returns the number of snippets
func (p *Picker) Total() int {
	return len(p.snippets)
}

// Selected returns the highlighted snippet, if any
func (p *Picker) Selected() (types.Snippet, bool) {
	if p.index < 0 || p.index >= len(p.filtered) {
		return types.Snippet{}, false
	}
	return p.filtered[p.index], true
}

// MoveUp highlights the previous snippet
func (p *Picker) MoveUp() {
	if p.index > 0 {
		p.index--
	}
	if p.index < p.scrollOffset {
		p.scrollOffset = p.index
	}
}

// MoveDown highlights the next snippet
func (p *Picker) MoveDown() {
	if p.index < len(p.filtered)-1 {
		p.index++
	}
	if p.index >= p.scrollOffset+MaxVisibleSnippets {
		p.scrollOffset = p.index - MaxVisibleSnippets + 1
	}
}

// Update forwards key input to the filter
func (p *Picker) Update(msg tea.Msg) (*Picker, tea.Cmd) {
	before := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if p.input.Value() != before {
		p.applyFilter()
	}
	return p, cmd
}

func (p *Picker) applyFilter() {
	query := p.input.Value()
	p.index = 0
	p.scrollOffset = 0

	if query == "" || query == "!" {
		p.filtered = p.snippets
		return
	}

	searchStrings := make([]string, len(p.snippets))
	for i, s := range p.snippets {
		searchStrings[i] = fmt.Sprintf("%s %s", s.Name, s.Content)
	}

	if strings.HasPrefix(query, "!") {
		matches := fuzzy.Find(strings.TrimPrefix(query, "!"), searchStrings)
		matchSet := make(map[int]bool, len(matches))
		for _, m := range matches {
			matchSet[m.Index] = true
		}
		p.filtered = make([]types.Snippet, 0, len(p.snippets))
		for i, s := range p.snippets {
			if !matchSet[i] {
				p.filtered = append(p.filtered, s)
			}
		}
		return
	}

	matches := fuzzy.Find(query, searchStrings)
	p.filtered = make([]types.Snippet, len(matches))
	for i, m := range matches {
		p.filtered[i] = p.snippets[m.Index]
	}
}

// View renders the filter input and the visible snippets
func (p *Picker) View() string {
	var b strings.Builder
	b.WriteString(p.input.View())
	b.WriteString("\n")

	if len(p.snippets) == 0 {
		return b.String()
	}
	if len(p.filtered) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(p.theme.Muted).PaddingLeft(2).Render("no matches"))
		return b.String()
	}

	end := p.scrollOffset + MaxVisibleSnippets
	if end > len(p.filtered) {
		end = len(p.filtered)
	}
	for i := p.scrollOffset; i < end; i++ {
		line := Preview(p.filtered[i].Title(), PreviewLength)
		if i == p.index {
			b.WriteString(p.theme.Selected.Render("▸ " + line))
		} else {
			b.WriteString(p.theme.Item.Render("  " + line))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
