package testutil

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TestProgram wraps a Bubble Tea program for end-to-end tests
type TestProgram struct {
	program *tea.Program
	output  *syncBuffer
	done    chan struct{}
	t       *testing.T
}

// syncBuffer is a bytes.Buffer safe for the renderer and the test to share
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// NewTestProgram starts model in the background with controlled I/O
func NewTestProgram(t *testing.T, model tea.Model, width, height int) *TestProgram {
	t.Helper()

	output := &syncBuffer{}
	p := tea.NewProgram(
		model,
		tea.WithInput(nil), // keys are injected with Send
		tea.WithOutput(output),
	)

	tp := &TestProgram{
		program: p,
		output:  output,
		done:    make(chan struct{}),
		t:       t,
	}

	go func() {
		defer close(tp.done)
		if _, err := p.Run(); err != nil {
			t.Logf("Program error: %v", err)
		}
	}()

	// Give the program time to start
	time.Sleep(50 * time.Millisecond)
	tp.Send(tea.WindowSizeMsg{Width: width, Height: height})

	t.Cleanup(tp.Quit)
	return tp
}

// Send sends a message to the program
func (tp *TestProgram) Send(msg tea.Msg) {
	tp.program.Send(msg)
	time.Sleep(50 * time.Millisecond)
}

// Type simulates typing a string
func (tp *TestProgram) Type(s string) {
	for _, r := range s {
		tp.Send(tea.KeyMsg{
			Type:  tea.KeyRunes,
			Runes: []rune{r},
		})
	}
}

// SendKey sends a specific key press
func (tp *TestProgram) SendKey(key tea.KeyType) {
	tp.Send(tea.KeyMsg{Type: key})
}

// Output returns everything rendered so far
func (tp *TestProgram) Output() string {
	return tp.output.String()
}

// WaitForOutput waits for needle to appear in the output
func (tp *TestProgram) WaitForOutput(needle string, timeout time.Duration) bool {
	tp.t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(tp.Output(), needle) {
			return true
		}
		time.Sleep(20 * time.Millisecond)
	}
	return false
}

// WaitForOutputAfter waits for needle to appear after the first len(mark)
// bytes of output, so earlier frames do not satisfy the wait
func (tp *TestProgram) WaitForOutputAfter(mark int, needle string, timeout time.Duration) bool {
	tp.t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		out := tp.Output()
		if len(out) > mark && strings.Contains(out[mark:], needle) {
			return true
		}
		time.Sleep(20 * time.Millisecond)
	}
	return false
}

// Quit stops the program and waits for it to exit
func (tp *TestProgram) Quit() {
	tp.program.Quit()
	select {
	case <-tp.done:
	case <-time.After(2 * time.Second):
		tp.t.Log("program did not exit in time")
	}
}

// Done is closed when the program exits
func (tp *TestProgram) Done() <-chan struct{} {
	return tp.done
}
