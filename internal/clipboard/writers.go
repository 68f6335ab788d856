package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	atotto "github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
	"github.com/mattn/go-isatty"
)

// System writes to the OS clipboard
type System struct {
	// writeAll is swapped in tests
	writeAll func(string) error
}

// NewSystem creates a System writer backed by github.com/atotto/clipboard
func NewSystem() *System {
	return &System{writeAll: atotto.WriteAll}
}

// Write copies text to the OS clipboard
func (s *System) Write(text string, opts Options) error {
	logWrite("system", text, opts)
	if atotto.Unsupported {
		return wrapFailure("system", errors.New("no clipboard utility available on this platform"))
	}
	if err := s.writeAll(text); err != nil {
		return wrapFailure("system", err)
	}
	return nil
}

// OSC52 writes an OSC52 escape sequence to a terminal. The terminal emulator
// sets the clipboard, which also works over SSH.
type OSC52 struct {
	out   io.Writer
	tmux  bool
	limit int
}

// NewOSC52 creates an OSC52 writer targeting out. Inside tmux the sequence is
// wrapped in a DCS passthrough.
func NewOSC52(out io.Writer) *OSC52 {
	if isNilFile(out) {
		out = nil
	}
	return &OSC52{
		out:  out,
		tmux: os.Getenv("TMUX") != "",
	}
}

// WithLimit caps the payload size in bytes (0 = unlimited)
func (o *OSC52) WithLimit(limit int) *OSC52 {
	o.limit = limit
	return o
}

// Write emits the OSC52 sequence for text
func (o *OSC52) Write(text string, opts Options) error {
	logWrite("osc52", text, opts)
	if o.out == nil {
		return wrapFailure("osc52", errors.New("no terminal output"))
	}
	if o.limit > 0 && len(text) > o.limit {
		return wrapFailure("osc52", fmt.Errorf("payload of %d bytes exceeds limit of %d", len(text), o.limit))
	}

	seq := osc52.New(text)
	if o.tmux {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(o.out); err != nil {
		return wrapFailure("osc52", err)
	}
	return nil
}

// fallback tries each writer in order
type fallback struct {
	writers []Writer
}

// Fallback returns a Writer that tries writers in order and stops at the
// first success. When all fail the joined error is returned.
func Fallback(writers ...Writer) Writer {
	return &fallback{writers: writers}
}

func (f *fallback) Write(text string, opts Options) error {
	if len(f.writers) == 0 {
		return wrapFailure("fallback", errors.New("no writers configured"))
	}

	var errs []error
	for _, w := range f.writers {
		err := w.Write(text, opts)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	return wrapFailure("fallback", errors.Join(errs...))
}

// Terminal serialises writes to a terminal shared by the UI renderer and the
// OSC52 writer, so an escape sequence never lands inside a frame. It keeps the
// file's descriptor visible so the renderer still detects a TTY.
type Terminal struct {
	mu sync.Mutex
	f  *os.File
}

// NewTerminal wraps f
func NewTerminal(f *os.File) *Terminal {
	return &Terminal{f: f}
}

func (t *Terminal) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.f == nil {
		return 0, os.ErrInvalid
	}
	return t.f.Write(p)
}

func (t *Terminal) Read(p []byte) (int, error) {
	if t.f == nil {
		return 0, os.ErrInvalid
	}
	return t.f.Read(p)
}

func (t *Terminal) Close() error {
	if t.f == nil {
		return nil
	}
	return t.f.Close()
}

// Fd returns the wrapped file descriptor
func (t *Terminal) Fd() uintptr {
	if t.f == nil {
		return ^uintptr(0)
	}
	return t.f.Fd()
}

// New builds the Writer for backend. out is the terminal used by OSC52; a
// nil out (or nil *os.File) leaves OSC52 without a target.
func New(backend Backend, out io.Writer) Writer {
	if isNilFile(out) {
		out = nil
	}
	if t, ok := out.(*Terminal); ok && t.f == nil {
		out = nil
	}

	osc := NewOSC52(out)
	switch backend {
	case BackendSystem:
		return NewSystem()
	case BackendOSC52:
		return osc
	default:
		if isTerminal(out) && isRemoteSession() {
			return Fallback(osc, NewSystem())
		}
		if isTerminal(out) {
			return Fallback(NewSystem(), osc)
		}
		return NewSystem()
	}
}

func isNilFile(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && f == nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func isRemoteSession() bool {
	return os.Getenv("SSH_TTY") != "" || os.Getenv("SSH_CONNECTION") != ""
}
