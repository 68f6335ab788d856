// Package clipboard provides the clipboard writers used by yank. A Writer
// accepts a string and either succeeds or returns an error wrapping
// ErrWriteFailed.
package clipboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/renato0307/yank/internal/logging"
)

// Supported MIME type hints
const (
	MimeTypePlain = "text/plain"
	MimeTypeHTML  = "text/html"
)

// ErrWriteFailed is returned (wrapped) by every Writer when the text could
// not be placed on the clipboard.
var ErrWriteFailed = errors.New("clipboard write failed")

// Options are hints forwarded to the writer with every copy
type Options struct {
	// MimeType is the format the text should be copied as (empty = text/plain)
	MimeType string
	// Debug enables diagnostic logging of the write
	Debug bool
}

// Format returns the effective MIME type
func (o Options) Format() string {
	if o.MimeType == "" {
		return MimeTypePlain
	}
	return o.MimeType
}

// Writer places text on the clipboard
type Writer interface {
	Write(text string, opts Options) error
}

// Func adapts a plain function to the Writer interface
type Func func(text string, opts Options) error

// Write calls f(text, opts)
func (f Func) Write(text string, opts Options) error {
	return f(text, opts)
}

// Backend selects which Writer implementation to use
type Backend string

const (
	// BackendAuto picks OSC52 over SSH and the system clipboard otherwise
	BackendAuto Backend = "auto"
	// BackendSystem uses the OS clipboard (pbcopy, xclip, wl-copy, win32)
	BackendSystem Backend = "system"
	// BackendOSC52 writes an OSC52 escape sequence to the terminal
	BackendOSC52 Backend = "osc52"
)

// ParseBackend converts a string to Backend
func ParseBackend(s string) (Backend, error) {
	switch Backend(strings.ToLower(strings.TrimSpace(s))) {
	case "", BackendAuto:
		return BackendAuto, nil
	case BackendSystem:
		return BackendSystem, nil
	case BackendOSC52:
		return BackendOSC52, nil
	default:
		return "", fmt.Errorf("unknown clipboard backend %q (valid: auto, system, osc52)", s)
	}
}

// wrapFailure wraps err so that errors.Is(err, ErrWriteFailed) holds
func wrapFailure(backend string, err error) error {
	if errors.Is(err, ErrWriteFailed) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", ErrWriteFailed, backend, err)
}

func logWrite(backend, text string, opts Options) {
	if !opts.Debug {
		return
	}
	logging.Debug("clipboard write",
		"backend", backend,
		"bytes", len(text),
		"format", opts.Format(),
	)
	if opts.Format() != MimeTypePlain {
		logging.Debug("format is copied as plain text source", "backend", backend, "format", opts.Format())
	}
}
