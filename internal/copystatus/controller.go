// Package copystatus tracks whether text was just copied to the clipboard.
//
// A Controller writes text through a clipboard.Writer, flips its status to
// Copied on success and, when configured, arms a single-shot timer that flips
// it back to NotCopied. Only the most recent trigger's timer can fire; Close
// cancels it so nothing mutates the controller after its owner is gone.
package copystatus

import (
	"sync"
	"time"

	"k8s.io/utils/clock"

	"github.com/renato0307/yank/internal/clipboard"
	"github.com/renato0307/yank/internal/logging"
)

// Status is the copied/not-copied flag
type Status int

const (
	// NotCopied is the initial status
	NotCopied Status = iota
	// Copied is set after a successful write
	Copied
)

func (s Status) String() string {
	if s == Copied {
		return "copied"
	}
	return "not copied"
}

// Options configure a Controller
type Options struct {
	// ResetAfter reverts the status to NotCopied after a successful copy.
	// Zero keeps the status Copied until the next trigger.
	ResetAfter time.Duration
	// MimeType is forwarded to the writer
	MimeType string
	// Debug is forwarded to the writer
	Debug bool
	// Clock schedules the reset timer (nil = real clock)
	Clock clock.WithDelayedExecution
}

// Controller owns the status flag and the pending reset timer
type Controller struct {
	writer         clipboard.Writer
	defaultContent string
	opts           Options
	clock          clock.WithDelayedExecution
	logger         *logging.Logger

	mu        sync.Mutex
	status    Status
	timer     clock.Timer
	gen       uint64 // bumped on every trigger and on Close
	closed    bool
	observers map[int]func(Status)
	nextID    int

	delivering bool   // a goroutine is running observers
	delivered  Status // last status handed to observers
}

// NewController creates a controller that copies defaultContent when Trigger
// is called without content.
func NewController(writer clipboard.Writer, defaultContent string, opts Options) *Controller {
	clk := opts.Clock
	if clk == nil {
		clk = clock.RealClock{}
	}

	return &Controller{
		writer:         writer,
		defaultContent: defaultContent,
		opts:           opts,
		clock:          clk,
		logger:         logging.Get().With("component", "copystatus"),
		observers:      make(map[int]func(Status)),
	}
}

// Status returns the current status
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Copied reports whether the status is Copied
func (c *Controller) Copied() bool {
	return c.Status() == Copied
}

// DefaultContent returns the text copied when Trigger gets no content
func (c *Controller) DefaultContent() string {
	return c.defaultContent
}

// Subscribe registers fn to be called after every status change. fn normally
// runs on the goroutine that caused the change (the caller of Trigger, or the
// timer). When a change lands while another goroutine is still running
// observers, that goroutine delivers it instead, so observers are never called
// concurrently and always end on the current status.
func (c *Controller) Subscribe(fn func(Status)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.observers[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.observers, id)
		c.mu.Unlock()
	}
}

// Trigger copies content, or the default content when content is empty.
// Failures are never returned: the status becomes NotCopied and onError, when
// not nil, receives the writer's error.
func (c *Controller) Trigger(content string, onError func(error)) {
	text := content
	if text == "" {
		text = c.defaultContent
	}

	tc := c.logger.Start("clipboard write")
	err := c.writer.Write(text, clipboard.Options{
		MimeType: c.opts.MimeType,
		Debug:    c.opts.Debug,
	})
	logging.End(tc, "bytes", len(text), "ok", err == nil)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		c.logger.Debug("trigger after close ignored")
		if err != nil && onError != nil {
			onError(err)
		}
		return
	}
	c.gen++
	gen := c.gen
	prev := c.timer
	c.timer = nil
	c.status = NotCopied
	if err == nil {
		c.status = Copied
	}
	c.mu.Unlock()

	if prev != nil {
		prev.Stop()
	}

	if err != nil {
		c.logger.Warn("copy failed", "error", err)
		c.flush()
		if onError != nil {
			onError(err)
		}
		return
	}

	if c.opts.ResetAfter > 0 {
		c.arm(gen)
	}
	c.flush()
}

// arm schedules the reset for generation gen
func (c *Controller) arm(gen uint64) {
	t := c.clock.AfterFunc(c.opts.ResetAfter, func() {
		c.expire(gen)
	})

	c.mu.Lock()
	if c.gen != gen || c.closed {
		// A newer trigger or Close won the race
		c.mu.Unlock()
		t.Stop()
		return
	}
	c.timer = t
	c.mu.Unlock()
}

func (c *Controller) expire(gen uint64) {
	c.mu.Lock()
	if c.gen != gen || c.closed {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	c.status = NotCopied
	c.mu.Unlock()

	c.logger.Debug("copy status reset", "after", c.opts.ResetAfter.String())
	c.flush()
}

// flush hands the live status to observers until they have seen it. Only one
// goroutine delivers at a time; a change made meanwhile is picked up by the
// delivering goroutine's next pass.
func (c *Controller) flush() {
	c.mu.Lock()
	if c.delivering {
		c.mu.Unlock()
		return
	}
	c.delivering = true

	for !c.closed && c.delivered != c.status {
		s := c.status
		c.delivered = s
		fns := make([]func(Status), 0, len(c.observers))
		for _, fn := range c.observers {
			fns = append(fns, fn)
		}
		c.mu.Unlock()

		for _, fn := range fns {
			fn(s)
		}
		c.mu.Lock()
	}
	c.delivering = false
	c.mu.Unlock()
}

// Close cancels the pending reset and detaches all observers
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.gen++
	t := c.timer
	c.timer = nil
	c.observers = make(map[int]func(Status))
	c.mu.Unlock()

	if t != nil {
		t.Stop()
	}
}
