package copystatus

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"

	"github.com/renato0307/yank/internal/clipboard"
)

// recorder is a clipboard.Writer that remembers what it was asked to write
type recorder struct {
	mu    sync.Mutex
	texts []string
	opts  []clipboard.Options
	err   error
}

func (r *recorder) Write(text string, opts clipboard.Options) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.texts = append(r.texts, text)
	r.opts = append(r.opts, opts)
	return r.err
}

func (r *recorder) last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.texts) == 0 {
		return ""
	}
	return r.texts[len(r.texts)-1]
}

func (r *recorder) setErr(err error) {
	r.mu.Lock()
	r.err = err
	r.mu.Unlock()
}

func newFakeClock() *testingclock.FakeClock {
	return testingclock.NewFakeClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
}

func eventuallyStatus(t *testing.T, c *Controller, want Status) {
	t.Helper()
	require.Eventually(t, func() bool {
		return c.Status() == want
	}, time.Second, 5*time.Millisecond, "status should become %s", want)
}

func TestController_InitialStatus(t *testing.T) {
	c := NewController(&recorder{}, "Default Text to copy", Options{})
	assert.Equal(t, NotCopied, c.Status())
	assert.False(t, c.Copied())
}

func TestController_TriggerDefaultContent(t *testing.T) {
	w := &recorder{}
	c := NewController(w, "Default Text to copy", Options{})

	c.Trigger("", nil)

	assert.True(t, c.Copied())
	assert.Equal(t, "Default Text to copy", w.last())
}

func TestController_TriggerExplicitContent(t *testing.T) {
	w := &recorder{}
	c := NewController(w, "Default Text to copy", Options{})

	c.Trigger("explicit", nil)

	assert.True(t, c.Copied())
	assert.Equal(t, "explicit", w.last())
}

func TestController_ForwardsWriterOptions(t *testing.T) {
	w := &recorder{}
	c := NewController(w, "x", Options{MimeType: clipboard.MimeTypeHTML, Debug: true})

	c.Trigger("", nil)

	require.Len(t, w.opts, 1)
	assert.Equal(t, clipboard.Options{MimeType: clipboard.MimeTypeHTML, Debug: true}, w.opts[0])
}

func TestController_ResetAfter(t *testing.T) {
	clk := newFakeClock()
	c := NewController(&recorder{}, "Text to copy", Options{
		ResetAfter: time.Second,
		Clock:      clk,
	})

	c.Trigger("", nil)
	assert.True(t, c.Copied())

	clk.Step(500 * time.Millisecond)
	assert.True(t, c.Copied(), "status must hold before the reset duration")

	clk.Step(499 * time.Millisecond)
	assert.True(t, c.Copied())

	clk.Step(time.Millisecond)
	eventuallyStatus(t, c, NotCopied)
	assert.False(t, clk.HasWaiters())
}

func TestController_NoResetWithoutDuration(t *testing.T) {
	clk := newFakeClock()
	c := NewController(&recorder{}, "Text to copy", Options{Clock: clk})

	c.Trigger("", nil)

	assert.False(t, clk.HasWaiters(), "no timer should be armed")
	clk.Step(24 * time.Hour)
	assert.True(t, c.Copied())
}

func TestController_RetriggerRearmsTimer(t *testing.T) {
	clk := newFakeClock()
	c := NewController(&recorder{}, "Text to copy", Options{
		ResetAfter: time.Second,
		Clock:      clk,
	})

	c.Trigger("", nil)
	clk.Step(800 * time.Millisecond)

	c.Trigger("", nil)
	clk.Step(800 * time.Millisecond)
	// First timer would have fired at 1000ms
	assert.True(t, c.Copied(), "previous reset must be cancelled")

	clk.Step(200 * time.Millisecond)
	eventuallyStatus(t, c, NotCopied)
}

func TestController_Failure(t *testing.T) {
	cause := errors.New("permission denied")

	t.Run("from not copied", func(t *testing.T) {
		c := NewController(&recorder{err: cause}, "x", Options{})

		var got []error
		c.Trigger("", func(err error) { got = append(got, err) })

		assert.False(t, c.Copied())
		require.Len(t, got, 1)
		assert.ErrorIs(t, got[0], cause)
	})

	t.Run("from copied cancels reset timer", func(t *testing.T) {
		clk := newFakeClock()
		w := &recorder{}
		c := NewController(w, "x", Options{ResetAfter: time.Second, Clock: clk})

		c.Trigger("", nil)
		require.True(t, c.Copied())
		require.True(t, clk.HasWaiters())

		w.setErr(cause)
		calls := 0
		c.Trigger("", func(error) { calls++ })

		assert.False(t, c.Copied())
		assert.Equal(t, 1, calls)
		assert.False(t, clk.HasWaiters(), "failure must not leave a timer armed")
	})

	t.Run("nil onError", func(t *testing.T) {
		c := NewController(&recorder{err: cause}, "x", Options{})
		assert.NotPanics(t, func() { c.Trigger("", nil) })
		assert.False(t, c.Copied())
	})
}

func TestController_Subscribe(t *testing.T) {
	clk := newFakeClock()
	w := &recorder{}
	c := NewController(w, "x", Options{ResetAfter: time.Second, Clock: clk})

	var mu sync.Mutex
	var seen []Status
	unsubscribe := c.Subscribe(func(s Status) {
		mu.Lock()
		seen = append(seen, s)
		mu.Unlock()
	})

	c.Trigger("", nil)
	// Observers run before Trigger returns
	mu.Lock()
	assert.Equal(t, []Status{Copied}, seen)
	mu.Unlock()

	// Unchanged status does not notify
	c.Trigger("", nil)

	clk.Step(time.Second)
	eventuallyStatus(t, c, NotCopied)
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(seen) == 2
	}, time.Second, 5*time.Millisecond)

	unsubscribe()
	c.Trigger("", nil)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []Status{Copied, NotCopied}, seen)
}

// A timer firing while observers are still busy must not leave them on a
// stale status once a newer trigger has landed.
func TestController_SubscribeOrderingWithSlowObserver(t *testing.T) {
	c := NewController(&recorder{}, "x", Options{ResetAfter: 200 * time.Millisecond})
	t.Cleanup(c.Close)

	blocked := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	c.Subscribe(func(s Status) {
		if s == NotCopied {
			once.Do(func() {
				close(blocked)
				<-release
			})
		}
	})

	var mu sync.Mutex
	var last Status
	c.Subscribe(func(s Status) {
		mu.Lock()
		last = s
		mu.Unlock()
	})

	c.Trigger("", nil)

	select {
	case <-blocked:
	case <-time.After(2 * time.Second):
		t.Fatal("reset timer did not fire")
	}

	// The timer goroutine is stuck delivering NotCopied
	c.Trigger("", nil)
	require.Equal(t, Copied, c.Status())
	close(release)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return last == Copied
	}, 150*time.Millisecond, time.Millisecond, "observers end on the current status")
}

func TestController_Close(t *testing.T) {
	clk := newFakeClock()
	c := NewController(&recorder{}, "x", Options{ResetAfter: time.Second, Clock: clk})

	notified := 0
	c.Subscribe(func(Status) { notified++ })

	c.Trigger("", nil)
	require.Equal(t, 1, notified)

	c.Close()
	assert.False(t, clk.HasWaiters(), "close must cancel the pending reset")

	clk.Step(time.Hour)
	assert.True(t, c.Copied(), "state is frozen after close")
	assert.Equal(t, 1, notified)

	c.Trigger("", nil)
	assert.Equal(t, 1, notified)

	assert.NotPanics(t, c.Close)
}

func TestController_CloseStillReportsErrors(t *testing.T) {
	c := NewController(&recorder{err: errors.New("boom")}, "x", Options{})
	c.Close()

	calls := 0
	c.Trigger("", func(error) { calls++ })
	assert.Equal(t, 1, calls)
}

func TestController_RealClock(t *testing.T) {
	c := NewController(&recorder{}, "x", Options{ResetAfter: 20 * time.Millisecond})
	defer c.Close()

	c.Trigger("", nil)
	assert.True(t, c.Copied())
	eventuallyStatus(t, c, NotCopied)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "copied", Copied.String())
	assert.Equal(t, "not copied", NotCopied.String())
}
