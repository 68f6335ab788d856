package logging

import (
	"time"
)

// TimingContext holds timing information for manual Start/End tracking
type TimingContext struct {
	name      string
	startTime time.Time
	logger    *Logger
}

// Start begins a timing measurement. Must be paired with End.
//
// Example:
//
//	tc := logging.Start("clipboard write")
//	err := writer.Write(text, opts)
//	logging.End(tc, "error", err)
func Start(name string) TimingContext {
	return Get().Start(name)
}

// Start begins a timing measurement logged through l
func (l *Logger) Start(name string) TimingContext {
	return TimingContext{
		name:      name,
		startTime: time.Now(),
		logger:    l,
	}
}

// End logs the duration since Start together with extra key-value pairs
func End(tc TimingContext, args ...any) time.Duration {
	duration := time.Since(tc.startTime)
	if tc.logger == nil || !tc.logger.IsEnabled() {
		return duration
	}

	attrs := append([]any{
		"duration", duration.String(),
		"ms", duration.Milliseconds(),
	}, args...)
	tc.logger.Debug(tc.name, attrs...)
	return duration
}

// Time executes fn and logs its execution time at debug level.
//
// Example:
//
//	logging.Time("load config", func() {
//	    cfg, err = config.Load(path)
//	})
func Time(name string, fn func()) {
	tc := Start(name)
	fn()
	End(tc)
}
