package guarded

import "time"

// NotifyLogEvent describes one hook delivery attempt for logging.
type NotifyLogEvent struct {
	Verb     string
	Hooks    int
	Duration time.Duration
	Err      error
}

// NotifyLogger records hook delivery attempts.
type NotifyLogger interface {
	LogNotify(NotifyLogEvent)
}

// NotifyLoggerFunc adapts a function to NotifyLogger.
type NotifyLoggerFunc func(NotifyLogEvent)

// LogNotify implements NotifyLogger.
func (f NotifyLoggerFunc) LogNotify(event NotifyLogEvent) {
	if f != nil {
		f(event)
	}
}

type noopNotifyLogger struct{}

func (noopNotifyLogger) LogNotify(NotifyLogEvent) {}
