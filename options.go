package guarded

import "github.com/goliatone/go-guarded/pkg/activity"

type storeConfig struct {
	hooks        activity.Hooks
	channel      string
	name         string
	notifyLogger NotifyLogger
}

// Option configures a Store at construction time.
type Option func(*storeConfig)

func applyOptions(opts []Option) storeConfig {
	cfg := storeConfig{notifyLogger: noopNotifyLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithActivityHooks attaches hooks notified on every successful mutation.
// Hooks are cloned and nil entries dropped to preserve immutability.
func WithActivityHooks(hooks activity.Hooks) Option {
	normalized := activity.CloneHooks(hooks)
	return func(cfg *storeConfig) {
		cfg.hooks = normalized
	}
}

// WithChannel overrides the default channel stamped on emitted events.
func WithChannel(channel string) Option {
	return func(cfg *storeConfig) {
		cfg.channel = channel
	}
}

// WithName sets the object identifier carried by emitted events, useful when
// a host owns several stores and consumers need to tell them apart.
func WithName(name string) Option {
	return func(cfg *storeConfig) {
		cfg.name = name
	}
}

// WithNotifyLogger attaches a logger observing hook deliveries.
func WithNotifyLogger(logger NotifyLogger) Option {
	return func(cfg *storeConfig) {
		if logger == nil {
			cfg.notifyLogger = noopNotifyLogger{}
			return
		}
		cfg.notifyLogger = logger
	}
}
