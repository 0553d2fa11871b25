package guarded

import (
	"context"
	"sync"
	"time"

	"github.com/goliatone/go-guarded/pkg/activity"
)

// Identity is an opaque principal handle associated with an invocation. It is
// compared by equality; the enclosing host is responsible for authenticating
// callers and mapping external principals onto Identity values.
type Identity string

// Store holds a single numeric slot guarded by the owner identity fixed at
// construction. Reads are unrestricted; mutation is owner-only, and every
// successful mutation emits a value.updated event carrying the pre-mutation
// value, the new value, and the updater.
//
// All operations are synchronous. The authorization check, the event emission,
// and the assignment happen inside one critical section, so hooks must not
// call back into the store.
type Store struct {
	mu      sync.RWMutex
	owner   Identity
	value   uint64
	hooks   activity.Hooks
	emitter *activity.Emitter
	cfg     storeConfig
}

// New constructs a store owned by the given identity with value zero. The
// owner is fixed for the lifetime of the store; no operation reassigns it.
func New(owner Identity, opts ...Option) (*Store, error) {
	if owner == "" {
		return nil, ErrEmptyOwner
	}
	cfg := applyOptions(opts)
	s := &Store{
		owner: owner,
		hooks: activity.CloneHooks(cfg.hooks),
		cfg:   cfg,
	}
	s.emitter = activity.NewEmitter(s.hooks, activity.Config{
		Enabled: true,
		Channel: cfg.channel,
	})
	return s, nil
}

// Value returns the current value. Callable by any identity.
func (s *Store) Value() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Owner returns the identity fixed at construction. Callable by any identity.
func (s *Store) Owner() Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.owner
}

// Subscribe registers a hook for future events. Hooks registered after a
// mutation do not receive past events. Nil hooks are dropped.
func (s *Store) Subscribe(hook activity.Hook) {
	if hook == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, hook)
	s.emitter = activity.NewEmitter(s.hooks, activity.Config{
		Enabled: true,
		Channel: s.cfg.channel,
	})
}

// Update sets the value to newValue when caller is the owner. The
// authorization check runs first; on failure it returns an
// *AuthorizationError and has no observable effect. On success the event is
// emitted before the assignment so consumers observe the pre-image alongside
// the new value. Setting the current value again is a legal no-op mutation
// and still emits.
//
// Hook failures never fail the update; they are reported through the
// configured NotifyLogger.
func (s *Store) Update(ctx context.Context, caller Identity, newValue uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if caller != s.owner {
		return &AuthorizationError{Caller: caller, Owner: s.owner}
	}

	event := activity.BuildValueUpdatedEvent(activity.ValueUpdatedInput{
		Updater:  string(caller),
		ObjectID: s.cfg.name,
		OldValue: s.value,
		NewValue: newValue,
	})

	start := time.Now()
	err := s.emitter.Emit(ctx, event)
	s.cfg.notifyLogger.LogNotify(NotifyLogEvent{
		Verb:     event.Verb,
		Hooks:    len(s.hooks),
		Duration: time.Since(start),
		Err:      err,
	})

	s.value = newValue
	return nil
}
