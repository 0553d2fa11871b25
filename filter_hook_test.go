package guarded

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-guarded/pkg/activity"
)

func filterEvent(oldValue, newValue uint64) activity.Event {
	return activity.NormalizeEvent(activity.Event{
		Verb:       activity.VerbValueUpdated,
		Updater:    "alice",
		ObjectType: "value",
		ObjectID:   "value",
		OldValue:   oldValue,
		NewValue:   newValue,
	})
}

func TestExprFilterHookForwardsMatchingEvents(t *testing.T) {
	capture := &activity.CaptureHook{}
	hook, err := NewFilterHook(NewExprEvaluator(), "new_value > old_value", capture)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := context.Background()
	if err := hook.Notify(ctx, filterEvent(0, 5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := hook.Notify(ctx, filterEvent(5, 3)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	events := capture.Recorded()
	if len(events) != 1 {
		t.Fatalf("expected one forwarded event, got %d", len(events))
	}
	if events[0].NewValue != 5 {
		t.Fatalf("unexpected forwarded event: %+v", events[0])
	}
}

func TestCELFilterHookForwardsMatchingEvents(t *testing.T) {
	capture := &activity.CaptureHook{}
	hook, err := NewFilterHook(NewCELEvaluator(), "new_value > old_value", capture)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := context.Background()
	if err := hook.Notify(ctx, filterEvent(0, 5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := hook.Notify(ctx, filterEvent(5, 3)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	events := capture.Recorded()
	if len(events) != 1 {
		t.Fatalf("expected one forwarded event, got %d", len(events))
	}
}

func TestJSFilterHookForwardsMatchingEvents(t *testing.T) {
	if !jsEvaluatorAvailable() {
		t.Skip("js evaluator requires the js_eval build tag")
	}
	capture := &activity.CaptureHook{}
	hook, err := NewFilterHook(NewJSEvaluator(), "new_value > old_value", capture)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := context.Background()
	if err := hook.Notify(ctx, filterEvent(0, 5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := hook.Notify(ctx, filterEvent(5, 3)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if events := capture.Recorded(); len(events) != 1 {
		t.Fatalf("expected one forwarded event, got %d", len(events))
	}
}

func TestFilterHookRejectsNonBooleanResult(t *testing.T) {
	capture := &activity.CaptureHook{}
	hook, err := NewFilterHook(NewExprEvaluator(), "new_value", capture)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = hook.Notify(context.Background(), filterEvent(0, 5))
	var evalErr *EvaluationError
	if !errors.As(err, &evalErr) {
		t.Fatalf("expected *EvaluationError, got %v", err)
	}
	if evalErr.Engine != "expr" {
		t.Fatalf("unexpected engine: %q", evalErr.Engine)
	}
	if events := capture.Recorded(); len(events) != 0 {
		t.Fatalf("expected no forwarded events, got %d", len(events))
	}
}

func TestFilterHookLogsEvaluations(t *testing.T) {
	var logged []EvaluatorLogEvent
	capture := &activity.CaptureHook{}
	hook, err := NewFilterHook(NewExprEvaluator(), "new_value > old_value", capture,
		FilterWithLogger(EvaluatorLoggerFunc(func(event EvaluatorLogEvent) {
			logged = append(logged, event)
		})),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := hook.Notify(context.Background(), filterEvent(0, 5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(logged) != 1 {
		t.Fatalf("expected one log entry, got %d", len(logged))
	}
	if logged[0].Engine != "expr" || logged[0].Verb != activity.VerbValueUpdated {
		t.Fatalf("unexpected log entry: %+v", logged[0])
	}
}

func TestFilterHookRequiresEvaluatorAndNext(t *testing.T) {
	if _, err := NewFilterHook(nil, "true", &activity.CaptureHook{}); err == nil {
		t.Fatalf("expected error for nil evaluator")
	}
	if _, err := NewFilterHook(NewExprEvaluator(), "true", nil); err == nil {
		t.Fatalf("expected error for nil next hook")
	}
	if _, err := NewFilterHook(NewExprEvaluator(), "", &activity.CaptureHook{}); err == nil {
		t.Fatalf("expected error for empty expression")
	}
}

func TestStoreWithFilterHook(t *testing.T) {
	capture := &activity.CaptureHook{}
	hook, err := NewFilterHook(NewExprEvaluator(), `updater == "alice" && new_value >= 10`, capture)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	store, err := New("alice", WithActivityHooks(activity.Hooks{hook}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := context.Background()
	if err := store.Update(ctx, "alice", 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Update(ctx, "alice", 12); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	events := capture.Recorded()
	if len(events) != 1 {
		t.Fatalf("expected one forwarded event, got %d", len(events))
	}
	if events[0].NewValue != 12 {
		t.Fatalf("unexpected forwarded event: %+v", events[0])
	}
}
