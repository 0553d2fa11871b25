package guarded

import (
	"context"
	"fmt"
	"time"

	"github.com/goliatone/go-guarded/pkg/activity"
)

// FilterHook forwards events to an inner hook only when a filter expression
// evaluates truthy against the event. The expression is compiled once at
// construction.
type FilterHook struct {
	rule       CompiledRule
	engine     string
	expression string
	next       activity.Hook
	logger     EvaluatorLogger
}

// FilterHookOption configures a FilterHook.
type FilterHookOption func(*FilterHook)

// FilterWithLogger attaches a logger observing filter evaluations.
func FilterWithLogger(logger EvaluatorLogger) FilterHookOption {
	return func(h *FilterHook) {
		if logger == nil {
			h.logger = noopEvaluatorLogger{}
			return
		}
		h.logger = logger
	}
}

// NewFilterHook compiles expression with evaluator and wraps next so only
// matching events reach it. Expressions must evaluate to a boolean.
func NewFilterHook(evaluator Evaluator, expression string, next activity.Hook, opts ...FilterHookOption) (*FilterHook, error) {
	if evaluator == nil {
		return nil, fmt.Errorf("guarded: filter hook requires an evaluator")
	}
	if next == nil {
		return nil, fmt.Errorf("guarded: filter hook requires a next hook")
	}
	rule, err := evaluator.Compile(expression)
	if err != nil {
		return nil, err
	}
	h := &FilterHook{
		rule:       rule,
		engine:     evaluatorEngineName(evaluator),
		expression: expression,
		next:       next,
		logger:     noopEvaluatorLogger{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	return h, nil
}

// Notify implements activity.Hook.
func (h *FilterHook) Notify(ctx context.Context, event activity.Event) error {
	rctx := RuleContext{Event: event}
	start := time.Now()
	result, err := h.rule.Evaluate(rctx)
	err = wrapEvaluationError(h.engine, h.expression, event.Verb, err)
	h.logger.LogEvaluation(EvaluatorLogEvent{
		Engine:   h.engine,
		Expr:     h.expression,
		Verb:     event.Verb,
		Duration: time.Since(start),
		Err:      err,
	})
	if err != nil {
		return err
	}
	pass, ok := result.(bool)
	if !ok {
		return wrapEvaluationError(h.engine, h.expression, event.Verb,
			fmt.Errorf("filter expression returned %T, want bool", result))
	}
	if !pass {
		return nil
	}
	return h.next.Notify(ctx, event)
}
