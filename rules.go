package guarded

import (
	"time"

	"github.com/goliatone/go-guarded/pkg/activity"
)

// RuleContext carries inputs needed when evaluating a filter expression
// against an event.
type RuleContext struct {
	Event    activity.Event
	Now      *time.Time
	Args     map[string]any
	Metadata map[string]any
}

// Evaluator executes expressions against a rule context.
type Evaluator interface {
	Evaluate(ctx RuleContext, expression string) (any, error)
	Compile(expression string, opts ...CompileOption) (CompiledRule, error)
}

// CompiledRule evaluates a pre-compiled expression per invocation.
type CompiledRule interface {
	Evaluate(ctx RuleContext) (any, error)
}

// CompileOption configures evaluator compile behaviour.
type CompileOption interface {
	applyCompileOption(*compileConfig)
}

type compileConfig struct{}

type compileOptionFunc func(*compileConfig)

func (f compileOptionFunc) applyCompileOption(cfg *compileConfig) {
	if f != nil {
		f(cfg)
	}
}

// ProgramCache stores compiled expression programs keyed by expression strings.
type ProgramCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

func (ctx RuleContext) withDefaultNow() RuleContext {
	if ctx.Now != nil {
		return ctx
	}
	now := time.Now()
	ctx.Now = &now
	return ctx
}

func (ctx RuleContext) timestamp() time.Time {
	ctx = ctx.withDefaultNow()
	return *ctx.Now
}

func (ctx RuleContext) withDefaultMaps() RuleContext {
	if ctx.Args == nil {
		ctx.Args = map[string]any{}
	}
	if ctx.Metadata == nil {
		ctx.Metadata = ctx.Event.Metadata
	}
	if ctx.Metadata == nil {
		ctx.Metadata = map[string]any{}
	}
	return ctx
}

// eventBindingKeys lists the fixed variables every evaluator exposes.
var eventBindingKeys = []string{
	"verb", "channel", "updater", "object_id", "object_type",
	"old_value", "new_value", "occurred_at",
}

func (ctx RuleContext) eventBindings() map[string]any {
	event := ctx.Event
	return map[string]any{
		"verb":        event.Verb,
		"channel":     event.Channel,
		"updater":     event.Updater,
		"object_id":   event.ObjectID,
		"object_type": event.ObjectType,
		"old_value":   event.OldValue,
		"new_value":   event.NewValue,
		"occurred_at": event.OccurredAt,
	}
}
