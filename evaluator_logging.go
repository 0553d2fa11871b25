package guarded

import (
	"fmt"
	"time"
)

// EvaluatorLogEvent describes a filter evaluation attempt for logging.
type EvaluatorLogEvent struct {
	Engine   string
	Expr     string
	Verb     string
	Duration time.Duration
	Err      error
}

// EvaluatorLogger records evaluator events.
type EvaluatorLogger interface {
	LogEvaluation(EvaluatorLogEvent)
}

// EvaluatorLoggerFunc adapts a function to EvaluatorLogger.
type EvaluatorLoggerFunc func(EvaluatorLogEvent)

// LogEvaluation implements EvaluatorLogger.
func (f EvaluatorLoggerFunc) LogEvaluation(event EvaluatorLogEvent) {
	if f != nil {
		f(event)
	}
}

type noopEvaluatorLogger struct{}

func (noopEvaluatorLogger) LogEvaluation(EvaluatorLogEvent) {}

func evaluatorEngineName(e Evaluator) string {
	if e == nil {
		return "unknown"
	}
	switch fmt.Sprintf("%T", e) {
	case "*guarded.exprEvaluator":
		return "expr"
	case "*guarded.celEvaluator":
		return "cel"
	case "*guarded.jsEvaluator":
		return "js"
	default:
		return "custom"
	}
}
