package glue

import (
	"context"
	"errors"
	"strings"
)

// Evaluator evaluates one code segment against the shared environment.
//
// The engine calls Eval exactly once per code segment, strictly in
// left-to-right segment order, threading the same Env through every call of
// one render. Mutations made for one segment are observable by every later
// segment; this ordering is part of the contract, not an implementation
// accident, and the engine never parallelizes or reorders calls.
type Evaluator interface {
	Eval(ctx context.Context, expression string, env *Env) (Values, error)
}

// EvaluatorFunc adapts a plain function to the Evaluator interface.
type EvaluatorFunc func(ctx context.Context, expression string, env *Env) (Values, error)

// Eval implements Evaluator.
func (f EvaluatorFunc) Eval(ctx context.Context, expression string, env *Env) (Values, error) {
	return f(ctx, expression, env)
}

// VarEvaluator resolves each expression as a dot-notation variable path in
// the environment. It is the engine default: no expression language, just
// name lookup.
type VarEvaluator struct{}

// Eval implements Evaluator.
func (VarEvaluator) Eval(_ context.Context, expression string, env *Env) (Values, error) {
	path := strings.TrimSpace(expression)
	if path == "" {
		return Values{}, NewEvalError(expression, errors.New(ErrMsgEmptyExpression))
	}

	val, ok := env.Get(path)
	if !ok {
		return Values{}, NewVariableNotFoundError(path)
	}

	return valuesForExpression(expression, val)
}

// valuesForExpression coerces an evaluation result, rewrapping non-data
// values into a descriptive error naming the expression.
func valuesForExpression(expression string, v any) (Values, error) {
	vals, err := ValueOf(v)
	if err != nil {
		var nd *nonDataError
		if errors.As(err, &nd) {
			return Values{}, NewNonDataValueError(expression, nd.typeName)
		}
		return Values{}, NewEvalError(expression, err)
	}
	return vals, nil
}
