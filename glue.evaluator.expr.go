package glue

import (
	"context"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Name of the environment-mutating builtin exposed to expressions.
const exprSetFunc = "set"

// ExprEvaluator evaluates code segments with the expr expression language.
//
// The run environment is the flattened Env data plus a set(name, value)
// builtin that writes back into the shared Env, so an expression may bind a
// name that later expressions of the same render observe. Slice results
// become multi-element value sequences; nil becomes a missing element.
type ExprEvaluator struct{}

// NewExprEvaluator creates an expression-language evaluator.
func NewExprEvaluator() *ExprEvaluator {
	return &ExprEvaluator{}
}

// Eval implements Evaluator.
func (e *ExprEvaluator) Eval(_ context.Context, expression string, env *Env) (Values, error) {
	runEnv := env.Snapshot()
	runEnv[exprSetFunc] = func(name string, value any) any {
		env.Set(name, value)
		return value
	}

	program, err := expr.Compile(expression,
		expr.Env(runEnv),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return Values{}, NewEvalError(expression, err)
	}

	out, err := vm.Run(program, runEnv)
	if err != nil {
		return Values{}, NewEvalError(expression, err)
	}

	return valuesForExpression(expression, out)
}
