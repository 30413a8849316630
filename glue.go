// Package glue provides a string-interpolation engine with vector recycling.
//
// Templates embed code expressions between configurable delimiters, { and }
// by default:
//
//	Hello {name}!
//
// # Basic Usage
//
// Create an engine and render a template against an environment:
//
//	engine := glue.MustNew()
//	env := glue.NewEnv(map[string]any{"name": "World"})
//	result, err := engine.RenderStrings(ctx, env, "Hello {name}!")
//	// result.Strings(): ["Hello World!"]
//
// # Recycling
//
// An expression may evaluate to more than one value. Within one template the
// result lengths are reconciled by recycling: the row count is the maximum
// length, every other length must divide it, and shorter sequences repeat
// modularly:
//
//	env := glue.NewEnv(map[string]any{"x": []string{"a", "b", "c"}, "sep": "-"})
//	result, _ := engine.RenderStrings(ctx, env, "{x}{sep}1")
//	// ["a-1", "b-1", "c-1"]
//
// An expression that evaluates to an empty sequence short-circuits the whole
// template to zero rows. Incompatible lengths such as {2, 3} are an error.
//
// # Escaping
//
// Doubling a delimiter produces one literal occurrence:
//
//	{{name}}   ->   {name}
//
// # Trimming
//
// Multi-line templates are normalized before scanning: backslash-newline
// continuations are joined, the common indentation of the lines after the
// first is removed, and the first and last lines are whitespace-stripped at
// their ends. Disable with glue.WithTrim(false).
//
// # Missing Values
//
// Each evaluated value carries a missing marker. By default missing elements
// are substituted with "NA"; with glue.WithMissingPropagation() any row that
// draws a missing element becomes missing as a whole.
//
// # Custom Evaluators
//
// The engine delegates all expression evaluation to an Evaluator. The
// default VarEvaluator resolves dot-notation variable paths; ExprEvaluator
// runs full expressions via the expr language. Implement the interface to
// plug in anything else:
//
//	eval := glue.EvaluatorFunc(func(ctx context.Context, expression string, env *glue.Env) (glue.Values, error) {
//	    return glue.StringValues(strings.ToUpper(expression)), nil
//	})
//	engine, _ := glue.New(glue.WithEvaluator(eval))
//
// Evaluation is strictly left to right and the shared Env is threaded through
// every call, so one expression may bind names a later expression observes.
//
// # Configuration
//
// Customize the engine with functional options:
//
//	engine, _ := glue.New(
//	    glue.WithDelimiters("<<", ">>"),
//	    glue.WithMissingPropagation(),
//	    glue.WithLogger(logger),
//	)
package glue
