package glue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExprEvaluator(t *testing.T) {
	eval := NewExprEvaluator()

	t.Run("arithmetic", func(t *testing.T) {
		env := NewEnv(map[string]any{"n": 20})
		v, err := eval.Eval(context.Background(), "n + 22", env)
		require.NoError(t, err)
		require.Equal(t, 1, v.Len())
		item, _ := v.At(0)
		assert.Equal(t, "42", item)
	})

	t.Run("string operations", func(t *testing.T) {
		env := NewEnv(map[string]any{"name": "ada"})
		v, err := eval.Eval(context.Background(), `upper(name)`, env)
		require.NoError(t, err)
		item, _ := v.At(0)
		assert.Equal(t, "ADA", item)
	})

	t.Run("slice result becomes a value sequence", func(t *testing.T) {
		env := NewEnv(map[string]any{"xs": []any{1, 2, 3}})
		v, err := eval.Eval(context.Background(), "map(xs, # * 2)", env)
		require.NoError(t, err)
		assert.Equal(t, 3, v.Len())
	})

	t.Run("nil result is a missing element", func(t *testing.T) {
		env := NewEnv(map[string]any{"x": nil})
		v, err := eval.Eval(context.Background(), "x", env)
		require.NoError(t, err)
		require.Equal(t, 1, v.Len())
		_, present := v.At(0)
		assert.False(t, present)
	})

	t.Run("compile error is an eval error", func(t *testing.T) {
		_, err := eval.Eval(context.Background(), "1 +", NewEnv(nil))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgEvalFailed)
	})
}

func TestExprEvaluator_SetBuiltin(t *testing.T) {
	eval := NewExprEvaluator()
	env := NewEnv(nil)

	// set() writes through to the shared env
	v, err := eval.Eval(context.Background(), `set("greeting", "hi")`, env)
	require.NoError(t, err)
	item, _ := v.At(0)
	assert.Equal(t, "hi", item)
	assert.Equal(t, "hi", env.GetString("greeting"))

	// visible to a later evaluation of the same env
	v, err = eval.Eval(context.Background(), "greeting", env)
	require.NoError(t, err)
	item, _ = v.At(0)
	assert.Equal(t, "hi", item)
}

func TestExprEvaluator_EndToEnd(t *testing.T) {
	engine := MustNew(WithEvaluator(NewExprEvaluator()))
	env := NewEnv(map[string]any{
		"names": []any{"ada", "grace"},
		"punct": "!",
	})

	result, err := engine.RenderStrings(context.Background(), env,
		"Hello {map(names, upper(#))}{punct}")
	require.NoError(t, err)
	assert.Equal(t, []string{"Hello ADA!", "Hello GRACE!"}, result.Strings())
}
