package glue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVarEvaluator(t *testing.T) {
	env := NewEnv(map[string]any{
		"name": "Ada",
		"nums": []int{1, 2},
		"user": map[string]any{"city": "London"},
	})
	eval := VarEvaluator{}

	t.Run("simple lookup", func(t *testing.T) {
		v, err := eval.Eval(context.Background(), "name", env)
		require.NoError(t, err)
		require.Equal(t, 1, v.Len())
		item, _ := v.At(0)
		assert.Equal(t, "Ada", item)
	})

	t.Run("expression whitespace is tolerated", func(t *testing.T) {
		v, err := eval.Eval(context.Background(), "  name  ", env)
		require.NoError(t, err)
		require.Equal(t, 1, v.Len())
	})

	t.Run("dot path", func(t *testing.T) {
		v, err := eval.Eval(context.Background(), "user.city", env)
		require.NoError(t, err)
		item, _ := v.At(0)
		assert.Equal(t, "London", item)
	})

	t.Run("slice expands", func(t *testing.T) {
		v, err := eval.Eval(context.Background(), "nums", env)
		require.NoError(t, err)
		assert.Equal(t, 2, v.Len())
	})

	t.Run("unknown path fails", func(t *testing.T) {
		_, err := eval.Eval(context.Background(), "missing", env)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgVariableNotFound)
	})

	t.Run("blank expression fails", func(t *testing.T) {
		_, err := eval.Eval(context.Background(), "   ", env)
		require.Error(t, err)
	})
}

func TestEvaluatorFunc(t *testing.T) {
	eval := EvaluatorFunc(func(_ context.Context, expression string, _ *Env) (Values, error) {
		return StringValues(expression), nil
	})

	v, err := eval.Eval(context.Background(), "echo", NewEnv(nil))
	require.NoError(t, err)
	item, _ := v.At(0)
	assert.Equal(t, "echo", item)
}
