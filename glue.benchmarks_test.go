package glue

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/itsatony/go-glue/internal"
)

func BenchmarkScanner_SimpleTemplate(b *testing.B) {
	source := "Hello {name}, you have {count} new messages in {folder}."
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		scanner := internal.NewScanner(source, zap.NewNop())
		if _, err := scanner.Scan(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTrim_MultiLine(b *testing.B) {
	source := "\n    line one {a}\n    line two {b}\n        indented\n    "
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		internal.Trim(source)
	}
}

func BenchmarkEngine_Render(b *testing.B) {
	engine := MustNew()
	env := NewEnv(map[string]any{
		"name":   "World",
		"counts": []int{1, 2, 3, 4},
	})
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := engine.RenderStrings(ctx, env, "Hello {name}: {counts}"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEngine_RenderExpr(b *testing.B) {
	engine := MustNew(WithEvaluator(NewExprEvaluator()))
	env := NewEnv(map[string]any{"n": 21})
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := engine.RenderStrings(ctx, env, "answer: {n * 2}"); err != nil {
			b.Fatal(err)
		}
	}
}
