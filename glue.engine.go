package glue

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/itsatony/go-glue/internal"
)

// Engine is the main entry point for the glue interpolation system.
// It owns the trim -> scan -> evaluate -> recycle -> assemble pipeline.
// Engines are stateless across calls; all intermediate data is call-scoped.
type Engine struct {
	config *engineConfig
	logger *zap.Logger
}

// New creates a new glue Engine with the given options.
func New(opts ...Option) (*Engine, error) {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}

	if config.openDelim == "" || config.closeDelim == "" {
		return nil, NewConfigError(ErrMsgEmptyDelimiter)
	}
	if config.evaluator == nil {
		return nil, NewConfigError(ErrMsgNilEvaluator)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{
		config: config,
		logger: logger,
	}, nil
}

// MustNew creates a new Engine and panics if there's an error.
func MustNew(opts ...Option) *Engine {
	engine, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return engine
}

// Fragment is one raw piece of template text. A missing fragment
// short-circuits its whole template to a missing result before scanning.
type Fragment struct {
	Text    string
	Missing bool
}

// Str wraps plain text as a Fragment.
func Str(text string) Fragment {
	return Fragment{Text: text}
}

// NA returns a missing Fragment.
func NA() Fragment {
	return Fragment{Missing: true}
}

// Render renders one template assembled from the given fragments.
//
// Each fragment is trimmed independently (unless trimming is disabled),
// then all fragments are joined with the configured separator into one
// combined text, which is scanned and rendered as a single template.
// If any fragment is missing the whole template short-circuits to a single
// missing row, checked before scanning.
func (e *Engine) Render(ctx context.Context, env *Env, fragments ...Fragment) (*Result, error) {
	for _, f := range fragments {
		if f.Missing {
			return newResult([]string{""}, []bool{true}, e.config.missingText), nil
		}
	}

	parts := make([]string, len(fragments))
	for i, f := range fragments {
		text := f.Text
		if e.config.trim {
			text = internal.Trim(text)
		}
		parts[i] = text
	}

	return e.renderTemplate(ctx, env, strings.Join(parts, e.config.separator))
}

// RenderStrings is a convenience over Render for plain string fragments.
func (e *Engine) RenderStrings(ctx context.Context, env *Env, fragments ...string) (*Result, error) {
	wrapped := make([]Fragment, len(fragments))
	for i, f := range fragments {
		wrapped[i] = Str(f)
	}
	return e.Render(ctx, env, wrapped...)
}

// RenderAll renders each template independently and concatenates the row
// vectors in template order. Templates are never recycled against each
// other: each one computes its own row count.
func (e *Engine) RenderAll(ctx context.Context, env *Env, templates ...string) (*Result, error) {
	out := newResult(nil, nil, e.config.missingText)
	for _, tmpl := range templates {
		result, err := e.RenderStrings(ctx, env, tmpl)
		if err != nil {
			return nil, err
		}
		out = out.Concat(result)
	}

	e.logger.Debug(LogMsgRenderComplete,
		zap.Int(LogFieldTemplates, len(templates)),
		zap.Int(LogFieldRows, out.Len()),
	)
	return out, nil
}

// renderTemplate runs the scan/evaluate/recycle/assemble pipeline for one
// combined template text.
func (e *Engine) renderTemplate(ctx context.Context, env *Env, source string) (*Result, error) {
	scanner := internal.NewScannerWithConfig(source, internal.ScannerConfig{
		OpenDelim:  e.config.openDelim,
		CloseDelim: e.config.closeDelim,
	}, e.logger)

	segments, err := scanner.Scan()
	if err != nil {
		return nil, wrapScanError(err)
	}

	// Evaluate code segments strictly left to right, threading the shared
	// env through every call.
	var sequences []Values
	for _, seg := range segments {
		if seg.Type != internal.SegmentCode {
			continue
		}
		vals, evalErr := e.config.evaluator.Eval(ctx, seg.Text, env)
		if evalErr != nil {
			return nil, evalErr
		}
		sequences = append(sequences, vals)
	}

	e.logger.Debug(LogMsgScanComplete,
		zap.Int(LogFieldSegments, len(segments)),
		zap.Int(LogFieldCode, len(sequences)),
	)

	lengths := make([]int, len(sequences))
	for i, seq := range sequences {
		lengths[i] = seq.Len()
	}

	target, err := internal.RecycleTarget(lengths)
	if err != nil {
		var re *internal.RecycleError
		if errors.As(err, &re) {
			return nil, NewRecycleError(re.Length, re.Target)
		}
		return nil, err
	}
	e.logger.Debug(LogMsgRecycleTarget, zap.Int(LogFieldTarget, target))

	rows, missing := e.assembleRows(segments, sequences, target)
	return newResult(rows, missing, e.config.missingText), nil
}

// assembleRows builds target rows, picking index r mod len from each code
// segment's value sequence and interleaving the fixed literal text.
func (e *Engine) assembleRows(segments []internal.Segment, sequences []Values, target int) ([]string, []bool) {
	rows := make([]string, target)
	missing := make([]bool, target)

	for r := 0; r < target; r++ {
		var sb strings.Builder
		rowMissing := false

		code := 0
		for _, seg := range segments {
			if seg.Type == internal.SegmentLiteral {
				sb.WriteString(seg.Text)
				continue
			}

			seq := sequences[code]
			code++

			item, present := seq.At(r % seq.Len())
			if present {
				sb.WriteString(item)
				continue
			}
			if e.config.propagateMissing {
				rowMissing = true
				continue
			}
			sb.WriteString(e.config.missingText)
		}

		if rowMissing {
			missing[r] = true
		} else {
			rows[r] = sb.String()
		}
	}

	return rows, missing
}

// wrapScanError converts scanner errors into the public parse error kinds.
func wrapScanError(err error) error {
	var se *internal.ScanError
	if errors.As(err, &se) {
		pos := positionFromInternal(se.Position)
		switch se.Message {
		case internal.ErrMsgUnmatchedOpen:
			return NewUnmatchedOpenError(pos)
		case internal.ErrMsgUnmatchedClose:
			return NewUnmatchedCloseError(pos)
		}
		return NewParseError(se.Message, pos, nil)
	}
	return NewParseError(ErrMsgParseFailed, Position{}, err)
}
