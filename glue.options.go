package glue

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring the Engine.
type Option func(*engineConfig)

// engineConfig holds the internal configuration for an Engine.
type engineConfig struct {
	openDelim        string
	closeDelim       string
	missingText      string
	propagateMissing bool
	separator        string
	trim             bool
	evaluator        Evaluator
	logger           *zap.Logger
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		openDelim:        DefaultOpenDelim,
		closeDelim:       DefaultCloseDelim,
		missingText:      DefaultMissingText,
		propagateMissing: false,
		separator:        DefaultSeparator,
		trim:             true,
		evaluator:        VarEvaluator{},
		logger:           nil,
	}
}

// WithDelimiters sets custom delimiters for code expressions.
// Default: "{" and "}"
func WithDelimiters(open, close string) Option {
	return func(c *engineConfig) {
		c.openDelim = open
		c.closeDelim = close
	}
}

// WithMissingValue sets the replacement text substituted for missing
// elements during assembly.
// Default: "NA"
func WithMissingValue(text string) Option {
	return func(c *engineConfig) {
		c.missingText = text
		c.propagateMissing = false
	}
}

// WithMissingPropagation makes any row that draws a missing element become
// missing as a whole, instead of substituting a placeholder.
func WithMissingPropagation() Option {
	return func(c *engineConfig) {
		c.propagateMissing = true
	}
}

// WithSeparator sets the string joining multiple fragments of one render
// into the combined template text.
// Default: ""
func WithSeparator(sep string) Option {
	return func(c *engineConfig) {
		c.separator = sep
	}
}

// WithTrim enables or disables multi-line trimming before scanning.
// Default: enabled
func WithTrim(enabled bool) Option {
	return func(c *engineConfig) {
		c.trim = enabled
	}
}

// WithEvaluator sets the expression evaluator.
// Default: VarEvaluator
func WithEvaluator(evaluator Evaluator) Option {
	return func(c *engineConfig) {
		c.evaluator = evaluator
	}
}

// WithLogger sets the logger for the engine.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}
