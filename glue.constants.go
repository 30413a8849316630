package glue

// Delimiter constants - single braces, doubled for a literal occurrence
const (
	DefaultOpenDelim  = "{"
	DefaultCloseDelim = "}"
)

// Default rendering configuration
const (
	DefaultMissingText = "NA"
	DefaultSeparator   = ""
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	// Parse errors
	ErrMsgParseFailed    = "template scanning failed"
	ErrMsgUnmatchedOpen  = "unmatched open delimiter"
	ErrMsgUnmatchedClose = "unmatched close delimiter"

	// Evaluation errors
	ErrMsgEvalFailed       = "expression evaluation failed"
	ErrMsgNonDataValue     = "expression produced a non-data value"
	ErrMsgVariableNotFound = "variable not found"
	ErrMsgEmptyExpression  = "expression cannot be empty"

	// Recycling errors
	ErrMsgRecycleMismatch = "value sequence lengths cannot be recycled"

	// Configuration errors
	ErrMsgEmptyDelimiter = "delimiters cannot be empty"
	ErrMsgNilEvaluator   = "evaluator cannot be nil"
)

// Error code constants for categorization
const (
	ErrCodeParse   = "GLUE_PARSE"
	ErrCodeEval    = "GLUE_EVAL"
	ErrCodeRecycle = "GLUE_RECYCLE"
	ErrCodeConfig  = "GLUE_CONFIG"
)

// Metadata keys for cuserr.WithMetadata
const (
	MetaKeyLine       = "line"
	MetaKeyColumn     = "column"
	MetaKeyOffset     = "offset"
	MetaKeyExpression = "expression"
	MetaKeyPath       = "path"
	MetaKeyLength     = "length"
	MetaKeyTarget     = "target"
	MetaKeyValueType  = "value_type"
)

// Log message constants
const (
	LogMsgScanComplete   = "template scanned"
	LogMsgRecycleTarget  = "recycle target chosen"
	LogMsgRenderComplete = "render complete"
)

// Log field constants
const (
	LogFieldSegments  = "segments"
	LogFieldCode      = "code_segments"
	LogFieldRows      = "rows"
	LogFieldTarget    = "target"
	LogFieldTemplates = "templates"
)

// Path separator for dot-notation env lookups
const PathSeparator = "."
