package glue

import (
	"fmt"
	"strconv"

	"github.com/itsatony/go-cuserr"

	"github.com/itsatony/go-glue/internal"
)

// Position represents a location in the source template
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// String returns a human-readable position string
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

func positionFromInternal(p internal.Position) Position {
	return Position{
		Offset: p.Offset,
		Line:   p.Line,
		Column: p.Column,
	}
}

// NewParseError creates a parse error with position context
func NewParseError(msg string, pos Position, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeParse, msg)
	} else {
		err = cuserr.NewValidationError(ErrCodeParse, msg)
	}
	return err.
		WithMetadata(MetaKeyLine, strconv.Itoa(pos.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(pos.Column)).
		WithMetadata(MetaKeyOffset, strconv.Itoa(pos.Offset))
}

// NewUnmatchedOpenError reports an open delimiter never closed by end of
// input. The position is where the mismatched opening occurred.
func NewUnmatchedOpenError(pos Position) error {
	return NewParseError(ErrMsgUnmatchedOpen, pos, nil)
}

// NewUnmatchedCloseError reports a close delimiter at nesting depth zero.
func NewUnmatchedCloseError(pos Position) error {
	return NewParseError(ErrMsgUnmatchedClose, pos, nil)
}

// NewEvalError wraps an evaluator failure with the offending expression text.
func NewEvalError(expression string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeEval, ErrMsgEvalFailed).
		WithMetadata(MetaKeyExpression, expression)
}

// NewNonDataValueError reports an expression whose result is not displayable
// data, such as a function value.
func NewNonDataValueError(expression string, valueType string) error {
	return cuserr.NewValidationError(ErrCodeEval, ErrMsgNonDataValue).
		WithMetadata(MetaKeyExpression, expression).
		WithMetadata(MetaKeyValueType, valueType)
}

// NewVariableNotFoundError creates a variable not found error
func NewVariableNotFoundError(path string) error {
	return cuserr.NewNotFoundError(MetaKeyPath, ErrMsgVariableNotFound).
		WithMetadata(MetaKeyPath, path)
}

// NewRecycleError reports value sequence lengths that cannot be reconciled.
func NewRecycleError(length, target int) error {
	return cuserr.NewValidationError(ErrCodeRecycle, ErrMsgRecycleMismatch).
		WithMetadata(MetaKeyLength, strconv.Itoa(length)).
		WithMetadata(MetaKeyTarget, strconv.Itoa(target))
}

// NewConfigError creates an engine configuration error
func NewConfigError(msg string) error {
	return cuserr.NewValidationError(ErrCodeConfig, msg)
}
