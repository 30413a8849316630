package internal

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// SegmentType discriminates literal text from embedded code.
type SegmentType int

const (
	// SegmentLiteral is verbatim template text.
	SegmentLiteral SegmentType = iota
	// SegmentCode is the expression text between one delimiter pair.
	SegmentCode
)

// Position represents a location in the source template
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// String returns a human-readable position string
func (p Position) String() string {
	return "line " + strconv.Itoa(p.Line) + ", column " + strconv.Itoa(p.Column)
}

// Segment is one literal or code span produced by scanning.
// Segments cover the source left to right with no gaps or overlaps.
type Segment struct {
	Type     SegmentType
	Text     string
	Position Position
}

// ScannerConfig holds scanner configuration
type ScannerConfig struct {
	OpenDelim  string // Opening delimiter (default: "{")
	CloseDelim string // Closing delimiter (default: "}")
}

// DefaultScannerConfig returns the default scanner configuration
func DefaultScannerConfig() ScannerConfig {
	return ScannerConfig{
		OpenDelim:  StrOpenDelim,
		CloseDelim: StrCloseDelim,
	}
}

// doubledOpen returns the escape pattern for a literal open delimiter
// (e.g. "{{" for "{")
func (c ScannerConfig) doubledOpen() string {
	return c.OpenDelim + c.OpenDelim
}

// doubledClose returns the escape pattern for a literal close delimiter
func (c ScannerConfig) doubledClose() string {
	return c.CloseDelim + c.CloseDelim
}

// Scanner splits template source into an ordered segment sequence.
//
// A depth counter tracks delimiter nesting: depth 0 is literal text, an
// open delimiter enters code, and further open delimiters inside code
// increment depth so expressions may themselves contain the markers.
// Doubled delimiters at depth 0 are escapes for one literal occurrence and
// are checked before any depth interpretation.
type Scanner struct {
	source string
	config ScannerConfig
	pos    int // Current byte position
	line   int // Current line (1-indexed)
	column int // Current column (1-indexed)
	logger *zap.Logger
}

// NewScanner creates a new scanner with default configuration
func NewScanner(source string, logger *zap.Logger) *Scanner {
	return NewScannerWithConfig(source, DefaultScannerConfig(), logger)
}

// NewScannerWithConfig creates a scanner with custom configuration
func NewScannerWithConfig(source string, config ScannerConfig, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgScannerCreated, zap.Int(LogFieldSource, len(source)))
	return &Scanner{
		source: source,
		config: config,
		pos:    0,
		line:   1,
		column: 1,
		logger: logger,
	}
}

// Scan processes the source and returns the segment sequence.
// Code text between delimiters is preserved verbatim, whitespace included.
func (s *Scanner) Scan() ([]Segment, error) {
	s.logger.Debug(LogMsgScanStart)

	var segments []Segment
	var literal strings.Builder
	literalPos := s.currentPosition()

	flushLiteral := func() {
		if literal.Len() > 0 {
			segments = append(segments, Segment{
				Type:     SegmentLiteral,
				Text:     literal.String(),
				Position: literalPos,
			})
			literal.Reset()
		}
	}

	for !s.isAtEnd() {
		// Escapes take precedence over depth interpretation: a doubled
		// delimiter at depth 0 is one literal occurrence.
		if s.matchStr(s.config.doubledOpen()) {
			literal.WriteString(s.config.OpenDelim)
			s.advanceN(len(s.config.doubledOpen()))
			continue
		}
		if s.matchStr(s.config.doubledClose()) {
			literal.WriteString(s.config.CloseDelim)
			s.advanceN(len(s.config.doubledClose()))
			continue
		}

		if s.matchStr(s.config.OpenDelim) {
			flushLiteral()
			openPos := s.currentPosition()
			s.advanceN(len(s.config.OpenDelim))

			code, err := s.scanCode(openPos)
			if err != nil {
				return nil, err
			}
			segments = append(segments, Segment{
				Type:     SegmentCode,
				Text:     code,
				Position: openPos,
			})
			literalPos = s.currentPosition()
			continue
		}

		if s.matchStr(s.config.CloseDelim) {
			return nil, &ScanError{
				Message:  ErrMsgUnmatchedClose,
				Position: s.currentPosition(),
			}
		}

		literal.WriteByte(s.advance())
	}

	flushLiteral()
	s.logger.Debug(LogMsgScanEnd, zap.Int(LogFieldSegments, len(segments)))
	return segments, nil
}

// scanCode consumes code text after an open delimiter until the matching
// close delimiter brings the nesting depth back to zero.
// openPos is the position of the unmatched open delimiter, reported when
// the input ends before the depth returns to zero.
func (s *Scanner) scanCode(openPos Position) (string, error) {
	depth := 1
	start := s.pos

	// With identical open and close markers an occurrence inside code must
	// terminate the segment, so the open interpretation is skipped.
	countOpens := s.config.OpenDelim != s.config.CloseDelim

	for !s.isAtEnd() {
		if countOpens && s.matchStr(s.config.OpenDelim) {
			depth++
			s.advanceN(len(s.config.OpenDelim))
			continue
		}
		if s.matchStr(s.config.CloseDelim) {
			depth--
			if depth == 0 {
				code := s.source[start:s.pos]
				s.advanceN(len(s.config.CloseDelim))
				return code, nil
			}
			s.advanceN(len(s.config.CloseDelim))
			continue
		}
		s.advance()
	}

	return "", &ScanError{
		Message:  ErrMsgUnmatchedOpen,
		Position: openPos,
	}
}

// Helper methods

// currentPosition returns the current position
func (s *Scanner) currentPosition() Position {
	return Position{
		Offset: s.pos,
		Line:   s.line,
		Column: s.column,
	}
}

// isAtEnd returns true if we've reached the end of source
func (s *Scanner) isAtEnd() bool {
	return s.pos >= len(s.source)
}

// advance consumes and returns the current character
func (s *Scanner) advance() byte {
	if s.isAtEnd() {
		return 0
	}
	ch := s.source[s.pos]
	s.pos++
	if ch == CharNewline {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return ch
}

// advanceN advances by n characters
func (s *Scanner) advanceN(n int) {
	for i := 0; i < n && !s.isAtEnd(); i++ {
		s.advance()
	}
}

// matchStr returns true if the remaining source starts with str
func (s *Scanner) matchStr(str string) bool {
	return strings.HasPrefix(s.source[s.pos:], str)
}

// ScanError represents a scanner error with position
type ScanError struct {
	Message  string
	Position Position
}

func (e *ScanError) Error() string {
	return e.Message + " at " + e.Position.String()
}
