package internal

// Default delimiter strings
const (
	StrOpenDelim  = "{"
	StrCloseDelim = "}"
)

// Character constants used by the scanner and trimmer
const (
	CharNewline     = '\n'
	CharCarriageRet = '\r'
	CharSpace       = ' '
	CharTab         = '\t'
	CharBackslash   = '\\'
)

// String constants used by the trimmer
const (
	StrNewline          = "\n"
	StrLineContinuation = "\\\n"
)

// Log message constants
const (
	LogMsgScannerCreated = "scanner created"
	LogMsgScanStart      = "scan started"
	LogMsgScanEnd        = "scan finished"
)

// Log field constants
const (
	LogFieldSource   = "source_len"
	LogFieldSegments = "segments"
)

// Error message constants for the scanner
const (
	ErrMsgUnmatchedOpen  = "unmatched open delimiter"
	ErrMsgUnmatchedClose = "unmatched close delimiter"
)
