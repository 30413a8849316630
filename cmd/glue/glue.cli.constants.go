package main

// Command names
const (
	CmdNameRender  = "render"
	CmdNameCheck   = "check"
	CmdNameVersion = "version"
	CmdNameHelp    = "help"
)

// Flag names - long form
const (
	FlagTemplate  = "template"
	FlagData      = "data"
	FlagDataFile  = "data-file"
	FlagOutput    = "output"
	FlagOpen      = "open"
	FlagClose     = "close"
	FlagMissing   = "na"
	FlagPropagate = "propagate"
	FlagSeparator = "sep"
	FlagNoTrim    = "no-trim"
)

// Flag names - short form
const (
	FlagTemplateShort = "t"
	FlagDataShort     = "d"
	FlagDataFileShort = "f"
	FlagOutputShort   = "o"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
)

// Exit codes
const (
	ExitCodeSuccess    = 0
	ExitCodeError      = 1
	ExitCodeUsageError = 2
	ExitCodeParseError = 3
	ExitCodeInputError = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// File permissions for output files
const (
	FilePermissions = 0644
)

// Version placeholder when build info is unavailable
const (
	VersionUnknown = "unknown"
)

// Error messages - ALL must be constants
const (
	ErrMsgUnknownCommand  = "unknown command"
	ErrMsgMissingTemplate = "template source required"
	ErrMsgReadFileFailed  = "failed to read input"
	ErrMsgInvalidYAML     = "invalid YAML data"
	ErrMsgRenderFailed    = "render failed"
	ErrMsgCheckFailed     = "template check failed"
	ErrMsgWriteFailed     = "failed to write output"
)

// Format strings
const (
	FmtErrorWithCause  = "Error: %s: %v\n"
	FmtErrorWithDetail = "Error: %s: %s\n"
	FmtSegmentLine     = "%s %d:%d %q\n"
	FmtCheckOK         = "OK: %d segments (%d code)\n"
)

// Segment kind labels for check output
const (
	SegmentLabelLiteral = "literal"
	SegmentLabelCode    = "code"
)

// Help text
const HelpMainUsage = `glue - string interpolation with vector recycling

Usage:
  glue <command> [flags]

Commands:
  render    Render a template against YAML data
  check     Scan a template and report its segments
  version   Print version information
  help      Show help for a command

Use "glue help <command>" for details.`

const HelpRenderUsage = `Usage: glue render [flags]

Renders a template with the expr evaluator against YAML data.
Each value of the data map is available to expressions by name.

Flags:
  -t, -template <path>   Template file, or "-" for stdin (required)
  -d, -data <yaml>       Inline YAML data map
  -f, -data-file <path>  YAML data file
  -o, -output <path>     Output file (default: stdout)
  -open <delim>          Open delimiter (default: "{")
  -close <delim>         Close delimiter (default: "}")
  -na <text>             Replacement for missing values (default: "NA")
  -propagate             Propagate missing values instead of replacing
  -sep <text>            Separator between templates (default: "")
  -no-trim               Disable multi-line trimming`

const HelpCheckUsage = `Usage: glue check [flags]

Scans a template and prints one line per segment, or the parse error.

Flags:
  -t, -template <path>   Template file, or "-" for stdin (required)
  -open <delim>          Open delimiter (default: "{")
  -close <delim>         Close delimiter (default: "}")`

const HelpVersionUsage = `Usage: glue version

Prints version information.`

const HelpHelpUsage = `Usage: glue help [command]

Shows general help, or help for one command.`
