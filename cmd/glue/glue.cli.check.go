package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"go.uber.org/zap"

	glue "github.com/itsatony/go-glue"
	"github.com/itsatony/go-glue/internal"
)

// checkConfig holds parsed check command configuration
type checkConfig struct {
	templatePath string
	openDelim    string
	closeDelim   string
}

// runCheck scans a template without evaluating it and reports the segment
// sequence or the parse error.
func runCheck(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseCheckFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgMissingTemplate, err)
		return ExitCodeUsageError
	}

	templateSource, err := readInput(cfg.templatePath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	scanner := internal.NewScannerWithConfig(string(templateSource), internal.ScannerConfig{
		OpenDelim:  cfg.openDelim,
		CloseDelim: cfg.closeDelim,
	}, zap.NewNop())

	segments, err := scanner.Scan()
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgCheckFailed, err)
		return ExitCodeParseError
	}

	codeCount := 0
	for _, seg := range segments {
		label := SegmentLabelLiteral
		if seg.Type == internal.SegmentCode {
			label = SegmentLabelCode
			codeCount++
		}
		fmt.Fprintf(stdout, FmtSegmentLine, label, seg.Position.Line, seg.Position.Column, seg.Text)
	}
	fmt.Fprintf(stdout, FmtCheckOK, len(segments), codeCount)

	return ExitCodeSuccess
}

func parseCheckFlags(args []string) (*checkConfig, error) {
	fs := flag.NewFlagSet(CmdNameCheck, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &checkConfig{}

	fs.StringVar(&cfg.templatePath, FlagTemplate, "", "")
	fs.StringVar(&cfg.templatePath, FlagTemplateShort, "", "")
	fs.StringVar(&cfg.openDelim, FlagOpen, glue.DefaultOpenDelim, "")
	fs.StringVar(&cfg.closeDelim, FlagClose, glue.DefaultCloseDelim, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.templatePath == "" {
		return nil, errors.New(ErrMsgMissingTemplate)
	}

	return cfg, nil
}
