package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	glue "github.com/itsatony/go-glue"
)

// renderConfig holds parsed render command configuration
type renderConfig struct {
	templatePath string
	dataYAML     string
	dataFilePath string
	outputPath   string
	openDelim    string
	closeDelim   string
	missingText  string
	propagate    bool
	separator    string
	noTrim       bool
}

func runRender(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseRenderFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgMissingTemplate, err)
		return ExitCodeUsageError
	}

	// Read template
	templateSource, err := readInput(cfg.templatePath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	// Parse data
	data, err := loadData(cfg.dataYAML, cfg.dataFilePath)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidYAML, err)
		return ExitCodeInputError
	}

	// Create engine and render
	opts := []glue.Option{
		glue.WithDelimiters(cfg.openDelim, cfg.closeDelim),
		glue.WithSeparator(cfg.separator),
		glue.WithTrim(!cfg.noTrim),
		glue.WithEvaluator(glue.NewExprEvaluator()),
	}
	if cfg.propagate {
		opts = append(opts, glue.WithMissingPropagation())
	} else {
		opts = append(opts, glue.WithMissingValue(cfg.missingText))
	}

	engine, err := glue.New(opts...)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgRenderFailed, err)
		return ExitCodeUsageError
	}

	env := glue.NewEnv(data)
	result, err := engine.RenderStrings(context.Background(), env, string(templateSource))
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgRenderFailed, err)
		return ExitCodeError
	}

	// Write output
	if err := writeOutput(cfg.outputPath, []byte(result.String()+"\n"), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteFailed, err)
		return ExitCodeError
	}

	return ExitCodeSuccess
}

func parseRenderFlags(args []string) (*renderConfig, error) {
	fs := flag.NewFlagSet(CmdNameRender, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &renderConfig{}

	fs.StringVar(&cfg.templatePath, FlagTemplate, "", "")
	fs.StringVar(&cfg.templatePath, FlagTemplateShort, "", "")
	fs.StringVar(&cfg.dataYAML, FlagData, "", "")
	fs.StringVar(&cfg.dataYAML, FlagDataShort, "", "")
	fs.StringVar(&cfg.dataFilePath, FlagDataFile, "", "")
	fs.StringVar(&cfg.dataFilePath, FlagDataFileShort, "", "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")
	fs.StringVar(&cfg.openDelim, FlagOpen, glue.DefaultOpenDelim, "")
	fs.StringVar(&cfg.closeDelim, FlagClose, glue.DefaultCloseDelim, "")
	fs.StringVar(&cfg.missingText, FlagMissing, glue.DefaultMissingText, "")
	fs.BoolVar(&cfg.propagate, FlagPropagate, false, "")
	fs.StringVar(&cfg.separator, FlagSeparator, glue.DefaultSeparator, "")
	fs.BoolVar(&cfg.noTrim, FlagNoTrim, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Validation
	if cfg.templatePath == "" {
		return nil, errors.New(ErrMsgMissingTemplate)
	}

	return cfg, nil
}

func loadData(yamlStr, filePath string) (map[string]any, error) {
	var yamlData []byte

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, err
		}
		yamlData = data
	} else if yamlStr != "" {
		yamlData = []byte(yamlStr)
	} else {
		// No data provided, return empty map
		return make(map[string]any), nil
	}

	var result map[string]any
	if err := yaml.Unmarshal(yamlData, &result); err != nil {
		return nil, err
	}

	return result, nil
}
