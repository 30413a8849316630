package main

import (
	"fmt"
	"io"
	"runtime/debug"
)

func runVersion(_ []string, stdout, _ io.Writer) int {
	fmt.Fprintf(stdout, "glue %s\n", moduleVersion())
	return ExitCodeSuccess
}

// moduleVersion reads the version recorded in build info, if any.
func moduleVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" {
		return VersionUnknown
	}
	return info.Main.Version
}
