package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Version information (set by build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes the CLI and maps failures to exit codes. All output,
// including diagnostics, goes to stdout.
func run(args []string, stdout io.Writer) int {
	// cobra falls back to os.Args when given nil
	if args == nil {
		args = []string{}
	}

	cmd := newRootCmd(stdout)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, errMissingAppID) {
		fmt.Fprint(stdout, usageText(cmd))
		return ExitFailure
	}

	var rErr *RunError
	if errors.As(err, &rErr) {
		if rErr.Op == opConfig {
			fmt.Fprintf(stdout, "configuration error: %v\n", rErr.Err)
		} else {
			fmt.Fprintf(stdout, "Error: %v\n", rErr.Err)
		}
		return rErr.ExitCode
	}

	fmt.Fprintf(stdout, "Error: %v\n", err)
	return ExitFailure
}
