package main

import (
	"io"
	"os"

	"github.com/carlmjohnson/exitcode"
	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args on a nil slice
		args = []string{}
	}
	cmd := newRootCommand(stdout, stderr)
	if isCompletionRequest(args) {
		// cobra would route these into shell completion; here they are paths
		return exitcode.Get(runRecolor(cmd, args))
	}
	cmd.SetArgs(args)
	return exitcode.Get(cmd.Execute())
}

func isCompletionRequest(args []string) bool {
	return len(args) > 0 &&
		(args[0] == cobra.ShellCompRequestCmd || args[0] == cobra.ShellCompNoDescRequestCmd)
}
