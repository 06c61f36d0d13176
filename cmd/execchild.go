package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"josephlewis.net/smallsh/core/shell"
)

var (
	childStdin  string
	childStdout string
)

// execChildCmd is the hidden trampoline the launcher re-execs. It runs in
// the child execution context: it adjusts signal dispositions, wires
// redirections and replaces itself with the requested program, so it only
// returns control on failure.
var execChildCmd = &cobra.Command{
	Use:    shell.ChildCommandName + " [--stdin FILE] [--stdout FILE] -- PROG [ARG...]",
	Short:  "Internal: set up a child execution context and exec PROG.",
	Hidden: true,
	Args:   cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		status, err := shell.ExecChild(childStdin, childStdout, args)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(status)
	},
}

func init() {
	rootCmd.AddCommand(execChildCmd)
	execChildCmd.Flags().StringVar(&childStdin, "stdin", "", "redirect standard input from this file")
	execChildCmd.Flags().StringVar(&childStdout, "stdout", "", "redirect standard output to this file")
	execChildCmd.Flags().SetInterspersed(false)
}
