package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"josephlewis.net/smallsh/core/shell"
)

// builtinsCmd lists the verbs the interpreter runs in-process.
var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the interpreter's builtin verbs.",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range shell.BuiltinNames() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
