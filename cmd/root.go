package cmd

import (
	"errors"
	"io/fs"

	"github.com/spf13/cobra"
	"josephlewis.net/smallsh/core/config"
)

var cfgPath string

// loadConfig loads the configuration directory, falling back to ephemeral
// defaults when none has been initialized.
func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		return config.Ephemeral(), nil
	}

	return configuration, err
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "smallsh",
	Short: "A small interactive command interpreter",
	Long: `A small interactive command interpreter with builtin exit, cd and status
verbs, < and > redirection, & background execution and a suspend-signal
toggled foreground-only mode.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		return runShell(configuration)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}
