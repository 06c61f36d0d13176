package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"josephlewis.net/smallsh/core/ttylog"
)

var idleTimeLimit time.Duration

var logsCmd = &cobra.Command{
	Use:     "logs",
	Aliases: []string{"log"},
	Short:   "Explore recorded session transcripts.",
}

// playCommand replays a recorded session in the terminal.
var playCommand = &cobra.Command{
	Use:   "play TRANSCRIPT.cast",
	Short: "Replay a recorded session in the terminal.",
	Long:  `Plays a recorded session back to the current terminal in real time.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		fd, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer fd.Close()

		source := ttylog.NewAsciicastLogSource(fd)
		sink := ttylog.NewClientOutput(cmd.OutOrStdout())
		sink = ttylog.NewRealTimePlayback(idleTimeLimit, sink)
		return ttylog.Replay(source, sink)
	},
}

// catCommand dumps a recorded session without pacing.
var catCommand = &cobra.Command{
	Use:   "cat TRANSCRIPT.cast",
	Short: "Print full output of a recorded session to the terminal.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		fd, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer fd.Close()

		source := ttylog.NewAsciicastLogSource(fd)
		sink := ttylog.NewClientOutput(cmd.OutOrStdout())
		return ttylog.Replay(source, sink)
	},
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.AddCommand(playCommand)
	logsCmd.AddCommand(catCommand)

	playCommand.Flags().DurationVarP(&idleTimeLimit, "idle-time-limit", "i", 3*time.Second, "Maximum time output can be idle. (e.g. 3s, 2m, 100ms)")
}
