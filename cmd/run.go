package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"josephlewis.net/smallsh/core/config"
	"josephlewis.net/smallsh/core/logger"
	"josephlewis.net/smallsh/core/shell"
	"josephlewis.net/smallsh/core/ttylog"
)

// runShell wires the interpreter's output recording, audit log, launcher
// and reader together and runs the prompt loop until the exit builtin.
func runShell(configuration *config.Configuration) error {
	var out io.Writer = os.Stdout

	if configuration.RecordSessions {
		name := fmt.Sprintf("%s.%s", time.Now().Format(time.RFC3339), ttylog.AsciicastFileExt)
		fd, err := configuration.CreateSessionLog(name)
		if err != nil {
			return err
		}
		defer fd.Close()
		out = ttylog.NewRecorder(out, ttylog.NewAsciicastLogSink(fd))
	}

	audit := zap.NewNop()
	auditFd, err := configuration.OpenAuditLog()
	if err != nil {
		return err
	}
	if auditFd != nil {
		defer auditFd.Close()
		audit = logger.New(auditFd)
		defer audit.Sync()
	}

	launcher, err := shell.NewOSLauncher()
	if err != nil {
		return err
	}
	launcher.Stdout = out

	reader, err := shell.NewConsoleReader(os.Stdin, out, configuration.HistoryPath())
	if err != nil {
		return err
	}

	sh, err := shell.New(configuration, shell.Options{
		Launcher: launcher,
		Reader:   reader,
		Stdout:   out,
		Stderr:   os.Stderr,
		Audit:    audit,
	})
	if err != nil {
		return err
	}

	return sh.Run()
}
