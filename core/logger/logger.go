package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Event names recorded to the audit log.
const (
	// EventBuiltin records an in-process verb dispatch.
	EventBuiltin = "builtin"
	// EventSpawn records an external command launch.
	EventSpawn = "spawn"
	// EventReap records an asynchronously observed background completion.
	EventReap = "reap"
	// EventMode records a foreground-only mode toggle.
	EventMode = "mode"
)

// New builds a JSON-lines audit logger writing to w.
func New(w io.Writer) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(w),
		zapcore.InfoLevel,
	)
	return zap.New(core)
}
