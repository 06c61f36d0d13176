package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

// ConfigurationName is the file the interpreter's settings live in.
const ConfigurationName = "config.yaml"

// Configuration holds the interpreter's settings. Paths are relative to the
// configuration directory unless absolute.
type Configuration struct {
	configDir string
	configFs  afero.Fs

	// HistoryFile persists readline history; empty disables it.
	HistoryFile string `json:"history_file"`
	// AuditLog is the JSON-lines event log; empty disables it.
	AuditLog string `json:"audit_log"`
	// SessionLogDir receives session transcripts.
	SessionLogDir string `json:"session_log_dir"`
	// RecordSessions enables transcript recording of interactive sessions.
	RecordSessions bool `json:"record_sessions"`

	// MaxLineLength bounds an input line; longer lines are rejected with a
	// reported error.
	MaxLineLength int `json:"max_line_length" validate:"required,gt=0"`
	// MaxArgs bounds the argument vector of a single command.
	MaxArgs int `json:"max_args" validate:"required,gt=0"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

func (c *Configuration) fs() afero.Fs {
	return c.configFs
}

// OpenAuditLog opens the audit log append-only, or returns (nil, nil) when
// audit logging is disabled.
func (c *Configuration) OpenAuditLog() (afero.File, error) {
	if c.AuditLog == "" {
		return nil, nil
	}
	return c.fs().OpenFile(c.AuditLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// ReadAuditLog opens the audit log for reading.
func (c *Configuration) ReadAuditLog() (afero.File, error) {
	if c.AuditLog == "" {
		return nil, os.ErrNotExist
	}
	return c.fs().OpenFile(c.AuditLog, os.O_RDONLY, 0600)
}

// CreateSessionLog creates a transcript file with the given name.
func (c *Configuration) CreateSessionLog(name string) (afero.File, error) {
	return c.fs().Create(filepath.Join(c.SessionLogDir, name))
}

// HistoryPath resolves the history file against the configuration
// directory. Empty means history is disabled.
func (c *Configuration) HistoryPath() string {
	if c.HistoryFile == "" || filepath.IsAbs(c.HistoryFile) {
		return c.HistoryFile
	}
	return filepath.Join(c.configDir, c.HistoryFile)
}

// defaultConfig parses the embedded default configuration. It panics on
// failure because the embedded data is fixed at build time.
func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}

// Ephemeral returns the default limits with every on-disk side channel
// (history, audit log, session recording) disabled, for running without an
// initialized configuration directory.
func Ephemeral() *Configuration {
	cfg := defaultConfig()
	cfg.HistoryFile = ""
	cfg.AuditLog = ""
	cfg.RecordSessions = false
	cfg.configFs = afero.NewMemMapFs()
	return cfg
}
