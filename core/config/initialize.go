package config

import (
	"log"

	"github.com/spf13/afero"
)

// Initialize sets up a configuration directory with the default
// configuration and the directories the interpreter writes into. Existing
// files are left alone so it is safe to run repeatedly.
func Initialize(dir string, logger *log.Logger) (*Configuration, error) {
	fs := afero.NewBasePathFs(afero.NewOsFs(), dir)

	exists, err := afero.Exists(fs, ConfigurationName)
	if err != nil {
		return nil, err
	}
	if exists {
		logger.Printf("%s already exists, skipping", ConfigurationName)
	} else {
		logger.Printf("creating %s", ConfigurationName)
		if err := afero.WriteFile(fs, ConfigurationName, defaultConfigData, 0600); err != nil {
			return nil, err
		}
	}

	cfg, err := Load(dir)
	if err != nil {
		return nil, err
	}

	if cfg.SessionLogDir != "" {
		logger.Printf("creating %s", cfg.SessionLogDir)
		if err := fs.MkdirAll(cfg.SessionLogDir, 0700); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}
