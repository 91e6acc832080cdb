package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateMatching(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.LibraryDir == "" {
		return errors.New("paths.library_dir must be set")
	}
	if c.Paths.DBPath == "" {
		return errors.New("paths.db_path must be set")
	}
	return nil
}

func (c *Config) validateMatching() error {
	if c.Matching.TitleThreshold < 0 || c.Matching.TitleThreshold > 1 {
		return errors.New("matching.title_threshold must be between 0 and 1")
	}
	if c.Matching.DurationThresholdSeconds <= 0 {
		return errors.New("matching.duration_threshold_seconds must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
}
