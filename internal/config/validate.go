package config

import (
	"errors"
	"fmt"
	"net"
	"sort"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateSimilarity(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateServer() error {
	if _, _, err := net.SplitHostPort(c.Server.Bind); err != nil {
		return fmt.Errorf("server.bind: %w", err)
	}
	return ensurePositiveMap(map[string]int{
		"server.read_timeout_seconds":     c.Server.ReadTimeoutSeconds,
		"server.write_timeout_seconds":    c.Server.WriteTimeoutSeconds,
		"server.shutdown_timeout_seconds": c.Server.ShutdownTimeoutSeconds,
	})
}

func (c *Config) validateSimilarity() error {
	if c.Similarity.CacheSize < 0 {
		return errors.New("similarity.cache_size must be >= 0")
	}
	if c.Similarity.Precision < 0 || c.Similarity.Precision > 15 {
		return errors.New("similarity.precision must be between 0 and 15")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (use console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

func ensurePositiveMap(values map[string]int) error {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if values[key] <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
