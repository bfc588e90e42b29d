package config

import (
	"time"

	"go.uber.org/zap/zapcore"
)

type Option func(c *Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithWriteTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = timeout
	}
}

func WithStoreDriver(driver, dsn string) Option {
	return func(c *Config) {
		c.Store.Driver = driver
		if dsn != "" {
			c.Store.DSN = dsn
		}
	}
}

// WithFile overrides the YAML file named by BOOKHAVEN_CONFIG.
func WithFile(path string) Option {
	return func(c *Config) {
		c.file = path
	}
}
