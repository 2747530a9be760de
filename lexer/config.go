// SPDX-License-Identifier: MIT
package lexer

import (
	"github.com/sirupsen/logrus"
)

type (
	// Config defines configuration options for the Lexer's operations.
	Config struct {
		Logger logrus.FieldLogger
		Debug  bool

		// PoolSize is the number of workers used by LexAll.
		PoolSize int
	}

	// Option defines the Config functional option type.
	Option func(*Config)
)

const (
	// DefaultPoolSize is the default number of LexAll workers.
	DefaultPoolSize = 4
)

// DefaultConfig obtains the package's default Config.
func DefaultConfig() *Config {
	return &Config{
		Logger:   logrus.New(),
		PoolSize: DefaultPoolSize,
	}
}

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.Logger == nil {
		c.Logger = logrus.New()
	}
	if c.PoolSize < 1 {
		c.PoolSize = DefaultPoolSize
	}
}

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(c *Config) { c.Logger = logger } }

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(c *Config) { c.Debug = debug } }

// WithPoolSize configures the LexAll worker count.
func WithPoolSize(size int) Option { return func(c *Config) { c.PoolSize = size } }

// WithConfig replaces the Config wholesale; later options still apply.
func WithConfig(cfg Config) Option { return func(c *Config) { *c = cfg } }

func newConfig(opts []Option) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.Validate()

	return cfg
}
