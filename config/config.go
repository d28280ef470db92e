package config

import (
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"

	"github.com/libdesk/library-system/internal/server"
	"github.com/libdesk/library-system/internal/service"
	"github.com/libdesk/library-system/internal/store"
	"github.com/libdesk/library-system/pkg/logger"
)

type Config struct {
	Server  server.Config `yaml:"server"`
	Store   store.Config  `yaml:"store"`
	Lending service.Rules `yaml:"lending"`
	Log     logger.Log    `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithWriteTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = d
	}
}

func WithStorePath(path string) Option {
	return func(c *Config) {
		c.Store.Path = path
	}
}

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		for _, op := range ops {
			op(&config)
		}
		cfg = &config
	})

	return cfg
}
