package configloader

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultStonFiRPCURL   = "https://rpc.ston.fi"
	DefaultTonAPIBaseURL  = "https://tonapi.io/v1"
	DefaultPriceInterval  = "1d"
	DefaultSessionFile    = "data/session.txt"
	defaultRequestTimeout = 10000
)

// ServerConfig holds server-specific configurations.
type ServerConfig struct {
	Port             string   `yaml:"port"`
	ReadTimeout      int      `yaml:"readTimeout"`
	WriteTimeout     int      `yaml:"writeTimeout"`
	IdleTimeout      int      `yaml:"idleTimeout"`
	CORSAllowOrigins []string `yaml:"corsAllowOrigins"`
}

// LoggingConfig holds logging-specific configurations.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// StonFiConfig holds the ston.fi JSON-RPC endpoint configuration.
type StonFiConfig struct {
	RPCURL               string `yaml:"rpcURL"`
	RequestTimeoutMillis int64  `yaml:"requestTimeoutMillis"`
	LoadCommunity        bool   `yaml:"loadCommunity"`
}

// TonAPIConfig holds the price history API configuration.
type TonAPIConfig struct {
	BaseURL              string `yaml:"baseURL"`
	RequestTimeoutMillis int64  `yaml:"requestTimeoutMillis"`
	Interval             string `yaml:"interval"`
}

// RpcClientConfig holds outbound request pacing shared by the API clients.
type RpcClientConfig struct {
	RateLimit  float64 `yaml:"rateLimit"` // requests per second, 0 disables pacing
	BurstLimit int     `yaml:"burstLimit"`
}

// SessionConfig controls wallet session persistence.
type SessionConfig struct {
	FilePath       string `yaml:"filePath"`
	RestoreOnStart bool   `yaml:"restoreOnStart"`
}

// ViewConfig controls how the wallet page is rendered.
type ViewConfig struct {
	PriceHistoryRows int `yaml:"priceHistoryRows"`
	BalancePrecision int `yaml:"balancePrecision"`
	NoticeTTLSeconds int `yaml:"noticeTTLSeconds"`
}

// Config is the top-level configuration structure.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
	StonFi    StonFiConfig    `yaml:"stonfi"`
	TonAPI    TonAPIConfig    `yaml:"tonapi"`
	RpcClient RpcClientConfig `yaml:"rpcClient"`
	Session   SessionConfig   `yaml:"session"`
	View      ViewConfig      `yaml:"view"`
}

// StonFiTimeout returns the balance request timeout.
func (c *Config) StonFiTimeout() time.Duration {
	return time.Duration(c.StonFi.RequestTimeoutMillis) * time.Millisecond
}

// TonAPITimeout returns the price history request timeout.
func (c *Config) TonAPITimeout() time.Duration {
	return time.Duration(c.TonAPI.RequestTimeoutMillis) * time.Millisecond
}

// NoticeTTL returns how long acknowledgements stay visible.
func (c *Config) NoticeTTL() time.Duration {
	return time.Duration(c.View.NoticeTTLSeconds) * time.Second
}

// Load reads the YAML configuration file from the given path and unmarshals it.
// A missing file is not an error: the defaults describe a working setup.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config data from %s: %w", path, err)
		}
		logrus.Infof("Loading configuration from path: %s", path)
	case os.IsNotExist(err):
		logrus.Warnf("Config file %s not found, using defaults", path)
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	ApplyDefaults(&cfg)
	return &cfg, nil
}

// ApplyDefaults fills every unset field with its default value.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
		logrus.Infof("Server.Port not set, defaulting to %s", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout <= 0 {
		// SSE streams stay open, so no write deadline unless configured.
		cfg.Server.WriteTimeout = 0
	}
	if cfg.Server.IdleTimeout <= 0 {
		cfg.Server.IdleTimeout = 60
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	if cfg.StonFi.RPCURL == "" {
		cfg.StonFi.RPCURL = DefaultStonFiRPCURL
		logrus.Infof("StonFi.RPCURL not set, defaulting to %s", cfg.StonFi.RPCURL)
	}
	if cfg.StonFi.RequestTimeoutMillis <= 0 {
		cfg.StonFi.RequestTimeoutMillis = defaultRequestTimeout
	}

	if cfg.TonAPI.BaseURL == "" {
		cfg.TonAPI.BaseURL = DefaultTonAPIBaseURL
		logrus.Infof("TonAPI.BaseURL not set, defaulting to %s", cfg.TonAPI.BaseURL)
	}
	if cfg.TonAPI.RequestTimeoutMillis <= 0 {
		if cfg.StonFi.RequestTimeoutMillis != 0 {
			cfg.TonAPI.RequestTimeoutMillis = cfg.StonFi.RequestTimeoutMillis
		} else {
			cfg.TonAPI.RequestTimeoutMillis = defaultRequestTimeout
		}
	}
	if cfg.TonAPI.Interval == "" {
		cfg.TonAPI.Interval = DefaultPriceInterval
	}

	if cfg.RpcClient.RateLimit < 0 {
		cfg.RpcClient.RateLimit = 0
	}
	if cfg.RpcClient.BurstLimit <= 0 {
		cfg.RpcClient.BurstLimit = 1
	}

	if cfg.Session.FilePath == "" {
		cfg.Session.FilePath = DefaultSessionFile
	}

	if cfg.View.PriceHistoryRows <= 0 {
		cfg.View.PriceHistoryRows = 5
	}
	if cfg.View.BalancePrecision <= 0 {
		cfg.View.BalancePrecision = 6
	}
	if cfg.View.NoticeTTLSeconds <= 0 {
		cfg.View.NoticeTTLSeconds = 5
	}
}
