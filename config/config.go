package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	courval "github.com/beanbocchi/courier/pkg/validator"
)

var (
	once sync.Once
	cfg  *Config
)

// Load reads configuration from an optional courier.yaml (working directory
// or $HOME/.courier) with COURIER_* environment overrides, applies defaults,
// and validates the result.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("courier")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.courier")

	v.SetEnvPrefix("courier")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("env", "dev")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.addSource", false)
	v.SetDefault("http.timeout", 0)
	v.SetDefault("http.userAgent", "courier")
	v.SetDefault("history.path", "courier_history.db")
	v.SetDefault("history.limit", 50)

	if err := v.ReadInConfig(); err != nil {
		// A missing file falls back to defaults; a malformed one does not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := courval.Validate(&c); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &c, nil
}

// GetConfig returns the process-wide configuration, loading it on first use.
func GetConfig() *Config {
	once.Do(func() {
		c, err := Load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
		cfg = c
	})
	return cfg
}
