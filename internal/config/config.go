// Package config loads runtime configuration and holds application constants.
//
// The only required surface is the API base URL; everything else has a
// default. Values are read, in order of precedence, from environment
// variables (LIFETRACK_ prefix), an optional .lifetrack.yaml in the working
// directory or home directory, and built-in defaults. A .env file in the
// working directory is loaded first so both sources see it.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the resolved runtime configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Theme   string
}

// Load resolves configuration from env vars, config file, and defaults.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("theme", DefaultTheme)

	v.SetConfigName("." + AppName)
	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.AutomaticEnv()
	v.AddConfigPath("./")
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	timeout, err := time.ParseDuration(v.GetString("timeout"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid timeout %q: %w", v.GetString("timeout"), err)
	}

	base := strings.TrimRight(strings.TrimSpace(v.GetString("base_url")), "/")
	if base == "" {
		return Config{}, fmt.Errorf("base_url must not be empty")
	}

	return Config{
		BaseURL: base,
		Timeout: timeout,
		Theme:   v.GetString("theme"),
	}, nil
}
