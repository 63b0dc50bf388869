package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/viper"

	"github.com/deaduz/eduadmin/internal/log"
)

// Config holds all client configuration
type Config struct {
	API     APIConfig   `mapstructure:"api"`
	State   StateConfig `mapstructure:"state"`
	Logging log.Config  `mapstructure:"logging"`
}

// APIConfig points the client at the platform backend
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"` // REST API root
	Timeout time.Duration `mapstructure:"timeout"`  // Per-request transport timeout
}

// StateConfig locates the persisted session database
type StateConfig struct {
	Dir string `mapstructure:"dir"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "https://dead.uz/api",
			Timeout: 30 * time.Second,
		},
		State: StateConfig{
			Dir: defaultStatePath(),
		},
		Logging: log.Config{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// Load reads configuration from file and environment
func Load() (*Config, error) {
	cfg := Default()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("EDUADMIN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "eduadmin")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "eduadmin")
	}
}

func defaultStatePath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "eduadmin")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "eduadmin")
	}
}

func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "eduadmin", "eduadmin.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "eduadmin", "eduadmin.log")
	}
}
