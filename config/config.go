package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/b0bbywan/go-mpris-cli/logger"
)

const (
	AppName    = "mpris-cli"
	AppVersion = "0.1.0"

	defaultTimeout  = 5 * time.Second
	defaultCacheTTL = 30 * time.Second
)

type Config struct {
	MPRIS      *MPRISConfig
	Output     *OutputConfig
	LogLevel   logger.Level
	LogJournal bool
}

// MPRISConfig groups the knobs of the bus-facing layer.
type MPRISConfig struct {
	// Player is the default selector applied when no --player flag is
	// given. Empty means "first player on the bus".
	Player string
	// Timeout bounds each individual bus call.
	Timeout time.Duration
	// CacheTTL bounds how long capability probes stay valid when the
	// library is embedded in a long-lived process.
	CacheTTL time.Duration
}

type OutputConfig struct {
	JSON    bool
	Verbose bool
}

// New loads configuration from /etc/mpris-cli, ~/.config/mpris-cli and
// MPRIS_CLI_* environment variables, in increasing precedence. A missing
// config file is not an error.
func New() (*Config, error) {
	viper.SetDefault("player", "")
	viper.SetDefault("mpris.timeout", "5s")
	viper.SetDefault("mpris.cache", "30s")

	viper.SetDefault("log.level", "warn")
	viper.SetDefault("log.journal", false)

	viper.SetDefault("output.json", false)
	viper.SetDefault("output.verbose", false)

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(filepath.Join("/etc", AppName))
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", AppName))
	}

	viper.SetEnvPrefix(strings.ReplaceAll(strings.ToUpper(AppName), "-", "_"))
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Config file is optional, continue with defaults if not found
		if _, isNotFound := err.(viper.ConfigFileNotFoundError); !isNotFound {
			logger.Warn("failed to read config: %v", err)
		}
	}

	timeout := viper.GetDuration("mpris.timeout")
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	cacheTTL := viper.GetDuration("mpris.cache")
	if cacheTTL < 0 {
		cacheTTL = defaultCacheTTL
	}

	level, err := logger.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		logger.Warn("config: %v, using default", err)
	}

	cfg := Config{
		MPRIS: &MPRISConfig{
			Player:   viper.GetString("player"),
			Timeout:  timeout,
			CacheTTL: cacheTTL,
		},
		Output: &OutputConfig{
			JSON:    viper.GetBool("output.json"),
			Verbose: viper.GetBool("output.verbose"),
		},
		LogLevel:   level,
		LogJournal: viper.GetBool("log.journal"),
	}

	return &cfg, nil
}
