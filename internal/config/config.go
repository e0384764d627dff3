package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/danielpatrickdp/ruinware/internal/cogitator"
)

// #region types
// Config holds application configuration.
type Config struct {
	DB      DBConfig      `mapstructure:"db"`
	Journal JournalConfig `mapstructure:"journal"`
	Ollama  OllamaConfig  `mapstructure:"ollama"`
	Log     LogConfig     `mapstructure:"log"`
}

// DBConfig holds sqlite settings.
type DBConfig struct {
	Path string `mapstructure:"path"`
}

// JournalConfig toggles turn journalling.
type JournalConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// OllamaConfig holds cogitator bridge settings.
type OllamaConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	URL          string        `mapstructure:"url"`
	Model        string        `mapstructure:"model"`
	Temperature  float64       `mapstructure:"temperature"`
	Timeout      time.Duration `mapstructure:"timeout"`
	SystemPrompt string        `mapstructure:"system_prompt"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Verbose bool `mapstructure:"verbose"`
}

// #endregion types

// #region load
// Load reads configuration from defaults, an optional YAML file, and env.
// Env var overrides use prefix RUINWARE_, e.g. RUINWARE_OLLAMA_MODEL.
// The file is RUINWARE_CONFIG if set, else $HOME/.config/ruinware/config.yaml.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("db.path", "ruinware.db")
	v.SetDefault("journal.enabled", true)
	v.SetDefault("ollama.enabled", true)
	v.SetDefault("ollama.url", cogitator.DefaultURL)
	v.SetDefault("ollama.model", cogitator.DefaultModel)
	v.SetDefault("ollama.temperature", cogitator.DefaultTemperature)
	v.SetDefault("ollama.timeout", cogitator.DefaultTimeout)
	v.SetDefault("ollama.system_prompt", cogitator.DefaultSystemPrompt)
	v.SetDefault("log.verbose", false)

	v.SetConfigType("yaml")
	explicit := os.Getenv("RUINWARE_CONFIG")
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "ruinware"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("RUINWARE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing default file is fine; a named file that cannot be read is not.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || explicit != "" {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// #endregion load

// #region cogitator
// Cogitator converts the Ollama section into a bridge config.
func (c Config) Cogitator() cogitator.Config {
	return cogitator.Config{
		Enabled:      c.Ollama.Enabled,
		URL:          c.Ollama.URL,
		Model:        c.Ollama.Model,
		Temperature:  c.Ollama.Temperature,
		Timeout:      c.Ollama.Timeout,
		SystemPrompt: c.Ollama.SystemPrompt,
	}
}

// #endregion cogitator
