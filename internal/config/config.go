package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/ananas/internal/reducers"
)

// Config holds application configuration.
type Config struct {
	UI     UIConfig
	Engine EngineConfig
	Log    LogConfig
}

// UIConfig holds presentation settings that seed the settings and sidebar
// slices.
type UIConfig struct {
	Theme       string
	ShowSidebar bool `mapstructure:"show_sidebar"`
	PageSize    int  `mapstructure:"page_size"`
	MaxMessages int  `mapstructure:"max_messages"`
}

// EngineConfig holds execution engine settings.
type EngineConfig struct {
	Default string
}

// LogConfig holds logging settings. The TUI owns the terminal, so logs go
// to a file.
type LogConfig struct {
	Level string
	Path  string
}

func defaultDir(parts ...string) string {
	return filepath.Join(append([]string{os.Getenv("HOME")}, parts...)...)
}

// Load reads configuration from file and env. Env var overrides use prefix ANANAS_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.theme", "mocha")
	v.SetDefault("ui.show_sidebar", true)
	v.SetDefault("ui.page_size", 20)
	v.SetDefault("ui.max_messages", 100)
	v.SetDefault("engine.default", "local")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", defaultDir(".local", "state", "ananas", "ananas.log"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("ANANAS_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(defaultDir(".config", "ananas"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ANANAS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing file means defaults; a file that exists must parse
	if err := v.ReadInConfig(); err != nil && !missingConfig(err) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

func missingConfig(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

// Save writes the provided config to disk, creating the config directory if needed.
// The TUI calls this when the settings slice changes.
func Save(cfg Config) error {
	path := os.Getenv("ANANAS_CONFIG")
	if path == "" {
		path = defaultDir(".config", "ananas", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("ui.show_sidebar", cfg.UI.ShowSidebar)
	v.Set("ui.page_size", cfg.UI.PageSize)
	v.Set("ui.max_messages", cfg.UI.MaxMessages)
	v.Set("engine.default", cfg.Engine.Default)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.path", cfg.Log.Path)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// StateOptions maps configuration onto the initial slice values.
func (c Config) StateOptions() reducers.Options {
	return reducers.Options{
		Engine:       c.Engine.Default,
		MessageLimit: c.UI.MaxMessages,
		Settings: reducers.SettingsState{
			Theme:       c.UI.Theme,
			ShowSidebar: c.UI.ShowSidebar,
			PageSize:    c.UI.PageSize,
		},
	}
}

// WithSettings returns a copy of c carrying the values of the settings slice.
func (c Config) WithSettings(s *reducers.SettingsState) Config {
	if s == nil {
		return c
	}
	c.UI.Theme = s.Theme
	c.UI.ShowSidebar = s.ShowSidebar
	c.UI.PageSize = s.PageSize
	return c
}
