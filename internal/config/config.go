package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Store    StoreConfig
	Board    BoardConfig
	Speech   SpeechConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// StoreConfig selects where boards are read from.
type StoreConfig struct {
	Driver string // "sqlite" or "dir"
	Dir    string
}

// BoardConfig holds navigation settings.
type BoardConfig struct {
	Home string
}

// SpeechConfig holds text-to-speech settings.
type SpeechConfig struct {
	Enabled  bool
	Command  string
	Language string
	Rate     int
}

// UIConfig holds presentation settings.
type UIConfig struct {
	LabelWidth int `mapstructure:"label_width"`
}

const (
	DriverSQLite = "sqlite"
	DriverDir    = "dir"
)

// Load reads configuration from file and env. Env var overrides use prefix SYMBOARD_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SYMBOARD_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "symboard"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SYMBOARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing config file is fine; a malformed one is not
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "symboard", "symboard.db"))
	v.SetDefault("store.driver", DriverSQLite)
	v.SetDefault("store.dir", filepath.Join(os.Getenv("HOME"), ".local", "share", "symboard", "boards"))
	v.SetDefault("board.home", "board_1_235")
	v.SetDefault("speech.enabled", true)
	v.SetDefault("speech.command", "espeak-ng")
	v.SetDefault("speech.language", "en-US")
	v.SetDefault("speech.rate", 175)
	v.SetDefault("ui.label_width", 8)
}

// Validate rejects settings the engine cannot start with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Board.Home) == "" {
		return fmt.Errorf("config: board.home must be set")
	}
	switch c.Store.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("config: database.path must be set for the sqlite store")
		}
	case DriverDir:
		if c.Store.Dir == "" {
			return fmt.Errorf("config: store.dir must be set for the dir store")
		}
	default:
		return fmt.Errorf("config: unknown store.driver %q (want %q or %q)", c.Store.Driver, DriverSQLite, DriverDir)
	}
	if c.UI.LabelWidth < 1 {
		return fmt.Errorf("config: ui.label_width must be positive")
	}
	return nil
}

// Path returns the config file location Save writes to.
func Path() string {
	if path := os.Getenv("SYMBOARD_CONFIG"); path != "" {
		return path
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "symboard", "config.toml")
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("store.driver", cfg.Store.Driver)
	v.Set("store.dir", cfg.Store.Dir)
	v.Set("board.home", cfg.Board.Home)
	v.Set("speech.enabled", cfg.Speech.Enabled)
	v.Set("speech.command", cfg.Speech.Command)
	v.Set("speech.language", cfg.Speech.Language)
	v.Set("speech.rate", cfg.Speech.Rate)
	v.Set("ui.label_width", cfg.UI.LabelWidth)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
