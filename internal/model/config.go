package model

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. BOARD_STORAGE_PATH.
const EnvPrefix = "BOARD"

var envKeyReplacer = strings.NewReplacer(".", "_")

// StorageConfig controls where and how board state is persisted.
type StorageConfig struct {
	// Path is the SQLite database file backing the key-value substrate.
	Path string `mapstructure:"path" yaml:"path"`

	// Namespace prefixes every stored key.
	Namespace string `mapstructure:"namespace" yaml:"namespace"`

	// MaxValueBytes rejects writes of larger values. Zero disables the quota.
	MaxValueBytes int `mapstructure:"max_value_bytes" yaml:"max_value_bytes"`
}

// DisplayConfig holds UI/rendering preferences.
type DisplayConfig struct {
	Theme     string `mapstructure:"theme" yaml:"theme"`
	GanttZoom string `mapstructure:"gantt_zoom" yaml:"gantt_zoom"`
}

// TimerConfig controls the running-timer display refresh.
type TimerConfig struct {
	RefreshIntervalMS int `mapstructure:"refresh_interval_ms" yaml:"refresh_interval_ms"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	// File receives log output. Empty disables logging.
	File string `mapstructure:"file" yaml:"file"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
	Timer   TimerConfig   `mapstructure:"timer" yaml:"timer"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/architect-board/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "architect-board", "config.yaml")
}

// DefaultDBPath returns ~/.local/share/architect-board/board.db.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "board.db")
	}
	return filepath.Join(home, ".local", "share", "architect-board", "board.db")
}

// DefaultAppConfig returns the built-in configuration, ignoring files and
// environment overrides.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Storage: StorageConfig{
			Path:      DefaultDBPath(),
			Namespace: "architectpro",
		},
		Display: DisplayConfig{
			Theme:     "auto",
			GanttZoom: "week",
		},
		Timer: TimerConfig{
			RefreshIntervalMS: 1000,
		},
	}
}

// NewViper returns a viper instance with every default registered and
// environment overrides enabled. Callers may bind flags onto it before
// passing it to LoadConfigWith.
func NewViper() *viper.Viper {
	v := viper.New()
	def := DefaultAppConfig()

	v.SetDefault("storage.path", def.Storage.Path)
	v.SetDefault("storage.namespace", def.Storage.Namespace)
	v.SetDefault("storage.max_value_bytes", def.Storage.MaxValueBytes)
	v.SetDefault("display.theme", def.Display.Theme)
	v.SetDefault("display.gantt_zoom", def.Display.GanttZoom)
	v.SetDefault("timer.refresh_interval_ms", def.Timer.RefreshIntervalMS)
	v.SetDefault("log.file", def.Log.File)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()
	return v
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	return LoadConfigWith(NewViper(), path)
}

// LoadConfigWith is LoadConfig on a caller-prepared viper instance.
func LoadConfigWith(v *viper.Viper, path string) (*AppConfig, error) {
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		_, isPathErr := err.(*os.PathError)
		_, isNotFound := err.(viper.ConfigFileNotFoundError)
		if !isPathErr && !isNotFound {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := DefaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Storage.Namespace == "" {
		cfg.Storage.Namespace = DefaultAppConfig().Storage.Namespace
	}
	if cfg.Timer.RefreshIntervalMS <= 0 {
		cfg.Timer.RefreshIntervalMS = 1000
	}
	if cfg.Storage.MaxValueBytes < 0 {
		cfg.Storage.MaxValueBytes = 0
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("storage", cfg.Storage)
	v.Set("display", cfg.Display)
	v.Set("timer", cfg.Timer)
	v.Set("log", cfg.Log)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
