package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"filegrid/internal/eventbus"
)

const envPrefix = "FILEGRID"

// Navigation bounds accepted by navigation.bound
const (
	BoundSelected = "selected"
	BoundRows     = "rows"
)

// Renderers accepted by columns[].renderer
const (
	RendererText   = "text"
	RendererStatus = "status"
)

// Config represents the application configuration
type Config struct {
	Version    int              `mapstructure:"version" toml:"version"`
	DataFile   string           `mapstructure:"data_file" toml:"data_file,omitempty"`
	Columns    []ColumnConfig   `mapstructure:"columns" toml:"columns"`
	Selection  SelectionConfig  `mapstructure:"selection" toml:"selection"`
	Navigation NavigationConfig `mapstructure:"navigation" toml:"navigation"`
	Keyboard   KeyboardConfig   `mapstructure:"keyboard" toml:"keyboard"`
	UISettings UISettings       `mapstructure:"ui" toml:"ui"`
	Download   DownloadConfig   `mapstructure:"download" toml:"download"`
	Log        LogConfig        `mapstructure:"log" toml:"log"`
}

// ColumnConfig describes one grid column
type ColumnConfig struct {
	Display  string `mapstructure:"display" toml:"display"`
	Field    string `mapstructure:"field" toml:"field"`
	Renderer string `mapstructure:"renderer" toml:"renderer,omitempty"`
}

// DisableRule disables selection of rows whose Field differs from NotEquals.
// An empty Field disables nothing.
type DisableRule struct {
	Field     string `mapstructure:"field" toml:"field"`
	NotEquals string `mapstructure:"not_equals" toml:"not_equals"`
}

// SelectionConfig controls row eligibility and what select-all reports
type SelectionConfig struct {
	DisableWhen               DisableRule `mapstructure:"disable_when" toml:"disable_when"`
	SelectAllIncludesDisabled bool        `mapstructure:"select_all_includes_disabled" toml:"select_all_includes_disabled"`
}

// NavigationConfig controls keyboard navigation
type NavigationConfig struct {
	Bound string `mapstructure:"bound" toml:"bound"`
}

// KeyboardConfig controls key handling
type KeyboardConfig struct {
	EnterTogglesActive bool `mapstructure:"enter_toggles_active" toml:"enter_toggles_active"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Mouse bool `mapstructure:"mouse" toml:"mouse"`
}

// DownloadConfig controls where manifests are written
type DownloadConfig struct {
	Dir string `mapstructure:"dir" toml:"dir"`
}

// LogConfig controls the log file
type LogConfig struct {
	File string `mapstructure:"file" toml:"file"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// Option configures a config service
type Option func(*configService)

// WithPath overrides the config file location
func WithPath(path string) Option {
	return func(cs *configService) {
		if path != "" {
			cs.filePath = path
		}
	}
}

// WithBus publishes config events on bus
func WithBus(bus eventbus.EventBus) Option {
	return func(cs *configService) {
		cs.bus = bus
	}
}

// WithFlags lets command line flags override file and env values.
// Only flags the user actually set take precedence.
func WithFlags(flags *pflag.FlagSet) Option {
	return func(cs *configService) {
		cs.flags = flags
	}
}

// flagKeys maps command line flag names to config keys
var flagKeys = map[string]string{
	"data":         "data_file",
	"log":          "log.file",
	"download-dir": "download.dir",
	"mouse":        "ui.mouse",
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	flags    *pflag.FlagSet
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService(opts ...Option) ConfigService {
	cs := &configService{filePath: DefaultPath()}
	for _, opt := range opts {
		opt(cs)
	}
	return cs
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "filegrid", "config.toml")
}

// Path returns the config file this service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration. A missing file yields the defaults.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.read(cs.filePath, false)
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:     cs.filePath,
			DataFile: cfg.DataFile,
		})
	}

	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	return cs.read(path, true)
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (cs *configService) read(path string, mustExist bool) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	v.SetConfigFile(path)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cs.flags != nil {
		for name, key := range flagKeys {
			if f := cs.flags.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		notFound := errors.Is(err, os.ErrNotExist)
		if !notFound || mustExist {
			if notFound {
				return nil, fmt.Errorf("config file not found: %s", path)
			}
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if len(cfg.Columns) == 0 {
		cfg.Columns = DefaultColumns()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("version", d.Version)
	v.SetDefault("data_file", d.DataFile)
	v.SetDefault("selection.disable_when.field", d.Selection.DisableWhen.Field)
	v.SetDefault("selection.disable_when.not_equals", d.Selection.DisableWhen.NotEquals)
	v.SetDefault("selection.select_all_includes_disabled", d.Selection.SelectAllIncludesDisabled)
	v.SetDefault("navigation.bound", d.Navigation.Bound)
	v.SetDefault("keyboard.enter_toggles_active", d.Keyboard.EnterTogglesActive)
	v.SetDefault("ui.mouse", d.UISettings.Mouse)
	v.SetDefault("download.dir", d.Download.Dir)
	v.SetDefault("log.file", d.Log.File)
}

// Validate checks enumerated settings
func (c *Config) Validate() error {
	switch c.Navigation.Bound {
	case BoundSelected, BoundRows:
	default:
		return fmt.Errorf("invalid navigation.bound %q: want %q or %q", c.Navigation.Bound, BoundSelected, BoundRows)
	}
	for i, col := range c.Columns {
		switch col.Renderer {
		case "", RendererText, RendererStatus:
		default:
			return fmt.Errorf("invalid renderer %q for column %d", col.Renderer, i)
		}
	}
	return nil
}

// DefaultColumns returns the file download columns
func DefaultColumns() []ColumnConfig {
	return []ColumnConfig{
		{Display: "Name", Field: "name"},
		{Display: "Device", Field: "device"},
		{Display: "Path", Field: "path"},
		{Display: "Status", Field: "status", Renderer: RendererStatus},
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Columns: DefaultColumns(),
		Selection: SelectionConfig{
			DisableWhen: DisableRule{
				Field:     "status",
				NotEquals: "available",
			},
			SelectAllIncludesDisabled: true,
		},
		Navigation: NavigationConfig{Bound: BoundSelected},
		UISettings: UISettings{Mouse: true},
		Download:   DownloadConfig{Dir: "."},
		Log:        LogConfig{File: "filegrid.log"},
	}
}
