// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/jot/internal/fonts"
	"github.com/bethropolis/jot/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"`
	Editor EditorConfig  `toml:"editor"`
	Font   FontConfig    `toml:"font"`
	Dialog DialogConfig  `toml:"dialog"`
	Theme  ThemeConfig   `toml:"theme"`
}

// EditorConfig holds text area settings.
type EditorConfig struct {
	TabWidth        int  `toml:"tab_width"`
	ScrollOff       int  `toml:"scroll_off"`
	SystemClipboard bool `toml:"system_clipboard"`
	MaxUndo         int  `toml:"max_undo"`
}

// FontConfig is the font selected at startup.
type FontConfig struct {
	Family string `toml:"family"`
	Size   int    `toml:"size"`
}

// DialogConfig controls the file picker.
type DialogConfig struct {
	FilterName    string `toml:"filter_name"`
	FilterPattern string `toml:"filter_pattern"`
	StartDir      string `toml:"start_dir"`
}

// ThemeConfig points at an optional TOML theme file.
type ThemeConfig struct {
	File string `toml:"file"`
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			TabWidth:        DefaultTabWidth,
			ScrollOff:       DefaultScrollOff,
			SystemClipboard: SystemClipboard,
			MaxUndo:         DefaultMaxUndo,
		},
		Font: FontConfig{
			Family: DefaultFontFamily,
			Size:   DefaultFontSize,
		},
		Dialog: DialogConfig{
			FilterName:    DefaultFilterName,
			FilterPattern: DefaultFilterPattern,
		},
	}
}

// DefaultPath returns ~/.config/jot/config.toml, or "" when the config dir is unknown.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName)
}

// loadFromFile decodes filePath on top of cfg. A missing file is not an error.
func loadFromFile(filePath string, cfg *Config) error {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		// The logger is not up yet during the first load.
		logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, undecoded)
	}
	return nil
}

// validate resets invalid values to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.ScrollOff < 0 {
		c.Editor.ScrollOff = defaults.Editor.ScrollOff
	}
	if c.Editor.MaxUndo < 0 {
		c.Editor.MaxUndo = defaults.Editor.MaxUndo
	}
	if c.Font.Family == "" {
		c.Font.Family = defaults.Font.Family
	}
	if c.Font.Size < fonts.MinSize || c.Font.Size > fonts.MaxSize {
		c.Font.Size = defaults.Font.Size
	}
	if c.Dialog.FilterPattern == "" {
		c.Dialog.FilterPattern = defaults.Dialog.FilterPattern
		c.Dialog.FilterName = defaults.Dialog.FilterName
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// Load builds a config from defaults, the file at configFilePath (or the
// default location when empty) and flag overrides, then validates it.
func Load(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	effectivePath := configFilePath
	if effectivePath == "" {
		effectivePath = DefaultPath()
	}

	var err error
	if effectivePath != "" {
		err = loadFromFile(effectivePath, cfg)
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return cfg, err
}

// LoadConfig runs Load once and stores the result for Get.
// It should be called only once, typically from main.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		loadedConfig, loadErr = Load(configFilePath, flags)
	})
	return loadedConfig, loadErr
}

// Get returns the loaded application configuration. Panics if LoadConfig wasn't called.
func Get() *Config {
	if loadedConfig == nil {
		panic("config.Get() called before config.LoadConfig()")
	}
	return loadedConfig
}
