// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/bethropolis/jot/internal/logger"
)

// Flags holds values parsed from command-line flags.
// Only flags that were actually set override the config file.
type Flags struct {
	set *flag.FlagSet

	ConfigFilePath  *string
	Version         *bool
	LogLevel        *string
	LogFilePath     *string
	TabWidth        *int
	ScrollOff       *int
	MaxUndo         *int
	FontFamily      *string
	FontSize        *int
	StartDir        *string
	ThemeFile       *string
	EnableTags      *string
	DisableTags     *string
	EnablePkgs      *string
	DisablePkgs     *string
	DebugLog        *bool
	SystemClipboard *bool
}

// NewFlags defines all flags on fs. Pass flag.CommandLine from main.
func NewFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{set: fs}
	f.ConfigFilePath = fs.String("config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", AppName, DefaultConfigFileName))
	f.Version = fs.Bool("version", false, "Show version information and exit")
	f.LogLevel = fs.String("loglevel", "", "Log level (debug, info, warn, error)")
	f.LogFilePath = fs.String("logfile", "", "Path to write log file (use '-' for stderr)")
	f.TabWidth = fs.Int("tabwidth", 0, "Number of cells per tab stop")
	f.ScrollOff = fs.Int("scrolloff", -1, "Lines of context above/below cursor")
	f.MaxUndo = fs.Int("maxundo", -1, "Maximum native undo steps (0 = unbounded)")
	f.FontFamily = fs.String("font", "", "Initial font family")
	f.FontSize = fs.Int("fontsize", 0, "Initial font size (8-30)")
	f.StartDir = fs.String("dir", "", "Directory the file dialog starts in")
	f.ThemeFile = fs.String("theme", "", "Path to a TOML theme file")
	f.EnableTags = fs.String("log-tags", "", "Comma-separated list of log tags to enable")
	f.DisableTags = fs.String("log-disable-tags", "", "Comma-separated list of log tags to disable")
	f.EnablePkgs = fs.String("log-packages", "", "Comma-separated list of packages to enable")
	f.DisablePkgs = fs.String("log-disable-packages", "", "Comma-separated list of packages to disable")
	f.DebugLog = fs.Bool("debug-log", false, "Trace log filter decisions to stderr")
	f.SystemClipboard = fs.Bool("system-clipboard", SystemClipboard, "Use the system clipboard instead of an internal one")
	return f
}

// Parse parses args and returns the remaining non-flag arguments.
func (f *Flags) Parse(args []string) ([]string, error) {
	if err := f.set.Parse(args); err != nil {
		return nil, err
	}
	return f.set.Args(), nil
}

// ApplyOverrides copies every flag that was set onto cfg.
func (f *Flags) ApplyOverrides(cfg *Config) {
	f.set.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "loglevel":
			if *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath
		case "tabwidth":
			if *f.TabWidth > 0 {
				cfg.Editor.TabWidth = *f.TabWidth
			}
		case "scrolloff":
			if *f.ScrollOff >= 0 {
				cfg.Editor.ScrollOff = *f.ScrollOff
			}
		case "maxundo":
			if *f.MaxUndo >= 0 {
				cfg.Editor.MaxUndo = *f.MaxUndo
			}
		case "font":
			if *f.FontFamily != "" {
				cfg.Font.Family = *f.FontFamily
			}
		case "fontsize":
			cfg.Font.Size = *f.FontSize
		case "dir":
			cfg.Dialog.StartDir = *f.StartDir
		case "theme":
			cfg.Theme.File = *f.ThemeFile
		case "system-clipboard":
			cfg.Editor.SystemClipboard = *f.SystemClipboard
		case "log-tags":
			cfg.Logger.EnabledTags = splitCommaList(*f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = splitCommaList(*f.DisableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = splitCommaList(*f.EnablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = splitCommaList(*f.DisablePkgs)
		case "debug-log":
			logger.SetDebugFilter(*f.DebugLog)
		}
	})
}

func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
