// cmd/jot/main.go
package main

import (
	"flag"
	"fmt"
	stlog "log" // Standard log for errors before the logger is ready
	"os"

	"github.com/bethropolis/jot/internal/app"
	"github.com/bethropolis/jot/internal/config"
	"github.com/bethropolis/jot/internal/fonts"
	"github.com/bethropolis/jot/internal/logger"
	"github.com/bethropolis/jot/internal/theme"
	"github.com/gdamore/tcell/v2"
)

func main() {
	// --- Argument & Flag Parsing ---
	flags := config.NewFlags(flag.CommandLine)
	args, err := flags.Parse(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, config.Version)
		return
	}
	var filePath string
	if len(args) > 0 {
		filePath = args[0]
	}

	// --- Configuration ---
	cfg, cfgErr := config.LoadConfig(*flags.ConfigFilePath, flags)
	if cfg == nil {
		stlog.Fatalf("Failed to load configuration: %v", cfgErr)
	}

	// --- Logger Initialization ---
	if err := logger.Init(cfg.Logger, config.AppName); err != nil {
		stlog.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Close()
	if cfgErr != nil {
		logger.Warnf("Config: %v (continuing with defaults)", cfgErr)
	}

	logger.Infof("Starting %s %s...", config.AppName, config.Version)
	if filePath != "" {
		logger.Debugf("File path specified: %s", filePath)
	}

	// --- Collaborators ---
	themes := theme.NewManager()
	if cfg.Theme.File != "" {
		if err := themes.LoadFile(cfg.Theme.File); err != nil {
			logger.Warnf("Theme: %v (using %s)", err, themes.Current().Name)
		}
	}

	catalog, err := fonts.NewCatalog(fonts.SystemProvider{})
	if err != nil {
		logger.Warnf("Fonts: %v", err)
	}
	logger.Debugf("Fonts: %d families available", len(catalog.Families()))

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Errorf("Error creating screen: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		os.Exit(1)
	}

	// --- Create and Run App ---
	jotApp, err := app.New(screen, app.Options{
		Config:   cfg,
		Theme:    themes.Current(),
		Catalog:  catalog,
		FilePath: filePath,
	})
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		logger.Close()
		os.Exit(1)
	}

	if err := jotApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		logger.Close()
		os.Exit(1)
	}

	logger.Infof("%s finished.", config.AppName)
}
