package config

import "time"

// Base application details
const AppName = "jot"
const Version = "0.3.0"
const DefaultConfigFileName = "config.toml"
const WindowTitle = "Text Editor"

// UI Layout
const StatusBarHeight = 1
const TitleBarHeight = 1
const ButtonBarHeight = 1
const SidePanelWidth = 26

// Status Bar
const MessageTimeout = 4 * time.Second

// Editor defaults
const DefaultTabWidth = 4
const DefaultScrollOff = 3
const SystemClipboard = true
const DefaultMaxUndo = 0 // unbounded, like the native text widget

// Font defaults
const DefaultFontFamily = "TimesNewRoman"
const DefaultFontSize = 14

// File dialog defaults
const DefaultFilterName = "Text Files"
const DefaultFilterPattern = "*.txt"
