// Package travelapp is the SDL front end of the travel app: it owns the
// window, input and theming, and provides the onboarding carousel and
// sign-in screens that the router moves between.
package travelapp

import (
	"log/slog"

	"github.com/BrandonKowalski/travelapp/pkg/travelapp/config"
	"github.com/BrandonKowalski/travelapp/pkg/travelapp/constants"
	"github.com/BrandonKowalski/travelapp/pkg/travelapp/internal"
	"github.com/BrandonKowalski/travelapp/pkg/travelapp/theme"
)

// Options configures initialization.
type Options struct {
	WindowTitle     string                 // Window title displayed in windowed mode
	WindowOptions   internal.WindowOptions // SDL window flags (borderless, resizable, etc.)
	Width, Height   int32                  // Window size in development mode
	DevMode         bool                   // Windowed at Width x Height instead of the display size
	FontPath        string                 // TTF font used for all text
	AccentColorHex  uint32                 // Accent color; zero keeps the theme default
	LogPath         string                 // Full path for log file including filename (creates parent directories)
	LogLevel        string                 // Application log level name
	FlipFaceButtons bool                   // Use direct face button mapping (A=A, B=B) instead of Nintendo-style swap

	// Optional evdev key that advances like the A button.
	ButtonDevicePath string
	ButtonCode       uint16
}

// OptionsFromConfig maps loaded configuration onto Options.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		WindowTitle:      cfg.WindowTitle,
		Width:            cfg.WindowWidth,
		Height:           cfg.WindowHeight,
		DevMode:          cfg.IsDevMode(),
		FontPath:         cfg.FontPath,
		AccentColorHex:   cfg.AccentColorHex(),
		LogPath:          cfg.LogPath,
		LogLevel:         cfg.LogLevel,
		FlipFaceButtons:  cfg.FlipFaceButtons,
		ButtonDevicePath: cfg.ButtonDevicePath,
		ButtonCode:       cfg.ButtonCode,
	}
}

// Init initializes logging, theming, the SDL subsystems and input handling.
// Must be called before any screen is shown.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}
	internal.SetRawLogLevel(options.LogLevel)

	if options.DevMode {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	internal.SetFlipFaceButtons(options.FlipFaceButtons)
	internal.SetTheme(theme.InitTravelTheme(options.FontPath, options.AccentColorHex))

	err := internal.Init(internal.InitConfig{
		Title:         options.WindowTitle,
		Width:         options.Width,
		Height:        options.Height,
		DevMode:       options.DevMode,
		WindowOptions: options.WindowOptions,
		FontSizes: internal.FontSizes{
			Title: constants.TitleFontSize,
			Body:  constants.BodyFontSize,
			Small: constants.SmallFontSize,
		},
		HardwareButton: internal.HardwareButtonConfig{
			DevicePath: options.ButtonDevicePath,
			KeyCode:    options.ButtonCode,
		},
	})
	if err != nil {
		return NewInfrastructureError("init", err)
	}

	internal.GetLogger().Debug("Initialized", "title", options.WindowTitle, "dev_mode", options.DevMode)
	return nil
}

// Close releases all SDL resources and flushes the log file.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}
