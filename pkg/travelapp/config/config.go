// Package config loads travelapp settings from compiled defaults, an
// optional TOML file and the environment, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/BrandonKowalski/travelapp/pkg/travelapp/constants"
)

// PathEnvVar names the TOML config file when Load is called without a path.
const PathEnvVar = "TRAVELAPP_CONFIG"

// Config holds every runtime setting of the app. Zero values in the
// environment never override the file; only variables that are set do.
type Config struct {
	WindowTitle string `toml:"window_title" env:"TRAVELAPP_WINDOW_TITLE"`
	Environment string `toml:"environment" env:"ENVIRONMENT"`

	LogPath  string `toml:"log_path" env:"TRAVELAPP_LOG_PATH"`
	LogLevel string `toml:"log_level" env:"TRAVELAPP_LOG_LEVEL"`

	// AdvanceInterval is the onboarding auto-advance period.
	AdvanceInterval time.Duration `toml:"advance_interval" env:"TRAVELAPP_ADVANCE_INTERVAL"`
	// DeckPath points at a TOML slide deck. Empty uses the built-in slides.
	DeckPath string `toml:"deck_path" env:"TRAVELAPP_DECK_PATH"`
	// ImageDir holds the built-in slide images, named <image ref>.png.
	ImageDir string `toml:"image_dir" env:"TRAVELAPP_IMAGE_DIR"`

	FontPath    string `toml:"font_path" env:"TRAVELAPP_FONT_PATH"`
	AccentColor string `toml:"accent_color" env:"TRAVELAPP_ACCENT_COLOR"` // Hex RGB, e.g. "#29B573"

	// Window size used in development mode.
	WindowWidth  int32 `toml:"window_width" env:"WINDOW_WIDTH"`
	WindowHeight int32 `toml:"window_height" env:"WINDOW_HEIGHT"`

	FlipFaceButtons bool `toml:"flip_face_buttons" env:"FLIP_FACE_BUTTONS"`

	// Optional raw input device whose key presses advance the onboarding.
	ButtonDevicePath string `toml:"button_device" env:"TRAVELAPP_BUTTON_DEVICE"`
	ButtonCode       uint16 `toml:"button_code" env:"TRAVELAPP_BUTTON_CODE"`
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		WindowTitle:     "Travel",
		LogLevel:        "info",
		AdvanceInterval: 5 * time.Second,
		ImageDir:        "assets/images",
		FontPath:        "assets/fonts/Travel.ttf",
		AccentColor:     "#29B573",
		WindowWidth:     1024,
		WindowHeight:    768,
	}
}

// IsDevMode reports whether ENVIRONMENT selects development mode.
func (c Config) IsDevMode() bool {
	return c.Environment == constants.Development
}

// AccentColorHex returns the accent color as 0xRRGGBB.
func (c Config) AccentColorHex() uint32 {
	v, _ := ParseHexColor(c.AccentColor)
	return v
}

// Validate checks the loaded values.
func (c Config) Validate() error {
	var errs []error

	if c.AdvanceInterval <= 0 {
		errs = append(errs, fmt.Errorf("advance_interval must be positive, got %s", c.AdvanceInterval))
	}
	if _, ok := ParseLogLevel(c.LogLevel); !ok {
		errs = append(errs, fmt.Errorf("unknown log_level %q", c.LogLevel))
	}
	if _, err := ParseHexColor(c.AccentColor); err != nil {
		errs = append(errs, err)
	}
	if c.WindowWidth < 0 || c.WindowHeight < 0 {
		errs = append(errs, fmt.Errorf("window size must not be negative, got %dx%d", c.WindowWidth, c.WindowHeight))
	}
	if c.ButtonDevicePath != "" && c.ButtonCode == 0 {
		errs = append(errs, errors.New("button_code is required when button_device is set"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// Load builds the configuration. Dotenv files are loaded first (".env" by
// default, silently skipped when missing), then the TOML file at path (or
// at $TRAVELAPP_CONFIG when path is empty), then environment variables.
func Load(path string, dotenvFiles ...string) (Config, error) {
	cfg := Default()

	if err := loadDotEnv(dotenvFiles); err != nil {
		return cfg, err
	}

	if path == "" {
		path = os.Getenv(PathEnvVar)
	}

	if path != "" {
		meta, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return cfg, fmt.Errorf("config: decode %s: %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, key := range undecoded {
				keys[i] = key.String()
			}
			return cfg, fmt.Errorf("config: unknown keys in %s: %s", path, strings.Join(keys, ", "))
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("config: environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func loadDotEnv(files []string) error {
	explicit := len(files) > 0
	if !explicit {
		files = []string{".env"}
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if !explicit && errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: load %s: %w", file, err)
		}
	}
	return nil
}

// ParseLogLevel maps a level name to a slog.Level. Unknown names map to
// info and ok is false.
func ParseLogLevel(raw string) (level slog.Level, ok bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// ParseHexColor parses "#RRGGBB", "RRGGBB" or "0xRRGGBB".
func ParseHexColor(raw string) (uint32, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "#")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")

	if len(s) != 6 {
		return 0, fmt.Errorf("invalid color %q: want 6 hex digits", raw)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", raw, err)
	}
	return uint32(v), nil
}
