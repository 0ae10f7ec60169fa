package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// InitConfig carries everything the SDL layer needs at startup.
type InitConfig struct {
	Title          string
	Width, Height  int32
	DevMode        bool
	WindowOptions  WindowOptions
	FontSizes      FontSizes
	HardwareButton HardwareButtonConfig
}

// Init brings up SDL, the window, fonts and input. On error everything
// already initialized is torn down again.
func Init(cfg InitConfig) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("init SDL: %w", err)
	}

	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		sdl.Quit()
		return fmt.Errorf("init SDL_image: %w", err)
	}

	if err := ttf.Init(); err != nil {
		img.Quit()
		sdl.Quit()
		return fmt.Errorf("init SDL_ttf: %w", err)
	}

	if err := registerUserEvents(); err != nil {
		quitSubsystems()
		return err
	}

	if cfg.WindowOptions.IsZero() {
		if cfg.DevMode {
			cfg.WindowOptions = WindowOptions{Resizable: true}
		} else {
			cfg.WindowOptions = WindowOptions{Borderless: true}
		}
	}

	var err error
	window, err = initWindow(cfg.Title, cfg.Width, cfg.Height, cfg.DevMode, cfg.WindowOptions)
	if err != nil {
		quitSubsystems()
		return err
	}

	fontPath := GetTheme().FontPath
	if err := initFonts(fontPath, cfg.FontSizes); err != nil {
		window.closeWindow()
		window = nil
		quitSubsystems()
		return err
	}

	InitInputProcessor()

	if cfg.HardwareButton.enabled() {
		hb, err := startHardwareButton(cfg.HardwareButton)
		if err != nil {
			// The app is fully usable without it.
			GetInternalLogger().Warn("Hardware button unavailable", "error", err)
		} else {
			hwButton = hb
		}
	}

	return nil
}

func SDLCleanup() {
	if hwButton != nil {
		hwButton.stop()
		hwButton = nil
	}
	CloseAllControllers()
	closeFonts()
	if window != nil {
		window.closeWindow()
		window = nil
	}
	quitSubsystems()
	CloseLogger()
}

func quitSubsystems() {
	ttf.Quit()
	img.Quit()
	sdl.Quit()
}
