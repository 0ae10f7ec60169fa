package internal

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/BrandonKowalski/travelapp/pkg/travelapp/constants"
	"github.com/holoplot/go-evdev"
)

const defaultButtonCoolDown = 300 * time.Millisecond

// HardwareButtonConfig selects a raw input device key that acts as the
// A button. Handhelds expose some physical buttons only through evdev.
type HardwareButtonConfig struct {
	DevicePath string
	KeyCode    uint16
	CoolDown   time.Duration
}

func (c HardwareButtonConfig) enabled() bool {
	return c.DevicePath != "" && c.KeyCode != 0
}

type hardwareButton struct {
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

var hwButton *hardwareButton

func startHardwareButton(cfg HardwareButtonConfig) (*hardwareButton, error) {
	dev, err := evdev.Open(cfg.DevicePath)
	if err != nil {
		return nil, fmt.Errorf("open input device %s: %w", cfg.DevicePath, err)
	}

	if name, err := dev.Name(); err == nil {
		GetInternalLogger().Debug("Listening for hardware button", "device", name, "code", cfg.KeyCode)
	}

	if cfg.CoolDown <= 0 {
		cfg.CoolDown = defaultButtonCoolDown
	}

	ctx, cancel := context.WithCancel(context.Background())
	hb := &hardwareButton{cancel: cancel}

	hb.wg.Add(2)
	go func() {
		defer hb.wg.Done()
		<-ctx.Done()
		dev.Close()
	}()
	go func() {
		defer hb.wg.Done()
		readHardwareButton(ctx, dev, cfg)
	}()

	return hb, nil
}

func readHardwareButton(ctx context.Context, dev *evdev.InputDevice, cfg HardwareButtonConfig) {
	var last time.Time

	for {
		ev, err := dev.ReadOne()
		if err != nil {
			if ctx.Err() == nil {
				GetInternalLogger().Error("Hardware button read failed", "error", err)
			}
			return
		}

		if ev.Type != evdev.EV_KEY || ev.Code != evdev.EvCode(cfg.KeyCode) || ev.Value != 1 {
			continue
		}

		now := time.Now()
		if now.Sub(last) < cfg.CoolDown {
			continue
		}
		last = now

		if err := PushButtonEvent(constants.VirtualButtonA); err != nil {
			GetInternalLogger().Warn("Failed to queue hardware button press", "error", err)
		}
	}
}

func (hb *hardwareButton) stop() {
	hb.cancel()
	hb.wg.Wait()
}
