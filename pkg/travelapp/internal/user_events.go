package internal

import (
	"errors"

	"github.com/BrandonKowalski/travelapp/pkg/travelapp/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// SDL user event types registered at Init. Code carries the payload:
// a VirtualButton for button events, a notice code for notices.
var (
	buttonEventType uint32
	noticeEventType uint32
)

func registerUserEvents() error {
	base := sdl.RegisterEvents(2)
	if base == ^uint32(0) {
		return errors.New("no SDL user events available")
	}
	buttonEventType = base
	noticeEventType = base + 1
	return nil
}

// PushButtonEvent queues a virtual button press from outside the event
// loop, e.g. from the evdev reader goroutine.
func PushButtonEvent(button constants.VirtualButton) error {
	_, err := sdl.PushEvent(&sdl.UserEvent{Type: buttonEventType, Timestamp: sdl.GetTicks(), Code: int32(button)})
	return err
}

// PushNotice queues an application notice for the event loop. Safe to call
// from any goroutine.
func PushNotice(code int32) error {
	_, err := sdl.PushEvent(&sdl.UserEvent{Type: noticeEventType, Timestamp: sdl.GetTicks(), Code: code})
	return err
}

// ButtonFromUserEvent extracts the button from an event queued by PushButtonEvent.
func ButtonFromUserEvent(e *sdl.UserEvent) (constants.VirtualButton, bool) {
	if e.Type != buttonEventType {
		return constants.VirtualButtonUnassigned, false
	}
	return constants.VirtualButton(e.Code), true
}

// NoticeFromUserEvent extracts the code from an event queued by PushNotice.
func NoticeFromUserEvent(e *sdl.UserEvent) (int32, bool) {
	if e.Type != noticeEventType {
		return 0, false
	}
	return e.Code, true
}
