package internal

import (
	"github.com/BrandonKowalski/travelapp/pkg/travelapp/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Event is a virtual button press or release.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
	Repeat  bool
}

// InputProcessor maps keyboard and game controller events to virtual buttons.
type InputProcessor struct {
	flipFaceButtons bool
	controllers     map[sdl.JoystickID]*sdl.GameController
}

var (
	processor       *InputProcessor
	flipFaceButtons bool
)

// SetFlipFaceButtons selects direct face button mapping (A=A, B=B) instead
// of the Nintendo-style swap. Call before InitInputProcessor.
func SetFlipFaceButtons(flip bool) {
	flipFaceButtons = flip
}

func InitInputProcessor() {
	processor = &InputProcessor{
		flipFaceButtons: flipFaceButtons,
		controllers:     make(map[sdl.JoystickID]*sdl.GameController),
	}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		if sdl.IsGameController(i) {
			processor.openController(i)
		}
	}
}

func GetInputProcessor() *InputProcessor {
	return processor
}

// ProcessSDLEvent converts an SDL event into a virtual button event. It
// returns nil for events that do not map to a button. Controller hot-plug
// events are handled here and also return nil.
func (p *InputProcessor) ProcessSDLEvent(event sdl.Event) *Event {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		button := keyboardButton(e.Keysym.Sym)
		if button == constants.VirtualButtonUnassigned {
			return nil
		}
		return &Event{Button: button, Pressed: e.Type == sdl.KEYDOWN, Repeat: e.Repeat != 0}

	case *sdl.ControllerButtonEvent:
		button := p.controllerButton(sdl.GameControllerButton(e.Button))
		if button == constants.VirtualButtonUnassigned {
			return nil
		}
		return &Event{Button: button, Pressed: e.Type == sdl.CONTROLLERBUTTONDOWN}

	case *sdl.ControllerDeviceEvent:
		switch e.Type {
		case sdl.CONTROLLERDEVICEADDED:
			p.openController(int(e.Which))
		case sdl.CONTROLLERDEVICEREMOVED:
			p.closeController(e.Which)
		}
	}
	return nil
}

func keyboardButton(key sdl.Keycode) constants.VirtualButton {
	switch key {
	case sdl.K_UP:
		return constants.VirtualButtonUp
	case sdl.K_DOWN:
		return constants.VirtualButtonDown
	case sdl.K_LEFT:
		return constants.VirtualButtonLeft
	case sdl.K_RIGHT:
		return constants.VirtualButtonRight
	case sdl.K_RETURN, sdl.K_SPACE, sdl.K_a:
		return constants.VirtualButtonA
	case sdl.K_ESCAPE, sdl.K_BACKSPACE, sdl.K_b:
		return constants.VirtualButtonB
	case sdl.K_x:
		return constants.VirtualButtonX
	case sdl.K_y:
		return constants.VirtualButtonY
	case sdl.K_TAB:
		return constants.VirtualButtonSelect
	case sdl.K_m:
		return constants.VirtualButtonMenu
	}
	return constants.VirtualButtonUnassigned
}

func (p *InputProcessor) controllerButton(button sdl.GameControllerButton) constants.VirtualButton {
	switch button {
	case sdl.CONTROLLER_BUTTON_DPAD_UP:
		return constants.VirtualButtonUp
	case sdl.CONTROLLER_BUTTON_DPAD_DOWN:
		return constants.VirtualButtonDown
	case sdl.CONTROLLER_BUTTON_DPAD_LEFT:
		return constants.VirtualButtonLeft
	case sdl.CONTROLLER_BUTTON_DPAD_RIGHT:
		return constants.VirtualButtonRight
	case sdl.CONTROLLER_BUTTON_A:
		return p.face(constants.VirtualButtonA, constants.VirtualButtonB)
	case sdl.CONTROLLER_BUTTON_B:
		return p.face(constants.VirtualButtonB, constants.VirtualButtonA)
	case sdl.CONTROLLER_BUTTON_X:
		return p.face(constants.VirtualButtonX, constants.VirtualButtonY)
	case sdl.CONTROLLER_BUTTON_Y:
		return p.face(constants.VirtualButtonY, constants.VirtualButtonX)
	case sdl.CONTROLLER_BUTTON_START:
		return constants.VirtualButtonStart
	case sdl.CONTROLLER_BUTTON_BACK:
		return constants.VirtualButtonSelect
	case sdl.CONTROLLER_BUTTON_GUIDE:
		return constants.VirtualButtonMenu
	}
	return constants.VirtualButtonUnassigned
}

// face returns direct when face buttons are flipped, swapped otherwise.
func (p *InputProcessor) face(direct, swapped constants.VirtualButton) constants.VirtualButton {
	if p.flipFaceButtons {
		return direct
	}
	return swapped
}

func (p *InputProcessor) openController(index int) {
	controller := sdl.GameControllerOpen(index)
	if controller == nil {
		GetInternalLogger().Warn("Failed to open game controller", "index", index, "error", sdl.GetError())
		return
	}

	id := controller.Joystick().InstanceID()
	if _, exists := p.controllers[id]; exists {
		controller.Close()
		return
	}

	p.controllers[id] = controller
	GetInternalLogger().Debug("Game controller connected", "name", controller.Name(), "id", id)
}

func (p *InputProcessor) closeController(id sdl.JoystickID) {
	if controller, ok := p.controllers[id]; ok {
		controller.Close()
		delete(p.controllers, id)
		GetInternalLogger().Debug("Game controller disconnected", "id", id)
	}
}

func CloseAllControllers() {
	if processor == nil {
		return
	}
	for id, controller := range processor.controllers {
		controller.Close()
		delete(processor.controllers, id)
	}
}
