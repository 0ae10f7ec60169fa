package travelapp

import (
	"fmt"
	"time"

	"github.com/BrandonKowalski/travelapp/pkg/travelapp/constants"
	"github.com/BrandonKowalski/travelapp/pkg/travelapp/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// SignInSettings configures the sign-in screen.
type SignInSettings struct {
	Title   string // Default: "Sign In"
	Message string // Default: a short prompt
	// ContinueButton confirms (default: VirtualButtonA)
	ContinueButton constants.VirtualButton
	// BackButton returns to onboarding (default: VirtualButtonB)
	BackButton constants.VirtualButton
	// DisableBackButton ignores the back button
	DisableBackButton bool
}

type signInController struct {
	title          *internal.TextBlock
	message        *internal.TextBlock
	hint           *internal.TextBlock
	margins        internal.Padding
	continueButton constants.VirtualButton
	backButton     constants.VirtualButton
	disableBack    bool
	inputDelay     time.Duration
	lastInputTime  time.Time
	result         SignInResult
	cancelled      bool
}

// SignInScreen shows the sign-in placeholder that onboarding leads to.
// Returns ErrCancelled if the window is closed.
func SignInScreen(settings SignInSettings) (*SignInResult, error) {
	window := internal.GetWindow()
	if window == nil {
		return nil, NewInfrastructureError("sign_in", fmt.Errorf("window not initialized"))
	}
	renderer := window.Renderer
	theme := internal.GetTheme()

	if settings.Title == "" {
		settings.Title = "Sign In"
	}
	if settings.Message == "" {
		settings.Message = "Sign in to start planning your next trip."
	}

	margins := internal.SymmetricPadding(40, 20)
	maxWidth := min(window.GetWidth()-margins.Horizontal(), 800)

	controller := &signInController{
		title:          internal.NewTextBlock(renderer, settings.Title, internal.Fonts.TitleFont, maxWidth, theme.TextColor),
		message:        internal.NewTextBlock(renderer, settings.Message, internal.Fonts.BodyFont, maxWidth, theme.DescriptionColor),
		continueButton: settings.ContinueButton,
		backButton:     settings.BackButton,
		disableBack:    settings.DisableBackButton,
		margins:        margins,
		inputDelay:     constants.DefaultInputDelay,
		lastInputTime:  time.Now(),
	}
	defer controller.cleanup()

	// Set defaults
	if controller.continueButton == constants.VirtualButtonUnassigned {
		controller.continueButton = constants.VirtualButtonA
	}
	if controller.backButton == constants.VirtualButtonUnassigned {
		controller.backButton = constants.VirtualButtonB
	}

	hint := fmt.Sprintf("%s  Continue", controller.continueButton.GetName())
	if !controller.disableBack {
		hint = fmt.Sprintf("%s  Back    %s", controller.backButton.GetName(), hint)
	}
	controller.hint = internal.NewTextBlock(renderer, hint, internal.Fonts.SmallFont, maxWidth, theme.DescriptionColor)

	for {
		if !controller.handleEvents() {
			break
		}

		controller.render(window)
	}

	if controller.cancelled {
		return nil, ErrCancelled
	}

	return &controller.result, nil
}

func (c *signInController) handleEvents() bool {
	processor := internal.GetInputProcessor()

	for event := sdl.WaitEventTimeout(constants.FrameDelay); event != nil; event = sdl.PollEvent() {
		var inputEvent *internal.Event

		switch e := event.(type) {
		case *sdl.QuitEvent:
			c.cancelled = true
			return false

		case *sdl.UserEvent:
			if button, ok := internal.ButtonFromUserEvent(e); ok {
				inputEvent = &internal.Event{Button: button, Pressed: true}
			}

		case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.ControllerDeviceEvent:
			inputEvent = processor.ProcessSDLEvent(event)
		}

		if inputEvent == nil || !inputEvent.Pressed || inputEvent.Repeat {
			continue
		}

		if time.Since(c.lastInputTime) < c.inputDelay {
			continue
		}
		c.lastInputTime = time.Now()

		switch inputEvent.Button {
		case c.continueButton, constants.VirtualButtonStart:
			c.result.Action = SignInActionContinue
			return false
		case c.backButton:
			if !c.disableBack {
				c.result.Action = SignInActionBack
				return false
			}
		}
	}
	return true
}

func (c *signInController) render(window *internal.Window) {
	window.Clear()

	width := window.GetWidth()
	height := window.GetHeight()
	spacing := int32(30)

	totalHeight := c.title.Height() + spacing + c.message.Height()
	y := (height - totalHeight) / 2

	c.title.Draw(window.Renderer, width/2, y, 255)
	c.message.Draw(window.Renderer, width/2, y+c.title.Height()+spacing, 255)

	c.hint.Draw(window.Renderer, width/2, height-c.hint.Height()-c.margins.Bottom, 255)

	window.Present()
}

func (c *signInController) cleanup() {
	c.title.Destroy()
	c.message.Destroy()
	if c.hint != nil {
		c.hint.Destroy()
	}
}
