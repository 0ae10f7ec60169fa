package travelapp

import (
	"fmt"
	"math"
	"path/filepath"
	"time"

	"github.com/BrandonKowalski/travelapp/pkg/travelapp/constants"
	"github.com/BrandonKowalski/travelapp/pkg/travelapp/internal"
	"github.com/BrandonKowalski/travelapp/pkg/travelapp/internal/layout"
	"github.com/BrandonKowalski/travelapp/pkg/travelapp/internal/motion"
	"github.com/BrandonKowalski/travelapp/pkg/travelapp/onboarding"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// Notice codes pushed from controller listeners to the event loop.
const (
	noticeSlideChanged int32 = iota + 1
	noticeNavigate
)

// Layout sizes are authored for this width and scaled to the window.
const referenceWidth = 1024.0

// OnboardingOptions configures the onboarding carousel.
type OnboardingOptions struct {
	// Deck is the slide deck to show. Nil uses onboarding.DefaultDeck().
	Deck *onboarding.Deck
	// Interval is the auto-advance period. Zero uses onboarding.DefaultInterval.
	Interval time.Duration
	// ImageDir is searched for image refs without a file extension, as
	// ImageDir/<ref>.png. Refs with an extension are used as paths.
	ImageDir string
	// Controller drives the carousel when set; Deck and Interval are then
	// ignored. A controller is bound to one screen visit.
	Controller *onboarding.Controller
}

type onboardingScreenState struct {
	window     *internal.Window
	renderer   *sdl.Renderer
	controller *onboarding.Controller
	slides     []onboarding.Slide
	imageDir   string

	unsubscribe  func()
	textureCache *internal.TextureCache
	titles       []*internal.TextBlock
	descriptions []*internal.TextBlock
	arrow        *sdl.Texture

	scale          float64
	targetIndex    int
	slideTween     motion.Tween
	indicatorTween motion.Tween

	inputDelay    time.Duration
	lastInputTime time.Time

	result    OnboardingResult
	cancelled bool
	finished  bool
}

// OnboardingScreen shows the onboarding carousel. Slides advance every
// interval while the screen is visible and on A, Right or Start. Advancing
// past the last slide ends the screen with OnboardingActionCompleted.
// Returns ErrCancelled if the window is closed.
func OnboardingScreen(options OnboardingOptions) (*OnboardingResult, error) {
	controller := options.Controller
	if controller == nil {
		deck := options.Deck
		if deck == nil {
			deck = onboarding.DefaultDeck()
		}

		var err error
		controller, err = onboarding.NewController(deck,
			onboarding.WithInterval(options.Interval),
			onboarding.WithLogger(internal.GetLogger().With("component", "onboarding")),
		)
		if err != nil {
			return nil, fmt.Errorf("onboarding: %w", err)
		}
	}

	window := internal.GetWindow()
	if window == nil {
		return nil, NewInfrastructureError("onboarding", fmt.Errorf("window not initialized"))
	}

	s := &onboardingScreenState{
		window:       window,
		renderer:     window.Renderer,
		controller:   controller,
		slides:       controller.Slides(),
		imageDir:     options.ImageDir,
		textureCache: internal.NewTextureCache(controller.Count() + 1),
		scale:        float64(window.GetWidth()) / referenceWidth,
		inputDelay:   constants.DefaultInputDelay,
		targetIndex:  controller.CurrentIndex(),
	}

	now := time.Now()
	start := float64(s.targetIndex)
	s.slideTween = motion.NewTween(start, start, 0, now)
	s.indicatorTween = motion.NewTween(start, start, 0, now)

	s.unsubscribe = controller.Subscribe(onboarding.ListenerFunc(s.onControllerEvent))
	defer s.cleanup()

	s.loadTextures()

	controller.OnAppear()
	defer controller.OnDisappear()

	for !s.finished {
		s.handleEvents()
		s.update(time.Now())
		if s.finished {
			break
		}
		s.render(time.Now())
	}

	if s.cancelled {
		return nil, ErrCancelled
	}
	return &s.result, nil
}

// onControllerEvent runs on the controller's goroutine, so it only queues
// a wakeup for the event loop.
func (s *onboardingScreenState) onControllerEvent(event onboarding.Event) {
	var code int32
	switch event.Kind {
	case onboarding.EventSlideChanged:
		code = noticeSlideChanged
	case onboarding.EventNavigateToSignIn:
		code = noticeNavigate
	default:
		internal.GetInternalLogger().Debug("Onboarding event", "kind", event.Kind.String(), "index", event.Index)
		return
	}

	if err := internal.PushNotice(code); err != nil {
		internal.GetInternalLogger().Warn("Failed to queue onboarding notice", "kind", event.Kind.String(), "error", err)
	}
}

func (s *onboardingScreenState) px(v int) int32 {
	return max(1, int32(math.Round(float64(v)*s.scale)))
}

func (s *onboardingScreenState) loadTextures() {
	theme := internal.GetTheme()
	width := s.window.GetWidth()

	titleWidth := width - s.px(constants.DescriptionSideMargin)
	descriptionWidth := width - 2*s.px(constants.DescriptionSideMargin)

	for _, slide := range s.slides {
		s.titles = append(s.titles, internal.NewTextBlock(s.renderer, slide.Title, internal.Fonts.TitleFont, titleWidth, theme.TextColor))
		s.descriptions = append(s.descriptions, internal.NewTextBlock(s.renderer, slide.Description, internal.Fonts.BodyFont, descriptionWidth, theme.DescriptionColor))
	}

	iconSize := s.px(constants.NextButtonIconSize)
	arrow, err := internal.SVGTexture(s.renderer, constants.ArrowRightSVG, iconSize, iconSize)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to rasterize next button icon", "error", err)
	}
	s.arrow = arrow
}

func (s *onboardingScreenState) slideTexture(index int, box int32) *sdl.Texture {
	slide := s.slides[index]
	key := slide.ID.String()

	texture, err := s.textureCache.GetOrLoad(key, func() (*sdl.Texture, error) {
		if path := s.resolveImage(slide.ImageRef); path != "" {
			texture, err := img.LoadTexture(s.renderer, path)
			if err == nil {
				return texture, nil
			}
			internal.GetInternalLogger().Warn("Failed to load slide image; using placeholder", "path", path, "error", err)
		}
		return internal.SVGTexture(s.renderer, constants.SuitcaseSVG, box, box)
	})
	if err != nil {
		internal.GetInternalLogger().Error("Failed to create slide image", "slide", index, "error", err)
		return nil
	}
	return texture
}

func (s *onboardingScreenState) resolveImage(ref string) string {
	if ref == "" {
		return ""
	}
	if filepath.Ext(ref) != "" || s.imageDir == "" {
		return ref
	}
	return filepath.Join(s.imageDir, ref+".png")
}

func (s *onboardingScreenState) handleEvents() {
	processor := internal.GetInputProcessor()

	for event := sdl.WaitEventTimeout(constants.FrameDelay); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			s.cancelled = true
			s.finished = true
			return

		case *sdl.UserEvent:
			if button, ok := internal.ButtonFromUserEvent(e); ok {
				s.handleButton(button)
			} else if code, ok := internal.NoticeFromUserEvent(e); ok {
				// Notices only wake the loop; update reads the controller.
				internal.GetInternalLogger().Debug("Onboarding notice", "code", code)
			}

		case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.ControllerDeviceEvent:
			inputEvent := processor.ProcessSDLEvent(event)
			if inputEvent == nil || !inputEvent.Pressed || inputEvent.Repeat {
				continue
			}
			s.handleButton(inputEvent.Button)
		}
	}
}

func (s *onboardingScreenState) handleButton(button constants.VirtualButton) {
	if time.Since(s.lastInputTime) < s.inputDelay {
		return
	}
	s.lastInputTime = time.Now()

	switch button {
	case constants.VirtualButtonA, constants.VirtualButtonRight, constants.VirtualButtonStart:
		s.controller.Advance()
	}
}

func (s *onboardingScreenState) update(now time.Time) {
	if s.controller.ConsumeNavigation() {
		s.result = OnboardingResult{Action: OnboardingActionCompleted, Slides: s.controller.Count()}
		s.finished = true
		return
	}

	index := s.controller.CurrentIndex()
	if index == s.targetIndex {
		return
	}

	s.targetIndex = index
	s.slideTween = motion.NewTween(s.slideTween.Value(now), float64(index),
		constants.SlideTransitionMillis*time.Millisecond, now)
	s.indicatorTween = motion.NewTween(s.indicatorTween.Value(now), float64(index),
		constants.IndicatorAnimMillis*time.Millisecond, now)
}

func (s *onboardingScreenState) render(now time.Time) {
	s.window.Clear()

	width := s.window.GetWidth()
	height := s.window.GetHeight()

	buttonDiameter := s.px(constants.NextButtonIconSize + 2*constants.NextButtonPadding)
	buttonCenterY := height - s.px(constants.BottomMargin) - buttonDiameter/2
	indicatorY := buttonCenterY - buttonDiameter/2 - s.px(constants.IndicatorButtonSpacing) - s.px(constants.IndicatorHeight)

	position := s.slideTween.Value(now)
	for i := range s.slides {
		distance := float64(i) - position
		if math.Abs(distance) >= 1 {
			continue
		}
		offsetX := int32(math.Round(distance * float64(width)))
		s.renderSlide(i, offsetX, width, indicatorY)
	}

	s.renderIndicators(width/2, indicatorY, s.indicatorTween.Value(now))
	s.renderNextButton(width/2, buttonCenterY, buttonDiameter)

	s.window.Present()
}

func (s *onboardingScreenState) renderSlide(index int, offsetX, width, availableHeight int32) {
	box := min(int32(float64(width)*constants.SlideImageWidthRatio), availableHeight/2)
	title := s.titles[index]
	description := s.descriptions[index]

	titleSpacing := s.px(constants.TitleTopSpacing)
	descriptionSpacing := s.px(constants.DescriptionTopSpacing)

	contentHeight := box + titleSpacing + title.Height() + descriptionSpacing + description.Height()
	y := max(0, (availableHeight-contentHeight)/2)
	centerX := offsetX + width/2

	if texture := s.slideTexture(index, box); texture != nil {
		if _, _, w, h, err := texture.Query(); err == nil {
			imageW, imageH := layout.FitWidth(w, h, box, box)
			s.renderer.Copy(texture, nil, &sdl.Rect{
				X: centerX - imageW/2,
				Y: y + (box-imageH)/2,
				W: imageW,
				H: imageH,
			})
		}
	}
	y += box + titleSpacing

	title.Draw(s.renderer, centerX, y, 255)
	y += title.Height() + descriptionSpacing

	description.Draw(s.renderer, centerX, y, 255)
}

func (s *onboardingScreenState) renderIndicators(centerX, y int32, position float64) {
	theme := internal.GetTheme()
	sizes := layout.IndicatorSizes{
		ActiveWidth:   s.px(constants.IndicatorActiveWidth),
		InactiveWidth: s.px(constants.IndicatorWidth),
		Spacing:       s.px(constants.IndicatorSpacing),
	}
	height := s.px(constants.IndicatorHeight)
	radius := s.px(constants.IndicatorCornerRadius)

	for _, segment := range layout.Indicators(sizes, len(s.slides), position, centerX) {
		color := blendColor(theme.IndicatorColor, theme.AccentColor, segment.Emphasis)
		internal.FillRoundedRect(s.renderer, sdl.Rect{X: segment.X, Y: y, W: segment.W, H: height}, radius, color)
	}
}

func (s *onboardingScreenState) renderNextButton(centerX, centerY, diameter int32) {
	theme := internal.GetTheme()
	radius := diameter / 2

	internal.FillCircle(s.renderer, centerX, centerY+s.px(2), radius+s.px(1), sdl.Color{A: 40})
	internal.FillCircle(s.renderer, centerX, centerY, radius, theme.AccentColor)

	if s.arrow == nil {
		return
	}
	if _, _, w, h, err := s.arrow.Query(); err == nil {
		s.renderer.Copy(s.arrow, nil, &sdl.Rect{X: centerX - w/2, Y: centerY - h/2, W: w, H: h})
	}
}

func (s *onboardingScreenState) cleanup() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}

	s.textureCache.Destroy()

	for _, block := range s.titles {
		block.Destroy()
	}
	for _, block := range s.descriptions {
		block.Destroy()
	}

	if s.arrow != nil {
		s.arrow.Destroy()
	}
}

// blendColor mixes from toward to by t in [0, 1].
func blendColor(from, to sdl.Color, t float64) sdl.Color {
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(motion.Lerp(float64(a), float64(b), t)))
	}
	return sdl.Color{R: mix(from.R, to.R), G: mix(from.G, to.G), B: mix(from.B, to.B), A: mix(from.A, to.A)}
}
