package onboarding

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/looplab/fsm"
	"go.uber.org/atomic"
)

// DefaultInterval is the auto-advance period.
const DefaultInterval = 5 * time.Second

// State is the controller's lifecycle state.
type State string

const (
	StateActive    State = "active"
	StateCompleted State = "completed"
)

const eventComplete = "complete"

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the clock used for the auto-advance ticker.
func WithClock(c clock.Clock) Option {
	return func(ctrl *Controller) {
		if c != nil {
			ctrl.clock = c
		}
	}
}

// WithInterval sets the auto-advance period. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(ctrl *Controller) {
		if d > 0 {
			ctrl.interval = d
		}
	}
}

// WithLogger sets the logger. By default the controller logs nothing.
func WithLogger(logger *slog.Logger) Option {
	return func(ctrl *Controller) {
		if logger != nil {
			ctrl.logger = logger
		}
	}
}

// Controller walks a Deck one slide at a time. It advances on ticks of its
// own timer while the owning view is visible and on manual requests, and
// announces completion exactly once.
//
// Advance calls are serialized, so timer ticks and button presses may
// arrive from different goroutines.
type Controller struct {
	deck     *Deck
	clock    clock.Clock
	interval time.Duration
	logger   *slog.Logger

	// mu guards the ticker fields and serializes advances.
	mu         sync.Mutex
	machine    *fsm.FSM
	ticker     *clock.Ticker
	stopTicker chan struct{}

	index             *atomic.Int64
	timerActive       *atomic.Bool
	timerReleases     *atomic.Int32
	pendingNavigation *atomic.Bool

	listeners *listenerRegistry
}

// NewController returns a controller positioned on the first slide of deck.
func NewController(deck *Deck, opts ...Option) (*Controller, error) {
	if deck == nil {
		return nil, ErrNilDeck
	}
	if deck.Count() == 0 {
		return nil, ErrEmptyDeck
	}

	c := &Controller{
		deck:              deck,
		clock:             clock.New(),
		interval:          DefaultInterval,
		logger:            slog.New(slog.DiscardHandler),
		index:             atomic.NewInt64(0),
		timerActive:       atomic.NewBool(false),
		timerReleases:     atomic.NewInt32(0),
		pendingNavigation: atomic.NewBool(false),
		listeners:         newListenerRegistry(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.machine = fsm.NewFSM(
		string(StateActive),
		fsm.Events{
			{Name: eventComplete, Src: []string{string(StateActive)}, Dst: string(StateCompleted)},
		},
		fsm.Callbacks{
			"enter_" + string(StateCompleted): c.onEnterCompleted,
		},
	)

	return c, nil
}

// Subscribe registers listener for controller events and returns a function
// that removes it. The returned function is safe to call more than once.
func (c *Controller) Subscribe(listener Listener) (unsubscribe func()) {
	return c.listeners.add(listener)
}

// Advance moves to the next slide, or completes onboarding when the last
// slide is showing. After completion it does nothing.
func (c *Controller) Advance() {
	c.advance(TriggerManual, nil)
}

// OnAppear starts the auto-advance timer. Starting a second timer while one
// is running is not supported and is ignored. A completed controller never
// starts a timer.
func (c *Controller) OnAppear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ticker != nil {
		c.logger.Warn("Auto-advance timer already running; ignoring start")
		return
	}

	if c.machine.Is(string(StateCompleted)) {
		c.logger.Debug("Onboarding already completed; not starting timer")
		return
	}

	ticker := c.clock.Ticker(c.interval)
	stop := make(chan struct{})
	c.ticker = ticker
	c.stopTicker = stop
	c.timerActive.Store(true)

	c.logger.Debug("Auto-advance timer started", "interval", c.interval.String())

	go c.run(ticker, stop)
}

// OnDisappear releases the auto-advance timer if it is still held.
func (c *Controller) OnDisappear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.releaseTimerLocked(TriggerManual)
}

// CurrentIndex returns the index of the active slide.
func (c *Controller) CurrentIndex() int {
	return int(c.index.Load())
}

// CurrentSlide returns the active slide.
func (c *Controller) CurrentSlide() Slide {
	return c.deck.MustSlideAt(c.CurrentIndex())
}

// Slides returns the deck's slides in order.
func (c *Controller) Slides() []Slide {
	return c.deck.Slides()
}

// Count returns the number of slides.
func (c *Controller) Count() int {
	return c.deck.Count()
}

// Interval returns the auto-advance period.
func (c *Controller) Interval() time.Duration {
	return c.interval
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return State(c.machine.Current())
}

// Completed reports whether onboarding has finished.
func (c *Controller) Completed() bool {
	return c.machine.Is(string(StateCompleted))
}

// TimerActive reports whether the auto-advance timer is currently held.
func (c *Controller) TimerActive() bool {
	return c.timerActive.Load()
}

// TimerReleases returns how many times a held timer has been released.
func (c *Controller) TimerReleases() int {
	return int(c.timerReleases.Load())
}

// ShouldNavigate reports whether a navigation to sign-in is pending.
func (c *Controller) ShouldNavigate() bool {
	return c.pendingNavigation.Load()
}

// ConsumeNavigation returns true exactly once after completion; the router
// calls it to take ownership of the navigation.
func (c *Controller) ConsumeNavigation() bool {
	return c.pendingNavigation.CompareAndSwap(true, false)
}

func (c *Controller) run(ticker *clock.Ticker, stop chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			c.advance(TriggerTimer, stop)
		}
	}
}

// advance is the single transition function shared by ticks and manual
// requests. Ticks carry the stop channel of the timer that produced them
// so a tick received just before its timer was released is dropped.
func (c *Controller) advance(trigger Trigger, tickerStop chan struct{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if tickerStop != nil && tickerStop != c.stopTicker {
		return
	}

	if c.machine.Is(string(StateCompleted)) {
		c.logger.Debug("Advance ignored; onboarding completed", "trigger", trigger.String())
		return
	}

	current := int(c.index.Load())
	if current < c.deck.Count()-1 {
		next := current + 1
		// Panics if the cursor invariant is broken.
		c.deck.MustSlideAt(next)
		c.index.Store(int64(next))

		c.logger.Debug("Slide changed", "index", next, "trigger", trigger.String())
		c.listeners.publish(Event{Kind: EventSlideChanged, Index: next, Trigger: trigger})
		return
	}

	if err := c.machine.Event(context.Background(), eventComplete, trigger); err != nil {
		c.logger.Error("Failed to complete onboarding", "error", err)
	}
}

// onEnterCompleted runs inside machine.Event while c.mu is held.
func (c *Controller) onEnterCompleted(_ context.Context, e *fsm.Event) {
	trigger := TriggerManual
	if len(e.Args) > 0 {
		if t, ok := e.Args[0].(Trigger); ok {
			trigger = t
		}
	}

	c.releaseTimerLocked(trigger)
	c.pendingNavigation.Store(true)

	c.logger.Info("Onboarding completed", "slides", c.deck.Count(), "trigger", trigger.String())
	c.listeners.publish(Event{Kind: EventNavigateToSignIn, Index: c.CurrentIndex(), Trigger: trigger})
}

func (c *Controller) releaseTimerLocked(trigger Trigger) {
	if c.ticker == nil {
		return
	}

	c.ticker.Stop()
	close(c.stopTicker)
	c.ticker = nil
	c.stopTicker = nil
	c.timerActive.Store(false)
	c.timerReleases.Inc()

	c.logger.Debug("Auto-advance timer released", "index", c.CurrentIndex())
	c.listeners.publish(Event{Kind: EventTimerReleased, Index: c.CurrentIndex(), Trigger: trigger})
}
