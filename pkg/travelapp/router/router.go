package router

import (
	"errors"
	"fmt"
	"log/slog"
)

// Screen is a type-safe identifier for screens.
// Applications define their own Screen constants using iota.
type Screen int

// ScreenFunc runs a screen until it finishes. The input and result types
// are screen-specific.
type ScreenFunc func(input any) (result any, err error)

// TransitionFunc is called after each screen completes to determine the next screen.
// It receives the screen that just completed, its result, and the navigation stack.
//
// Return (screen, input) to navigate to a new screen.
// Return stack.Pop() values to go back.
// Return (ScreenExit, nil) to exit the router.
type TransitionFunc func(from Screen, result any, stack *Stack) (next Screen, input any)

// ScreenExit is a special Screen value that signals the router to exit.
const ScreenExit Screen = -1

var (
	// ErrNoTransition is returned by Run when OnTransition was never called.
	ErrNoTransition = errors.New("router: no transition function set")
	// ErrScreenNotRegistered is returned by Run when navigation reaches a
	// screen without a registered function.
	ErrScreenNotRegistered = errors.New("router: screen not registered")
)

// Option configures a Router.
type Option func(*Router)

// WithLogger logs every transition to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Router manages screen navigation with explicit data flow.
// Screens are registered with their functions, and a single transition
// function handles all routing logic in one place.
type Router struct {
	screens    map[Screen]ScreenFunc
	names      map[Screen]string
	transition TransitionFunc
	stack      *Stack
	logger     *slog.Logger
}

// New creates a new Router.
func New(opts ...Option) *Router {
	r := &Router{
		screens: make(map[Screen]ScreenFunc),
		names:   make(map[Screen]string),
		stack:   NewStack(),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a screen to the router.
// The screen function will be called when navigating to this screen.
func (r *Router) Register(screen Screen, fn ScreenFunc) *Router {
	r.screens[screen] = fn
	return r
}

// Name sets the name used for screen in logs.
func (r *Router) Name(screen Screen, name string) *Router {
	r.names[screen] = name
	return r
}

// ScreenName returns the registered name of screen, or its number.
func (r *Router) ScreenName(screen Screen) string {
	if screen == ScreenExit {
		return "exit"
	}
	if name, ok := r.names[screen]; ok {
		return name
	}
	return fmt.Sprintf("screen %d", int(screen))
}

// OnTransition sets the transition function that determines navigation flow.
// This function is called after each screen completes.
func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.transition = fn
	return r
}

// Run starts the router at the given screen with the given input.
// It continues running until the transition function returns ScreenExit
// or a screen fails.
func (r *Router) Run(start Screen, input any) error {
	if r.transition == nil {
		return ErrNoTransition
	}

	current := start
	currentInput := input

	for {
		fn, ok := r.screens[current]
		if !ok {
			return fmt.Errorf("%w: %s", ErrScreenNotRegistered, r.ScreenName(current))
		}

		result, err := fn(currentInput)
		if err != nil {
			return fmt.Errorf("router: screen %d error: %w", current, err)
		}

		next, nextInput := r.transition(current, result, r.stack)

		r.logger.Debug("Screen transition",
			"from", r.ScreenName(current),
			"to", r.ScreenName(next),
			"stack_depth", r.stack.Len(),
		)

		if next == ScreenExit {
			return nil
		}

		current = next
		currentInput = nextInput
	}
}

// Stack returns the navigation stack for use in transition functions.
func (r *Router) Stack() *Stack {
	return r.stack
}
