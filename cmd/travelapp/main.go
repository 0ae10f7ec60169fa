// Command travelapp runs the travel app: the onboarding carousel followed
// by the sign-in screen.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/BrandonKowalski/travelapp/pkg/travelapp"
	"github.com/BrandonKowalski/travelapp/pkg/travelapp/config"
	"github.com/BrandonKowalski/travelapp/pkg/travelapp/onboarding"
	"github.com/BrandonKowalski/travelapp/pkg/travelapp/router"
)

const (
	screenOnboarding router.Screen = iota
	screenSignIn
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	deck := onboarding.DefaultDeck()
	if cfg.DeckPath != "" {
		if deck, err = onboarding.LoadDeckFile(cfg.DeckPath); err != nil {
			return err
		}
	}

	if err := travelapp.Init(travelapp.OptionsFromConfig(cfg)); err != nil {
		return err
	}
	defer travelapp.Close()

	logger := travelapp.GetLogger()
	logger.Info("Starting", "slides", deck.Count(), "interval", cfg.AdvanceInterval.String())

	start := travelapp.OnboardingOptions{
		Deck:     deck,
		Interval: cfg.AdvanceInterval,
		ImageDir: cfg.ImageDir,
	}

	r := router.New(router.WithLogger(logger)).
		Name(screenOnboarding, "onboarding").
		Name(screenSignIn, "sign_in")

	r.Register(screenOnboarding, func(input any) (any, error) {
		return travelapp.OnboardingScreen(input.(travelapp.OnboardingOptions))
	})
	r.Register(screenSignIn, func(input any) (any, error) {
		return travelapp.SignInScreen(input.(travelapp.SignInSettings))
	})
	r.OnTransition(transition(start, logger))

	if err := r.Run(screenOnboarding, start); err != nil {
		if travelapp.IsCancelled(err) {
			logger.Info("Window closed")
			return nil
		}
		logger.Error("Exiting on error", "error", err)
		return err
	}
	return nil
}

// transition routes onboarding to sign-in and back. Each onboarding visit
// gets a fresh controller because OnboardingOptions never carries one.
func transition(start travelapp.OnboardingOptions, logger *slog.Logger) router.TransitionFunc {
	return func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
		switch from {
		case screenOnboarding:
			res := result.(*travelapp.OnboardingResult)
			if res.Action == travelapp.OnboardingActionCompleted {
				stack.Push(from, start, nil)
				return screenSignIn, travelapp.SignInSettings{}
			}

		case screenSignIn:
			res := result.(*travelapp.SignInResult)
			switch res.Action {
			case travelapp.SignInActionBack:
				if entry := stack.Pop(); entry != nil {
					return entry.Screen, entry.Input
				}
			case travelapp.SignInActionContinue:
				logger.Info("Sign in continued; exiting")
			}
		}
		return router.ScreenExit, nil
	}
}
