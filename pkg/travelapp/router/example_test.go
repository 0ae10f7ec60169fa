package router_test

import (
	"fmt"

	"github.com/BrandonKowalski/travelapp/pkg/travelapp/router"
)

// Screen identifiers - use typed constants for compile-time safety
const (
	ScreenOnboarding router.Screen = iota
	ScreenSignIn
)

type OnboardingInput struct {
	Slides int
}

type OnboardingResult struct {
	Completed bool
}

type SignInAction int

const (
	SignInActionContinue SignInAction = iota
	SignInActionBack
)

type SignInResult struct {
	Action SignInAction
}

// Example walks onboarding into sign-in, goes back once to replay the
// onboarding, then continues out of sign-in.
func Example() {
	r := router.New()

	onboardingRuns := 0
	signInRuns := 0

	r.Register(ScreenOnboarding, func(input any) (any, error) {
		in := input.(OnboardingInput)
		onboardingRuns++
		fmt.Printf("Onboarding run %d: %d slides\n", onboardingRuns, in.Slides)
		return OnboardingResult{Completed: true}, nil
	})

	r.Register(ScreenSignIn, func(input any) (any, error) {
		signInRuns++
		if signInRuns == 1 {
			fmt.Println("Sign in: back")
			return SignInResult{Action: SignInActionBack}, nil
		}
		fmt.Println("Sign in: continue")
		return SignInResult{Action: SignInActionContinue}, nil
	})

	start := OnboardingInput{Slides: 3}

	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
		switch from {
		case ScreenOnboarding:
			if result.(OnboardingResult).Completed {
				stack.Push(from, start, nil)
				return ScreenSignIn, nil
			}

		case ScreenSignIn:
			if result.(SignInResult).Action == SignInActionBack {
				if entry := stack.Pop(); entry != nil {
					return entry.Screen, entry.Input
				}
			}
		}
		return router.ScreenExit, nil
	})

	_ = r.Run(ScreenOnboarding, start)

	// Output:
	// Onboarding run 1: 3 slides
	// Sign in: back
	// Onboarding run 2: 3 slides
	// Sign in: continue
}
