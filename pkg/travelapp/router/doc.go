// Package router moves between screens with explicit data flow.
//
// Each screen is a blocking function from an input to a result. A single
// transition function decides, from the screen that just finished and its
// result, which screen runs next and with what input. A navigation stack
// remembers where forward moves came from so back moves can return there.
//
// # Basic Usage
//
//	const (
//	    ScreenOnboarding router.Screen = iota
//	    ScreenSignIn
//	)
//
//	r := router.New(router.WithLogger(logger))
//
//	r.Register(ScreenOnboarding, func(input any) (any, error) {
//	    return travelapp.OnboardingScreen(input.(travelapp.OnboardingOptions))
//	})
//
//	r.Register(ScreenSignIn, func(input any) (any, error) {
//	    return travelapp.SignInScreen(input.(travelapp.SignInSettings))
//	})
//
//	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
//	    switch from {
//	    case ScreenOnboarding:
//	        // Forward: remember how onboarding was entered.
//	        stack.Push(from, onboardingInput, nil)
//	        return ScreenSignIn, travelapp.SignInSettings{}
//	    case ScreenSignIn:
//	        if result.(*travelapp.SignInResult).Action == travelapp.SignInActionBack {
//	            if entry := stack.Pop(); entry != nil {
//	                return entry.Screen, entry.Input
//	            }
//	        }
//	    }
//	    return router.ScreenExit, nil
//	})
//
//	err := r.Run(ScreenOnboarding, onboardingInput)
//
// # Resume State
//
// Screens can return resume state that is stored on the stack when moving
// forward and handed back through the input when returning. Screens that
// always start fresh, like the onboarding carousel, push nil.
package router
