package travelapp

// OnboardingAction is how the onboarding screen was left.
type OnboardingAction int

const (
	OnboardingActionNone      OnboardingAction = iota
	OnboardingActionCompleted                  // Last slide advanced; go to sign-in
)

// OnboardingResult is returned by OnboardingScreen.
type OnboardingResult struct {
	Action OnboardingAction
	// Slides is the number of slides the user went through.
	Slides int
}

// SignInAction is how the sign-in screen was left.
type SignInAction int

const (
	SignInActionNone     SignInAction = iota
	SignInActionContinue              // A button
	SignInActionBack                  // B button; replay onboarding
)

// SignInResult is returned by SignInScreen.
type SignInResult struct {
	Action SignInAction
}
