// Package motion provides the easing used by the onboarding animations.
package motion

import "time"

// EaseInOut maps linear progress in [0, 1] onto a smoothstep curve.
func EaseInOut(t float64) float64 {
	t = clamp01(t)
	return t * t * (3 - 2*t)
}

// Progress returns elapsed/duration clamped to [0, 1]. A non-positive
// duration is treated as already finished.
func Progress(elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return 1
	}
	return clamp01(float64(elapsed) / float64(duration))
}

// Lerp interpolates between from and to.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Tween animates a single value from From to To over Duration.
type Tween struct {
	From     float64
	To       float64
	Start    time.Time
	Duration time.Duration
}

// NewTween starts a tween at now.
func NewTween(from, to float64, duration time.Duration, now time.Time) Tween {
	return Tween{From: from, To: to, Start: now, Duration: duration}
}

// Value returns the eased value at now.
func (tw Tween) Value(now time.Time) float64 {
	return Lerp(tw.From, tw.To, EaseInOut(Progress(now.Sub(tw.Start), tw.Duration)))
}

// Done reports whether the tween has reached its end value.
func (tw Tween) Done(now time.Time) bool {
	return Progress(now.Sub(tw.Start), tw.Duration) >= 1
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
