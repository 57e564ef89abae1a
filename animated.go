package rwui

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// LerpFunc blends between two values of the same type. t is the interpolation
// fraction in [0, 1]: 0 yields from, 1 yields to.
type LerpFunc[V any] func(from, to V, t float64) V

// LerpFloat linearly interpolates between two float64 values.
func LerpFloat(from, to float64, t float64) float64 {
	return from + (to-from)*t
}

// LerpVec2 linearly interpolates each component of two vectors.
func LerpVec2(from, to Vec2, t float64) Vec2 {
	return Vec2{
		X: LerpFloat(from.X, to.X, t),
		Y: LerpFloat(from.Y, to.Y, t),
	}
}

// LerpColor linearly interpolates each channel of two colors.
func LerpColor(from, to Color, t float64) Color {
	return Color{
		R: LerpFloat(from.R, to.R, t),
		G: LerpFloat(from.G, to.G, t),
		B: LerpFloat(from.B, to.B, t),
		A: LerpFloat(from.A, to.A, t),
	}
}

// Animated is a value that moves from its current state toward a target state
// over a fixed duration as frame time elapses. The current value only changes
// through Update; the target only changes through SetTarget.
//
// Retargeting mid-flight restarts the interpolation from whatever the current
// value is at that moment, over the full configured duration; the current
// value never jumps.
//
// The interpolation fraction is driven by a [gween.Tween] over [0, 1] so any
// gween easing curve can shape the motion (see [NewAnimatedEase]). The default
// is linear.
type Animated[V any] struct {
	from     V
	current  V
	target   V
	lerp     LerpFunc[V]
	easing   ease.TweenFunc
	duration float32 // seconds
	tween    *gween.Tween
	done     bool
}

// NewAnimated creates an animated value with current = target = initial, the
// given fixed animation duration, and linear interpolation.
func NewAnimated[V any](initial V, duration time.Duration, lerp LerpFunc[V]) *Animated[V] {
	return NewAnimatedEase(initial, duration, lerp, ease.Linear)
}

// NewAnimatedEase is like [NewAnimated] but shapes the interpolation fraction
// with the given gween easing curve.
func NewAnimatedEase[V any](initial V, duration time.Duration, lerp LerpFunc[V], fn ease.TweenFunc) *Animated[V] {
	return &Animated[V]{
		from:     initial,
		current:  initial,
		target:   initial,
		lerp:     lerp,
		easing:   fn,
		duration: float32(duration.Seconds()),
		done:     true,
	}
}

// SetTarget sets a new target value. The current value is untouched; the next
// Update continues smoothly from wherever current presently sits toward the
// new target, completing within the configured duration of this call.
// A non-positive duration snaps immediately.
func (a *Animated[V]) SetTarget(target V) {
	a.from = a.current
	a.target = target
	if a.duration <= 0 {
		a.current = target
		a.tween = nil
		a.done = true
		return
	}
	a.tween = gween.New(0, 1, a.duration, a.easing)
	a.done = false
}

// Update advances the current value toward the target proportionally to the
// elapsed time over the configured duration. Once the accumulated elapsed time
// reaches the duration, current snaps exactly to target and the animation
// reports complete. No-op if already complete.
func (a *Animated[V]) Update(elapsed time.Duration) {
	if a.done || a.tween == nil {
		return
	}
	fraction, finished := a.tween.Update(float32(elapsed.Seconds()))
	if finished {
		a.current = a.target
		a.done = true
		return
	}
	a.current = a.lerp(a.from, a.target, float64(fraction))
}

// Current returns the present interpolated value.
func (a *Animated[V]) Current() V {
	return a.current
}

// Target returns the value the animation is heading toward.
func (a *Animated[V]) Target() V {
	return a.target
}

// Complete reports whether the current value has reached the target.
func (a *Animated[V]) Complete() bool {
	return a.done
}
