package ripple

import (
	"image/color"
	"math"

	"gioui.org/f32"
	"github.com/esimov/ripple/utils"
)

const (
	// Duration is the lifetime of a ripple in seconds.
	Duration = 0.6

	// fadeStart is the progress after which the ripple starts fading out.
	fadeStart = 0.7
)

// EaseOutCubic maps the time progress t in [0, 1] to the value progress
// with a fast start decelerating towards 1.
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// FadeOut returns the opacity multiplier at progress t: fully opaque up to
// 70% of the lifetime, then linearly fading to 0.
func FadeOut(t float64) float64 {
	if t <= fadeStart {
		return 1
	}
	return utils.Clamp((1-t)/(1-fadeStart), 0, 1)
}

// Effect is a single ripple: a circle centered at the press point which
// expands up to MaxRadius and fades out over its lifetime.
type Effect struct {
	Center    f32.Point
	Radius    float32
	MaxRadius float32
	// Color is the premultiplied color to draw with in the current frame.
	// It is derived from the base color on every Update.
	Color     color.RGBA
	StartTime float64
	Duration  float64
	Active    bool

	base color.RGBA
}

// NewEffect creates an inactive ripple. Call Start to run it.
func NewEffect(center f32.Point, c color.Color, maxRadius float32) Effect {
	base := toRGBA(c)
	return Effect{
		Center:    center,
		MaxRadius: maxRadius,
		Color:     base,
		Duration:  Duration,
		base:      base,
	}
}

// Start activates the ripple at time now (in seconds). Starting an already
// running ripple restarts its clock.
func (e *Effect) Start(now float64) {
	e.Active = true
	e.StartTime = now
	e.Radius = 0
	e.Color = e.base
}

// Progress returns the fraction of the lifetime elapsed at now, in [0, 1].
func (e *Effect) Progress(now float64) float64 {
	if e.Duration <= 0 {
		return 1
	}
	return utils.Clamp((now-e.StartTime)/e.Duration, 0, 1)
}

// Update advances the animation to time now. It reports whether the ripple
// is still running and must be drawn in this frame. The ripple turns
// inactive once its lifetime has elapsed and every later call is a no-op.
func (e *Effect) Update(now float64) bool {
	if !e.Active {
		return false
	}
	elapsed := utils.Max(now-e.StartTime, 0)
	if elapsed >= e.Duration {
		e.Active = false
		return false
	}
	progress := elapsed / e.Duration

	e.Radius = e.MaxRadius * float32(EaseOutCubic(progress))
	e.Color = fade(e.base, FadeOut(progress))

	return true
}

// Render draws the ripple on s. Inactive and zero sized ripples are skipped.
func (e *Effect) Render(s Surface) {
	if e.Active && e.Radius > 0 {
		s.FillCircle(e.Center, e.Radius, e.Color)
	}
}
