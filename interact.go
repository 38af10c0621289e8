package ripple

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"github.com/esimov/ripple/utils"
)

// Overshoot is added to the radius of unbounded ripples so that they
// still cover the element when they stop growing.
const Overshoot = 20

// DefaultColor is the ripple color used when none is provided:
// a semi-transparent neutral gray.
var DefaultColor = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x40}

// Interaction is the outcome of the pointer input of a widget in the current frame.
type Interaction struct {
	// Clicked reports whether the widget registered a click in this frame.
	Clicked bool
	// Rect is the widget area on screen.
	Rect image.Rectangle
	// Pointer is the contact point; it is used only if HasPointer is set.
	Pointer    image.Point
	HasPointer bool
}

// Center returns the ripple origin: the contact point if known, otherwise
// the center of the widget.
func (in Interaction) Center() f32.Point {
	if in.HasPointer {
		return f32.Pt(float32(in.Pointer.X), float32(in.Pointer.Y))
	}
	return rectCenter(in.Rect)
}

// Attach starts an unbounded ripple on m when the interaction is a click.
// The ripple grows up to half the longer side of the widget plus Overshoot.
// A nil color selects DefaultColor.
func Attach(m *Manager, in Interaction, c *color.NRGBA, now float64) {
	if !in.Clicked {
		return
	}
	m.AddRipple(in.Center(), pick(c), UnboundedRadius(in.Rect), now)
}

// AttachBounded is like Attach, but the ripple grows just enough to reach the
// corner of the widget farthest from the contact point. It is meant to be
// rendered clipped to the widget bounds.
func AttachBounded(m *Manager, in Interaction, c *color.NRGBA, now float64) {
	if !in.Clicked {
		return
	}
	center := in.Center()
	m.AddRipple(center, pick(c), BoundedRadius(center, in.Rect), now)
}

// UnboundedRadius returns the final radius of an unbounded ripple on r.
func UnboundedRadius(r image.Rectangle) float32 {
	return float32(utils.Max(r.Dx(), r.Dy()))/2 + Overshoot
}

// BoundedRadius returns the distance between center and the farthest corner of r.
func BoundedRadius(center f32.Point, r image.Rectangle) float32 {
	corners := [...]image.Point{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
	}
	var radius float64
	for _, p := range corners {
		dx := float64(float32(p.X) - center.X)
		dy := float64(float32(p.Y) - center.Y)
		radius = utils.Max(radius, math.Hypot(dx, dy))
	}
	return float32(radius)
}

func rectCenter(r image.Rectangle) f32.Point {
	return f32.Pt(
		float32(r.Min.X+r.Max.X)/2,
		float32(r.Min.Y+r.Max.Y)/2,
	)
}

func pick(c *color.NRGBA) color.NRGBA {
	if c == nil {
		return DefaultColor
	}
	return *c
}
