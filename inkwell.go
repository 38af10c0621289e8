package ripple

import (
	"image"
	"image/color"
	"time"

	"gioui.org/gesture"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/unit"
)

// Clock converts the Gio animation time into the float seconds used by the
// ripples. Its origin is the first frame time it observes.
type Clock struct {
	epoch time.Time
}

// Seconds returns the seconds elapsed between the clock origin and now.
func (c *Clock) Seconds(now time.Time) float64 {
	if c.epoch.IsZero() {
		c.epoch = now
	}
	return now.Sub(c.epoch).Seconds()
}

// Inkwell adds ripples to the widget it wraps: every click on the
// widget area starts a new ripple from the contact point.
type Inkwell struct {
	// Bounded ripples are clipped to the widget and grow up to its farthest
	// corner; unbounded ripples overflow it by Overshoot.
	Bounded bool
	// CornerRadius rounds the clip of bounded ripples.
	CornerRadius unit.Dp
	// Color of the ripples. DefaultColor is used when nil.
	Color *color.NRGBA
	// Clock, if set, is shared with other widgets of the same window.
	Clock *Clock

	ink    Manager
	click  gesture.Click
	clock  Clock
	clicks int
}

// Layout lays out the content w and draws the running ripples over it.
// While any ripple is running a new frame is requested.
func (in *Inkwell) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	now := in.now(gtx.Now)

	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	content := macro.Stop()
	bounds := image.Rectangle{Max: dims.Size}

	in.update(gtx, bounds, now)

	content.Add(gtx.Ops)
	area := clip.Rect(bounds).Push(gtx.Ops)
	in.click.Add(gtx.Ops)
	area.Pop()

	if in.ink.UpdateAndRender(now, in.surface(gtx, bounds)) {
		op.InvalidateOp{}.Add(gtx.Ops)
	}
	return dims
}

// surface returns the surface the ripples are drawn on.
func (in *Inkwell) surface(gtx layout.Context, bounds image.Rectangle) Surface {
	s := NewOpsSurface(gtx.Ops)
	if !in.Bounded {
		return s
	}
	if rr := gtx.Dp(in.CornerRadius); rr > 0 {
		return s.ClippedRounded(bounds, rr)
	}
	return s.Clipped(bounds)
}

// update processes the click events of the previous frame.
func (in *Inkwell) update(gtx layout.Context, bounds image.Rectangle, now float64) {
	for _, e := range in.click.Events(gtx) {
		if e.Type != gesture.TypeClick {
			continue
		}
		in.clicks++

		it := Interaction{
			Clicked:    true,
			Rect:       bounds,
			Pointer:    e.Position,
			HasPointer: true,
		}
		if in.Bounded {
			AttachBounded(&in.ink, it, in.Color, now)
		} else {
			Attach(&in.ink, it, in.Color, now)
		}
	}
}

// Clicked reports whether there are pending clicks. If so, Clicked
// removes the earliest one.
func (in *Inkwell) Clicked() bool {
	if in.clicks == 0 {
		return false
	}
	in.clicks--
	return true
}

// Active reports whether any ripple is running.
func (in *Inkwell) Active() bool {
	return in.ink.Active()
}

// Ripples returns the number of ripples held by the widget.
func (in *Inkwell) Ripples() int {
	return in.ink.Len()
}

// Effects returns a snapshot of the ripples held by the widget, oldest first.
func (in *Inkwell) Effects() []Effect {
	return in.ink.Effects()
}

// Clear drops the ripples and the pending clicks, e.g. when the widget is disposed.
func (in *Inkwell) Clear() {
	in.ink.Clear()
	in.clicks = 0
}

func (in *Inkwell) now(t time.Time) float64 {
	if in.Clock != nil {
		return in.Clock.Seconds(t)
	}
	return in.clock.Seconds(t)
}
