package ripple

import (
	"image"
	"image/color"
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/io/pointer"
	"gioui.org/io/router"
	"gioui.org/layout"
	"gioui.org/op"
	"github.com/stretchr/testify/assert"
)

func TestClock_Seconds(t *testing.T) {
	assert := assert.New(t)

	var c Clock
	t0 := time.Unix(1000, 0)
	assert.Equal(0.0, c.Seconds(t0))
	assert.InDelta(0.25, c.Seconds(t0.Add(250*time.Millisecond)), 1e-9)
	assert.InDelta(-1, c.Seconds(t0.Add(-time.Second)), 1e-9)
}

func TestInkwell_ClickStartsRipple(t *testing.T) {
	assert := assert.New(t)

	var (
		ops op.Ops
		r   router.Router
		ink = Inkwell{Bounded: true}
	)
	t0 := time.Unix(1000, 0)
	size := image.Pt(100, 40)

	frame := func(now time.Time) layout.Dimensions {
		ops.Reset()
		gtx := layout.Context{
			Ops:         &ops,
			Queue:       &r,
			Now:         now,
			Constraints: layout.Exact(size),
		}
		dims := ink.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Dimensions{Size: gtx.Constraints.Max}
		})
		r.Frame(&ops)
		return dims
	}

	dims := frame(t0)
	assert.Equal(size, dims.Size)
	assert.False(ink.Clicked())
	assert.Zero(ink.Ripples())

	r.Queue(
		pointer.Event{
			Type:     pointer.Press,
			Source:   pointer.Mouse,
			Buttons:  pointer.ButtonPrimary,
			Position: f32.Pt(10, 10),
		},
		pointer.Event{
			Type:     pointer.Release,
			Source:   pointer.Mouse,
			Position: f32.Pt(10, 10),
		},
	)

	frame(t0.Add(100 * time.Millisecond))
	assert.True(ink.Clicked())
	assert.False(ink.Clicked())
	assert.Equal(1, ink.Ripples())
	assert.True(ink.Active())
	if effects := ink.Effects(); assert.Len(effects, 1) {
		assert.Equal(f32.Pt(10, 10), effects[0].Center)
		assert.InDelta(0.0, effects[0].StartTime, 1e-9)
	}

	frame(t0.Add(time.Second))
	assert.Zero(ink.Ripples())
	assert.False(ink.Active())
}

func TestInkwell_Clear(t *testing.T) {
	ink := Inkwell{}
	ink.ink.AddRipple(f32.Pt(0, 0), DefaultColor, 10, 0)
	ink.clicks = 2

	ink.Clear()
	assert.Zero(t, ink.Ripples())
	assert.False(t, ink.Clicked())
}

func TestInkwell_Surface(t *testing.T) {
	var ops op.Ops
	bounds := image.Rect(0, 0, 80, 32)
	gtx := layout.Context{Ops: &ops}

	testCases := []struct {
		name   string
		ink    Inkwell
		clip   *image.Rectangle
		radius int
	}{
		{name: "unbounded", ink: Inkwell{CornerRadius: 6}},
		{name: "bounded", ink: Inkwell{Bounded: true}, clip: &bounds},
		{name: "rounded", ink: Inkwell{Bounded: true, CornerRadius: 6}, clip: &bounds, radius: 6},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			s, ok := tc.ink.surface(gtx, bounds).(*OpsSurface)
			if !assert.True(ok) {
				return
			}
			assert.Equal(tc.clip, s.clip)
			assert.Equal(tc.radius, s.radius)
		})
	}
}

func TestOpsSurface_ClippedRounded(t *testing.T) {
	assert := assert.New(t)

	var ops op.Ops
	r := image.Rect(2, 2, 40, 20)
	s := NewOpsSurface(&ops).ClippedRounded(r, -3).(*OpsSurface)
	assert.Equal(r, *s.clip)
	assert.Zero(s.radius)

	s = NewOpsSurface(&ops).ClippedRounded(r, 9).(*OpsSurface)
	assert.Equal(9, s.radius)
	assert.NotPanics(func() {
		s.FillCircle(f32.Pt(2, 2), 30, color.RGBA{A: 0x40})
	})
}
