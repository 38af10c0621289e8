package ripple

import (
	"image/color"
	"testing"

	"gioui.org/f32"
	"github.com/stretchr/testify/assert"
)

// recorder is a Surface keeping track of the circles drawn on it.
type recorder struct {
	circles []circle
}

type circle struct {
	center f32.Point
	radius float32
	color  color.RGBA
}

func (r *recorder) FillCircle(center f32.Point, radius float32, c color.RGBA) {
	r.circles = append(r.circles, circle{center: center, radius: radius, color: c})
}

var gray = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}

func TestEffect_NewIsInactive(t *testing.T) {
	assert := assert.New(t)

	e := NewEffect(f32.Pt(10, 10), gray, 50)
	assert.False(e.Active)
	assert.Zero(e.Radius)
	assert.Zero(e.StartTime)
	assert.Equal(Duration, e.Duration)
	assert.Equal(color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}, e.Color)
}

func TestEffect_UpdateInactiveIsNoop(t *testing.T) {
	e := NewEffect(f32.Pt(10, 10), gray, 50)
	before := e

	assert.False(t, e.Update(0.1))
	assert.Equal(t, before, e)
}

func TestEffect_Scenario(t *testing.T) {
	assert := assert.New(t)

	e := NewEffect(f32.Pt(10, 10), gray, 50)
	e.Start(0)
	assert.True(e.Active)

	assert.True(e.Update(0.3))
	assert.True(e.Active)
	assert.InDelta(43.75, e.Radius, 1e-4)

	assert.False(e.Update(0.6))
	assert.False(e.Active)

	// Later calls are no-ops.
	radius := e.Radius
	assert.False(e.Update(0.7))
	assert.Equal(radius, e.Radius)
}

func TestEffect_StartRestartsClock(t *testing.T) {
	assert := assert.New(t)

	e := NewEffect(f32.Pt(0, 0), gray, 10)
	e.Start(1)
	assert.True(e.Update(1.3))
	assert.Greater(e.Radius, float32(0))

	e.Start(2)
	assert.Equal(2.0, e.StartTime)
	assert.Zero(e.Radius)
	assert.True(e.Update(2.5))
}

func TestEffect_ClockSkewClampsElapsed(t *testing.T) {
	assert := assert.New(t)

	e := NewEffect(f32.Pt(0, 0), gray, 10)
	e.Start(5)
	assert.True(e.Update(4))
	assert.Zero(e.Radius)
	assert.Equal(uint8(0xff), e.Color.A)
}

func TestEffect_RadiusIsMonotonic(t *testing.T) {
	e := NewEffect(f32.Pt(0, 0), gray, 100)
	e.Start(0)

	var prev float32
	for ts := 0.0; ts < Duration; ts += 0.01 {
		if !e.Update(ts) {
			break
		}
		assert.GreaterOrEqual(t, e.Radius, prev)
		assert.LessOrEqual(t, e.Radius, e.MaxRadius)
		prev = e.Radius
	}
	assert.Greater(t, prev, float32(99))
}

func TestEffect_EaseOutCubic(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0.0, EaseOutCubic(0))
	assert.Equal(1.0, EaseOutCubic(1))
	assert.InDelta(0.875, EaseOutCubic(0.5), 1e-9)

	prev := 0.0
	for p := 0.0; p <= 1; p += 0.05 {
		v := EaseOutCubic(p)
		assert.GreaterOrEqual(v, prev)
		prev = v
	}
}

func TestEffect_FadeOut(t *testing.T) {
	testCases := []struct {
		name     string
		progress float64
		want     float64
	}{
		{name: "start", progress: 0, want: 1},
		{name: "middle", progress: 0.5, want: 1},
		{name: "fade start", progress: 0.7, want: 1},
		{name: "fading", progress: 0.85, want: 0.5},
		{name: "end", progress: 1, want: 0},
		{name: "overflow", progress: 1.2, want: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, FadeOut(tc.progress), 1e-9)
		})
	}
}

func TestEffect_FadeDoesNotCompound(t *testing.T) {
	assert := assert.New(t)

	e := NewEffect(f32.Pt(0, 0), color.NRGBA{R: 0xff, A: 0xff}, 10)
	e.Start(0)

	// progress 0.85 halves the opacity.
	assert.True(e.Update(0.51))
	first := e.Color
	assert.True(e.Update(0.51))
	assert.Equal(first, e.Color)
	assert.InDelta(127, int(e.Color.A), 1)
	// Premultiplied: the color channels never exceed the alpha.
	assert.LessOrEqual(e.Color.R, e.Color.A)

	// Before the fade starts the base color is used unchanged.
	e.Start(1)
	assert.True(e.Update(1.1))
	assert.Equal(color.RGBA{R: 0xff, A: 0xff}, e.Color)
}

func TestEffect_Render(t *testing.T) {
	assert := assert.New(t)
	var r recorder

	e := NewEffect(f32.Pt(3, 4), gray, 10)
	e.Render(&r)
	assert.Empty(r.circles, "inactive ripples must not be drawn")

	e.Start(0)
	e.Render(&r)
	assert.Empty(r.circles, "zero radius ripples must not be drawn")

	e.Update(0.1)
	e.Render(&r)
	assert.Len(r.circles, 1)
	assert.Equal(f32.Pt(3, 4), r.circles[0].center)
	assert.Equal(e.Radius, r.circles[0].radius)
}

func TestEffect_Progress(t *testing.T) {
	assert := assert.New(t)

	e := NewEffect(f32.Pt(0, 0), gray, 10)
	e.Start(1)
	assert.Equal(0.0, e.Progress(0.5))
	assert.InDelta(0.5, e.Progress(1.3), 1e-9)
	assert.Equal(1.0, e.Progress(3))
}
