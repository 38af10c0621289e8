package ripple

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

var _ RoundedClipSurface = (*OpsSurface)(nil)

// OpsSurface draws the ripples into a Gio operation list.
type OpsSurface struct {
	ops    *op.Ops
	clip   *image.Rectangle
	radius int
}

// NewOpsSurface returns a surface recording its drawing operations into ops.
func NewOpsSurface(ops *op.Ops) *OpsSurface {
	return &OpsSurface{ops: ops}
}

// Clipped returns a surface restricted to r. The clip is expressed in the
// coordinate space active when the ripples are drawn.
func (s *OpsSurface) Clipped(r image.Rectangle) Surface {
	return &OpsSurface{ops: s.ops, clip: &r}
}

// ClippedRounded is like Clipped, with the corners of r rounded by radius.
func (s *OpsSurface) ClippedRounded(r image.Rectangle, radius int) Surface {
	if radius < 0 {
		radius = 0
	}
	return &OpsSurface{ops: s.ops, clip: &r, radius: radius}
}

// FillCircle draws a filled circle centered at center with the provided radius.
func (s *OpsSurface) FillCircle(center f32.Point, radius float32, c color.RGBA) {
	switch {
	case s.clip != nil && s.radius > 0:
		defer clip.UniformRRect(*s.clip, s.radius).Push(s.ops).Pop()
	case s.clip != nil:
		defer clip.Rect(*s.clip).Push(s.ops).Pop()
	}

	// The arc starts from the leftmost point of the circle. Both foci are
	// placed in the center, relative to the pen position.
	orig := center.Sub(f32.Pt(radius, 0))
	focus := center.Sub(orig)

	var path clip.Path
	path.Begin(s.ops)
	path.Move(orig)
	path.Arc(focus, focus, 2*math.Pi)
	path.Close()

	paint.FillShape(s.ops, toNRGBA(c), clip.Outline{Path: path.End()}.Op())
}
