package ripple

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"gioui.org/f32"
	"github.com/esimov/ripple/imop"
	"golang.org/x/image/vector"
)

// kappa is the distance of the cubic Bézier control points approximating
// a quarter circle of radius 1.
const kappa = 0.5522847498

var _ ClipSurface = (*Canvas)(nil)

// Canvas is an in-memory raster surface. It is used to render the ripple
// animation without a window, e.g. for exporting it frame by frame.
type Canvas struct {
	Img *image.RGBA

	comp *imop.Composite
	clip image.Rectangle
}

// NewCanvas creates a transparent canvas of the provided size.
func NewCanvas(r image.Rectangle) *Canvas {
	return &Canvas{
		Img:  image.NewRGBA(r),
		comp: imop.InitOp(),
		clip: r,
	}
}

// SetOp changes the composition operation used to draw the ripples.
// imop.SrcOver is the default; imop.SrcAtop keeps the ripples inside
// the content already painted on the canvas.
func (c *Canvas) SetOp(op string) error {
	return c.comp.Set(op)
}

// Clipped returns a view of the canvas drawing only inside r.
// The view shares the pixels and the composition operation with c.
func (c *Canvas) Clipped(r image.Rectangle) Surface {
	cc := *c
	cc.clip = c.clip.Intersect(r)
	return &cc
}

// Fill paints the whole canvas with col, ignoring the clip.
func (c *Canvas) Fill(col color.Color) {
	draw.Draw(c.Img, c.Img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
}

// FillRect paints r with col using the source-over operation.
func (c *Canvas) FillRect(r image.Rectangle, col color.Color) {
	draw.Draw(c.Img, r.Intersect(c.clip), &image.Uniform{col}, image.Point{}, draw.Over)
}

// FillCircle rasterizes a filled circle and composes it onto the canvas.
func (c *Canvas) FillCircle(center f32.Point, radius float32, col color.RGBA) {
	if radius <= 0 {
		return
	}
	cx, cy, r := float64(center.X), float64(center.Y), float64(radius)
	bounds := image.Rect(
		int(math.Floor(cx-r)), int(math.Floor(cy-r)),
		int(math.Ceil(cx+r)), int(math.Ceil(cy+r)),
	).Intersect(c.clip)
	if bounds.Empty() {
		return
	}

	// The rasterizer works in a coordinate space starting at the mask origin.
	ox := center.X - float32(bounds.Min.X)
	oy := center.Y - float32(bounds.Min.Y)
	k := radius * kappa

	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	z.DrawOp = draw.Src
	z.MoveTo(ox+radius, oy)
	z.CubeTo(ox+radius, oy+k, ox+k, oy+radius, ox, oy+radius)
	z.CubeTo(ox-k, oy+radius, ox-radius, oy+k, ox-radius, oy)
	z.CubeTo(ox-radius, oy-k, ox-k, oy-radius, ox, oy-radius)
	z.CubeTo(ox+k, oy-radius, ox+radius, oy-k, ox+radius, oy)
	z.ClosePath()

	mask := image.NewAlpha(bounds)
	z.Draw(mask, bounds, image.Opaque, image.Point{})

	c.comp.DrawMask(c.Img, mask, col)
}
