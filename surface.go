package ripple

import (
	"image"
	"image/color"

	"gioui.org/f32"
)

// Surface is the drawing target of the ripples.
type Surface interface {
	// FillCircle paints a filled circle with the premultiplied color c.
	FillCircle(center f32.Point, radius float32, c color.RGBA)
}

// ClipSurface is a Surface which can restrict its drawing to a rectangle.
type ClipSurface interface {
	Surface
	// Clipped returns a view of the surface drawing only inside r.
	Clipped(r image.Rectangle) Surface
}

// RoundedClipSurface is a ClipSurface which can also clip to a rounded rectangle.
type RoundedClipSurface interface {
	ClipSurface
	// ClippedRounded returns a view of the surface drawing only inside r
	// with corners rounded by radius.
	ClippedRounded(r image.Rectangle, radius int) Surface
}
