/*
Package ripple implements the Material Design ink ripple used by pressable widgets
built on top of the Gio immediate-mode GUI.

A ripple is a circle anchored at the contact point which grows with a cubic ease-out
curve and fades out during the last 30% of its 600ms lifetime. A Manager keeps at most
three ripples alive per widget, replacing the oldest one when a new press arrives.

The engine is driven by the caller once per frame:

	var (
		ink   ripple.Manager
		clock ripple.Clock
	)

	func layoutButton(gtx layout.Context, clicked bool, rect image.Rectangle, pos image.Point) {
		now := clock.Seconds(gtx.Now)
		ripple.Attach(&ink, ripple.Interaction{
			Clicked:    clicked,
			Rect:       rect,
			Pointer:    pos,
			HasPointer: true,
		}, nil, now)

		if ink.UpdateAndRender(now, ripple.NewOpsSurface(gtx.Ops)) {
			op.InvalidateOp{}.Add(gtx.Ops)
		}
	}

Most widgets do not need the above and can wrap their content into an Inkwell, which
handles the pointer input, the clipping and the frame invalidation by itself.

Besides Gio, ripples can be rendered on a Canvas, an in-memory raster surface used by
the ripple command to export the animation frames as images.
*/
package ripple
