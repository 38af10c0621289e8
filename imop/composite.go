// Package imop implements the Porter-Duff composition operations used to mix
// a ripple layer with its backdrop on the headless canvas.
// Porter and Duff presented in their paper 12 different composition operations,
// but the image/draw core package implements only the source-over-destination and source.
// This package covers the remaining ones needed to keep an ink overlay inside
// (or outside) the content it is drawn on.
//
// All the operations work on alpha-premultiplied colors.
package imop

import (
	"fmt"
	"image"
	"image/color"
)

const (
	Clear   = "clear"
	Copy    = "copy"
	Dst     = "dst"
	SrcOver = "src_over"
	DstOver = "dst_over"
	SrcIn   = "src_in"
	DstIn   = "dst_in"
	SrcOut  = "src_out"
	DstOut  = "dst_out"
	SrcAtop = "src_atop"
	DstAtop = "dst_atop"
	Xor     = "xor"
)

// Composite holds the currently active composition operation.
type Composite struct {
	current string
	ops     []string
}

// InitOp returns a Composite with the SrcOver operation activated.
func InitOp() *Composite {
	return &Composite{
		current: SrcOver,
		ops: []string{
			Clear,
			Copy,
			Dst,
			SrcOver,
			DstOver,
			SrcIn,
			DstIn,
			SrcOut,
			DstOut,
			SrcAtop,
			DstAtop,
			Xor,
		},
	}
}

// Set activates one of the supported composition operations.
func (op *Composite) Set(cop string) error {
	for _, o := range op.ops {
		if o == cop {
			op.current = cop
			return nil
		}
	}
	return fmt.Errorf("unsupported composite operation: %q", cop)
}

// Get returns the currently active composition operation.
func (op *Composite) Get() string {
	return op.current
}

// factors returns the Fa and Fb Porter-Duff coefficients of the active
// operation for the source alpha as and the backdrop alpha ab.
func (op *Composite) factors(as, ab float64) (float64, float64) {
	switch op.current {
	case Clear:
		return 0, 0
	case Copy:
		return 1, 0
	case Dst:
		return 0, 1
	case DstOver:
		return 1 - ab, 1
	case SrcIn:
		return ab, 0
	case DstIn:
		return 0, as
	case SrcOut:
		return 1 - ab, 0
	case DstOut:
		return 0, 1 - as
	case SrcAtop:
		return ab, 1 - as
	case DstAtop:
		return 1 - ab, as
	case Xor:
		return 1 - ab, 1 - as
	default: // SrcOver
		return 1, 1 - as
	}
}

// Pixel composes the premultiplied source color over the premultiplied backdrop color.
func (op *Composite) Pixel(src, dst color.RGBA) color.RGBA {
	as := float64(src.A) / 255
	ab := float64(dst.A) / 255
	fa, fb := op.factors(as, ab)

	mix := func(s, d uint8) uint8 {
		v := float64(s)*fa + float64(d)*fb
		if v > 255 {
			v = 255
		}
		return uint8(v + 0.5)
	}
	return color.RGBA{
		R: mix(src.R, dst.R),
		G: mix(src.G, dst.G),
		B: mix(src.B, dst.B),
		A: mix(src.A, dst.A),
	}
}

// DrawMask composes the uniform color src onto dst through the coverage mask.
// Pixels outside the mask bounds are left untouched. On partially covered
// pixels the uncovered fraction keeps the backdrop.
func (op *Composite) DrawMask(dst *image.RGBA, mask *image.Alpha, src color.RGBA) {
	r := dst.Bounds().Intersect(mask.Bounds())

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			cov := mask.AlphaAt(x, y).A
			if cov == 0 {
				continue
			}
			i := dst.PixOffset(x, y)
			d := color.RGBA{R: dst.Pix[i], G: dst.Pix[i+1], B: dst.Pix[i+2], A: dst.Pix[i+3]}

			var res color.RGBA
			switch {
			case cov == 0xff:
				res = op.Pixel(src, d)
			case op.current == SrcOver:
				res = op.Pixel(scale(src, float64(cov)/255), d)
			default:
				res = lerp(op.Pixel(src, d), d, float64(cov)/255)
			}
			dst.Pix[i+0] = res.R
			dst.Pix[i+1] = res.G
			dst.Pix[i+2] = res.B
			dst.Pix[i+3] = res.A
		}
	}
}

func scale(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R)*f + 0.5),
		G: uint8(float64(c.G)*f + 0.5),
		B: uint8(float64(c.B)*f + 0.5),
		A: uint8(float64(c.A)*f + 0.5),
	}
}

// lerp returns a*t + b*(1-t) channel by channel.
func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x)*t + float64(y)*(1-t) + 0.5)
	}
	return color.RGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	}
}
