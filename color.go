package ripple

import (
	"image/color"

	"github.com/esimov/ripple/utils"
)

// toRGBA converts c to its alpha-premultiplied 8-bit form.
func toRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// toNRGBA converts a premultiplied color to the non-premultiplied form expected by Gio.
func toNRGBA(c color.RGBA) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// fade scales every channel of the premultiplied color c by f, which is the
// premultiplied equivalent of scaling the opacity alone.
func fade(c color.RGBA, f float64) color.RGBA {
	f = utils.Clamp(f, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}

// LinearMultiply returns c with its opacity multiplied by f.
func LinearMultiply(c color.NRGBA, f float32) color.NRGBA {
	a := utils.Clamp(float32(c.A)*f+0.5, 0, 255)
	c.A = uint8(a)
	return c
}
