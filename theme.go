package ripple

import (
	"image/color"

	"gioui.org/text"
	"gioui.org/widget/material"
)

// ColorScheme is the subset of the Material color roles used by the ripple widgets.
type ColorScheme struct {
	Primary   color.NRGBA
	OnPrimary color.NRGBA
	Surface   color.NRGBA
	OnSurface color.NRGBA
	Outline   color.NRGBA
}

// StateOpacity holds the opacity of the state layers drawn over a widget.
type StateOpacity struct {
	Pressed float32
	Hover   float32
}

// Theme extends the Gio material theme with the colors needed by the ripples.
// It is passed explicitly to the widgets using it.
type Theme struct {
	*material.Theme
	Scheme ColorScheme
	State  StateOpacity
}

// BaselineScheme returns the Material 3 baseline light color scheme.
func BaselineScheme() ColorScheme {
	return ColorScheme{
		Primary:   color.NRGBA{R: 0x67, G: 0x50, B: 0xa4, A: 0xff},
		OnPrimary: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Surface:   color.NRGBA{R: 0xfe, G: 0xf7, B: 0xff, A: 0xff},
		OnSurface: color.NRGBA{R: 0x1d, G: 0x1b, B: 0x20, A: 0xff},
		Outline:   color.NRGBA{R: 0x79, G: 0x74, B: 0x7e, A: 0xff},
	}
}

// DefaultStateOpacity returns the Material state layer opacities.
func DefaultStateOpacity() StateOpacity {
	return StateOpacity{Pressed: 0.12, Hover: 0.08}
}

// NewTheme creates a theme using the baseline color scheme and the provided fonts.
func NewTheme(fonts []text.FontFace) *Theme {
	th := &Theme{
		Theme:  material.NewTheme(fonts),
		Scheme: BaselineScheme(),
		State:  DefaultStateOpacity(),
	}
	th.Palette.Bg = th.Scheme.Surface
	th.Palette.Fg = th.Scheme.OnSurface
	th.Palette.ContrastBg = th.Scheme.Primary
	th.Palette.ContrastFg = th.Scheme.OnPrimary

	return th
}

// RippleColor returns the color of the pressed state layer drawn over
// surface content.
func (th *Theme) RippleColor() color.NRGBA {
	return th.PressedColor(th.Scheme.OnSurface)
}

// PressedColor returns the color of the pressed state layer drawn with c as content color.
func (th *Theme) PressedColor(c color.NRGBA) color.NRGBA {
	return LinearMultiply(c, th.State.Pressed)
}

// HoverColor returns the color of the hovered state layer drawn with c as content color.
func (th *Theme) HoverColor(c color.NRGBA) color.NRGBA {
	return LinearMultiply(c, th.State.Hover)
}
