package main

import (
	"fmt"
	"image/color"
	"strings"

	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/esimov/ripple"
	"github.com/esimov/ripple/utils"
)

// controls holds the live ripple settings of the stories window.
type controls struct {
	pressedHex widget.Editor
	hoverHex   widget.Editor
	pressed    widget.Float
	hover      widget.Float
}

func newControls(pressedHex string, pressedOpacity float32, hoverHex string, hoverOpacity float32) *controls {
	c := &controls{
		pressedHex: widget.Editor{SingleLine: true},
		hoverHex:   widget.Editor{SingleLine: true},
	}
	c.pressedHex.SetText(pressedHex)
	c.hoverHex.SetText(hoverHex)
	c.pressed.Value = utils.Clamp(pressedOpacity, 0, 1)
	c.hover.Value = utils.Clamp(hoverOpacity, 0, 1)

	return c
}

// apply copies the opacities into the theme and returns the pressed and
// hover ripple colors for the current input.
func (c *controls) apply(th *ripple.Theme) (pressed, hover color.NRGBA) {
	th.State.Pressed = c.pressed.Value
	th.State.Hover = c.hover.Value
	return rippleColors(th, c.pressedHex.Text(), c.hoverHex.Text())
}

// rippleColors derives the ripple colors from the hex text of the inputs.
// While a text is not a valid color the theme colors are used instead.
func rippleColors(th *ripple.Theme, pressedHex, hoverHex string) (pressed, hover color.NRGBA) {
	pressed = th.RippleColor()
	if c, err := utils.HexToNRGBA(strings.TrimSpace(pressedHex)); err == nil {
		pressed = th.PressedColor(c)
	}
	hover = th.HoverColor(th.Scheme.Primary)
	if c, err := utils.HexToNRGBA(strings.TrimSpace(hoverHex)); err == nil {
		hover = th.HoverColor(c)
	}
	return pressed, hover
}

// layout draws the controls, one setting per row.
func (c *controls) layout(gtx C, th *ripple.Theme) D {
	return layoutRows(gtx,
		row(th, "Pressed color", hexInput(th, &c.pressedHex)),
		row(th, "Pressed opacity", slider(th, &c.pressed)),
		row(th, "Hover color", hexInput(th, &c.hoverHex)),
		row(th, "Hover opacity", slider(th, &c.hover)),
	)
}

func hexInput(th *ripple.Theme, ed *widget.Editor) func(gtx C) D {
	return func(gtx C) D {
		gtx.Constraints.Min.X = gtx.Dp(unit.Dp(120))
		gtx.Constraints.Max.X = gtx.Constraints.Min.X
		return material.Editor(th.Theme, ed, "#RRGGBB").Layout(gtx)
	}
}

func slider(th *ripple.Theme, f *widget.Float) func(gtx C) D {
	return func(gtx C) D {
		return layoutCols(gtx,
			func(gtx C) D {
				gtx.Constraints.Min.X = gtx.Dp(unit.Dp(200))
				gtx.Constraints.Max.X = gtx.Constraints.Min.X
				return material.Slider(th.Theme, f, 0, 1).Layout(gtx)
			},
			material.Body2(th.Theme, fmt.Sprintf("%.2f", f.Value)).Layout,
		)
	}
}

// progressText describes the progress of every ripple held by a story.
func progressText(name string, effects []ripple.Effect, now float64) string {
	if len(effects) == 0 {
		return name + ": idle"
	}
	parts := make([]string, len(effects))
	for i := range effects {
		parts[i] = fmt.Sprintf("%.0f%%", effects[i].Progress(now)*100)
	}
	return name + ": " + strings.Join(parts, " ")
}
