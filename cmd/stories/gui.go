package main

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/esimov/ripple"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

const buttonHeight = unit.Dp(40)

var (
	cardColor      = color.NRGBA{R: 25, G: 118, B: 210, A: 0xff}
	surfaceVariant = color.NRGBA{R: 232, G: 222, B: 248, A: 0xff}
)

// GUI is the ripple stories window. Every story wraps a surface into an
// Inkwell configured in a different way.
type GUI struct {
	th    *ripple.Theme
	ctrl  *controls
	clock ripple.Clock

	// Ripple colors, derived from the controls on every frame.
	pressed color.NRGBA
	hover   color.NRGBA
	card    color.NRGBA

	bounded    ripple.Inkwell
	unbounded  ripple.Inkwell
	button     ripple.Inkwell
	cardButton ripple.Inkwell
	custom     ripple.Inkwell

	presses int
}

// NewGUI initializes the stories.
func NewGUI(th *ripple.Theme, ctrl *controls) *GUI {
	g := &GUI{th: th, ctrl: ctrl}

	g.bounded = ripple.Inkwell{Bounded: true, CornerRadius: 12, Color: &g.pressed, Clock: &g.clock}
	g.unbounded = ripple.Inkwell{Color: &g.pressed, Clock: &g.clock}
	g.button = ripple.Inkwell{Bounded: true, CornerRadius: buttonHeight / 2, Color: &g.pressed, Clock: &g.clock}
	g.cardButton = ripple.Inkwell{Bounded: true, CornerRadius: buttonHeight / 2, Color: &g.card, Clock: &g.clock}
	g.custom = ripple.Inkwell{Bounded: true, CornerRadius: 8, Color: &g.hover, Clock: &g.clock}

	return g
}

// Run is the core method of the Gio GUI application.
// It redraws the window on every frame event and terminates when the
// window is closed or the ESC key is pressed.
func (g *GUI) Run() error {
	w := app.NewWindow(
		app.Title("Ripple Stories"),
		app.Size(unit.Dp(700), unit.Dp(600)),
	)

	var ops op.Ops
	for e := range w.Events() {
		switch e := e.(type) {
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			g.draw(gtx)
			e.Frame(gtx.Ops)
		case key.Event:
			handleKey(w, e)
		case system.DestroyEvent:
			g.dispose()
			return e.Err
		}
	}
	return nil
}

// performer is implemented by *app.Window.
type performer interface {
	Perform(system.Action)
}

// handleKey closes the window on ESC.
func handleKey(w performer, e key.Event) {
	if e.Name == key.NameEscape {
		w.Perform(system.ActionClose)
	}
}

// dispose drops the running ripples.
func (g *GUI) dispose() {
	for _, in := range g.inkwells() {
		in.Clear()
	}
}

func (g *GUI) inkwells() []*ripple.Inkwell {
	return []*ripple.Inkwell{&g.bounded, &g.unbounded, &g.button, &g.cardButton, &g.custom}
}

// draw lays out the controls and the stories.
func (g *GUI) draw(gtx C) D {
	paint.Fill(gtx.Ops, g.th.Scheme.Surface)

	g.pressed, g.hover = g.ctrl.apply(g.th)
	g.card = g.th.PressedColor(cardColor)

	for _, in := range g.inkwells() {
		for in.Clicked() {
			g.presses++
		}
	}

	return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(material.H5(g.th.Theme, "Ripple Controls").Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx C) D {
				return g.ctrl.layout(gtx, g.th)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(20)}.Layout),
			layout.Rigid(material.H5(g.th.Theme, "Ripple Demonstrations").Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx C) D {
				return layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceAround}.Layout(gtx,
					layout.Rigid(g.story("Bounded", g.boundedStory)),
					layout.Rigid(g.story("Unbounded", g.unboundedStory)),
					layout.Rigid(g.story("Button", g.buttonStory)),
					layout.Rigid(g.story("Card", g.cardStory)),
				)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(20)}.Layout),
			layout.Rigid(g.story("Custom styled ripple", g.customStory)),
			layout.Rigid(layout.Spacer{Height: unit.Dp(20)}.Layout),
			layout.Rigid(g.readout),
		)
	})
}

// story lays out a caption above the story widget.
func (g *GUI) story(caption string, w layout.Widget) layout.Widget {
	return func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(material.Body2(g.th.Theme, caption).Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(w),
		)
	}
}

// boundedStory is a rounded container keeping the ripple inside its border.
func (g *GUI) boundedStory(gtx C) D {
	return g.bounded.Layout(gtx, func(gtx C) D {
		size := image.Pt(gtx.Dp(128), gtx.Dp(64))
		outline(gtx, size, gtx.Dp(12), g.th.Scheme.Outline)
		return D{Size: size}
	})
}

// unboundedStory is a circular anchor whose ripple overflows its bounds.
func (g *GUI) unboundedStory(gtx C) D {
	return g.unbounded.Layout(gtx, func(gtx C) D {
		size := image.Pt(gtx.Dp(64), gtx.Dp(64))
		r := image.Rectangle{Max: size}
		paint.FillShape(gtx.Ops, g.th.Scheme.Outline,
			clip.Stroke{Path: clip.Ellipse(r).Path(gtx.Ops), Width: 1}.Op())

		anchor := gtx.Dp(12)
		c := size.Div(2)
		ar := image.Rect(c.X-anchor, c.Y-anchor, c.X+anchor, c.Y+anchor)
		paint.FillShape(gtx.Ops, g.th.Scheme.Primary, clip.Ellipse(ar).Op(gtx.Ops))
		return D{Size: size}
	})
}

// buttonStory is a filled Material button.
func (g *GUI) buttonStory(gtx C) D {
	return g.button.Layout(gtx, func(gtx C) D {
		return pill(gtx, g.th, "Press me", g.th.Scheme.OnPrimary, func(gtx C, size image.Point) {
			paint.FillShape(gtx.Ops, g.th.Scheme.Primary,
				clip.UniformRRect(image.Rectangle{Max: size}, size.Y/2).Op(gtx.Ops))
		})
	})
}

// cardStory is an outlined button with a fixed ripple color.
func (g *GUI) cardStory(gtx C) D {
	return g.cardButton.Layout(gtx, func(gtx C) D {
		return pill(gtx, g.th, "Card with ripple", g.th.Scheme.Primary, func(gtx C, size image.Point) {
			outline(gtx, size, size.Y/2, g.th.Scheme.Outline)
		})
	})
}

// customStory is a styled container using the hover color and opacity.
func (g *GUI) customStory(gtx C) D {
	return g.custom.Layout(gtx, func(gtx C) D {
		size := image.Pt(gtx.Dp(200), gtx.Dp(80))
		rr := gtx.Dp(8)
		paint.FillShape(gtx.Ops, surfaceVariant,
			clip.UniformRRect(image.Rectangle{Max: size}, rr).Op(gtx.Ops))
		outline(gtx, size, rr, g.th.Scheme.Outline)

		gtx.Constraints = layout.Exact(size)
		return layout.Center.Layout(gtx, func(gtx C) D {
			l := material.Body2(g.th.Theme, "Click me for custom ripple")
			l.Color = g.th.Scheme.OnSurface
			return l.Layout(gtx)
		})
	})
}

// readout prints the progress of the running ripples of every story.
func (g *GUI) readout(gtx C) D {
	now := g.clock.Seconds(gtx.Now)
	names := []string{"bounded", "unbounded", "button", "card", "custom"}

	rows := []layout.Widget{
		material.Caption(g.th.Theme, fmt.Sprintf("presses: %d (at most %d ripples per story)",
			g.presses, ripple.MaxEffects)).Layout,
	}
	for i, in := range g.inkwells() {
		rows = append(rows, material.Caption(g.th.Theme, progressText(names[i], in.Effects(), now)).Layout)
	}
	return layoutRows(gtx, rows...)
}

// pill lays out a button sized label; bg draws the background below it.
func pill(gtx C, th *ripple.Theme, txt string, fg color.NRGBA, bg func(gtx C, size image.Point)) D {
	gtx.Constraints.Min.Y = gtx.Dp(buttonHeight)

	macro := op.Record(gtx.Ops)
	dims := layout.Inset{Left: unit.Dp(24), Right: unit.Dp(24)}.Layout(gtx, func(gtx C) D {
		return layout.Center.Layout(gtx, func(gtx C) D {
			l := material.Body1(th.Theme, txt)
			l.Color = fg
			return l.Layout(gtx)
		})
	})
	label := macro.Stop()

	bg(gtx, dims.Size)
	label.Add(gtx.Ops)
	return dims
}

// outline strokes a rounded rectangle of the given size.
func outline(gtx C, size image.Point, radius int, col color.NRGBA) {
	rr := clip.UniformRRect(image.Rectangle{Max: size}, radius)
	paint.FillShape(gtx.Ops, col, clip.Stroke{Path: rr.Path(gtx.Ops), Width: 1}.Op())
}

// row lays out a caption followed by a widget.
func row(th *ripple.Theme, caption string, w layout.Widget) layout.Widget {
	return func(gtx C) D {
		return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				gtx.Constraints.Min.X = gtx.Dp(unit.Dp(130))
				return material.Body1(th.Theme, caption).Layout(gtx)
			}),
			layout.Rigid(w),
		)
	}
}

func layoutRows(gtx C, rows ...layout.Widget) D {
	children := make([]layout.FlexChild, len(rows))
	for i, w := range rows {
		children[i] = layout.Rigid(w)
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
}

func layoutCols(gtx C, cols ...layout.Widget) D {
	children := make([]layout.FlexChild, len(cols))
	for i, w := range cols {
		w := w
		children[i] = layout.Rigid(func(gtx C) D {
			return layout.Inset{Right: unit.Dp(8)}.Layout(gtx, w)
		})
	}
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx, children...)
}
