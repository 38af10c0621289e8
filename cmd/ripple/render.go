package main

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/esimov/ripple"
	"github.com/esimov/ripple/imop"
	"github.com/esimov/ripple/utils"
)

// frameFn receives every rendered frame together with its index.
type frameFn func(i int, img image.Image) error

// renderer replays the click script frame by frame on an offscreen canvas.
type renderer struct {
	cfg    config
	color  color.NRGBA
	bg     color.NRGBA
	canvas *ripple.Canvas
	ink    ripple.Manager
}

func newRenderer(cfg config) (*renderer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	col, err := cfg.rippleColor()
	if err != nil {
		return nil, err
	}
	bg, err := utils.HexToNRGBA(cfg.Background)
	if err != nil {
		return nil, err
	}
	r := &renderer{
		cfg:    cfg,
		color:  col,
		bg:     bg,
		canvas: ripple.NewCanvas(cfg.bounds()),
	}
	if cfg.Bounded {
		// Bounded ripples never paint outside the surface drawn below them.
		if err := r.canvas.SetOp(imop.SrcAtop); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// frames returns the number of frames needed to cover the configured duration.
func (r *renderer) frames() int {
	return int(math.Ceil(r.cfg.Duration*float64(r.cfg.FPS))) + 1
}

// run renders every frame and hands it to fn. It returns the number of
// frames in which at least one ripple was running.
func (r *renderer) run(fn frameFn) (int, error) {
	var (
		next   int
		active int
		bounds = r.cfg.bounds()
	)
	for i, n := 0, r.frames(); i < n; i++ {
		now := float64(i) / float64(r.cfg.FPS)

		for ; next < len(r.cfg.Clicks) && r.cfg.Clicks[next].At <= now; next++ {
			c := r.cfg.Clicks[next]
			in := ripple.Interaction{
				Clicked:    true,
				Rect:       bounds,
				Pointer:    image.Pt(c.X, c.Y),
				HasPointer: true,
			}
			if r.cfg.Bounded {
				ripple.AttachBounded(&r.ink, in, &r.color, c.At)
			} else {
				ripple.Attach(&r.ink, in, &r.color, c.At)
			}
		}

		r.canvas.Fill(r.bg)
		var running bool
		if r.cfg.Bounded {
			running = r.ink.UpdateAndRenderClipped(now, r.canvas, bounds)
		} else {
			running = r.ink.UpdateAndRender(now, r.canvas)
		}
		if running {
			active++
		}
		if err := fn(i, r.scaled()); err != nil {
			return active, err
		}
	}
	return active, nil
}

// scaled returns the current frame resized by the configured scale factor.
func (r *renderer) scaled() image.Image {
	if r.cfg.Scale == 1 {
		return imaging.Clone(r.canvas.Img)
	}
	w := int(math.Round(float64(r.cfg.Width) * r.cfg.Scale))
	return imaging.Resize(r.canvas.Img, utils.Max(w, 1), 0, imaging.Lanczos)
}

// isImageFile reports whether the path has an image extension supported for writing.
func isImageFile(path string) bool {
	_, err := imaging.FormatFromFilename(path)
	return err == nil
}

// dirWriter returns a frameFn saving every frame as a PNG file in dir.
func dirWriter(dir string) (frameFn, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("unable to create the output directory: %w", err)
	}
	return func(i int, img image.Image) error {
		name := filepath.Join(dir, fmt.Sprintf("frame_%04d.png", i))
		if err := imaging.Save(img, name); err != nil {
			return fmt.Errorf("unable to save frame %d: %w", i, err)
		}
		return nil
	}, nil
}

// lastFrame keeps the most recently rendered frame.
type lastFrame struct {
	img image.Image
}

func (l *lastFrame) keep(_ int, img image.Image) error {
	l.img = img
	return nil
}

// save writes the frame to path, the format being derived from the extension.
func (l *lastFrame) save(path string) error {
	if err := imaging.Save(l.img, path); err != nil {
		return fmt.Errorf("unable to save the image: %w", err)
	}
	return nil
}

// encode writes the frame to w as PNG.
func (l *lastFrame) encode(w io.Writer) error {
	if err := imaging.Encode(w, l.img, imaging.PNG); err != nil {
		return fmt.Errorf("unable to encode the image: %w", err)
	}
	return nil
}
