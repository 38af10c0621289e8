package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/esimov/ripple/utils"
	"golang.org/x/term"
)

const HelpBanner = `
┬─┐┬┌─┐┌─┐┬  ┌─┐
├┬┘│├─┘├─┘│  ├┤
┴└─┴┴  ┴  ┴─┘└─┘

Material ink ripple renderer.
    Version: %s

`

// pipeName is the file name that indicates stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	configPath = flag.String("config", "", "TOML configuration file")
	width      = flag.Int("width", 0, "Canvas width")
	height     = flag.Int("height", 0, "Canvas height")
	fps        = flag.Int("fps", 0, "Frames per second")
	duration   = flag.Float64("duration", 0, "Rendered time span in seconds")
	clicks     = flag.String("clicks", "", "Click script: x,y@seconds;x,y@seconds")
	rippleCol  = flag.String("color", "", "Ripple color (hex)")
	opacity    = flag.Float64("opacity", 0, "Pressed state opacity")
	background = flag.String("bg", "", "Background color (hex)")
	bounded    = flag.Bool("bounded", false, "Clip the ripples to the canvas")
	scale      = flag.Float64("scale", 0, "Output scale factor")
	output     = flag.String("out", "frames", "Output directory, image file or - for stdout")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := buildConfig()
	if err != nil {
		log.Fatalf(utils.DecorateText("%v\n", utils.ErrorMessage), err)
	}

	r, err := newRenderer(cfg)
	if err != nil {
		log.Fatalf(utils.DecorateText("%v\n", utils.ErrorMessage), err)
	}

	now := time.Now()
	if err := render(r, *output); err != nil {
		log.Fatalf(
			utils.DecorateText("Error rendering the ripples: %s", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}
	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}

// buildConfig merges the defaults, the configuration file and the
// explicitly set command line flags, in this order.
func buildConfig() (config, error) {
	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = loadConfig(*configPath); err != nil {
			return cfg, err
		}
	}

	var err error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "fps":
			cfg.FPS = *fps
		case "duration":
			cfg.Duration = *duration
		case "color":
			cfg.Color = *rippleCol
		case "opacity":
			cfg.Opacity = *opacity
		case "bg":
			cfg.Background = *background
		case "bounded":
			cfg.Bounded = *bounded
		case "scale":
			cfg.Scale = *scale
		case "clicks":
			var cs []click
			if cs, err = parseClicks(*clicks); err == nil {
				cfg.Clicks = cs
			}
		}
	})
	return cfg, err
}

// render runs the renderer and writes the frames to dst: a whole sequence
// for a directory, the last frame for an image file or a pipe.
func render(r *renderer, dst string) error {
	spinner := utils.NewSpinner(os.Stderr,
		utils.DecorateText("⚡ RIPPLE is rendering the frames...", utils.StatusMessage),
		time.Millisecond*100, true)

	// Capture CTRL-C signal and restore the cursor visibility back.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signalChan)
	go func() {
		if _, ok := <-signalChan; ok {
			spinner.RestoreCursor()
			os.Exit(1)
		}
	}()

	var (
		last lastFrame
		fn   frameFn = last.keep
	)
	switch {
	case dst == pipeName:
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("`-` should be used with a pipe for stdout")
		}
	case isImageFile(dst):
	default:
		var err error
		if fn, err = dirWriter(dst); err != nil {
			return err
		}
	}

	total := r.frames()
	spinner.Start()
	active, err := r.run(func(i int, img image.Image) error {
		spinner.SetMessage(utils.DecorateText(
			fmt.Sprintf("⚡ RIPPLE is rendering frame %d/%d...", i+1, total), utils.StatusMessage))
		return fn(i, img)
	})
	spinner.StopMsg = utils.DecorateText(
		fmt.Sprintf("⚡ RIPPLE rendered %d frames, %d with running ripples ✔\n", total, active),
		utils.DefaultMessage)
	spinner.Stop()
	if err != nil {
		return err
	}

	switch {
	case dst == pipeName:
		return last.encode(os.Stdout)
	case isImageFile(dst):
		if err := last.save(dst); err != nil {
			return err
		}
	}
	if dst != pipeName {
		fmt.Fprintf(os.Stderr, "The output has been saved as: %s\n",
			utils.DecorateText(dst, utils.SuccessMessage))
	}
	return nil
}
