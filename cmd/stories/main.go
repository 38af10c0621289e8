package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"github.com/esimov/ripple"
	"github.com/esimov/ripple/utils"
)

// Version indicates the current build version.
var Version string

var (
	// Flags
	pressedColor   = flag.String("pressed-color", "#6750A4", "Initial pressed state color (hex)")
	pressedOpacity = flag.Float64("pressed-opacity", 0.12, "Initial pressed state opacity")
	hoverColor     = flag.String("hover-color", "#6750A4", "Initial hover color of the custom story (hex)")
	hoverOpacity   = flag.Float64("hover-opacity", 0.08, "Initial hover opacity of the custom story")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Ripple stories %s\n\n", Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	for _, hex := range []string{*pressedColor, *hoverColor} {
		if _, err := utils.HexToNRGBA(hex); err != nil {
			log.Fatalf(utils.DecorateText("%v\n", utils.ErrorMessage), err)
		}
	}

	th := ripple.NewTheme(gofont.Collection())
	ctrl := newControls(
		*pressedColor, float32(*pressedOpacity),
		*hoverColor, float32(*hoverOpacity),
	)

	gui := NewGUI(th, ctrl)
	go func() {
		if err := gui.Run(); err != nil {
			log.Fatalf(utils.DecorateText("%v\n", utils.ErrorMessage), err)
		}
		os.Exit(0)
	}()
	app.Main()
}
