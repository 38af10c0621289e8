package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/esimov/ripple"
	"github.com/esimov/ripple/utils"
	"github.com/pelletier/go-toml/v2"
)

// click is a simulated press at (X, Y) happening At seconds after the start.
type click struct {
	X  int     `toml:"x"`
	Y  int     `toml:"y"`
	At float64 `toml:"at"`
}

// config holds the rendering options. It can be loaded from a TOML file;
// the command line flags take precedence over the file values.
type config struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	FPS        int     `toml:"fps"`
	Duration   float64 `toml:"duration"`
	Color      string  `toml:"color"`
	Opacity    float64 `toml:"opacity"`
	Background string  `toml:"background"`
	Bounded    bool    `toml:"bounded"`
	Scale      float64 `toml:"scale"`
	Clicks     []click `toml:"clicks"`
}

// defaultConfig returns a single centered press on a Material surface.
func defaultConfig() config {
	th := ripple.Theme{Scheme: ripple.BaselineScheme(), State: ripple.DefaultStateOpacity()}
	return config{
		Width:      256,
		Height:     128,
		FPS:        60,
		Duration:   ripple.Duration + 0.1,
		Color:      hex(th.Scheme.OnSurface),
		Opacity:    float64(th.State.Pressed),
		Background: hex(th.Scheme.Surface),
		Scale:      1,
		Clicks:     []click{{X: 128, Y: 64}},
	}
}

// loadConfig reads the TOML configuration file at path over the defaults.
// The default click is used only if the file does not provide any.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("unable to read the config file: %w", err)
	}
	clicks := cfg.Clicks
	cfg.Clicks = nil
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("unable to parse the config file %s: %w", path, err)
	}
	if len(cfg.Clicks) == 0 {
		cfg.Clicks = clicks
	}
	return cfg, nil
}

// validate checks the configuration and sorts the clicks by time.
func (c *config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid canvas size: %dx%d", c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("invalid frame rate: %d", c.FPS)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("invalid duration: %v", c.Duration)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("invalid scale factor: %v", c.Scale)
	}
	if c.Opacity < 0 || c.Opacity > 1 {
		return fmt.Errorf("opacity must be in the [0, 1] range, got %v", c.Opacity)
	}
	if len(c.Clicks) == 0 {
		return errors.New("no click to simulate")
	}
	if _, err := c.rippleColor(); err != nil {
		return err
	}
	if _, err := utils.HexToNRGBA(c.Background); err != nil {
		return fmt.Errorf("invalid background: %w", err)
	}
	sort.SliceStable(c.Clicks, func(i, j int) bool {
		return c.Clicks[i].At < c.Clicks[j].At
	})
	return nil
}

// rippleColor returns the ripple color with the pressed opacity applied.
func (c *config) rippleColor() (color.NRGBA, error) {
	col, err := utils.HexToNRGBA(c.Color)
	if err != nil {
		return col, fmt.Errorf("invalid ripple color: %w", err)
	}
	return ripple.LinearMultiply(col, float32(c.Opacity)), nil
}

// bounds returns the canvas rectangle.
func (c *config) bounds() image.Rectangle {
	return image.Rect(0, 0, c.Width, c.Height)
}

// parseClicks parses a click script of the form "x,y@t;x,y@t".
// The time is optional and defaults to 0.
func parseClicks(s string) ([]click, error) {
	var clicks []click

	for _, item := range strings.Split(s, ";") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		var (
			c   click
			err error
		)
		pos, at, found := strings.Cut(item, "@")
		if found {
			if c.At, err = strconv.ParseFloat(strings.TrimSpace(at), 64); err != nil {
				return nil, fmt.Errorf("invalid click time in %q: %w", item, err)
			}
		}
		xs, ys, ok := strings.Cut(pos, ",")
		if !ok {
			return nil, fmt.Errorf("invalid click position %q: expected x,y", item)
		}
		if c.X, err = strconv.Atoi(strings.TrimSpace(xs)); err != nil {
			return nil, fmt.Errorf("invalid click position in %q: %w", item, err)
		}
		if c.Y, err = strconv.Atoi(strings.TrimSpace(ys)); err != nil {
			return nil, fmt.Errorf("invalid click position in %q: %w", item, err)
		}
		clicks = append(clicks, c)
	}
	return clicks, nil
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
