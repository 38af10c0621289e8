package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_ParseClicks(t *testing.T) {
	testCases := []struct {
		name    string
		script  string
		want    []click
		wantErr bool
	}{
		{
			name:   "single",
			script: "10,20",
			want:   []click{{X: 10, Y: 20}},
		},
		{
			name:   "timed",
			script: "10,20@0.5; 30, 40 @1",
			want:   []click{{X: 10, Y: 20, At: 0.5}, {X: 30, Y: 40, At: 1}},
		},
		{
			name:   "trailing separator",
			script: "1,2;",
			want:   []click{{X: 1, Y: 2}},
		},
		{name: "missing y", script: "10@1", wantErr: true},
		{name: "bad position", script: "a,b", wantErr: true},
		{name: "bad time", script: "1,2@soon", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseClicks(tc.script)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConfig_LoadFile(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "ripple.toml")
	data := []byte(`
width = 64
height = 32
bounded = true
color = "#6750a4"

[[clicks]]
x = 5
y = 6
at = 0.2

[[clicks]]
x = 1
y = 2
`)
	assert.NoError(os.WriteFile(path, data, 0644))

	cfg, err := loadConfig(path)
	assert.NoError(err)
	assert.Equal(64, cfg.Width)
	assert.Equal(32, cfg.Height)
	assert.True(cfg.Bounded)
	assert.Equal("#6750a4", cfg.Color)
	// Values missing from the file keep their defaults.
	assert.Equal(60, cfg.FPS)
	assert.Equal(1.0, cfg.Scale)

	assert.NoError(cfg.validate())
	assert.Equal([]click{{X: 1, Y: 2}, {X: 5, Y: 6, At: 0.2}}, cfg.Clicks)
}

func TestConfig_LoadErrors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.toml")
	assert.NoError(t, os.WriteFile(path, []byte("width = [nope"), 0644))
	_, err = loadConfig(path)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(c *config)
	}{
		{name: "size", modify: func(c *config) { c.Width = 0 }},
		{name: "fps", modify: func(c *config) { c.FPS = -1 }},
		{name: "duration", modify: func(c *config) { c.Duration = 0 }},
		{name: "scale", modify: func(c *config) { c.Scale = 0 }},
		{name: "opacity", modify: func(c *config) { c.Opacity = 1.5 }},
		{name: "clicks", modify: func(c *config) { c.Clicks = nil }},
		{name: "color", modify: func(c *config) { c.Color = "#zz" }},
		{name: "background", modify: func(c *config) { c.Background = "nope" }},
	}

	def := defaultConfig()
	assert.NoError(t, def.validate())

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.modify(&cfg)
			assert.Error(t, cfg.validate())
		})
	}
}
