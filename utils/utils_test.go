package utils

import (
	"bytes"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUtils_MinMax(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(1, Min(1, 2))
	assert.Equal(1, Min(2, 1))
	assert.Equal(2, Max(1, 2))
	assert.Equal(float32(2.5), Max(float32(-1), float32(2.5)))
	assert.Equal(3.0, Abs(-3.0))
	assert.Equal(4, Abs(4))
}

func TestUtils_Clamp(t *testing.T) {
	testCases := []struct {
		name      string
		x, lo, hi float64
		want      float64
	}{
		{name: "below", x: -0.5, lo: 0, hi: 1, want: 0},
		{name: "inside", x: 0.25, lo: 0, hi: 1, want: 0.25},
		{name: "above", x: 1.5, lo: 0, hi: 1, want: 1},
		{name: "edge", x: 1, lo: 0, hi: 1, want: 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Clamp(tc.x, tc.lo, tc.hi))
		})
	}
}

func TestUtils_HexToNRGBA(t *testing.T) {
	testCases := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: "#6750A4", want: color.NRGBA{R: 0x67, G: 0x50, B: 0xa4, A: 0xff}},
		{in: "6750a4", want: color.NRGBA{R: 0x67, G: 0x50, B: 0xa4, A: 0xff}},
		{in: "#fff", want: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{in: "#1d1b201f", want: color.NRGBA{R: 0x1d, G: 0x1b, B: 0x20, A: 0x1f}},
		{in: " #000000 ", want: color.NRGBA{A: 0xff}},
		{in: "#12345", wantErr: true},
		{in: "#gggggg", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := HexToNRGBA(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUtils_DecorateText(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(ErrorColor+"boom"+DefaultColor, DecorateText("boom", ErrorMessage))
	assert.Equal(SuccessColor+"ok"+DefaultColor, DecorateText("ok", SuccessMessage))
	assert.Equal("raw", DecorateText("raw", MessageType(42)))
}

func TestUtils_FormatTime(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("1.50s", FormatTime(1500*time.Millisecond))
	assert.Equal("2m 5.00s", FormatTime(2*time.Minute+5*time.Second))
	assert.Equal("1h 1m 1.00s", FormatTime(time.Hour+time.Minute+time.Second))
}

func TestUtils_SpinnerStopMessage(t *testing.T) {
	var buf bytes.Buffer

	s := NewSpinner(&buf, "rendering", time.Millisecond, false)
	s.StopMsg = "done"
	s.Start()
	s.SetMessage("rendering frame 2")
	time.Sleep(5 * time.Millisecond)
	s.Stop()
	// A second stop must not block or panic.
	s.Stop()

	assert.True(t, strings.HasSuffix(buf.String(), "done"))
}
