package main

import (
	"image/color"
	"testing"
)

// channels pass through a float normalize, allow one step of rounding
func channelNear(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -1 && d <= 1
}

func TestColorFade(t *testing.T) {
	clr := color.NRGBA{200, 100, 50, 255}

	faded := ColorFade(clr, 0.5)
	if !channelNear(faded.R, 200) || !channelNear(faded.G, 100) || !channelNear(faded.B, 50) {
		t.Errorf("fade touched the color channels: %v", faded)
	}
	if !channelNear(faded.A, 127) {
		t.Errorf("fade alpha: %d, want ~127", faded.A)
	}

	if got := ColorFade(clr, 0); got.A != 0 {
		t.Errorf("fade at 0: alpha %d, want 0", got.A)
	}
	if got := ColorFade(clr, 1); got.A != 255 {
		t.Errorf("fade at 1: alpha %d, want 255", got.A)
	}
}

func TestLerpColorRGBA(t *testing.T) {
	c1 := color.NRGBA{0, 0, 0, 0}
	c2 := color.NRGBA{255, 255, 255, 255}

	if got := LerpColorRGBA(c1, c2, 0); got != c1 {
		t.Errorf("lerp at 0: %v, want %v", got, c1)
	}
	if got := LerpColorRGBA(c1, c2, 1); got != c2 {
		t.Errorf("lerp at 1: %v, want %v", got, c2)
	}

	mid := LerpColorRGBA(c1, c2, 0.5)
	for i, ch := range []uint8{mid.R, mid.G, mid.B, mid.A} {
		if ch != 127 {
			t.Errorf("lerp midpoint channel %d: %d, want 127", i, ch)
		}
	}
}
