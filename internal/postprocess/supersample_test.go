package postprocess

import (
	"image"
	"testing"
)

func TestDownsampleSolid(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 64, 32))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3] = 40, 80, 120, 255
	}
	dst := Downsample(src, 32, 16)
	if dst.Bounds().Dx() != 32 || dst.Bounds().Dy() != 16 {
		t.Fatalf("bounds: %v", dst.Bounds())
	}
	for _, p := range []image.Point{{0, 0}, {16, 8}, {31, 15}} {
		got := dst.RGBAAt(p.X, p.Y)
		if !near(got.R, 40) || !near(got.G, 80) || !near(got.B, 120) || !near(got.A, 255) {
			t.Errorf("pixel %v: got %v", p, got)
		}
	}
}

func TestDownsampleNoop(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	if Downsample(src, 8, 8) != src {
		t.Error("same-size downsample should return the input")
	}
}

func near(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -1 && d <= 1
}
