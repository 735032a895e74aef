package raster

import (
	"testing"

	"raycaster/internal/colors"
)

var (
	red  = colors.Pack(255, 0, 0, 255)
	blue = colors.Pack(0, 0, 255, 255)
)

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

func countColor(fb *FrameBuffer, c colors.Color) int {
	n := 0
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			if fb.At(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestNewFrameBuffer(t *testing.T) {
	fb := NewFrameBuffer(4, 3)
	if len(fb.Pix) != 4*3*3 {
		t.Fatalf("Pix length: got %d", len(fb.Pix))
	}
	mustPanic(t, "zero size", func() { NewFrameBuffer(0, 3) })
}

func TestClearAndSet(t *testing.T) {
	fb := NewFrameBuffer(5, 5)
	fb.Clear(colors.White)
	if n := countColor(fb, colors.White); n != 25 {
		t.Fatalf("Clear: %d white pixels, want 25", n)
	}
	fb.Set(4, 4, red)
	if fb.At(4, 4) != red {
		t.Errorf("Set/At: got %#x", uint32(fb.At(4, 4)))
	}
	mustPanic(t, "Set x=W", func() { fb.Set(5, 0, red) })
	mustPanic(t, "At y=-1", func() { fb.At(0, -1) })
}

func TestFillRectClips(t *testing.T) {
	fb := NewFrameBuffer(10, 10)
	fb.FillRect(8, 8, 5, 5, red)
	if n := countColor(fb, red); n != 4 {
		t.Errorf("bottom-right clip: %d pixels, want 4", n)
	}

	fb.Clear(colors.Black)
	fb.FillRect(-2, -2, 4, 3, blue)
	if n := countColor(fb, blue); n != 2 {
		t.Errorf("top-left clip: %d pixels, want 2", n)
	}

	fb.Clear(colors.Black)
	fb.FillRect(20, 20, 3, 3, red)
	fb.FillRect(1, 1, 0, 3, red)
	if n := countColor(fb, red); n != 0 {
		t.Errorf("outside/empty rect drew %d pixels", n)
	}

	fb.FillRect(2, 3, 3, 2, red)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inside := x >= 2 && x < 5 && y >= 3 && y < 5
			if (fb.At(x, y) == red) != inside {
				t.Fatalf("pixel (%d,%d) inside=%v but color %#x", x, y, inside, uint32(fb.At(x, y)))
			}
		}
	}
}

func TestBlitColumnClips(t *testing.T) {
	fb := NewFrameBuffer(3, 4)
	col := []colors.Color{red, blue, red, blue, red, blue}

	fb.BlitColumn(1, -1, col)
	want := []colors.Color{blue, red, blue, red}
	for y, c := range want {
		if fb.At(1, y) != c {
			t.Errorf("row %d: got %#x, want %#x", y, uint32(fb.At(1, y)), uint32(c))
		}
	}
	if countColor(fb, red)+countColor(fb, blue) != 4 {
		t.Error("blit touched other columns")
	}

	fb.Clear(colors.Black)
	fb.BlitColumn(0, 3, col)
	if fb.At(0, 3) != red || countColor(fb, red)+countColor(fb, blue) != 1 {
		t.Error("bottom clip wrong")
	}
	mustPanic(t, "column outside", func() { fb.BlitColumn(3, 0, col) })
}

func TestImage(t *testing.T) {
	fb := NewFrameBuffer(2, 2)
	fb.Set(1, 0, colors.Pack(10, 20, 30, 255))
	img := fb.Image()
	i := img.PixOffset(1, 0)
	if got := img.Pix[i : i+4]; got[0] != 10 || got[1] != 20 || got[2] != 30 || got[3] != 255 {
		t.Errorf("Image pixel: got %v", got)
	}
	mustPanic(t, "short RGBA", func() { fb.CopyRGBA(make([]byte, 3)) })
}
