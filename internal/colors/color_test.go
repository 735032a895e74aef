package colors

import (
	"image/color"
	"testing"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	// Every value of each channel, with the others held at distinct values.
	for v := 0; v < 256; v++ {
		b := uint8(v)
		cases := [][4]uint8{
			{b, 1, 2, 3},
			{4, b, 5, 6},
			{7, 8, b, 9},
			{10, 11, 12, b},
			{b, b, b, b},
		}
		for _, tc := range cases {
			r, g, bl, a := Pack(tc[0], tc[1], tc[2], tc[3]).Unpack()
			if got := [4]uint8{r, g, bl, a}; got != tc {
				t.Fatalf("round trip %v: got %v", tc, got)
			}
		}
	}
}

func TestPackLayout(t *testing.T) {
	c := Pack(0x11, 0x22, 0x33, 0x44)
	if c != 0x44332211 {
		t.Errorf("Pack layout: got %#x, want %#x", uint32(c), 0x44332211)
	}
	r, g, b := c.RGB()
	if r != 0x11 || g != 0x22 || b != 0x33 {
		t.Errorf("RGB: got %x %x %x", r, g, b)
	}
}

func TestNRGBABridge(t *testing.T) {
	in := color.NRGBA{R: 200, G: 100, B: 50, A: 25}
	if got := FromNRGBA(in).NRGBA(); got != in {
		t.Errorf("NRGBA bridge: got %v, want %v", got, in)
	}
}
