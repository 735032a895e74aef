package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"raycaster/internal/colors"
)

var (
	// ErrChannels is returned when the atlas image is not a 4-channel image.
	ErrChannels = errors.New("texture: atlas must be a 32 bit image")
	// ErrPacking is returned when the atlas is not N square textures side by side.
	ErrPacking = errors.New("texture: atlas must contain N square textures packed horizontally")
)

// LoadAtlas reads and decodes an atlas file.
func LoadAtlas(path string) (*Atlas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: open %s: %w", path, err)
	}
	defer f.Close()

	a, err := DecodeAtlas(f)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return a, nil
}

// DecodeAtlas decodes an atlas in any registered image format (PNG, JPEG,
// GIF, TGA, BMP, WebP). The image must carry an alpha channel.
func DecodeAtlas(r io.Reader) (*Atlas, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("texture: read: %w", err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("texture: decode config: %w", err)
	}
	n := Channels(cfg.ColorModel)
	if format == "png" {
		// Go widens gray+alpha PNGs to NRGBA; the header has the real count.
		if c, ok := pngChannels(raw); ok {
			n = c
		}
	}
	if n != 4 {
		return nil, fmt.Errorf("%w: %s image has %d channels", ErrChannels, format, n)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", format, err)
	}
	return NewAtlas(img)
}

// NewAtlas packs an already decoded image. Its width must be a non-zero
// exact multiple of its height.
func NewAtlas(img image.Image) (*Atlas, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if h == 0 || w < h || w%h != 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrPacking, w, h)
	}

	src := toNRGBA(img)
	a := &Atlas{
		size:  h,
		count: w / h,
		pix:   make([]colors.Color, w*h),
	}
	for y := 0; y < h; y++ {
		off := y * src.Stride
		for x := 0; x < w; x++ {
			i := off + x*4
			a.pix[x+y*w] = colors.Pack(src.Pix[i], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3])
		}
	}
	return a, nil
}

// Channels reports how many channels a decoder produces for the given
// color model: 1 for gray, 3 for opaque color, 4 when alpha is present.
// Unknown models report 0.
func Channels(m color.Model) int {
	if p, ok := m.(color.Palette); ok {
		for _, c := range p {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return 4
			}
		}
		return 3
	}

	switch m {
	case color.NRGBAModel, color.NRGBA64Model, color.NYCbCrAModel:
		return 4
	case color.RGBAModel, color.RGBA64Model, color.YCbCrModel:
		return 3
	case color.GrayModel, color.Gray16Model, color.AlphaModel, color.Alpha16Model:
		return 1
	}
	return 0
}

// pngChannels reads the channel count from the colour type in a PNG's
// IHDR chunk.
func pngChannels(raw []byte) (int, bool) {
	const colorTypeOffset = 25 // signature(8) + length(4) + "IHDR"(4) + size(8) + depth(1)
	if len(raw) <= colorTypeOffset || string(raw[12:16]) != "IHDR" {
		return 0, false
	}
	switch raw[colorTypeOffset] {
	case 0:
		return 1, true
	case 2:
		return 3, true
	case 4:
		return 2, true
	case 6:
		return 4, true
	}
	// Palette: alpha depends on tRNS, which the colour model already reflects.
	return 0, false
}

// toNRGBA converts any image to NRGBA with its origin at (0, 0).
func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
