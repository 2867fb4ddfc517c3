package render

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	"thermal_sentinel/internal/models"
)

// maxUpscale bounds the nearest-neighbor enlargement accepted by EncodePNG.
const maxUpscale = 8

// ErrInvalidScale is returned by EncodePNG for out-of-range scale factors.
var ErrInvalidScale = errors.New("invalid scale")

// Composite paints every source pixel into its own RGBA output pixel.
// No interpolation or blending is applied; the image has the frame's
// width and height, so its aspect ratio is the frame's.
func Composite(frame models.ThermalFrame, palette Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, frame.Width, frame.Height))
	n := frame.Width * frame.Height
	if len(frame.Pixels) < n {
		n = len(frame.Pixels)
	}
	for i := 0; i < n; i++ {
		c := Map(frame.Pixels[i], frame.MinTemp, frame.MaxTemp, palette)
		o := i * 4
		img.Pix[o] = c.R
		img.Pix[o+1] = c.G
		img.Pix[o+2] = c.B
		img.Pix[o+3] = 255
	}
	return img
}

// Upscale enlarges img by an integer factor using nearest-neighbor sampling,
// which keeps the blocky per-sample look.
func Upscale(img *image.RGBA, factor int) *image.RGBA {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	for y := 0; y < b.Dy(); y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+b.Dx()*4]
		for x := 0; x < b.Dx(); x++ {
			px := src[x*4 : x*4+4]
			for dy := 0; dy < factor; dy++ {
				row := (y*factor + dy) * out.Stride
				for dx := 0; dx < factor; dx++ {
					copy(out.Pix[row+(x*factor+dx)*4:], px)
				}
			}
		}
	}
	return out
}

// EncodePNG composites frame and writes it as PNG, enlarged by scale.
func EncodePNG(w io.Writer, frame models.ThermalFrame, palette Palette, scale int) error {
	if scale < 1 || scale > maxUpscale {
		return fmt.Errorf("%w: %d not in [1,%d]", ErrInvalidScale, scale, maxUpscale)
	}
	img := Upscale(Composite(frame, palette), scale)
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
