package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thermal_sentinel/internal/models"
)

func sampleFrame() models.ThermalFrame {
	return models.ThermalFrame{
		FrameIndex: 3,
		Width:      4,
		Height:     3,
		Pixels: []float64{
			20, 22, 25, 30,
			21, 40, 60, 33,
			20, 35, 45, 28,
		},
		MinTemp: 20,
		MaxTemp: 60,
	}
}

func TestSampleFrame_PixelsWithinRange(t *testing.T) {
	f := sampleFrame()
	require.Len(t, f.Pixels, f.Width*f.Height)
	for _, p := range f.Pixels {
		assert.GreaterOrEqual(t, p, f.MinTemp)
		assert.LessOrEqual(t, p, f.MaxTemp)
	}
}

func TestComposite_OneToOne(t *testing.T) {
	t.Parallel()

	f := sampleFrame()
	for _, pal := range []Palette{PaletteHeat, PaletteGray} {
		img := Composite(f, pal)
		require.Len(t, img.Pix, f.Width*f.Height*4)
		assert.Equal(t, f.Width, img.Bounds().Dx())
		assert.Equal(t, f.Height, img.Bounds().Dy())

		for i, v := range f.Pixels {
			want := Map(v, f.MinTemp, f.MaxTemp, pal)
			o := i * 4
			assert.Equal(t, want, RGB{img.Pix[o], img.Pix[o+1], img.Pix[o+2]}, "pixel %d", i)
			assert.Equal(t, uint8(255), img.Pix[o+3])
		}
	}
}

func TestComposite_ShortPixelSliceDoesNotPanic(t *testing.T) {
	t.Parallel()

	f := sampleFrame()
	f.Pixels = f.Pixels[:5]
	img := Composite(f, PaletteHeat)
	assert.Len(t, img.Pix, f.Width*f.Height*4)
	assert.Equal(t, uint8(0), img.Pix[5*4+3], "unfilled pixels stay transparent")
}

func TestEncodePNG_ScalesAndPreservesAspect(t *testing.T) {
	t.Parallel()

	f := sampleFrame()
	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, f, PaletteHeat, 3))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 12, img.Bounds().Dx())
	assert.Equal(t, 9, img.Bounds().Dy())

	// every 3x3 block carries its source pixel's color
	want := Map(f.Pixels[5], f.MinTemp, f.MaxTemp, PaletteHeat)
	for dy := 0; dy < 3; dy++ {
		for dx := 0; dx < 3; dx++ {
			r, g, b, a := img.At(1*3+dx, 1*3+dy).RGBA()
			assert.Equal(t, want, RGB{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)})
			assert.Equal(t, uint32(0xffff), a)
		}
	}
}

func TestEncodePNG_RejectsBadScale(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.Error(t, EncodePNG(&buf, sampleFrame(), PaletteHeat, 0))
	assert.Error(t, EncodePNG(&buf, sampleFrame(), PaletteHeat, maxUpscale+1))
}
