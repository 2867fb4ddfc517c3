// Package render turns thermal fields into displayable surfaces: color-mapped
// rasters, height-displaced terrain meshes, and pointer picks against them.
package render

import (
	"errors"
	"math"
	"strings"

	"thermal_sentinel/internal/models"
)

// Palette selects a scalar to color mapping.
type Palette string

const (
	PaletteHeat Palette = "heat"
	PaletteGray Palette = "gray"
)

// ErrInvalidPalette is returned by ParsePalette for unknown names.
var ErrInvalidPalette = errors.New("invalid palette: must be heat or gray")

// ParsePalette accepts "heat"/"gray" (case-insensitive); empty means heat.
func ParsePalette(s string) (Palette, error) {
	switch Palette(strings.ToLower(strings.TrimSpace(s))) {
	case "", PaletteHeat:
		return PaletteHeat, nil
	case PaletteGray, "grey", "grayscale":
		return PaletteGray, nil
	default:
		return "", ErrInvalidPalette
	}
}

// RGB is an 8-bit color triple.
type RGB struct {
	R, G, B uint8
}

// Normalize maps value into [0,1] relative to [min,max]. An empty range is
// treated as 1 so a flat field yields a uniform color.
func Normalize(value, min, max float64) float64 {
	return clamp01((value - min) / models.TempSpan(min, max))
}

// Map converts a temperature to a color. Heat runs blue to green to red with
// a faster red onset than blue falloff; Gray is a linear ramp.
func Map(value, min, max float64, palette Palette) RGB {
	norm := Normalize(value, min, max)
	if palette == PaletteGray {
		v := uint8(math.Floor(norm * 255))
		return RGB{R: v, G: v, B: v}
	}
	return RGB{
		R: channel(norm * 2),
		G: channel((norm - 0.5) * 2),
		B: channel(1 - norm),
	}
}

func channel(x float64) uint8 {
	return uint8(clamp01(x) * 255)
}

func clamp01(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
