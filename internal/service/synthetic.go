package service

import (
	"math"
	"math/rand/v2"

	"thermal_sentinel/internal/models"
)

// Synthetic frame geometry and heat model.
const (
	syntheticWidth    = 256
	syntheticHeight   = 192
	syntheticBaseTemp = 25.0
	hotspotRadius     = 40.0
	hotspotGain       = 1.5
	noiseAmplitude    = 1.5
)

// SyntheticFrame generates a stand-in field with a single hotspot orbiting
// the frame center as frameIndex advances. Output is deterministic per index.
// Only used when the synthetic fallback is explicitly enabled.
func SyntheticFrame(frameIndex int) models.ThermalFrame {
	w, h := syntheticWidth, syntheticHeight
	phase := float64(frameIndex) * 0.1
	cx := float64(w)/2 + math.Sin(phase)*float64(w)/4
	cy := float64(h)/2 + math.Cos(phase)*float64(h)/4

	rng := rand.New(rand.NewPCG(uint64(frameIndex), 0x5eed))

	pixels := make([]float64, w*h)
	lo, hi := math.Inf(1), math.Inf(-1)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dist := math.Hypot(float64(x)-cx, float64(y)-cy)
			v := syntheticBaseTemp + math.Max(0, hotspotRadius-dist)*hotspotGain + rng.Float64()*noiseAmplitude
			pixels[y*w+x] = v
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	return models.ThermalFrame{
		FrameIndex: frameIndex,
		Width:      w,
		Height:     h,
		Pixels:     pixels,
		MinTemp:    lo,
		MaxTemp:    hi,
	}
}
