package models

// ThermalFrame is one captured temperature field, row-major.
type ThermalFrame struct {
	FrameIndex int       `json:"frame_index"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Pixels     []float64 `json:"pixels"` // len == Width*Height
	MinTemp    float64   `json:"min_temp"`
	MaxTemp    float64   `json:"max_temp"`
}

// TempSpan returns max-min, substituting 1 for an empty range so flat
// fields normalize without dividing by zero.
func TempSpan(min, max float64) float64 {
	if r := max - min; r != 0 {
		return r
	}
	return 1
}

// AvgTemp returns the mean of all pixels, or 0 for an empty frame.
func (f ThermalFrame) AvgTemp() float64 {
	if len(f.Pixels) == 0 {
		return 0
	}
	var sum float64
	for _, p := range f.Pixels {
		sum += p
	}
	return sum / float64(len(f.Pixels))
}

// EvolutionPoint summarizes one frame of a dataset.
type EvolutionPoint struct {
	FrameIndex int     `json:"frame_index"`
	MaxTemp    float64 `json:"max_temp"`
	AvgTemp    float64 `json:"avg_temp"`
}
