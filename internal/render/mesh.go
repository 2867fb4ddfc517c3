package render

import (
	"gonum.org/v1/gonum/spatial/r3"

	"thermal_sentinel/internal/models"
)

// Terrain geometry tuning.
const (
	HMax       = 10.0 // nominal peak height
	ZScale     = 0.5  // vertical exaggeration
	PlaneWidth = 40.0 // world-space extent of the longer grid side

	referencePlaneOpacity = 0.2
	groundGridDivisions   = 20
)

// PeakHeight is the z of the hottest sample in every mesh.
const PeakHeight = HMax * ZScale

// ReferencePlane marks the frame's maximum-temperature elevation.
type ReferencePlane struct {
	Z       float64 `json:"z"`
	Width   float64 `json:"width"`
	Depth   float64 `json:"depth"`
	Opacity float64 `json:"opacity"`
}

// GroundGrid is a flat orientation grid under the terrain.
type GroundGrid struct {
	Size      float64 `json:"size"`
	Divisions int     `json:"divisions"`
	Z         float64 `json:"z"`
}

// Mesh is a height-displaced grid with one vertex per source pixel in
// row-major order. Triangles index into Vertices, three per face.
type Mesh struct {
	Width     int
	Height    int
	MinTemp   float64
	MaxTemp   float64
	Spacing   float64
	Vertices  []r3.Vec
	Normals   []r3.Vec
	Colors    []RGB
	Triangles []uint32

	// Decorations, never picked.
	Reference ReferencePlane
	Ground    GroundGrid
}

// TempRange is the guarded temperature range used for heights.
func (m *Mesh) TempRange() float64 {
	return models.TempSpan(m.MinTemp, m.MaxTemp)
}

// HeightFor returns the terrain z for a temperature.
func HeightFor(temp, min, max float64) float64 {
	return ((temp - min) / models.TempSpan(min, max)) * HMax * ZScale
}

// TerrainColor is the hue ramp used for vertex colors: blue at the coldest
// sample through to red at the hottest.
func TerrainColor(norm float64) RGB {
	hue := (1 - clamp01(norm)) * 240.0 / 360.0
	r, g, b := hslToRGB(hue, 1, 0.5)
	return RGB{R: r, G: g, B: b}
}

// BuildMesh constructs the terrain for a frame. The grid is centered on the
// origin in the XY plane, rows advance toward -Y, and heights are along +Z.
func BuildMesh(frame models.ThermalFrame) *Mesh {
	w, h := frame.Width, frame.Height
	m := &Mesh{
		Width:   w,
		Height:  h,
		MinTemp: frame.MinTemp,
		MaxTemp: frame.MaxTemp,
	}
	if w <= 0 || h <= 0 || len(frame.Pixels) < w*h {
		return m
	}

	cells := w - 1
	if h-1 > cells {
		cells = h - 1
	}
	if cells < 1 {
		cells = 1
	}
	m.Spacing = PlaneWidth / float64(cells)
	halfW := float64(w-1) * m.Spacing / 2
	halfH := float64(h-1) * m.Spacing / 2

	m.Vertices = make([]r3.Vec, w*h)
	m.Colors = make([]RGB, w*h)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			i := row*w + col
			t := frame.Pixels[i]
			m.Vertices[i] = r3.Vec{
				X: float64(col)*m.Spacing - halfW,
				Y: halfH - float64(row)*m.Spacing,
				Z: HeightFor(t, frame.MinTemp, frame.MaxTemp),
			}
			m.Colors[i] = TerrainColor(Normalize(t, frame.MinTemp, frame.MaxTemp))
		}
	}

	if w > 1 && h > 1 {
		m.Triangles = make([]uint32, 0, (w-1)*(h-1)*6)
		for row := 0; row < h-1; row++ {
			for col := 0; col < w-1; col++ {
				a := uint32(row*w + col)
				b := a + 1
				c := a + uint32(w)
				d := c + 1
				m.Triangles = append(m.Triangles, a, c, b, c, d, b)
			}
		}
	}
	m.Normals = vertexNormals(m.Vertices, m.Triangles)

	m.Reference = ReferencePlane{
		Z:       PeakHeight,
		Width:   2 * halfW,
		Depth:   2 * halfH,
		Opacity: referencePlaneOpacity,
	}
	m.Ground = GroundGrid{
		Size:      PlaneWidth * 1.25,
		Divisions: groundGridDivisions,
		Z:         0,
	}
	return m
}

// vertexNormals averages the area-weighted face normals around each vertex.
func vertexNormals(verts []r3.Vec, tris []uint32) []r3.Vec {
	normals := make([]r3.Vec, len(verts))
	for i := 0; i+2 < len(tris); i += 3 {
		a, b, c := verts[tris[i]], verts[tris[i+1]], verts[tris[i+2]]
		n := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
		for _, idx := range tris[i : i+3] {
			normals[idx] = r3.Add(normals[idx], n)
		}
	}
	for i, n := range normals {
		if r3.Norm(n) == 0 {
			normals[i] = r3.Vec{Z: 1}
			continue
		}
		normals[i] = r3.Unit(n)
	}
	return normals
}
