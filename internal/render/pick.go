package render

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	defaultFovDeg = 50.0
	minFovDeg     = 1e-3
	maxFovDeg     = 179.0
	hitEpsilon    = 1e-9
)

var errDegenerateCamera = errors.New("camera position coincides with target or up is parallel to view direction")

// Camera is a perspective camera looking from Position at Target.
type Camera struct {
	Position r3.Vec  `json:"position"`
	Target   r3.Vec  `json:"target"`
	Up       r3.Vec  `json:"up"`
	FovDeg   float64 `json:"fov_deg"` // vertical field of view
	Aspect   float64 `json:"aspect"`  // viewport width / height
}

// NDC is a pointer position in normalized device coordinates, both axes in
// [-1,1] with +Y up.
type NDC struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Ray is a half-line starting at Origin.
type Ray struct {
	Origin r3.Vec
	Dir    r3.Vec // unit length
}

type cameraBasis struct {
	forward, right, up r3.Vec
	tanHalf, aspect    float64
}

func (c Camera) basis() (cameraBasis, error) {
	view := r3.Sub(c.Target, c.Position)
	if r3.Norm(view) == 0 {
		return cameraBasis{}, errDegenerateCamera
	}
	up := c.Up
	if r3.Norm(up) == 0 {
		up = r3.Vec{Z: 1}
	}
	forward := r3.Unit(view)
	right := r3.Cross(forward, up)
	if r3.Norm(right) < 1e-12 {
		return cameraBasis{}, errDegenerateCamera
	}
	right = r3.Unit(right)

	fov := c.FovDeg
	if fov <= 0 {
		fov = defaultFovDeg
	}
	fov = math.Max(minFovDeg, math.Min(maxFovDeg, fov))
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	return cameraBasis{
		forward: forward,
		right:   right,
		up:      r3.Cross(right, forward),
		tanHalf: math.Tan(fov * math.Pi / 360),
		aspect:  aspect,
	}, nil
}

// RayThrough returns the world-space ray under an NDC pointer.
func (c Camera) RayThrough(p NDC) (Ray, error) {
	b, err := c.basis()
	if err != nil {
		return Ray{}, err
	}
	dir := r3.Add(b.forward, r3.Add(
		r3.Scale(p.X*b.tanHalf*b.aspect, b.right),
		r3.Scale(p.Y*b.tanHalf, b.up),
	))
	return Ray{Origin: c.Position, Dir: r3.Unit(dir)}, nil
}

// Project maps a world point to NDC. ok is false for points behind the camera.
func (c Camera) Project(p r3.Vec) (ndc NDC, ok bool) {
	b, err := c.basis()
	if err != nil {
		return NDC{}, false
	}
	v := r3.Sub(p, c.Position)
	depth := r3.Dot(v, b.forward)
	if depth <= 0 {
		return NDC{}, false
	}
	return NDC{
		X: r3.Dot(v, b.right) / (depth * b.tanHalf * b.aspect),
		Y: r3.Dot(v, b.up) / (depth * b.tanHalf),
	}, true
}

// PickResult is the terrain point under the pointer.
type PickResult struct {
	WorldPoint    r3.Vec  `json:"world_point"`
	EstimatedTemp float64 `json:"estimated_temp"`
	Row           int     `json:"row"` // nearest source sample
	Col           int     `json:"col"`
	Distance      float64 `json:"distance"`
}

// Pick casts a ray through the pointer and returns the nearest terrain hit.
// Only terrain triangles are tested; the reference plane and ground grid are
// decorations. The temperature is recovered by inverting the height formula,
// so it varies continuously between samples.
func Pick(pointer NDC, cam Camera, mesh *Mesh) (PickResult, bool) {
	if mesh == nil || len(mesh.Triangles) == 0 {
		return PickResult{}, false
	}
	ray, err := cam.RayThrough(pointer)
	if err != nil {
		return PickResult{}, false
	}
	if !rayHitsBox(ray, meshBounds(mesh)) {
		return PickResult{}, false
	}

	best := math.Inf(1)
	for i := 0; i+2 < len(mesh.Triangles); i += 3 {
		a := mesh.Vertices[mesh.Triangles[i]]
		b := mesh.Vertices[mesh.Triangles[i+1]]
		c := mesh.Vertices[mesh.Triangles[i+2]]
		if t, ok := intersectTriangle(ray, a, b, c); ok && t < best {
			best = t
		}
	}
	if math.IsInf(best, 1) {
		return PickResult{}, false
	}

	pt := r3.Add(ray.Origin, r3.Scale(best, ray.Dir))
	norm := pt.Z / PeakHeight
	row, col := nearestSample(mesh, pt)
	return PickResult{
		WorldPoint:    pt,
		EstimatedTemp: mesh.MinTemp + norm*mesh.TempRange(),
		Row:           row,
		Col:           col,
		Distance:      best,
	}, true
}

// intersectTriangle is the Möller–Trumbore test. Edges are inclusive so a ray
// through a shared vertex still reports a hit.
func intersectTriangle(ray Ray, a, b, c r3.Vec) (float64, bool) {
	e1 := r3.Sub(b, a)
	e2 := r3.Sub(c, a)
	p := r3.Cross(ray.Dir, e2)
	det := r3.Dot(e1, p)
	if math.Abs(det) < 1e-12 {
		return 0, false
	}
	inv := 1 / det
	s := r3.Sub(ray.Origin, a)
	u := r3.Dot(s, p) * inv
	if u < -hitEpsilon || u > 1+hitEpsilon {
		return 0, false
	}
	q := r3.Cross(s, e1)
	v := r3.Dot(ray.Dir, q) * inv
	if v < -hitEpsilon || u+v > 1+hitEpsilon {
		return 0, false
	}
	t := r3.Dot(e2, q) * inv
	if t <= hitEpsilon {
		return 0, false
	}
	return t, true
}

type box struct{ min, max r3.Vec }

func meshBounds(m *Mesh) box {
	halfW := float64(m.Width-1) * m.Spacing / 2
	halfH := float64(m.Height-1) * m.Spacing / 2
	return box{
		min: r3.Vec{X: -halfW, Y: -halfH, Z: 0},
		max: r3.Vec{X: halfW, Y: halfH, Z: PeakHeight},
	}
}

// rayHitsBox is the slab test, padded slightly so boundary hits survive.
func rayHitsBox(ray Ray, bx box) bool {
	const pad = 1e-6
	tmin, tmax := math.Inf(-1), math.Inf(1)
	o := [3]float64{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	d := [3]float64{ray.Dir.X, ray.Dir.Y, ray.Dir.Z}
	lo := [3]float64{bx.min.X - pad, bx.min.Y - pad, bx.min.Z - pad}
	hi := [3]float64{bx.max.X + pad, bx.max.Y + pad, bx.max.Z + pad}
	for i := 0; i < 3; i++ {
		if d[i] == 0 {
			if o[i] < lo[i] || o[i] > hi[i] {
				return false
			}
			continue
		}
		t1 := (lo[i] - o[i]) / d[i]
		t2 := (hi[i] - o[i]) / d[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return false
		}
	}
	return tmax >= 0
}

func nearestSample(m *Mesh, p r3.Vec) (row, col int) {
	if m.Spacing == 0 {
		return 0, 0
	}
	halfW := float64(m.Width-1) * m.Spacing / 2
	halfH := float64(m.Height-1) * m.Spacing / 2
	col = clampInt(int(math.Round((p.X+halfW)/m.Spacing)), 0, m.Width-1)
	row = clampInt(int(math.Round((halfH-p.Y)/m.Spacing)), 0, m.Height-1)
	return row, col
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
