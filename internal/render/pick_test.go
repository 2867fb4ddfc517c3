package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// overheadCamera looks straight down from far away with a narrow field of
// view, so rays are close to vertical over the whole terrain.
func overheadCamera() Camera {
	return Camera{
		Position: r3.Vec{X: 0, Y: 0, Z: 2000},
		Target:   r3.Vec{},
		Up:       r3.Vec{Y: 1},
		FovDeg:   2,
		Aspect:   4.0 / 3.0,
	}
}

func TestPick_RoundTripAtVertexProjections(t *testing.T) {
	t.Parallel()

	f := sampleFrame()
	m := BuildMesh(f)
	cam := overheadCamera()
	tol := 0.01 * (f.MaxTemp - f.MinTemp)

	for i, v := range m.Vertices {
		ndc, ok := cam.Project(v)
		require.True(t, ok, "vertex %d in front of camera", i)

		res, hit := Pick(ndc, cam, m)
		require.True(t, hit, "vertex %d should be hit", i)
		assert.InDelta(t, f.Pixels[i], res.EstimatedTemp, tol, "vertex %d", i)
		assert.Equal(t, i/f.Width, res.Row, "vertex %d row", i)
		assert.Equal(t, i%f.Width, res.Col, "vertex %d col", i)
	}
}

func TestPick_ObliqueCameraHitsNearestSurface(t *testing.T) {
	t.Parallel()

	f := sampleFrame()
	m := BuildMesh(f)
	cam := Camera{
		Position: r3.Vec{X: 0, Y: -60, Z: 40},
		Target:   r3.Vec{},
		Up:       r3.Vec{Z: 1},
		FovDeg:   50,
		Aspect:   1,
	}

	res, hit := Pick(NDC{}, cam, m)
	require.True(t, hit)
	assert.GreaterOrEqual(t, res.WorldPoint.Z, 0.0)
	assert.LessOrEqual(t, res.WorldPoint.Z, PeakHeight+1e-9)
	assert.GreaterOrEqual(t, res.EstimatedTemp, f.MinTemp-1e-9)
	assert.LessOrEqual(t, res.EstimatedTemp, f.MaxTemp+1e-9)
	assert.Greater(t, res.Distance, 0.0)
}

func TestPick_MissOutsideTerrain(t *testing.T) {
	t.Parallel()

	m := BuildMesh(sampleFrame())
	cam := overheadCamera()

	_, hit := Pick(NDC{X: 0.99, Y: 0.99}, cam, m)
	assert.False(t, hit, "corner ray passes beside the terrain")

	up := cam
	up.Target = r3.Vec{Z: 5000}
	_, hit = Pick(NDC{}, up, m)
	assert.False(t, hit, "camera looking away never hits")
}

func TestPick_IgnoresDecorations(t *testing.T) {
	t.Parallel()

	// Flat field at z=0 with the reference plane at PeakHeight: a hit must
	// report the terrain, not the plane above it.
	m := BuildMesh(sampleFrame())
	for i := range m.Vertices {
		m.Vertices[i].Z = 0
	}
	res, hit := Pick(NDC{}, overheadCamera(), m)
	require.True(t, hit)
	assert.InDelta(t, 0, res.WorldPoint.Z, 1e-9)
	assert.InDelta(t, m.MinTemp, res.EstimatedTemp, 1e-9)
}

func TestPick_NilAndDegenerate(t *testing.T) {
	t.Parallel()

	_, hit := Pick(NDC{}, overheadCamera(), nil)
	assert.False(t, hit)

	bad := overheadCamera()
	bad.Target = bad.Position
	_, hit = Pick(NDC{}, bad, BuildMesh(sampleFrame()))
	assert.False(t, hit)
}

func TestCamera_ProjectInvertsRay(t *testing.T) {
	t.Parallel()

	cam := Camera{
		Position: r3.Vec{X: 10, Y: -30, Z: 25},
		Target:   r3.Vec{X: 1, Y: 2, Z: 0},
		Up:       r3.Vec{Z: 1},
		FovDeg:   45,
		Aspect:   16.0 / 9.0,
	}
	in := NDC{X: 0.3, Y: -0.4}
	ray, err := cam.RayThrough(in)
	require.NoError(t, err)

	p := r3.Add(ray.Origin, r3.Scale(17, ray.Dir))
	out, ok := cam.Project(p)
	require.True(t, ok)
	assert.InDelta(t, in.X, out.X, 1e-9)
	assert.InDelta(t, in.Y, out.Y, 1e-9)

	_, ok = cam.Project(r3.Sub(cam.Position, r3.Sub(cam.Target, cam.Position)))
	assert.False(t, ok, "points behind the camera do not project")
}
