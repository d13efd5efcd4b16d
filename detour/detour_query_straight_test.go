package detour

import (
	"errors"
	"testing"

	"github.com/gorustyt/gonavmesh/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindStraightPathSingleTriangle(t *testing.T) {
	q := NewNavMeshQuery(mustMesh(t, quadMesh()))
	start, end := Vec3{3, 0, 0.5}, Vec3{3.5, 0, 2}
	path, err := q.FindStraightPath([]int32{0}, start, end)
	require.NoError(t, err)
	assert.Equal(t, []Vec3{start, end}, path)
}

func TestFindStraightPathErrors(t *testing.T) {
	q := NewNavMeshQuery(mustMesh(t, gridMesh(3, 3)))
	_, err := q.FindStraightPath(nil, Vec3{}, Vec3{})
	assert.True(t, errors.Is(err, ErrInvalidParam))

	_, err = q.FindStraightPath([]int32{0, 7}, Vec3{}, Vec3{})
	assert.True(t, errors.Is(err, ErrInvalidParam))

	_, err = q.FindStraightPath([]int32{0, 100}, Vec3{}, Vec3{})
	assert.True(t, errors.Is(err, ErrInvalidParam))
}

func TestPortalPoints(t *testing.T) {
	q := NewNavMeshQuery(mustMesh(t, quadMesh()))
	l01, r01, ok := q.portalPoints(0, 1)
	require.True(t, ok)
	l10, r10, ok := q.portalPoints(1, 0)
	require.True(t, ok)
	// Crossing the same edge the other way swaps the sides.
	assert.Equal(t, l01, r10)
	assert.Equal(t, r01, l10)

	_, _, ok = q.portalPoints(0, 0)
	assert.False(t, ok)
}

func TestFindStraightPathOnPortals(t *testing.T) {
	m := mustMesh(t, lMesh())
	q := NewNavMeshQuery(m)
	res, err := q.FindPath(Vec3{2.8, 0, 0.1}, Vec3{0.1, 0, 2.9}, Accuracy)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(res.Points), 3)

	// Every intermediate point is an endpoint of some corridor portal.
	for _, p := range res.Points[1 : len(res.Points)-1] {
		found := false
		for i := 0; i+1 < len(res.Corridor) && !found; i++ {
			a, b, ok := m.Portal(res.Corridor[i], res.Corridor[i+1])
			require.True(t, ok)
			_, d := common.DistancePtSegSqr(p, a, b)
			found = d < 1e-8
		}
		assert.True(t, found, "point %v is not on a portal", p)
	}

	// Consecutive points never coincide.
	for i := 1; i < len(res.Points); i++ {
		assert.False(t, common.Vequal(res.Points[i-1], res.Points[i]))
	}
}

func TestFindStraightPathStraightCorridor(t *testing.T) {
	m := mustMesh(t, gridMesh(8, 1))
	q := NewNavMeshQuery(m)
	start, end := Vec3{0.6, 0, 0.5}, Vec3{7.6, 0, 0.5}
	res, err := q.FindPath(start, end, Accuracy)
	require.NoError(t, err)
	assert.Greater(t, len(res.Corridor), 2)
	require.Len(t, res.Points, 2)
	assert.InDelta(t, 7, pathLength(res.Points), 1e-4)
}

func TestFindStraightPathStartOnFirstPortal(t *testing.T) {
	a := []float32{1.101, .16, 2.999}
	b := []float32{2.051, .219, 2.851}
	c := []float32{1.964, .007, 3.941}
	d := []float32{2.880, .174, 4.071}
	e := []float32{2.954, .234, 3.039}
	f := []float32{4.084, .040, 3.882}
	g := []float32{3.867, .053, 2.908}
	var verts []float32
	for _, v := range [][]float32{a, b, c, d, e, f, g} {
		verts = append(verts, v...)
	}
	m := mustMesh(t, meshData{
		verts: verts,
		tris:  []uint32{0, 1, 2, 1, 3, 2, 1, 4, 3, 4, 5, 3, 4, 6, 5},
	})
	q := NewNavMeshQuery(m)

	// start lies on the edge shared by the first two triangles
	start := Vec3{2.0359755, .18192571, 3.04155}
	end := Vec3{3.9623241, .047356755, 3.3356113}
	path, err := q.FindStraightPath([]int32{0, 1, 2, 3, 4}, start, end)
	require.NoError(t, err)
	assert.Equal(t, []Vec3{start, end}, path)
	assert.InDelta(t, common.Vdist(start, end), pathLength(path), 1e-5)
}
