package detour

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/gorustyt/gonavmesh/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindNearestTriangle(t *testing.T) {
	q := NewNavMeshQuery(mustMesh(t, quadMesh()))
	for _, mode := range []QueryMode{Accuracy, Performance} {
		t.Run(mode.String(), func(t *testing.T) {
			ref, p, ok := q.FindNearestTriangle(Vec3{1, 5, 3}, mode)
			require.True(t, ok)
			assert.Equal(t, int32(1), ref)
			assert.InDelta(t, 1, p[0], 1e-5)
			assert.InDelta(t, 0, p[1], 1e-5)
			assert.InDelta(t, 3, p[2], 1e-5)

			// Both triangles touch the origin; the lower index wins.
			ref, p, ok = q.FindNearestTriangle(Vec3{0, 0, 0}, mode)
			require.True(t, ok)
			assert.Equal(t, int32(0), ref)
			assert.Equal(t, Vec3{0, 0, 0}, p)

			// Outside points clamp onto the border.
			ref, p, ok = q.FindNearestTriangle(Vec3{-1, 0, -1}, mode)
			require.True(t, ok)
			assert.Equal(t, int32(0), ref)
			assert.Equal(t, Vec3{0, 0, 0}, p)

			_, _, ok = q.FindNearestTriangle(Vec3{float32(math.NaN()), 0, 0}, mode)
			assert.False(t, ok)
		})
	}
}

func TestFindNearestTriangleGridAgreesWithScan(t *testing.T) {
	q := NewNavMeshQuery(mustMesh(t, gridMesh(10, 10)))
	for i := 0; i < 20; i++ {
		for j := 0; j < 20; j++ {
			p := Vec3{0.3 + 0.47*float32(i), 0.5, 0.2 + 0.49*float32(j)}
			wantRef, want, ok := q.FindNearestTriangle(p, Accuracy)
			require.True(t, ok)
			gotRef, got, ok := q.FindNearestTriangle(p, Performance)
			require.True(t, ok)
			assert.Equal(t, wantRef, gotRef, "point %v", p)
			assert.Equal(t, want, got, "point %v", p)
		}
	}

	// Far outside the bounds the grid still answers from its border cells.
	_, p, ok := q.FindNearestTriangle(Vec3{100, 0, 100}, Performance)
	require.True(t, ok)
	assert.Equal(t, Vec3{10, 0, 10}, p)
}

func TestGridCandidates(t *testing.T) {
	m := mustMesh(t, gridMesh(8, 8), WithGridCellScale(1), WithMaxGridDim(4))
	require.NotNil(t, m.grid)
	assert.LessOrEqual(t, m.grid.width, 4)
	assert.LessOrEqual(t, m.grid.height, 4)

	c := m.grid.candidates(Vec3{0.5, 0, 0.5})
	assert.Contains(t, c, int32(0))
	assert.Contains(t, c, int32(1))
	assert.IsIncreasing(t, c)
}

func TestQueryEmptyMesh(t *testing.T) {
	for _, q := range []*NavMeshQuery{
		NewNavMeshQuery(mustMesh(t, meshData{})),
		NewNavMeshQuery(nil),
	} {
		for _, mode := range []QueryMode{Accuracy, Performance} {
			assert.Empty(t, q.SearchPath(Vec3{0, 0, 0}, Vec3{1, 0, 1}, mode))
			_, ok := q.SamplePoint(Vec3{0, 0, 0}, mode)
			assert.False(t, ok)
			_, err := q.FindPath(Vec3{0, 0, 0}, Vec3{1, 0, 1}, mode)
			assert.True(t, errors.Is(err, ErrEmptyMesh))
		}
	}
}

func TestQuadScenario(t *testing.T) {
	q := NewNavMeshQuery(mustMesh(t, quadMesh()))
	for _, mode := range []QueryMode{Accuracy, Performance} {
		t.Run(mode.String(), func(t *testing.T) {
			path := q.SearchPath(Vec3{0, 0, 0}, Vec3{4, 0, 4}, mode)
			require.Len(t, path, 2)
			assert.Equal(t, Vec3{0, 0, 0}, path[0])
			assert.Equal(t, Vec3{4, 0, 4}, path[1])
			assert.InDelta(t, 4*math.Sqrt2, pathLength(path), 1e-4)

			p, ok := q.SamplePoint(Vec3{2, 0, 2}, mode)
			require.True(t, ok)
			assert.Equal(t, Vec3{2, 0, 2}, p)
		})
	}
}

func TestSearchPathEndpointsAreProjected(t *testing.T) {
	q := NewNavMeshQuery(mustMesh(t, quadMesh()))
	start, end := Vec3{1, 3, 0.5}, Vec3{3, -2, 3.5}
	path := q.SearchPath(start, end, Accuracy)
	require.GreaterOrEqual(t, len(path), 2)

	ps, ok := q.SamplePoint(start, Accuracy)
	require.True(t, ok)
	pe, ok := q.SamplePoint(end, Accuracy)
	require.True(t, ok)
	assert.Equal(t, ps, path[0])
	assert.Equal(t, pe, path[len(path)-1])
	assert.InDelta(t, 0, path[0][1], 1e-6)
	assert.InDelta(t, 0, path[len(path)-1][1], 1e-6)
}

func TestSearchPathSameTriangle(t *testing.T) {
	q := NewNavMeshQuery(mustMesh(t, quadMesh()))
	start, end := Vec3{3, 0, 0.5}, Vec3{3.5, 0, 2}
	res, err := q.FindPath(start, end, Accuracy)
	require.NoError(t, err)
	assert.Equal(t, res.StartRef, res.EndRef)
	assert.Equal(t, []int32{0}, res.Corridor)
	require.Len(t, res.Points, 2)
	assertVecNear(t, start, res.Points[0])
	assertVecNear(t, end, res.Points[1])
}

func TestSearchPathDisconnected(t *testing.T) {
	q := NewNavMeshQuery(mustMesh(t, disconnectedMesh()))
	for _, mode := range []QueryMode{Accuracy, Performance} {
		assert.Empty(t, q.SearchPath(Vec3{0.5, 0, 0.5}, Vec3{3.5, 0, 0.5}, mode))
		_, err := q.FindPath(Vec3{0.5, 0, 0.5}, Vec3{3.5, 0, 0.5}, mode)
		assert.True(t, errors.Is(err, ErrNoPath))
		assert.False(t, errors.Is(err, ErrFailure))
	}
}

func TestSearchPathAroundCorner(t *testing.T) {
	q := NewNavMeshQuery(mustMesh(t, lMesh()))
	start, end := Vec3{2.5, 0, 0.25}, Vec3{0.25, 0, 2.5}
	for _, mode := range []QueryMode{Accuracy, Performance} {
		t.Run(mode.String(), func(t *testing.T) {
			res, err := q.FindPath(start, end, mode)
			require.NoError(t, err)
			require.Len(t, res.Points, 3)
			assertVecNear(t, start, res.Points[0])
			assert.Equal(t, Vec3{1, 0, 1}, res.Points[1])
			assertVecNear(t, end, res.Points[2])
			assert.InDelta(t, 2*math.Sqrt(2.8125), pathLength(res.Points), 1e-4)
		})
	}
}

func TestSearchPathNonFinite(t *testing.T) {
	q := NewNavMeshQuery(mustMesh(t, quadMesh()))
	nan := float32(math.NaN())
	assert.Empty(t, q.SearchPath(Vec3{nan, 0, 0}, Vec3{1, 0, 1}, Accuracy))
	_, err := q.FindPath(Vec3{1, 0, 1}, Vec3{0, nan, 0}, Accuracy)
	assert.True(t, errors.Is(err, ErrInvalidParam))
}

func TestSearchPathDeterministic(t *testing.T) {
	q := NewNavMeshQuery(mustMesh(t, gridMesh(12, 7)))
	start, end := Vec3{0.4, 0, 6.3}, Vec3{11.2, 0, 0.7}
	for _, mode := range []QueryMode{Accuracy, Performance} {
		first, err := q.FindPath(start, end, mode)
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			again, err := q.FindPath(start, end, mode)
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	}
}

func TestSearchPathConcurrent(t *testing.T) {
	q := NewNavMeshQuery(mustMesh(t, lMesh()))
	start, end := Vec3{2.5, 0, 0.25}, Vec3{0.25, 0, 2.5}
	want := q.SearchPath(start, end, Accuracy)
	require.NotEmpty(t, want)

	const workers = 16
	results := make([][]Vec3, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			mode := QueryMode(i % 2)
			for n := 0; n < 50; n++ {
				results[i] = q.SearchPath(start, end, mode)
			}
		}(i)
	}
	wg.Wait()
	for i, got := range results {
		assert.Equal(t, want, got, "worker %d", i)
	}
}

func TestParseQueryMode(t *testing.T) {
	m, err := ParseQueryMode("")
	require.NoError(t, err)
	assert.Equal(t, Accuracy, m)
	m, err = ParseQueryMode(" Performance ")
	require.NoError(t, err)
	assert.Equal(t, Performance, m)
	_, err = ParseQueryMode("fast")
	assert.True(t, errors.Is(err, ErrInvalidParam))
	assert.Equal(t, "QueryMode(7)", QueryMode(7).String())
}

func TestAxisProjection(t *testing.T) {
	// The y axis projection agrees with the xz helper.
	a, b, c := Vec3{0, 1, 0}, Vec3{1, 2, 0}, Vec3{0, 3, 1}
	assert.Equal(t, common.TriArea2D(a, b, c), common.AxisY.TriArea2D(a, b, c))
}
