package detour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type meshData struct {
	verts []float32
	tris  []uint32
}

// quadMesh is the 4x4 square on y=0 split along its (0,0,0)-(4,0,4) diagonal.
func quadMesh() meshData {
	verts := []float32{
		0, 0, 0,
		4, 0, 0,
		4, 0, 4,
		0, 0, 4,
	}
	tris := []uint32{0, 1, 2, 0, 2, 3}
	return meshData{verts, tris}
}

// gridMesh lays out w x h unit cells on y=0, cell (i, j) covering x in [i, i+1]
// and z in [j, j+1]. Cells are emitted row by row, two triangles each, the
// lower-right one first. Cells listed in skip are left out.
func gridMesh(w, h int, skip ...[2]int) meshData {
	var verts []float32
	for j := 0; j <= h; j++ {
		for i := 0; i <= w; i++ {
			verts = append(verts, float32(i), 0, float32(j))
		}
	}
	id := func(i, j int) uint32 { return uint32(j*(w+1) + i) }
	skipped := make(map[[2]int]bool, len(skip))
	for _, s := range skip {
		skipped[s] = true
	}
	var tris []uint32
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			if skipped[[2]int{i, j}] {
				continue
			}
			v00, v10, v11, v01 := id(i, j), id(i+1, j), id(i+1, j+1), id(i, j+1)
			tris = append(tris, v00, v10, v11, v00, v11, v01)
		}
	}
	return meshData{verts, tris}
}

// lMesh is a 3x3 grid keeping only the bottom row and the left column.
func lMesh() meshData {
	return gridMesh(3, 3, [2]int{1, 1}, [2]int{2, 1}, [2]int{1, 2}, [2]int{2, 2})
}

// disconnectedMesh holds two unit quads two units apart.
func disconnectedMesh() meshData {
	verts := []float32{
		0, 0, 0, 1, 0, 0, 1, 0, 1, 0, 0, 1,
		3, 0, 0, 4, 0, 0, 4, 0, 1, 3, 0, 1,
	}
	tris := []uint32{
		0, 1, 2, 0, 2, 3,
		4, 5, 6, 4, 6, 7,
	}
	return meshData{verts, tris}
}

// fanMesh has three triangles on the edge (0, 1); the third one stands upright.
func fanMesh() meshData {
	verts := []float32{
		0, 0, 0,
		1, 0, 0,
		0.5, 0, 1,
		0.5, 0, -1,
		0.5, 1, 0,
	}
	tris := []uint32{
		0, 1, 2,
		1, 0, 3,
		0, 1, 4,
	}
	return meshData{verts, tris}
}

func mustMesh(t *testing.T, d meshData, opts ...Option) *NavMesh {
	t.Helper()
	m, err := NewNavMesh(d.verts, d.tris, opts...)
	require.NoError(t, err)
	return m
}

func pathLength(points []Vec3) float32 {
	var l float32
	for i := 1; i < len(points); i++ {
		l += points[i].Sub(points[i-1]).Len()
	}
	return l
}

func assertVecNear(t *testing.T, want, got Vec3) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], 1e-5, "want %v, got %v", want, got)
}
