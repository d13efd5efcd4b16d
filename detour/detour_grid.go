package detour

import (
	"math"
	"slices"

	"github.com/gorustyt/gonavmesh/common"
)

// triGrid buckets triangles by their AABB projected along the mesh up axis.
// Built once in NewNavMesh and only read afterwards.
type triGrid struct {
	axis          common.Axis
	minU, minV    float32
	cellSize      float32
	width, height int
	cells         [][]int32
}

func newTriGrid(m *NavMesh, cellScale float32, maxDim int) *triGrid {
	if len(m.tris) == 0 {
		return nil
	}
	g := &triGrid{axis: m.up}
	g.minU, g.minV = g.axis.Project(m.bmin)
	maxU, maxV := g.axis.Project(m.bmax)
	extent := max(maxU-g.minU, maxV-g.minV)

	var avg float64
	for i := range m.tris {
		lo, hi := g.triBounds(m, int32(i))
		avg += float64(max(hi[0]-lo[0], hi[1]-lo[1]))
	}
	avg /= float64(len(m.tris))

	g.cellSize = float32(avg) * cellScale
	if g.cellSize <= 0 || extent/g.cellSize > float32(maxDim) {
		g.cellSize = extent / float32(maxDim)
	}
	if g.cellSize <= 0 {
		// Every triangle projects onto a single point; one cell holds them all.
		g.cellSize = 1
	}
	g.width = min(int((maxU-g.minU)/g.cellSize)+1, maxDim)
	g.height = min(int((maxV-g.minV)/g.cellSize)+1, maxDim)
	g.cells = make([][]int32, g.width*g.height)

	for i := range m.tris {
		lo, hi := g.triBounds(m, int32(i))
		x0, y0 := g.cellOf(lo[0], lo[1])
		x1, y1 := g.cellOf(hi[0], hi[1])
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				idx := y*g.width + x
				g.cells[idx] = append(g.cells[idx], int32(i))
			}
		}
	}
	return g
}

func (g *triGrid) triBounds(m *NavMesh, ref int32) (lo, hi [2]float32) {
	a, b, c := m.TriVerts(ref)
	au, av := g.axis.Project(a)
	bu, bv := g.axis.Project(b)
	cu, cv := g.axis.Project(c)
	lo = [2]float32{min(au, bu, cu), min(av, bv, cv)}
	hi = [2]float32{max(au, bu, cu), max(av, bv, cv)}
	return lo, hi
}

// cellOf maps plane coordinates to a cell, clamping points outside the grid to its border.
func (g *triGrid) cellOf(u, v float32) (x, y int) {
	fx := math.Floor(float64((u - g.minU) / g.cellSize))
	fy := math.Floor(float64((v - g.minV) / g.cellSize))
	x = int(common.Clamp(fx, 0, float64(g.width-1)))
	y = int(common.Clamp(fy, 0, float64(g.height-1)))
	return x, y
}

// candidates returns the sorted, de-duplicated triangles of the 3x3 cell block
// around p. The block grows ring by ring only while it holds no triangle.
func (g *triGrid) candidates(p Vec3) []int32 {
	cx, cy := g.cellOf(g.axis.Project(p))
	var res []int32
	maxRing := max(g.width, g.height)
	for r := 1; r <= maxRing; r++ {
		for y := cy - r; y <= cy+r; y++ {
			if y < 0 || y >= g.height {
				continue
			}
			for x := cx - r; x <= cx+r; x++ {
				if x < 0 || x >= g.width {
					continue
				}
				// inner block was scanned by the previous ring
				if r > 1 && common.Abs(x-cx) < r && common.Abs(y-cy) < r {
					continue
				}
				res = append(res, g.cells[y*g.width+x]...)
			}
		}
		if len(res) > 0 {
			break
		}
	}
	slices.Sort(res)
	return slices.Compact(res)
}
