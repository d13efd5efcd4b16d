package debug_utils

import (
	"github.com/gorustyt/gonavmesh/common"
	"github.com/gorustyt/gonavmesh/detour"
)

const (
	DU_DRAWNAVMESH_COMPONENTS = 0x01 // Color triangles by connected component.
	DU_DRAWNAVMESH_INNERBOUND = 0x02 // Draw edges shared by two triangles.
)

// DuDebugDrawNavMesh draws the triangles of mesh followed by its edges.
// Boundary edges are always drawn; flags add component colors and inner edges.
func DuDebugDrawNavMesh(dd DuDebugDraw, mesh *detour.NavMesh, flags int) {
	if dd == nil || mesh == nil || mesh.Empty() {
		return
	}

	dd.Begin(DU_DRAW_TRIS)
	for i := 0; i < mesh.TriCount(); i++ {
		ref := int32(i)
		col := DuRGBA(0, 192, 255, 64)
		if flags&DU_DRAWNAVMESH_COMPONENTS != 0 {
			col = DuTransCol(dd.AreaToCol(int(mesh.Component(ref))+1), 96)
		}
		a, b, c := mesh.TriVerts(ref)
		dd.Vertex(a, col)
		dd.Vertex(b, col)
		dd.Vertex(c, col)
	}
	dd.End()

	if flags&DU_DRAWNAVMESH_INNERBOUND != 0 {
		drawTriBoundaries(dd, mesh, DuRGBA(0, 48, 64, 32), 1.5, true)
	}
	drawTriBoundaries(dd, mesh, DuRGBA(0, 48, 64, 220), 2.5, false)
}

func drawTriBoundaries(dd DuDebugDraw, mesh *detour.NavMesh, col Colorb, linew float32, inner bool) {
	dd.Begin(DU_DRAW_LINES, linew)
	for i := 0; i < mesh.TriCount(); i++ {
		ref := int32(i)
		t := mesh.Triangle(ref)
		for e, nei := range t.Neis {
			if inner != (nei != detour.NoNeighbor) {
				continue
			}
			// Shared edges are drawn once, from the lower index.
			if inner && nei < ref {
				continue
			}
			dd.Vertex(mesh.Vert(int(t.Verts[e])), col)
			dd.Vertex(mesh.Vert(int(t.Verts[(e+1)%3])), col)
		}
	}
	dd.End()
}

// DuDebugDrawCorridor highlights the triangles of a corridor.
func DuDebugDrawCorridor(dd DuDebugDraw, mesh *detour.NavMesh, corridor []int32, col Colorb) {
	if dd == nil || mesh == nil {
		return
	}
	dd.Begin(DU_DRAW_TRIS)
	for _, ref := range corridor {
		if !mesh.IsValidRef(ref) {
			continue
		}
		a, b, c := mesh.TriVerts(ref)
		dd.Vertex(a, col)
		dd.Vertex(b, col)
		dd.Vertex(c, col)
	}
	dd.End()
}

// DuDebugDrawPath draws a straight path as a polyline with a cross on every corner.
func DuDebugDrawPath(dd DuDebugDraw, path []common.Vec3, col Colorb, linew float32) {
	if dd == nil || len(path) == 0 {
		return
	}
	dd.Begin(DU_DRAW_LINES, linew)
	for i := 1; i < len(path); i++ {
		dd.Vertex(path[i-1], col)
		dd.Vertex(path[i], col)
	}
	dd.End()

	dd.Begin(DU_DRAW_POINTS, linew*2)
	for _, p := range path {
		dd.Vertex(p, DuDarkenCol(col))
	}
	dd.End()
}
