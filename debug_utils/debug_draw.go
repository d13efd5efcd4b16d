package debug_utils

import "github.com/gorustyt/gonavmesh/common"

type DuDebugDrawPrimitives int

const (
	DU_DRAW_POINTS DuDebugDrawPrimitives = iota
	DU_DRAW_LINES
	DU_DRAW_TRIS
)

// DuDebugDraw receives batches of primitives between Begin and End.
type DuDebugDraw interface {
	/// Begin drawing primitives.
	///  @param prim [in] primitive type to draw, one of DuDebugDrawPrimitives.
	///  @param size [in] size of a primitive, applies to point size and line width only.
	Begin(prim DuDebugDrawPrimitives, size ...float32)

	/// Submit a vertex
	///  @param pos [in] position of the verts.
	///  @param color [in] color of the verts.
	Vertex(pos common.Vec3, color Colorb)

	/// End drawing primitives.
	End()

	/// Compute a color for given component.
	AreaToCol(area int) Colorb
}

// DuDisplayList records one batch of primitives so it can be replayed later.
type DuDisplayList struct {
	m_pos      []common.Vec3
	m_color    []Colorb
	m_prim     DuDebugDrawPrimitives
	m_primSize float32
}

func NewDuDisplayList(capacity int) *DuDisplayList {
	if capacity < 8 {
		capacity = 8
	}
	return &DuDisplayList{
		m_pos:      make([]common.Vec3, 0, capacity),
		m_color:    make([]Colorb, 0, capacity),
		m_prim:     DU_DRAW_LINES,
		m_primSize: 1.0,
	}
}

func (d *DuDisplayList) clear() {
	d.m_pos = d.m_pos[:0]
	d.m_color = d.m_color[:0]
}

func (d *DuDisplayList) Begin(prim DuDebugDrawPrimitives, size ...float32) {
	d.clear()
	d.m_prim = prim
	d.m_primSize = 1.0
	if len(size) > 0 {
		d.m_primSize = size[0]
	}
}

func (d *DuDisplayList) Vertex(pos common.Vec3, color Colorb) {
	d.m_pos = append(d.m_pos, pos)
	d.m_color = append(d.m_color, color)
}

func (d *DuDisplayList) End() {}

func (d *DuDisplayList) AreaToCol(area int) Colorb {
	return DuIntToCol(area, 255)
}

func (d *DuDisplayList) Size() int { return len(d.m_pos) }

func (d *DuDisplayList) Prim() DuDebugDrawPrimitives { return d.m_prim }

func (d *DuDisplayList) Draw(dd DuDebugDraw) {
	if dd == nil || len(d.m_pos) == 0 {
		return
	}
	dd.Begin(d.m_prim, d.m_primSize)
	for i, p := range d.m_pos {
		dd.Vertex(p, d.m_color[i])
	}
	dd.End()
}

func DuDebugDrawCross(dd DuDebugDraw, p common.Vec3, s float32, col Colorb, lineWidth float32) {
	if dd == nil {
		return
	}
	dd.Begin(DU_DRAW_LINES, lineWidth)
	dd.Vertex(common.Vec3{p[0] - s, p[1], p[2]}, col)
	dd.Vertex(common.Vec3{p[0] + s, p[1], p[2]}, col)
	dd.Vertex(common.Vec3{p[0], p[1] - s, p[2]}, col)
	dd.Vertex(common.Vec3{p[0], p[1] + s, p[2]}, col)
	dd.Vertex(common.Vec3{p[0], p[1], p[2] - s}, col)
	dd.Vertex(common.Vec3{p[0], p[1], p[2] + s}, col)
	dd.End()
}
