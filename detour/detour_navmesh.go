package detour

import (
	"fmt"
	"math"

	"github.com/gorustyt/gonavmesh/common"
	"github.com/gorustyt/gonavmesh/common/logger"
	"go.uber.org/zap"
)

// NavMesh is an immutable triangle mesh with precomputed adjacency.
// Every method only reads, so one NavMesh may serve any number of goroutines.
type NavMesh struct {
	verts      []Vec3
	tris       []Triangle
	bmin, bmax Vec3

	components     []int32
	componentCount int

	up          common.Axis
	orientation float32

	nonManifoldEdges int
	grid             *triGrid
}

type buildConfig struct {
	gridCellScale float32
	maxGridDim    int
	logger        *zap.Logger
}

type Option func(*buildConfig)

// WithGridCellScale scales the Performance-mode grid cell relative to the average triangle extent.
func WithGridCellScale(scale float32) Option {
	return func(c *buildConfig) {
		if scale > 0 {
			c.gridCellScale = scale
		}
	}
}

// WithMaxGridDim caps the number of grid cells along each axis.
func WithMaxGridDim(n int) Option {
	return func(c *buildConfig) {
		if n > 0 {
			c.maxGridDim = n
		}
	}
}

func WithBuildLogger(l *zap.Logger) Option {
	return func(c *buildConfig) {
		c.logger = logger.OrNop(l)
	}
}

// NewNavMesh validates flat x,y,z vertex and i0,i1,i2 index buffers and builds the mesh.
//
// Index checks run over all triangles before any area check, so a buffer with an
// out of range index always fails with ErrInvalidIndex.
func NewNavMesh(verts []float32, tris []uint32, opts ...Option) (*NavMesh, error) {
	cfg := buildConfig{
		gridCellScale: DefaultGridCellScale,
		maxGridDim:    DefaultMaxGridDim,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(verts)%3 != 0 {
		return nil, fmt.Errorf("%w: vertex buffer length %d is not a multiple of 3", ErrInvalidParam, len(verts))
	}
	if len(tris)%3 != 0 {
		return nil, fmt.Errorf("%w: triangle buffer length %d is not a multiple of 3", ErrInvalidParam, len(tris))
	}

	m := &NavMesh{up: common.AxisY, orientation: 1}
	nverts := len(verts) / 3
	m.verts = make([]Vec3, nverts)
	for i := range m.verts {
		v := common.ToVec3(verts, i)
		if !common.Visfinite(v) {
			return nil, fmt.Errorf("%w: vertex %d is not finite", ErrInvalidParam, i)
		}
		m.verts[i] = v
		if i == 0 {
			m.bmin, m.bmax = v, v
		} else {
			m.bmin = common.Vmin(m.bmin, v)
			m.bmax = common.Vmax(m.bmax, v)
		}
	}

	ntris := len(tris) / 3
	for i := 0; i < ntris; i++ {
		for _, idx := range common.GetVert3(tris, i) {
			if int(idx) >= nverts {
				return nil, fmt.Errorf("%w: triangle %d index %d, vertex count %d", ErrInvalidIndex, i, idx, nverts)
			}
		}
	}

	diag := m.bmax.Sub(m.bmin)
	diagSqr := float64(diag.Dot(diag))
	minAreaSqr := common.Sqr(DegenerateAreaEpsilon * diagSqr)
	var normal [3]float64
	m.tris = make([]Triangle, ntris)
	for i := range m.tris {
		t := &m.tris[i]
		copy(t.Verts[:], common.GetVert3(tris, i))
		a, b, c := m.verts[t.Verts[0]], m.verts[t.Verts[1]], m.verts[t.Verts[2]]
		areaSqr := common.TriAreaSqr64(a, b, c)
		if areaSqr <= minAreaSqr {
			return nil, fmt.Errorf("%w: triangle %d (%d, %d, %d)", ErrDegenerateTriangle, i, t.Verts[0], t.Verts[1], t.Verts[2])
		}
		t.Area = float32(math.Sqrt(areaSqr))
		t.Center = a.Add(b).Add(c).Mul(1.0 / 3.0)
		n := b.Sub(a).Cross(c.Sub(a))
		for k := range normal {
			normal[k] += float64(n[k])
		}
	}

	m.nonManifoldEdges = buildAdjacency(m.tris)
	m.up, m.orientation = dominantAxis(normal)
	m.buildComponents()
	m.grid = newTriGrid(m, cfg.gridCellScale, cfg.maxGridDim)

	cfg.logger.Debug("navmesh built",
		zap.Int("verts", nverts),
		zap.Int("tris", ntris),
		zap.Int("components", m.componentCount),
		zap.Stringer("up", m.up))
	if m.nonManifoldEdges > 0 {
		cfg.logger.Warn("navmesh has non-manifold edges, extra owners are treated as boundaries",
			zap.Int("edges", m.nonManifoldEdges))
	}
	return m, nil
}

// dominantAxis picks the axis carrying the largest share of the summed face
// normal, preferring Y on ties, and the sign of the normal along it.
func dominantAxis(n [3]float64) (common.Axis, float32) {
	up := common.AxisY
	for _, a := range []common.Axis{common.AxisX, common.AxisZ} {
		if math.Abs(n[a]) > math.Abs(n[up]) {
			up = a
		}
	}
	if n[up] < 0 {
		return up, -1
	}
	return up, 1
}

func (m *NavMesh) buildComponents() {
	m.components = make([]int32, len(m.tris))
	for i := range m.components {
		m.components[i] = -1
	}
	var stack []int32
	for i := range m.tris {
		if m.components[i] != -1 {
			continue
		}
		id := int32(m.componentCount)
		m.componentCount++
		m.components[i] = id
		stack = append(stack[:0], int32(i))
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, nei := range m.tris[cur].Neis {
				if nei != NoNeighbor && m.components[nei] == -1 {
					m.components[nei] = id
					stack = append(stack, nei)
				}
			}
		}
	}
}

func (m *NavMesh) VertCount() int { return len(m.verts) }
func (m *NavMesh) TriCount() int  { return len(m.tris) }
func (m *NavMesh) Empty() bool    { return len(m.tris) == 0 }

func (m *NavMesh) Vert(i int) Vec3 { return m.verts[i] }

// Triangle returns a copy of the triangle record.
func (m *NavMesh) Triangle(ref int32) Triangle { return m.tris[ref] }

func (m *NavMesh) TriVerts(ref int32) (a, b, c Vec3) {
	t := &m.tris[ref]
	return m.verts[t.Verts[0]], m.verts[t.Verts[1]], m.verts[t.Verts[2]]
}

func (m *NavMesh) IsValidRef(ref int32) bool {
	return ref >= 0 && int(ref) < len(m.tris)
}

func (m *NavMesh) Bounds() (bmin, bmax Vec3) { return m.bmin, m.bmax }

// Component returns the connected component id of a triangle.
func (m *NavMesh) Component(ref int32) int32 { return m.components[ref] }

func (m *NavMesh) ComponentCount() int { return m.componentCount }

// UpAxis is the axis the funnel projects along.
func (m *NavMesh) UpAxis() common.Axis { return m.up }

func (m *NavMesh) NonManifoldEdges() int { return m.nonManifoldEdges }

// Vertices returns a copy of the vertex pool as a flat x,y,z buffer.
func (m *NavMesh) Vertices() []float32 {
	return common.FlattenVec3(m.verts)
}

// Indices returns a copy of the triangle index buffer.
func (m *NavMesh) Indices() []uint32 {
	res := make([]uint32, 0, len(m.tris)*3)
	for i := range m.tris {
		res = append(res, m.tris[i].Verts[:]...)
	}
	return res
}

// Portal returns the endpoints of the edge shared by from and to, in from's winding order.
func (m *NavMesh) Portal(from, to int32) (a, b Vec3, ok bool) {
	if !m.IsValidRef(from) || !m.IsValidRef(to) {
		return a, b, false
	}
	t := &m.tris[from]
	e := t.EdgeTo(to)
	if e < 0 {
		return a, b, false
	}
	return m.verts[t.Verts[e]], m.verts[t.Verts[(e+1)%3]], true
}

// ValidateAdjacency checks that every neighbour link is mirrored across the same vertex pair.
func (m *NavMesh) ValidateAdjacency() error {
	for i := range m.tris {
		t := &m.tris[i]
		for e, nei := range t.Neis {
			if nei == NoNeighbor {
				continue
			}
			if !m.IsValidRef(nei) {
				return fmt.Errorf("triangle %d edge %d: neighbour %d out of range", i, e, nei)
			}
			k := makeEdgeKey(t.Verts[e], t.Verts[(e+1)%3])
			o := &m.tris[nei]
			mirrored := false
			for oe, back := range o.Neis {
				if back == int32(i) && makeEdgeKey(o.Verts[oe], o.Verts[(oe+1)%3]) == k {
					mirrored = true
					break
				}
			}
			if !mirrored {
				return fmt.Errorf("triangle %d edge %d: neighbour %d does not link back", i, e, nei)
			}
		}
	}
	return nil
}
