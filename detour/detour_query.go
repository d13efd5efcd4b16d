package detour

import (
	"errors"

	"github.com/gorustyt/gonavmesh/common"
	"github.com/gorustyt/gonavmesh/common/logger"
	"go.uber.org/zap"
)

// NavMeshQuery answers path and sampling queries against one NavMesh.
// It holds no per-query state and may be shared between goroutines.
type NavMeshQuery struct {
	m_nav           *NavMesh
	expansionFactor float32
	logger          *zap.Logger
}

type QueryOption func(*NavMeshQuery)

// WithExpansionFactor sets the Performance-mode search budget as a multiple of the triangle count.
func WithExpansionFactor(factor float32) QueryOption {
	return func(q *NavMeshQuery) {
		if factor > 0 {
			q.expansionFactor = factor
		}
	}
}

func WithLogger(l *zap.Logger) QueryOption {
	return func(q *NavMeshQuery) {
		q.logger = logger.OrNop(l)
	}
}

func NewNavMeshQuery(nav *NavMesh, opts ...QueryOption) *NavMeshQuery {
	q := &NavMeshQuery{
		m_nav:           nav,
		expansionFactor: DefaultExpansionFactor,
		logger:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

func (q *NavMeshQuery) GetAttachedNavMesh() *NavMesh { return q.m_nav }

func (q *NavMeshQuery) empty() bool {
	return q.m_nav == nil || q.m_nav.Empty()
}

// FindNearestTriangle returns the triangle closest to p and the closest point on it.
// ok is false for an empty mesh or a non-finite p.
//
// Ties within a small relative tolerance resolve to the lowest triangle index.
// In Performance mode only triangles bucketed near p are considered, so the
// answer may be farther than the true nearest one.
func (q *NavMeshQuery) FindNearestTriangle(p Vec3, mode QueryMode) (ref int32, nearest Vec3, ok bool) {
	if q.empty() || !common.Visfinite(p) {
		return NoNeighbor, nearest, false
	}
	nav := q.m_nav
	ref = NoNeighbor
	bestDist := float32(0)
	consider := func(i int32) {
		a, b, c := nav.TriVerts(i)
		pt := common.ClosestPtPointTriangle(p, a, b, c)
		d := common.VdistSqr(p, pt)
		if ref == NoNeighbor || d < bestDist-locateEpsilon*bestDist {
			ref, nearest, bestDist = i, pt, d
		}
	}
	if mode == Performance && nav.grid != nil {
		for _, i := range nav.grid.candidates(p) {
			consider(i)
		}
	} else {
		for i := range nav.tris {
			consider(int32(i))
		}
	}
	return ref, nearest, ref != NoNeighbor
}

// PathResult is a resolved path together with the corridor it was pulled through.
type PathResult struct {
	Points   []Vec3
	Corridor []int32
	StartRef int32
	EndRef   int32
}

// FindPath locates both endpoints, searches a corridor and pulls it tight.
// Unlike SearchPath it reports why no path was produced: ErrEmptyMesh,
// ErrNoPath, or ErrPartialResult when the Performance budget ran out.
func (q *NavMeshQuery) FindPath(start, end Vec3, mode QueryMode) (*PathResult, error) {
	if q.empty() {
		return nil, ErrEmptyMesh
	}
	startRef, startPos, ok := q.FindNearestTriangle(start, mode)
	if !ok {
		return nil, ErrInvalidParam
	}
	endRef, endPos, ok := q.FindNearestTriangle(end, mode)
	if !ok {
		return nil, ErrInvalidParam
	}
	corridor, err := q.FindCorridor(startRef, endRef, startPos, endPos, mode)
	if err != nil {
		return nil, err
	}
	points, err := q.FindStraightPath(corridor, startPos, endPos)
	if err != nil {
		return nil, err
	}
	return &PathResult{Points: points, Corridor: corridor, StartRef: startRef, EndRef: endRef}, nil
}

// SearchPath returns the path from start to end, or nil when the mesh is empty
// or the two points are not connected. It never fails loudly.
func (q *NavMeshQuery) SearchPath(start, end Vec3, mode QueryMode) []Vec3 {
	res, err := q.FindPath(start, end, mode)
	if err != nil {
		if !errors.Is(err, ErrNoPath) && !errors.Is(err, ErrEmptyMesh) {
			q.logger.Debug("search path failed",
				zap.Stringer("mode", mode),
				zap.Error(err))
		}
		return nil
	}
	return res.Points
}

// SamplePoint returns the point of the mesh surface nearest to p.
func (q *NavMeshQuery) SamplePoint(p Vec3, mode QueryMode) (Vec3, bool) {
	_, pt, ok := q.FindNearestTriangle(p, mode)
	return pt, ok
}
