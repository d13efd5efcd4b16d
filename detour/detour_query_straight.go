package detour

import (
	"fmt"

	"github.com/gorustyt/gonavmesh/common"
)

const startPortalEpsilon float32 = 0.001

// portalPoints returns the edge shared by from and to as seen when leaving from,
// split into its left and right endpoints in the plane of the up axis.
func (q *NavMeshQuery) portalPoints(from, to int32) (left, right Vec3, ok bool) {
	nav := q.m_nav
	a, b, ok := nav.Portal(from, to)
	if !ok {
		return left, right, false
	}
	s := nav.up.TriArea2D(nav.tris[from].Center, a, b)
	if s == 0 {
		s = nav.orientation
	}
	if s > 0 {
		return a, b, true
	}
	return b, a, true
}

// FindStraightPath pulls the corridor tight with the simple stupid funnel
// algorithm and returns the string-pulled points from start to end.
// Every point between start and end is a vertex of one of the corridor portals.
func (q *NavMeshQuery) FindStraightPath(corridor []int32, start, end Vec3) ([]Vec3, error) {
	if q.empty() {
		return nil, ErrEmptyMesh
	}
	if len(corridor) == 0 {
		return nil, fmt.Errorf("%w: empty corridor", ErrInvalidParam)
	}
	if !common.Visfinite(start) || !common.Visfinite(end) {
		return nil, fmt.Errorf("%w: non-finite endpoint", ErrInvalidParam)
	}
	for _, ref := range corridor {
		if !q.m_nav.IsValidRef(ref) {
			return nil, fmt.Errorf("%w: corridor triangle %d out of range", ErrInvalidParam, ref)
		}
	}
	if len(corridor) == 1 {
		return []Vec3{start, end}, nil
	}

	// Portal 0 is the start point, the last one the end point.
	n := len(corridor) + 1
	lefts := make([]Vec3, n)
	rights := make([]Vec3, n)
	lefts[0], rights[0] = start, start
	for i := 0; i+1 < len(corridor); i++ {
		l, r, ok := q.portalPoints(corridor[i], corridor[i+1])
		if !ok {
			return nil, fmt.Errorf("%w: corridor triangles %d and %d are not adjacent", ErrInvalidParam, corridor[i], corridor[i+1])
		}
		lefts[i+1], rights[i+1] = l, r
	}
	lefts[n-1], rights[n-1] = end, end

	area := q.m_nav.up.TriArea2D
	path := []Vec3{start}
	push := func(p Vec3) {
		if !common.Vequal(path[len(path)-1], p) {
			path = append(path, p)
		}
	}

	portalApex, portalLeft, portalRight := start, start, start
	apexIndex, leftIndex, rightIndex := 0, 0, 0

	for i := 0; i < n; i++ {
		left, right := lefts[i], rights[i]

		// If starting really close the first portal, advance.
		if i == 1 {
			if _, d := q.m_nav.up.DistancePtSegSqr2D(portalApex, left, right); d < common.Sqr(startPortalEpsilon) {
				continue
			}
		}

		// Right vertex.
		if area(portalApex, portalRight, right) <= 0 {
			if common.Vequal(portalApex, portalRight) || area(portalApex, portalLeft, right) > 0 {
				portalRight = right
				rightIndex = i
			} else {
				// Right over left, insert left to path and restart scan from portal left point.
				portalApex = portalLeft
				apexIndex = leftIndex
				push(portalApex)
				portalLeft, portalRight = portalApex, portalApex
				leftIndex, rightIndex = apexIndex, apexIndex
				i = apexIndex
				continue
			}
		}

		// Left vertex.
		if area(portalApex, portalLeft, left) >= 0 {
			if common.Vequal(portalApex, portalLeft) || area(portalApex, portalRight, left) < 0 {
				portalLeft = left
				leftIndex = i
			} else {
				// Left over right, insert right to path and restart scan from portal right point.
				portalApex = portalRight
				apexIndex = rightIndex
				push(portalApex)
				portalLeft, portalRight = portalApex, portalApex
				leftIndex, rightIndex = apexIndex, apexIndex
				i = apexIndex
				continue
			}
		}
	}

	if len(path) > 1 && common.Vequal(path[len(path)-1], end) {
		path[len(path)-1] = end
	} else {
		path = append(path, end)
	}
	return path, nil
}
