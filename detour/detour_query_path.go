package detour

import (
	"fmt"

	"github.com/gorustyt/gonavmesh/common"
	"go.uber.org/zap"
)

// FindCorridor runs an A* search over triangle adjacency from startRef to endRef.
//
// Node positions are the start point for the start triangle and the midpoint of
// the entry edge otherwise; the heuristic is the straight distance to endPos.
// Closed nodes are re-opened only when reached with a strictly lower total.
//
// In Performance mode at most expansionFactor*TriCount triangles are expanded.
// When that budget runs out the corridor to the node nearest the goal is
// returned together with ErrPartialResult.
func (q *NavMeshQuery) FindCorridor(startRef, endRef int32, startPos, endPos Vec3, mode QueryMode) ([]int32, error) {
	if q.empty() {
		return nil, ErrEmptyMesh
	}
	nav := q.m_nav
	if !nav.IsValidRef(startRef) || !nav.IsValidRef(endRef) ||
		!common.Visfinite(startPos) || !common.Visfinite(endPos) {
		return nil, fmt.Errorf("%w: corridor %d -> %d", ErrInvalidParam, startRef, endRef)
	}
	if startRef == endRef {
		return []int32{startRef}, nil
	}
	if nav.Component(startRef) != nav.Component(endRef) {
		return nil, ErrNoPath
	}

	maxExpansions := -1
	if mode == Performance {
		maxExpansions = max(int(q.expansionFactor*float32(nav.TriCount())), 1)
	}

	pool := NewDtNodePool(64)
	open := NewDtNodeQueue(64)

	startNode, _ := pool.GetNode(startRef)
	startNode.Pos = startPos
	startNode.Cost = 0
	startNode.Total = common.Vdist(startPos, endPos)
	startNode.Flags = DT_NODE_OPEN
	open.Offer(startNode)

	lastBestNode := startNode
	lastBestNodeCost := startNode.Total
	var goal *DtNode
	expansions := 0
	exhausted := false

	for !open.Empty() {
		bestNode := open.Poll()
		bestNode.Flags &^= DT_NODE_OPEN
		bestNode.Flags |= DT_NODE_CLOSED

		if bestNode.Id == endRef {
			goal = bestNode
			break
		}
		if maxExpansions >= 0 && expansions >= maxExpansions {
			exhausted = true
			break
		}
		expansions++

		tri := &nav.tris[bestNode.Id]
		for e, nei := range tri.Neis {
			if nei == NoNeighbor || nei == bestNode.Parent {
				continue
			}
			va := nav.verts[tri.Verts[e]]
			vb := nav.verts[tri.Verts[(e+1)%3]]
			pos := midpoint(va, vb)

			cost := bestNode.Cost + common.Vdist(bestNode.Pos, pos)
			var heuristic float32
			if nei == endRef {
				// The goal pays for the last leg to the end point itself.
				cost += common.Vdist(pos, endPos)
			} else {
				heuristic = common.Vdist(pos, endPos)
			}
			total := cost + heuristic

			neighbourNode, created := pool.GetNode(nei)
			if !created && total >= neighbourNode.Total {
				continue
			}
			neighbourNode.Pos = pos
			neighbourNode.Cost = cost
			neighbourNode.Total = total
			neighbourNode.Parent = bestNode.Id

			if neighbourNode.Flags&DT_NODE_OPEN != 0 {
				open.Update(neighbourNode)
			} else {
				neighbourNode.Flags = DT_NODE_OPEN
				open.Offer(neighbourNode)
			}

			if heuristic < lastBestNodeCost {
				lastBestNodeCost = heuristic
				lastBestNode = neighbourNode
			}
		}
	}

	q.logger.Debug("corridor search",
		zap.Int32("start", startRef),
		zap.Int32("end", endRef),
		zap.Stringer("mode", mode),
		zap.Int("expansions", expansions),
		zap.Int("nodes", pool.NodeCount()),
		zap.Bool("found", goal != nil))

	switch {
	case goal != nil:
		return q.getPathToNode(pool, goal), nil
	case exhausted:
		return q.getPathToNode(pool, lastBestNode), ErrPartialResult
	default:
		return nil, ErrNoPath
	}
}

// getPathToNode walks parent links back to the start and returns the triangles in travel order.
func (q *NavMeshQuery) getPathToNode(pool *DtNodePool, endNode *DtNode) []int32 {
	var path []int32
	for n := endNode; n != nil; {
		path = append(path, n.Id)
		if n.Parent == NoNeighbor {
			break
		}
		n = pool.FindNode(n.Parent)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
