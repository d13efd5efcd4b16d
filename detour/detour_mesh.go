package detour

// Triangle is one face of the navigation mesh.
// Edge i runs from Verts[i] to Verts[(i+1)%3]; Neis[i] is the triangle across
// that edge or NoNeighbor.
type Triangle struct {
	Verts  [3]uint32
	Neis   [3]int32
	Center Vec3
	Area   float32
}

// EdgeTo returns the index of the edge shared with triangle nei, or -1.
func (t *Triangle) EdgeTo(nei int32) int {
	for i, n := range t.Neis {
		if n == nei {
			return i
		}
	}
	return -1
}

type edgeKey struct {
	a, b uint32
}

func makeEdgeKey(a, b uint32) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a: a, b: b}
}

type edgeRef struct {
	tri  int32
	edge uint8
}

// buildAdjacency links triangles sharing an undirected edge.
//
// Non-manifold edges (more than two owners) are tolerated: the first two
// owners, in triangle then edge order, become mutual neighbours and every
// later owner keeps the edge as a boundary. The number of such edges is
// returned.
func buildAdjacency(tris []Triangle) (nonManifold int) {
	edges := make(map[edgeKey][]edgeRef, len(tris)*3/2+1)
	for i := range tris {
		t := &tris[i]
		for e := 0; e < 3; e++ {
			t.Neis[e] = NoNeighbor
			k := makeEdgeKey(t.Verts[e], t.Verts[(e+1)%3])
			edges[k] = append(edges[k], edgeRef{tri: int32(i), edge: uint8(e)})
		}
	}
	// Walk in triangle order rather than map order so results are reproducible.
	for i := range tris {
		t := &tris[i]
		for e := 0; e < 3; e++ {
			refs := edges[makeEdgeKey(t.Verts[e], t.Verts[(e+1)%3])]
			if refs[0].tri != int32(i) || refs[0].edge != uint8(e) {
				continue
			}
			if len(refs) < 2 {
				continue
			}
			if len(refs) > 2 {
				nonManifold++
			}
			a, b := refs[0], refs[1]
			tris[a.tri].Neis[a.edge] = b.tri
			tris[b.tri].Neis[b.edge] = a.tri
		}
	}
	return nonManifold
}
