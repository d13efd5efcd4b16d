package detour

import (
	"container/heap"
)

const (
	DT_NODE_OPEN   = 0x01
	DT_NODE_CLOSED = 0x02
)

type DtNode struct {
	Pos    Vec3    ///< Position of the node.
	Cost   float32 ///< Cost from the start to this node.
	Total  float32 ///< Cost plus heuristic.
	Parent int32   ///< Triangle of the parent node, NoNeighbor for the start.
	Flags  uint8   ///< Node flags. A combination of DT_NODE_OPEN and DT_NODE_CLOSED.
	Id     int32   ///< Triangle the node corresponds to.
	seq    int     // discovery order, breaks ties between equal totals
	_index int     // heap slot, used by Update
}

func (node *DtNode) SetIndex(index int) { node._index = index }
func (node *DtNode) GetIndex() int      { return node._index }

// DtNodePool hands out one node per triangle for the lifetime of a single search.
type DtNodePool struct {
	nodes   map[int32]*DtNode
	nextSeq int
}

func NewDtNodePool(hint int) *DtNodePool {
	return &DtNodePool{nodes: make(map[int32]*DtNode, hint)}
}

// GetNode returns the node of a triangle, creating it on first use.
func (p *DtNodePool) GetNode(id int32) (node *DtNode, created bool) {
	if n, ok := p.nodes[id]; ok {
		return n, false
	}
	n := &DtNode{Id: id, Parent: NoNeighbor, seq: p.nextSeq, _index: -1}
	p.nextSeq++
	p.nodes[id] = n
	return n, true
}

func (p *DtNodePool) FindNode(id int32) *DtNode {
	return p.nodes[id]
}

func (p *DtNodePool) NodeCount() int { return len(p.nodes) }

// DtNodeQueue is a min-heap on Total; equal totals pop in discovery order.
type DtNodeQueue struct {
	data []*DtNode
}

func NewDtNodeQueue(capacity int) *DtNodeQueue {
	q := &DtNodeQueue{data: make([]*DtNode, 0, capacity)}
	heap.Init(q)
	return q
}

func (q *DtNodeQueue) Poll() *DtNode { return heap.Pop(q).(*DtNode) }
func (q *DtNodeQueue) Offer(n *DtNode) {
	heap.Push(q, n)
}

// Update restores heap order after n's Total changed.
func (q *DtNodeQueue) Update(n *DtNode) {
	heap.Fix(q, n.GetIndex())
}

func (q *DtNodeQueue) Empty() bool { return q.Len() == 0 }

func (q *DtNodeQueue) Len() int { return len(q.data) }
func (q *DtNodeQueue) Less(i, j int) bool {
	a, b := q.data[i], q.data[j]
	if a.Total != b.Total {
		return a.Total < b.Total
	}
	return a.seq < b.seq
}
func (q *DtNodeQueue) Swap(i, j int) {
	q.data[i], q.data[j] = q.data[j], q.data[i]
	q.data[i].SetIndex(i)
	q.data[j].SetIndex(j)
}
func (q *DtNodeQueue) Push(x any) {
	n := x.(*DtNode)
	n.SetIndex(len(q.data))
	q.data = append(q.data, n)
}
func (q *DtNodeQueue) Pop() any {
	last := len(q.data) - 1
	n := q.data[last]
	q.data[last] = nil
	q.data = q.data[:last]
	n.SetIndex(-1)
	return n
}
