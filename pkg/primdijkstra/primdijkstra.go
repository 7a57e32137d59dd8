// Package primdijkstra builds the initial rooted spanning tree inside an
// STree using a neighbour-restricted best-first search that blends edge
// length and accumulated source distance, per Prim-Dijkstra Revisited
// (Alpert et al.).
package primdijkstra

import (
	"container/heap"

	"felinetree/pkg/gcell"
	"felinetree/pkg/stree"
)

// queueEntry is one pending expansion: reach node from uphill, having
// travelled pathDist edge-length units from the source, at the given
// blended cost.
type queueEntry struct {
	node, uphill gcell.GCell
	pathDist     int
	cost         float32
	index        int // heap bookkeeping
}

// pq is a min-heap over queueEntry ordered by ascending cost, tie-broken
// by ascending GCell order so repeated runs on identical input produce
// identical trees (spec §9 "Priority queue ordering"). Shaped on the
// teacher's container/heap priorityQueue in pkg/ch/contractor.go.
type pq []*queueEntry

func (q pq) Len() int { return len(q) }
func (q pq) Less(i, j int) bool {
	if q[i].cost != q[j].cost {
		return q[i].cost < q[j].cost
	}
	return q[i].node.Less(q[j].node)
}
func (q pq) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}
func (q *pq) Push(x any) {
	e := x.(*queueEntry)
	e.index = len(*q)
	*q = append(*q, e)
}
func (q *pq) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*q = old[:n-1]
	return e
}

// Run builds the initial tree in place: every node ends up with
// Uphill != NoCell except the source, which stays NoCell. Alpha in
// [0, 1] trades total wirelength (0) against source-to-sink path
// length (1). A no-op on an empty tree.
func Run(tree *stree.STree, alpha float32) error {
	if tree.IsEmpty() {
		return nil
	}

	bestCost := map[gcell.GCell]float32{tree.Source: 0}
	toVisit := &pq{}
	heap.Init(toVisit)

	var expandErr error
	expand := func(pathDist int, cell gcell.GCell) {
		err := tree.IterateNeighbours(cell, func(n gcell.GCell) {
			edgeCost := cell.MDist(n)
			nextPathDist := pathDist + edgeCost
			nodeCost := alpha*float32(nextPathDist) + float32(edgeCost)
			if prev, ok := bestCost[n]; ok && prev <= nodeCost {
				return
			}
			if node, ok := tree.Nodes[n]; ok && !node.Uphill.IsNone() {
				return
			}
			bestCost[n] = nodeCost
			heap.Push(toVisit, &queueEntry{node: n, uphill: cell, pathDist: nextPathDist, cost: nodeCost})
		})
		if err != nil && expandErr == nil {
			expandErr = err
		}
	}

	expand(0, tree.Source)
	if expandErr != nil {
		return expandErr
	}

	for toVisit.Len() > 0 {
		next := heap.Pop(toVisit).(*queueEntry)
		node := tree.Nodes[next.node]
		if !node.Uphill.IsNone() {
			continue // already claimed by a cheaper path
		}
		node.Uphill = next.uphill
		expand(next.pathDist, next.node)
		if expandErr != nil {
			return expandErr
		}
	}
	return nil
}
