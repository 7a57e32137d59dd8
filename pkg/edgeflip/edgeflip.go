// Package edgeflip implements the PD-II-style single-flip local
// improvement pass: it reduces the weighted detour objective
// alpha*sum(path_dist) + (1-alpha)*sum(edge_len) by swapping edges while
// preserving reachability.
package edgeflip

import (
	"log"

	"felinetree/pkg/gcell"
	"felinetree/pkg/stree"
)

// maxIterations bounds the move-search loop so ill-conditioned inputs
// cannot run unbounded, per spec §4.5/§9 ("an implementer should also
// cap the loop by a sanity iteration bound"). Grounded on the teacher's
// named safety-bound constants (maxShortcutsPerNode in
// pkg/ch/contractor.go, maxUnpackDepth in pkg/routing/unpack.go): this
// resolves the spec's open question by picking a generous but finite
// cap rather than leaving the loop unbounded.
const maxIterations = 100000

// sedge is an undirected-in-spirit tree edge represented as a directed
// (src, dst) pair, src being the uphill side.
type sedge struct {
	src, dst gcell.GCell
}

func (e sedge) flip() sedge { return sedge{src: e.dst, dst: e.src} }
func (e sedge) dist() int   { return e.src.MDist(e.dst) }

// Run applies single-flip moves until none reduces the objective, or
// the iteration cap is hit. Returns the number of moves committed. A
// no-op on an empty tree or a tree with no flippable edges.
func Run(tree *stree.STree, alpha float32) (int, error) {
	if tree.IsEmpty() {
		return 0, nil
	}

	st, err := newState(tree)
	if err != nil {
		return 0, err
	}
	moves := 0
	for iter := 0; iter < maxIterations; iter++ {
		bestDelta := float32(0)
		var bestRem, bestAdd, bestFlip sedge
		found := false

		for v, node := range tree.Nodes {
			u := node.Uphill
			if u.IsNone() {
				continue
			}
			vChildren := st.leaves[v]
			if len(vChildren) == 0 {
				continue
			}
			uChildren := st.leaves[u]
			for newSrc := range uChildren {
				if newSrc == v {
					continue
				}
				for newDst := range vChildren {
					remd := sedge{src: u, dst: v}
					added := sedge{src: newSrc, dst: newDst}
					flipped := sedge{src: v, dst: newDst}

					dv := 1 + st.totalLeafCount[v]
					dnd := 1 + st.totalLeafCount[newDst]
					origPath := remd.dist()*dv + flipped.dist()*dnd
					newPath := (added.dist()+flipped.dist())*(dv-dnd) + added.dist()*dnd
					delta := alpha*float32(newPath-origPath) + (1-alpha)*float32(added.dist()-remd.dist())

					if delta < bestDelta {
						bestDelta = delta
						bestRem, bestAdd, bestFlip = remd, added, flipped
						found = true
					}
				}
			}
		}

		if !found || bestDelta >= 0 {
			break
		}

		if err := st.commit(bestRem, bestAdd, bestFlip); err != nil {
			return moves, err
		}
		moves++
	}
	if moves > 0 {
		log.Printf("edge flipping made %d moves", moves)
	}
	return moves, nil
}

// state holds the leaves/total-leaf-count bookkeeping rebuilt once per
// Run invocation and kept consistent after every commit — spec §9 calls
// for both the pre-loop rebuild and staying in sync with commits; this
// implementation keeps them in sync by a full resync after each commit
// rather than computing incremental deltas, since the move-search
// formula only ever reads totalLeafCount for the handful of nodes
// touched by the next search and a resync is cheap relative to the
// O(|leaves[u]|*|leaves[v]|) search itself.
type state struct {
	tree           *stree.STree
	leaves         map[gcell.GCell]map[gcell.GCell]struct{}
	totalLeafCount map[gcell.GCell]int
}

func newState(tree *stree.STree) (*state, error) {
	st := &state{tree: tree}
	if err := st.resync(); err != nil {
		return nil, err
	}
	return st, nil
}

func (st *state) resync() error {
	st.leaves = st.tree.Leaves()
	count, err := computeTotalLeafCount(st.tree, st.leaves)
	if err != nil {
		return err
	}
	st.totalLeafCount = count
	return nil
}

// computeTotalLeafCount returns, for every node, the number of strict
// descendants (not counting itself), via a reverse-topological
// (children-first) sweep.
func computeTotalLeafCount(tree *stree.STree, leaves map[gcell.GCell]map[gcell.GCell]struct{}) (map[gcell.GCell]int, error) {
	sorted, err := tree.TopoSorted()
	if err != nil {
		return nil, err
	}
	count := make(map[gcell.GCell]int, len(sorted))
	for i := len(sorted) - 1; i >= 0; i-- {
		node := sorted[i]
		total := 0
		for child := range leaves[node] {
			total += count[child] + 1
		}
		count[node] = total
	}
	return count, nil
}

func (st *state) commit(rem, add, flip sedge) error {
	st.removeEdge(rem)
	st.removeEdge(flip)
	st.addEdge(add)
	st.addEdge(flip.flip())
	return st.resync()
}

func (st *state) removeEdge(e sedge) {
	node := st.tree.Nodes[e.dst]
	node.Uphill = gcell.NoCell
	delete(st.leaves[e.src], e.dst)
}

func (st *state) addEdge(e sedge) {
	node := st.tree.Nodes[e.dst]
	node.Uphill = e.src
	if st.leaves[e.src] == nil {
		st.leaves[e.src] = make(map[gcell.GCell]struct{})
	}
	st.leaves[e.src][e.dst] = struct{}{}
}
