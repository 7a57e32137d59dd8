// Package stree implements the rooted Steiner/spanning tree data
// structure shared by the construction and improvement passes: a
// mapping from grid cell to node record, a source cell, a bounding box,
// and a sorted port set.
package stree

import (
	"errors"

	"felinetree/pkg/gcell"
	"felinetree/pkg/netio"
)

// ErrCycle is returned by TopoSorted/Altitudes when some node's uphill
// chain never ends at a node without an uphill. This is an
// invariant violation — a defect in how a caller mutated the tree
// between passes — and callers must not attempt recovery.
var ErrCycle = errors.New("stree: cycle detected, tree invariant violated")

// TreeNode is the per-cell record in an STree.
type TreeNode struct {
	// Uphill is the parent cell in the tree, or gcell.NoCell if this
	// node is the root (the source) or not yet reached.
	Uphill gcell.GCell
	// PortCount is the number of pin instances mapped to this cell. It
	// is 0 for a pure Steiner point and >=1 for every retained pin.
	PortCount int
}

// STree is a rooted tree over grid cells.
type STree struct {
	Source gcell.GCell
	Nodes  map[gcell.GCell]*TreeNode
	Ports  gcell.Set
	Box    gcell.BoundingBox
}

// New returns an empty STree (no source, no nodes) — the representation
// of a net whose driver was absent or skipped, per spec §7.
func New() *STree {
	return &STree{
		Source: gcell.NoCell,
		Nodes:  make(map[gcell.GCell]*TreeNode),
		Box:    gcell.NewBoundingBox(),
	}
}

// IsEmpty reports whether the tree has no source (the driver-absent /
// driver-skipped case). All three passes are no-ops on an empty tree.
func (t *STree) IsEmpty() bool {
	return t.Source.IsNone()
}

// BuildFromPins constructs an STree from a net's pin enumeration. The
// LAST non-skipped RoleDriver pin becomes the source — when a driver
// maps to multiple bel-pin locations, each overwrites Source in turn,
// matching STree::init_nodes in the original, which unconditionally
// reassigns result.source on every iteration of the driver's phys-pin
// loop. Every non-skipped pin (driver included) extends the bounding
// box, is pushed into Ports, and bumps its cell's PortCount. If no
// driver pin survives vetoing, the returned tree is empty (not an
// error — see spec §7).
func BuildFromPins(pins netio.NetPins) *STree {
	t := New()
	haveDriver := false
	for _, p := range pins.Pins() {
		if p.Skip {
			continue
		}
		if p.Role == netio.RoleDriver {
			t.Source = p.Cell
			haveDriver = true
		}
		node := t.nodeFor(p.Cell)
		node.PortCount++
		t.Box.Extend(p.Cell)
		t.Ports.Push(p.Cell)
	}
	if !haveDriver {
		// No accepted driver: treat as an empty net, discarding any
		// user-only bookkeeping collected above.
		return New()
	}
	t.Ports.Sort()
	return t
}

// nodeFor returns the TreeNode for c, creating it (with Uphill ==
// NoCell) if absent.
func (t *STree) nodeFor(c gcell.GCell) *TreeNode {
	n, ok := t.Nodes[c]
	if !ok {
		n = &TreeNode{Uphill: gcell.NoCell}
		t.Nodes[c] = n
	}
	return n
}

// AddSteiner inserts a new Steiner node at mid with the given uphill
// parent if mid is not already present. If mid already exists, it is
// reused unchanged (its uphill is not touched) — per spec §4.6 step 6.
func (t *STree) AddSteiner(mid, uphill gcell.GCell) {
	if _, ok := t.Nodes[mid]; ok {
		return
	}
	t.Nodes[mid] = &TreeNode{Uphill: uphill}
}

// Reparent sets child's uphill to newParent directly, without touching
// leaf-set bookkeeping (callers that maintain a leaves table must update
// it themselves).
func (t *STree) Reparent(child, newParent gcell.GCell) {
	t.Nodes[child].Uphill = newParent
}

// Leaves returns, for every node with a non-none uphill, the set of its
// direct children, keyed by parent cell.
func (t *STree) Leaves() map[gcell.GCell]map[gcell.GCell]struct{} {
	leaves := make(map[gcell.GCell]map[gcell.GCell]struct{})
	for cell, node := range t.Nodes {
		if node.Uphill.IsNone() {
			continue
		}
		set, ok := leaves[node.Uphill]
		if !ok {
			set = make(map[gcell.GCell]struct{})
			leaves[node.Uphill] = set
		}
		set[cell] = struct{}{}
	}
	return leaves
}

// TopoSorted returns node cells in parent-before-child order. Returns
// ErrCycle if the uphill graph has a cycle or an uphill that is not in
// Nodes. Every node without an uphill is taken as a root; whether Source
// is the only one is not checked.
func (t *STree) TopoSorted() ([]gcell.GCell, error) {
	children := t.Leaves()
	indegree := make(map[gcell.GCell]int, len(t.Nodes))
	for cell := range t.Nodes {
		indegree[cell] = 0
	}
	for cell, node := range t.Nodes {
		if !node.Uphill.IsNone() {
			indegree[cell] = 1
		}
	}

	queue := make([]gcell.GCell, 0, len(t.Nodes))
	for cell, deg := range indegree {
		if deg == 0 {
			queue = append(queue, cell)
		}
	}
	sortCells(queue)

	sorted := make([]gcell.GCell, 0, len(t.Nodes))
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		sorted = append(sorted, cur)
		kids := make([]gcell.GCell, 0, len(children[cur]))
		for kid := range children[cur] {
			kids = append(kids, kid)
		}
		sortCells(kids)
		for _, kid := range kids {
			indegree[kid]--
			if indegree[kid] == 0 {
				queue = append(queue, kid)
			}
		}
	}

	if len(sorted) != len(t.Nodes) {
		return nil, ErrCycle
	}
	return sorted, nil
}

// Altitudes returns, for every node, the length in edges of the longest
// downward path to a reachable leaf (0 for leaves), and the maximum
// altitude observed.
func (t *STree) Altitudes() (map[gcell.GCell]int, int, error) {
	sorted, err := t.TopoSorted()
	if err != nil {
		return nil, 0, err
	}
	altitudes := make(map[gcell.GCell]int, len(sorted))
	maxAlt := 0
	for i := len(sorted) - 1; i >= 0; i-- {
		node := sorted[i]
		if _, ok := altitudes[node]; !ok {
			altitudes[node] = 0
		}
		uphill := t.Nodes[node].Uphill
		if !uphill.IsNone() {
			cand := altitudes[node] + 1
			if cur, ok := altitudes[uphill]; !ok || cand > cur {
				altitudes[uphill] = cand
			}
		}
	}
	for _, a := range altitudes {
		if a > maxAlt {
			maxAlt = a
		}
	}
	return altitudes, maxAlt, nil
}

func sortCells(cells []gcell.GCell) {
	// insertion sort: these slices are small (node fan-out / ready
	// queues), so this avoids pulling in sort.Slice's closure overhead
	// for a hot path.
	for i := 1; i < len(cells); i++ {
		for j := i; j > 0 && cells[j].Less(cells[j-1]); j-- {
			cells[j], cells[j-1] = cells[j-1], cells[j]
		}
	}
}
