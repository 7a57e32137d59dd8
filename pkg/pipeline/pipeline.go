// Package pipeline wires the three passes — construction, local
// improvement, steinerisation — into the one fixed order every known
// caller invokes them in.
package pipeline

import (
	"fmt"
	"log"

	"felinetree/pkg/edgeflip"
	"felinetree/pkg/hvw"
	"felinetree/pkg/netio"
	"felinetree/pkg/primdijkstra"
	"felinetree/pkg/stree"
)

// Result reports what each pass did, for a caller that wants a summary
// without re-deriving it from the tree.
type Result struct {
	Tree          *stree.STree
	EdgeFlipMoves int
}

// RouteNet builds and improves a rectilinear Steiner tree for one net's
// pins, running BuildFromPins, then PrimDijkstra, EdgeFlipper, and HVW
// steinerisation in that order. alpha is shared by the construction and
// improvement passes, per spec's single global blend knob. A no-op
// sequence (returning the empty tree untouched) when the net has no
// surviving driver.
func RouteNet(pins netio.NetPins, alpha float32) (*Result, error) {
	tree := stree.BuildFromPins(pins)
	if tree.IsEmpty() {
		return &Result{Tree: tree}, nil
	}

	log.Printf("building initial tree for net rooted at %v", tree.Source)
	if err := primdijkstra.Run(tree, alpha); err != nil {
		return nil, fmt.Errorf("pipeline: construction pass: %w", err)
	}

	moves, err := edgeflip.Run(tree, alpha)
	if err != nil {
		return nil, fmt.Errorf("pipeline: edge-flip pass: %w", err)
	}
	if moves > 0 {
		log.Printf("edge flipping made %d moves", moves)
	}

	if err := hvw.Run(tree); err != nil {
		return nil, fmt.Errorf("pipeline: steinerisation pass: %w", err)
	}

	return &Result{Tree: tree, EdgeFlipMoves: moves}, nil
}

// Wirelength sums the Manhattan length of every edge in the tree.
func Wirelength(tree *stree.STree) int {
	total := 0
	for cell, node := range tree.Nodes {
		if node.Uphill.IsNone() {
			continue
		}
		total += cell.MDist(node.Uphill)
	}
	return total
}

// SteinerPointCount returns the number of nodes in the tree that are not
// pins (PortCount == 0).
func SteinerPointCount(tree *stree.STree) int {
	n := 0
	for _, node := range tree.Nodes {
		if node.PortCount == 0 {
			n++
		}
	}
	return n
}
