// Package netio defines the inbound pin enumeration contract between a
// placement/routing host and the Steiner tree construction core: for a
// given net, one driver pin and zero or more user pins, each mapping to
// one or more grid-cell locations.
package netio

import "felinetree/pkg/gcell"

// Role distinguishes a net's driver (source) from its users (sinks).
type Role int

const (
	// RoleDriver marks the single pin that becomes the tree's source.
	RoleDriver Role = iota
	// RoleUser marks a sink pin.
	RoleUser
)

// Pin is one bel-pin location contributed to a net. A single logical pin
// may map to several Pin entries sharing the same Cell (multiple
// bel-pin locations folding onto one grid cell), which BuildFromPins
// folds into TreeNode.PortCount.
type Pin struct {
	Role Role
	Cell gcell.GCell
	// Skip vetoes this individual pin instance; the caller may set this
	// for ports that should go straight to detail routing without
	// steinerisation (mirrors FelineAPI.steinerSkipPort in the system
	// this core was extracted from).
	Skip bool
}

// NetPins enumerates the pins of one net. Implementations adapt a host's
// own netlist/placement representation; this package places no
// constraint on iteration order beyond "driver pins arrive tagged
// RoleDriver".
type NetPins interface {
	Pins() []Pin
}

// StaticPins is the simplest NetPins implementation: a fixed, pre-built
// pin list. Useful for tests and for hosts that have already resolved
// bel-pin locations to grid cells.
type StaticPins []Pin

// Pins implements NetPins.
func (p StaticPins) Pins() []Pin { return p }
