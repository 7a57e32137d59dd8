// Command felineroute is a demo/debug CLI over the routing core: it
// reads a small JSON net description, runs the three passes, prints a
// summary, and optionally dumps an SVG of the result. It is not a wire
// protocol or a service the core depends on.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"felinetree/pkg/gcell"
	"felinetree/pkg/netio"
	"felinetree/pkg/pipeline"
)

// jsonPin mirrors one entry of the net description's "driver"/"users"
// fields: a grid-cell location, optionally vetoed.
type jsonPin struct {
	X    int16 `json:"x"`
	Y    int16 `json:"y"`
	Skip bool  `json:"skip"`
}

// jsonNet is the input file format: one driver pin and zero or more user
// pins.
type jsonNet struct {
	Driver jsonPin   `json:"driver"`
	Users  []jsonPin `json:"users"`
}

func (n jsonNet) toPins() netio.StaticPins {
	pins := netio.StaticPins{{
		Role: netio.RoleDriver,
		Cell: gcell.GCell{X: n.Driver.X, Y: n.Driver.Y},
		Skip: n.Driver.Skip,
	}}
	for _, u := range n.Users {
		pins = append(pins, netio.Pin{
			Role: netio.RoleUser,
			Cell: gcell.GCell{X: u.X, Y: u.Y},
			Skip: u.Skip,
		})
	}
	return pins
}

func main() {
	input := flag.String("input", "", "Path to a JSON net description file")
	alpha := flag.Float64("alpha", 0.5, "Blend factor in [0,1] between path length and wirelength")
	svg := flag.String("svg", "", "Optional path to write an SVG dump of the routed tree to")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "Usage: felineroute --input <net.json> [--alpha 0.5] [--svg out.svg]")
		os.Exit(1)
	}

	start := time.Now()

	log.Println("reading net description...")
	f, err := os.Open(*input)
	if err != nil {
		log.Fatalf("failed to open input file: %v", err)
	}
	defer f.Close()

	var net jsonNet
	if err := json.NewDecoder(f).Decode(&net); err != nil {
		log.Fatalf("failed to parse net description: %v", err)
	}

	log.Println("routing net...")
	result, err := pipeline.RouteNet(net.toPins(), float32(*alpha))
	if err != nil {
		log.Fatalf("routing failed: %v", err)
	}

	if result.Tree.IsEmpty() {
		log.Println("net has no surviving driver; nothing routed")
		return
	}

	log.Printf("routed %d nodes (%d Steiner points), total wirelength %d, %d edge-flip moves, in %s",
		len(result.Tree.Nodes), pipeline.SteinerPointCount(result.Tree), pipeline.Wirelength(result.Tree),
		result.EdgeFlipMoves, time.Since(start))

	if *svg != "" {
		if err := result.Tree.DumpSVG(*svg); err != nil {
			log.Fatalf("failed to write SVG dump: %v", err)
		}
		log.Printf("wrote SVG dump to %s", *svg)
	}
}
