package stree

import (
	"bufio"
	"fmt"
	"os"
)

const svgScale = 50.0
const svgObjSize = 10.0

// DumpSVG writes the current tree to path as an SVG 1.1 document: one
// rectangle per grid cell (red for the source, blue for a port, black
// disc for a Steiner point), and a polyline per edge from child to
// uphill with a midpoint arrowhead, scaled to 50 units per grid cell
// with a one-cell margin around Box. For diagnostics only; no stable
// schema beyond "valid SVG".
func (t *STree) DumpSVG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("stree: open svg dump %q: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	x0 := int(t.Box.X0) - 1
	y0 := int(t.Box.Y0) - 1
	width := float64(int(t.Box.X1) - x0 + 1)
	height := float64(int(t.Box.Y1) - y0 + 1)

	fmt.Fprintln(w, `<?xml version="1.0" encoding="UTF-8" standalone="no"?>`)
	fmt.Fprintf(w, "<svg viewBox=\"0 0 %f %f\" width=\"%f\" height=\"%f\" xmlns=\"http://www.w3.org/2000/svg\">\n",
		width*svgScale, height*svgScale, width*svgScale, height*svgScale)
	fmt.Fprintln(w, "<defs>")
	fmt.Fprintln(w, `<marker id="arrowhead" markerWidth="10" markerHeight="7" refX="0" refY="3.5" orient="auto">`)
	fmt.Fprintln(w, `    <polygon points="0 0, 10 3.5, 0 7" /> `)
	fmt.Fprintln(w, "  </marker>")
	fmt.Fprintln(w, "</defs>")
	fmt.Fprintln(w, `<rect x="0" y="0" width="100%" height="100%" stroke="#fff" fill="#fff"/>`)

	for cell, node := range t.Nodes {
		if node.Uphill.IsNone() {
			continue
		}
		lx0 := float64(int(node.Uphill.X)-x0) * svgScale
		ly0 := float64(int(node.Uphill.Y)-y0) * svgScale
		lx1 := float64(int(cell.X)-x0) * svgScale
		ly1 := float64(int(cell.Y)-y0) * svgScale
		fmt.Fprintf(w, "<polyline points=\"%f,%f %f,%f %f,%f\" stroke=\"black\" marker-mid=\"url(#arrowhead)\"/>\n",
			lx0, ly0, (lx0+lx1)/2.0, (ly0+ly1)/2.0, lx1, ly1)
	}

	for cell, node := range t.Nodes {
		cx := float64(int(cell.X)-x0) * svgScale
		cy := float64(int(cell.Y)-y0) * svgScale
		switch {
		case cell == t.Source:
			fmt.Fprintf(w, "<rect x=\"%f\" y=\"%f\" width=\"%f\" height=\"%f\" style=\"fill:red;stroke:black;stroke-width:1\" />\n",
				cx-svgObjSize/2, cy-svgObjSize/2, svgObjSize, svgObjSize)
		case node.PortCount > 0:
			fmt.Fprintf(w, "<rect x=\"%f\" y=\"%f\" width=\"%f\" height=\"%f\" style=\"fill:blue;stroke:black;stroke-width:1\" />\n",
				cx-svgObjSize/2, cy-svgObjSize/2, svgObjSize, svgObjSize)
		default:
			fmt.Fprintf(w, "<circle cx=\"%f\" cy=\"%f\" r=\"%f\" style=\"fill:black;stroke:black;stroke-width:1\" />\n",
				cx, cy, svgObjSize/2)
		}
	}

	fmt.Fprintln(w, "</svg>")
	if err := w.Flush(); err != nil {
		return fmt.Errorf("stree: write svg dump %q: %w", path, err)
	}
	return nil
}
