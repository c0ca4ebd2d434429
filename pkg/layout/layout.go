// Package layout assigns 2-D canvas positions to every lab node.
//
// Two deterministic strategies exist. When the routers look like a ring
// (three or more routers with at least as many router-pair connections),
// routers are placed on a circle and their attached hosts are pushed
// outward along the center ray. Otherwise nodes fall into a simple grid.
//
// Both strategies are pure functions of the graph and its iteration
// order: no randomness, no clock, bit-reproducible output.
package layout

import (
	"math"

	"github.com/netlabtools/labviz/pkg/lab"
)

// Default canvas geometry.
const (
	DefaultWidth  = 1000.0
	DefaultHeight = 800.0
	DefaultMargin = 50.0

	// titleInset is vertical space reserved at the top of the canvas for
	// the diagram title in grid layouts.
	titleInset = 100.0

	// hostOffset is how far non-router nodes sit beyond their router on
	// the ring, along the center ray.
	hostOffset = 100.0
)

// Options controls canvas geometry. Zero values fall back to defaults.
type Options struct {
	Width  float64
	Height float64
	Margin float64
}

// withDefaults returns o with zero fields replaced by package defaults.
func (o Options) withDefaults() Options {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Margin == 0 {
		o.Margin = DefaultMargin
	}
	return o
}

// Result reports which strategy was used.
type Result struct {
	Ring    bool // ring topology detected and used
	Routers int  // number of router-typed nodes
}

// Compute assigns X/Y to every node in l.
func Compute(l *lab.Lab, opts Options) Result {
	o := opts.withDefaults()

	routers := l.Routers()
	var others []*lab.Node
	for _, n := range l.Nodes() {
		if n.Type != lab.NodeRouter {
			others = append(others, n)
		}
	}

	if ringTopology(l, routers) {
		layoutRing(l, routers, others, o)
		return Result{Ring: true, Routers: len(routers)}
	}
	layoutGrid(routers, others, o)
	return Result{Ring: false, Routers: len(routers)}
}

// ringTopology reports whether the routers should be drawn as a ring.
// This counts connections with exactly two router members across the
// whole lab; a dense router mesh also qualifies. It is a placement
// heuristic, not exact cycle verification.
func ringTopology(l *lab.Lab, routers []*lab.Node) bool {
	if len(routers) < 3 {
		return false
	}
	pairs := 0
	for _, c := range l.Connections() {
		if c.RouterCount() == 2 {
			pairs++
		}
	}
	return pairs >= len(routers)
}

// layoutRing places routers evenly on a circle starting at the top and
// proceeding clockwise, then hangs every other node off its first
// connected router, 100 units further out along the same direction.
func layoutRing(l *lab.Lab, routers, others []*lab.Node, o Options) {
	cx := o.Width / 2
	cy := o.Height / 2
	radius := math.Min(o.Width, o.Height) * 0.25

	for i, r := range routers {
		angle := 2*math.Pi*float64(i)/float64(len(routers)) - math.Pi/2
		r.X = cx + radius*math.Cos(angle)
		r.Y = cy + radius*math.Sin(angle)
	}

	for i, n := range others {
		router := connectedRouter(l, n, routers)
		if router == nil {
			// Degenerate stagger below the ring; crude but deterministic.
			n.X = cx + float64(len(others)-i)*50
			n.Y = cy + 200
			continue
		}
		dx := router.X - cx
		dy := router.Y - cy
		length := math.Hypot(dx, dy)
		if length > 0 {
			n.X = router.X + dx/length*hostOffset
			n.Y = router.Y + dy/length*hostOffset
		} else {
			n.X = router.X
			n.Y = router.Y - hostOffset
		}
	}
}

// connectedRouter finds the router sharing a collision domain with n.
// Connections are scanned in first-seen order; within a connection,
// routers are checked in declaration order.
func connectedRouter(l *lab.Lab, n *lab.Node, routers []*lab.Node) *lab.Node {
	for _, c := range l.Connections() {
		if !c.Contains(n) {
			continue
		}
		for _, r := range routers {
			if c.Contains(r) {
				return r
			}
		}
	}
	return nil
}

// layoutGrid places routers then other nodes into a near-square grid,
// inset by the margin and with extra headroom for the title.
func layoutGrid(routers, others []*lab.Node, o Options) {
	all := make([]*lab.Node, 0, len(routers)+len(others))
	all = append(all, routers...)
	all = append(all, others...)
	if len(all) == 0 {
		return
	}

	cols := int(math.Ceil(math.Sqrt(float64(len(all)))))
	rows := int(math.Ceil(float64(len(all)) / float64(cols)))

	for i, n := range all {
		row := i / cols
		col := i % cols
		n.X = o.Margin + (o.Width-2*o.Margin)*(float64(col)+0.5)/float64(cols)
		n.Y = o.Margin + titleInset + (o.Height-2*o.Margin-2*titleInset)*(float64(row)+0.5)/float64(rows)
	}
}
