package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/netlabtools/labviz/pkg/errors"
	"github.com/netlabtools/labviz/pkg/lab"
)

// ToDOT converts the lab to Graphviz DOT format as an undirected
// node-link diagram. Two-member collision domains become plain edges
// labeled with the domain id; larger domains become a small hub vertex
// with one edge per member, mirroring the SVG hub rendering.
//
// The DOT projection ignores the computed layout and lets Graphviz place
// nodes; it is an alternative view, not a faithful rendering of the
// ring/grid placement.
func ToDOT(l *lab.Lab) string {
	var buf bytes.Buffer
	buf.WriteString("graph lab {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontsize=12, style=filled];\n")
	buf.WriteString("\n")

	for _, n := range l.Nodes() {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.Name, nodeAttrs(n))
	}

	buf.WriteString("\n")
	for _, c := range l.Connections() {
		switch {
		case len(c.Members) == 2:
			fmt.Fprintf(&buf, "  %q -- %q [label=%q];\n",
				c.Members[0].Node.Name, c.Members[1].Node.Name, c.Domain)
		case len(c.Members) > 2:
			hub := "hub_" + c.Domain
			fmt.Fprintf(&buf, "  %q [shape=point, width=0.15, color=%q, xlabel=%q];\n",
				hub, colorHubStroke, c.Domain)
			for _, m := range c.Members {
				fmt.Fprintf(&buf, "  %q -- %q;\n", m.Node.Name, hub)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// nodeAttrs picks the Graphviz shape and fill for a node type, matching
// the SVG color scheme. Switch and unknown types use the PC visual.
func nodeAttrs(n *lab.Node) string {
	switch n.Type {
	case lab.NodeRouter:
		return fmt.Sprintf("shape=circle, fillcolor=%q", colorRouterFill)
	case lab.NodeServer:
		return fmt.Sprintf("shape=box, style=\"rounded,filled\", fillcolor=%q", colorServerFill)
	default:
		return fmt.Sprintf("shape=box, style=\"rounded,filled\", fillcolor=%q", colorPCFill)
	}
}

// RenderDOTPNG rasterizes a DOT graph to PNG using Graphviz.
func RenderDOTPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.PNG)
}

// RenderDOTSVG renders a DOT graph to SVG using Graphviz.
func RenderDOTSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.SVG)
}

func renderDOT(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render DOT as %s", format)
	}
	return buf.Bytes(), nil
}
