// Package render turns a classified, positioned lab graph into drawing
// artifacts: a self-contained SVG document, or a Graphviz node-link
// projection (DOT, and rasterized via Graphviz).
//
// The SVG sink writes primitives in a fixed order - background, title,
// connections, nodes, legend - so node shapes visually occlude the line
// endpoints beneath them. Output is byte-deterministic for a given graph
// and iteration order.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/netlabtools/labviz/pkg/lab"
)

// Title placeholders used when the lab carries no metadata.
const (
	defaultTitle    = "Kathara Network"
	defaultSubtitle = "Network Topology"
)

// SVGOption configures the SVG renderer.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	width   float64
	height  float64
	palette Palette
}

// WithSize sets the canvas dimensions. Defaults are 1000x800.
func WithSize(width, height float64) SVGOption {
	return func(r *svgRenderer) {
		r.width = width
		r.height = height
	}
}

// WithPalette overrides connection line colors. Empty entries keep the
// stock color.
func WithPalette(p Palette) SVGOption {
	return func(r *svgRenderer) { r.palette = p }
}

// RenderSVG renders the lab as a complete SVG document.
func RenderSVG(l *lab.Lab, opts ...SVGOption) []byte {
	r := svgRenderer{width: 1000, height: 800, palette: DefaultPalette}
	for _, opt := range opts {
		opt(&r)
	}
	r.palette = r.palette.merged()

	var buf bytes.Buffer
	r.writeHeader(&buf)
	r.writeTitle(&buf, l)
	r.writeConnections(&buf, l)
	r.writeNodes(&buf, l)
	r.writeLegend(&buf)
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) writeHeader(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(buf, "<svg viewBox=\"0 0 %g %g\" xmlns=\"http://www.w3.org/2000/svg\">\n", r.width, r.height)
	fmt.Fprintf(buf, "  <rect width=\"%g\" height=\"%g\" fill=\"%s\"/>\n", r.width, r.height, colorBackground)
}

func (r *svgRenderer) writeTitle(buf *bytes.Buffer, l *lab.Lab) {
	name := escape(l.Name(defaultTitle))
	desc := escape(l.Description(defaultSubtitle))

	fmt.Fprintf(buf, "  <text x=\"%g\" y=\"30\" text-anchor=\"middle\" font-family=\"%s\" font-size=\"20\" font-weight=\"bold\" fill=\"black\">%s</text>\n",
		r.width/2, fontFamily, name)
	fmt.Fprintf(buf, "  <text x=\"%g\" y=\"50\" text-anchor=\"middle\" font-family=\"%s\" font-size=\"14\" fill=\"black\">%s</text>\n",
		r.width/2, fontFamily, desc)
}

// writeConnections draws one primitive per collision domain: a straight
// line for two members, a hub with spokes for more. Empty or dangling
// domains draw nothing.
func (r *svgRenderer) writeConnections(buf *bytes.Buffer, l *lab.Lab) {
	buf.WriteString("  <!-- Connections -->\n")
	for _, c := range l.Connections() {
		switch {
		case len(c.Members) == 2:
			r.writeLink(buf, c)
		case len(c.Members) > 2:
			r.writeHub(buf, c)
		}
	}
}

func (r *svgRenderer) writeLink(buf *bytes.Buffer, c *lab.Connection) {
	a := c.Members[0].Node
	b := c.Members[1].Node

	dash := ""
	if c.HasMemberType(lab.NodePC) {
		dash = ` stroke-dasharray="5,5"`
	}
	fmt.Fprintf(buf, "  <line x1=\"%g\" y1=\"%g\" x2=\"%g\" y2=\"%g\" stroke=\"%s\" stroke-width=\"2\"%s/>\n",
		a.X, a.Y, b.X, b.Y, r.connectionColor(c), dash)
	fmt.Fprintf(buf, "  <text x=\"%g\" y=\"%g\" text-anchor=\"middle\" font-family=\"%s\" font-size=\"10\" fill=\"black\">%s</text>\n",
		(a.X+b.X)/2, (a.Y+b.Y)/2-5, fontFamily, escape(c.Domain))
}

func (r *svgRenderer) writeHub(buf *bytes.Buffer, c *lab.Connection) {
	var cx, cy float64
	for _, m := range c.Members {
		cx += m.Node.X
		cy += m.Node.Y
	}
	cx /= float64(len(c.Members))
	cy /= float64(len(c.Members))

	fmt.Fprintf(buf, "  <circle cx=\"%g\" cy=\"%g\" r=\"8\" fill=\"%s\" stroke=\"%s\" stroke-width=\"2\"/>\n",
		cx, cy, colorHubFill, colorHubStroke)

	color := r.connectionColor(c)
	for _, m := range c.Members {
		fmt.Fprintf(buf, "  <line x1=\"%g\" y1=\"%g\" x2=\"%g\" y2=\"%g\" stroke=\"%s\" stroke-width=\"2\"/>\n",
			m.Node.X, m.Node.Y, cx, cy, color)
	}
	fmt.Fprintf(buf, "  <text x=\"%g\" y=\"%g\" text-anchor=\"middle\" font-family=\"%s\" font-size=\"10\" fill=\"black\">%s</text>\n",
		cx, cy-15, fontFamily, escape(c.Domain))
}

func (r *svgRenderer) connectionColor(c *lab.Connection) string {
	switch c.Type {
	case lab.ConnRing:
		return r.palette.Ring
	case lab.ConnP2P:
		return r.palette.P2P
	default:
		return r.palette.LAN
	}
}

// writeNodes draws one shape per node. Switch and unknown types fall
// back to the PC visual.
func (r *svgRenderer) writeNodes(buf *bytes.Buffer, l *lab.Lab) {
	buf.WriteString("  <!-- Nodes -->\n")
	for _, n := range l.Nodes() {
		switch n.Type {
		case lab.NodeRouter:
			r.writeRouter(buf, n)
		case lab.NodeServer:
			r.writeServer(buf, n)
		default:
			r.writePC(buf, n)
		}
	}
}

func (r *svgRenderer) writeRouter(buf *bytes.Buffer, n *lab.Node) {
	fmt.Fprintf(buf, "  <circle cx=\"%g\" cy=\"%g\" r=\"25\" fill=\"%s\" stroke=\"%s\" stroke-width=\"2\"/>\n",
		n.X, n.Y, colorRouterFill, colorRouterStroke)
	fmt.Fprintf(buf, "  <text x=\"%g\" y=\"%g\" text-anchor=\"middle\" font-family=\"%s\" font-size=\"11\" font-weight=\"bold\" fill=\"black\">%s</text>\n",
		n.X, n.Y+5, fontFamily, escape(strings.ToUpper(n.Name)))
	fmt.Fprintf(buf, "  <text x=\"%g\" y=\"%g\" text-anchor=\"middle\" font-family=\"%s\" font-size=\"9\" fill=\"black\">Router</text>\n",
		n.X, n.Y+35, fontFamily)
}

func (r *svgRenderer) writePC(buf *bytes.Buffer, n *lab.Node) {
	fmt.Fprintf(buf, "  <rect x=\"%g\" y=\"%g\" width=\"50\" height=\"24\" rx=\"3\" fill=\"%s\" stroke=\"%s\" stroke-width=\"2\"/>\n",
		n.X-25, n.Y-12, colorPCFill, colorPCStroke)
	fmt.Fprintf(buf, "  <text x=\"%g\" y=\"%g\" text-anchor=\"middle\" font-family=\"%s\" font-size=\"10\" font-weight=\"bold\" fill=\"black\">%s</text>\n",
		n.X, n.Y+3, fontFamily, escape(strings.ToUpper(n.Name)))
	fmt.Fprintf(buf, "  <text x=\"%g\" y=\"%g\" text-anchor=\"middle\" font-family=\"%s\" font-size=\"9\" fill=\"black\">PC</text>\n",
		n.X, n.Y+35, fontFamily)
}

func (r *svgRenderer) writeServer(buf *bytes.Buffer, n *lab.Node) {
	caption := "Server"
	if n.Bridged() {
		caption += " (Bridged)"
	}
	fmt.Fprintf(buf, "  <rect x=\"%g\" y=\"%g\" width=\"60\" height=\"30\" rx=\"3\" fill=\"%s\" stroke=\"%s\" stroke-width=\"2\"/>\n",
		n.X-30, n.Y-15, colorServerFill, colorServerStroke)
	fmt.Fprintf(buf, "  <text x=\"%g\" y=\"%g\" text-anchor=\"middle\" font-family=\"%s\" font-size=\"9\" font-weight=\"bold\" fill=\"black\">%s</text>\n",
		n.X, n.Y+3, fontFamily, escape(strings.ToUpper(n.Name)))
	fmt.Fprintf(buf, "  <text x=\"%g\" y=\"%g\" text-anchor=\"middle\" font-family=\"%s\" font-size=\"8\" fill=\"black\">%s</text>\n",
		n.X, n.Y+35, fontFamily, caption)
}

// writeLegend emits the fixed, content-independent legend block anchored
// near the bottom-left corner.
func (r *svgRenderer) writeLegend(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "  <!-- Legend -->\n")
	fmt.Fprintf(buf, "  <g transform=\"translate(50, %g)\">\n", r.height-200)
	fmt.Fprintf(buf, "    <text x=\"0\" y=\"0\" font-family=\"%s\" font-size=\"16\" font-weight=\"bold\" fill=\"black\">Legend:</text>\n", fontFamily)

	fmt.Fprintf(buf, "    <circle cx=\"15\" cy=\"25\" r=\"12\" fill=\"%s\" stroke=\"%s\" stroke-width=\"1\"/>\n", colorRouterFill, colorRouterStroke)
	r.legendLabel(buf, 30, "Router")

	fmt.Fprintf(buf, "    <rect x=\"5\" y=\"40\" width=\"20\" height=\"12\" rx=\"2\" fill=\"%s\" stroke=\"%s\" stroke-width=\"1\"/>\n", colorPCFill, colorPCStroke)
	r.legendLabel(buf, 49, "PC/Host")

	fmt.Fprintf(buf, "    <rect x=\"5\" y=\"60\" width=\"20\" height=\"12\" rx=\"2\" fill=\"%s\" stroke=\"%s\" stroke-width=\"1\"/>\n", colorServerFill, colorServerStroke)
	r.legendLabel(buf, 69, "Server")

	fmt.Fprintf(buf, "    <line x1=\"10\" y1=\"85\" x2=\"30\" y2=\"85\" stroke=\"%s\" stroke-width=\"2\"/>\n", r.palette.Ring)
	r.legendLabel(buf, 89, "Ring Connection")

	fmt.Fprintf(buf, "    <line x1=\"10\" y1=\"105\" x2=\"30\" y2=\"105\" stroke=\"%s\" stroke-width=\"2\" stroke-dasharray=\"3,3\"/>\n", r.palette.P2P)
	r.legendLabel(buf, 109, "LAN Connection")

	fmt.Fprintf(buf, "    <circle cx=\"15\" cy=\"125\" r=\"4\" fill=\"%s\" stroke=\"%s\" stroke-width=\"1\"/>\n", colorHubFill, colorHubStroke)
	r.legendLabel(buf, 129, "Network Hub")

	buf.WriteString("  </g>\n")
}

func (r *svgRenderer) legendLabel(buf *bytes.Buffer, y int, text string) {
	fmt.Fprintf(buf, "    <text x=\"35\" y=\"%d\" font-family=\"%s\" font-size=\"12\" fill=\"black\">%s</text>\n", y, fontFamily, text)
}

// xmlReplacer escapes text content for SVG output.
var xmlReplacer = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escape(s string) string {
	return xmlReplacer.Replace(s)
}
