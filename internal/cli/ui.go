package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/netlabtools/labviz/pkg/lab"
	"github.com/netlabtools/labviz/pkg/pipeline"
)

// Terminal color palette for inspect/generate summaries.
var (
	colorCyan  = lipgloss.Color("36")  // primary values
	colorGreen = lipgloss.Color("35")  // success
	colorWhite = lipgloss.Color("255") // values
	colorGray  = lipgloss.Color("245") // secondary text
	colorDim   = lipgloss.Color("240") // muted text
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(14)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
)

const iconSuccess = "✓"

// printTitle prints a bold section heading.
func printTitle(format string, args ...any) {
	fmt.Println(styleTitle.Render(fmt.Sprintf(format, args...)))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	fmt.Println(styleKey.Render(key) + " " + styleValue.Render(value))
}

// printCount prints an indented "<n> <label>" line.
func printCount(label string, n int) {
	fmt.Println("  " + styleNumber.Render(fmt.Sprintf("%d", n)) + " " + styleDim.Render(label))
}

// printSuccessLine prints a success message.
func printSuccessLine(format string, args ...any) {
	fmt.Println(styleSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

// printSummary prints a one-look overview of a pipeline result.
func printSummary(result *pipeline.Result) {
	layoutName := "grid"
	if result.Layout.Ring {
		layoutName = "ring"
	}
	printSuccessLine("%d nodes, %d connections, %s layout",
		result.Stats.NodeCount, result.Stats.ConnectionCount, layoutName)
}

// printLabSummary prints the inspect view: metadata, then node and
// connection counts grouped by classified type.
func printLabSummary(l *lab.Lab) {
	printTitle("Lab")
	printKeyValue("name", l.Name("(unnamed)"))
	printKeyValue("description", l.Description("(none)"))

	nodeCounts := make(map[lab.NodeType]int)
	for _, n := range l.Nodes() {
		nodeCounts[n.Type]++
	}
	printTitle("Nodes (%d)", l.NodeCount())
	for _, t := range []lab.NodeType{lab.NodeRouter, lab.NodePC, lab.NodeServer, lab.NodeSwitch, lab.NodeUnknown} {
		if nodeCounts[t] > 0 {
			printCount(string(t), nodeCounts[t])
		}
	}

	connCounts := make(map[lab.ConnType]int)
	for _, c := range l.Connections() {
		connCounts[c.Type]++
	}
	printTitle("Connections (%d)", l.ConnectionCount())
	for _, t := range []lab.ConnType{lab.ConnP2P, lab.ConnRing, lab.ConnLAN} {
		if connCounts[t] > 0 {
			printCount(string(t), connCounts[t])
		}
	}
}
