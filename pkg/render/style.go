package render

// fontFamily is used for every text element in the diagram.
const fontFamily = "Arial, sans-serif"

// Background and hub marker colors.
const (
	colorBackground = "#f8f9fa"
	colorHubFill    = "#FFC107"
	colorHubStroke  = "#F57C00"
)

// Node shape colors by type.
const (
	colorRouterFill   = "#FF9800"
	colorRouterStroke = "#E65100"
	colorPCFill       = "#607D8B"
	colorPCStroke     = "#37474F"
	colorServerFill   = "#9C27B0"
	colorServerStroke = "#6A1B9A"
)

// Palette maps connection types to line colors. The zero value is not
// usable; start from DefaultPalette.
type Palette struct {
	Ring string `toml:"ring"`
	P2P  string `toml:"p2p"`
	LAN  string `toml:"lan"`
}

// DefaultPalette is the stock connection color scheme.
var DefaultPalette = Palette{
	Ring: "#2196F3",
	P2P:  "#4CAF50",
	LAN:  "#FF5722",
}

// merged returns p with empty entries filled from DefaultPalette, so a
// partial palette override keeps stock colors for the rest.
func (p Palette) merged() Palette {
	if p.Ring == "" {
		p.Ring = DefaultPalette.Ring
	}
	if p.P2P == "" {
		p.P2P = DefaultPalette.P2P
	}
	if p.LAN == "" {
		p.LAN = DefaultPalette.LAN
	}
	return p
}
