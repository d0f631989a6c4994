package constants

// Colors is the shared palette for glyphs, particles and the background overlay
var Colors = [...]string{
	"#FF6B6B", // Red-ish
	"#4ECDC4", // Teal
	"#45B7D1", // Blue
	"#FFA07A", // Salmon
	"#98D8C8", // Mint
	"#F7DC6F", // Yellow
	"#BB8FCE", // Purple
	"#F1948A", // Pink
	"#82E0AA", // Green
	"#F5B041", // Orange
	"#D7BDE2", // Light Purple
	"#A9DFBF", // Light Green
	"#F9E79F", // Light Yellow
	"#AED6F1", // Light Blue
}

// PaletteSize is the number of palette entries, background index wraps at this value
const PaletteSize = len(Colors)

// Background layering
const (
	BackgroundBase           = "#1a1a1a"
	BackgroundOverlayOpacity = 0.2
)

// Gate title gradient stops
const (
	GateGradientFrom = "#EC4899" // pink
	GateGradientMid  = "#EAB308" // yellow
	GateGradientTo   = "#3B82F6" // blue
	GateTitle        = "BabyKeys"
	GatePrompt       = "Press any key to start!"
)

// Mute control colors, barely visible against the background
const (
	MuteLabelColor = "#3a3a3a"
	MuteLabelOn    = "♪ sound"
	MuteLabelOff   = "♪ muted"
)
