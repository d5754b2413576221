package parameter

// Terminal Canvas
const (
	// CanvasUnitsX is surface units per terminal cell horizontally
	CanvasUnitsX = 2

	// CanvasUnitsY is surface units per terminal cell vertically
	// Cells are about twice as tall as wide, 4 units keeps the ring round
	CanvasUnitsY = 4

	// StrokeScale converts surface line width to terminal sub-cell radius
	// Rounded: widths below 6.25 trace a single sub-cell, wider strokes a radius-1 disc
	StrokeScale = 0.08
)

// BackgroundHex is the clear color (Tokyo Night background)
const BackgroundHex = "#1a1b26"
