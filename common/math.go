package common

const (
	// ScreenWidth and ScreenHeight are the logical game size.
	ScreenWidth  = 1024
	ScreenHeight = 768

	TicksPerSecond = 60
	FrameSeconds   = 1.0 / TicksPerSecond

	// PixelsPerMeter converts gravity from meters per second squared into
	// physics space units.
	PixelsPerMeter = 150.0
)

// FlipY converts between y-up world coordinates and y-down screen
// coordinates. It is its own inverse.
func FlipY(y float64) float64 {
	return ScreenHeight - y
}
