package component

// ScoreCounter is the HUD score readout.
type ScoreCounter struct {
	Score        int
	RenderedText string
}

var ScoreCounterComponent = NewComponent[ScoreCounter]()

// ScreenSpace marks renderable entities drawn in screen coordinates
// without the world y flip.
type ScreenSpace struct{}

var ScreenSpaceComponent = NewComponent[ScreenSpace]()
