package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/tiltmaze/common"
	"github.com/milk9111/tiltmaze/maze"
)

// Pointer follows the first active touch, or the mouse while its left
// button is held, in y-up world coordinates.
type Pointer struct {
	touch    ebiten.TouchID
	touching bool
	ids      []ebiten.TouchID
}

func NewPointer() *Pointer { return &Pointer{} }

// Update returns the current pointer position, or nil when nothing is
// pressed.
func (p *Pointer) Update() *maze.Vec {
	p.ids = inpututil.AppendJustPressedTouchIDs(p.ids[:0])
	if !p.touching && len(p.ids) > 0 {
		p.touch = p.ids[0]
		p.touching = true
	}
	if p.touching {
		if inpututil.IsTouchJustReleased(p.touch) {
			p.touching = false
			return nil
		}
		x, y := ebiten.TouchPosition(p.touch)
		return ScreenToWorld(x, y)
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return ScreenToWorld(x, y)
	}
	return nil
}

// ScreenToWorld flips a screen pixel into the y-up world.
func ScreenToWorld(x, y int) *maze.Vec {
	return &maze.Vec{X: float64(x), Y: common.FlipY(float64(y))}
}
