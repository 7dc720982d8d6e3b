package component

import "github.com/hajimehoshi/ebiten/v2"

// Sprite draws an image centered on OriginX/OriginY. Name selects an image
// from the assets package when Image is nil.
type Sprite struct {
	Name    string
	Image   *ebiten.Image
	OriginX float64
	OriginY float64
	Alpha   float64
}

var SpriteComponent = NewComponent[Sprite]()
