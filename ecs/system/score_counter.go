package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/tiltmaze/ecs"
	"github.com/milk9111/tiltmaze/ecs/component"
	"golang.org/x/image/font/basicfont"
)

const scoreCounterScale = 2.5

// ScoreCounterSystem keeps the HUD score text current and draws it in
// screen space.
type ScoreCounterSystem struct {
	face text.Face
}

func NewScoreCounterSystem() *ScoreCounterSystem {
	return &ScoreCounterSystem{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (s *ScoreCounterSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.ScoreCounterComponent.Kind(), func(_ ecs.Entity, c *component.ScoreCounter) {
		c.RenderedText = ScoreText(c.Score)
	})
}

func (s *ScoreCounterSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	ecs.ForEach2(w, component.ScoreCounterComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, c *component.ScoreCounter, t *component.Transform) {
		label := c.RenderedText
		if label == "" {
			label = ScoreText(c.Score)
		}
		op := &text.DrawOptions{}
		op.GeoM.Scale(scoreCounterScale, scoreCounterScale)
		op.GeoM.Translate(t.X, t.Y)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, label, s.face, op)
	})
}

// ScoreText formats the HUD label for score.
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}
