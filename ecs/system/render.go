package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tiltmaze/common"
	"github.com/milk9111/tiltmaze/ecs"
	"github.com/milk9111/tiltmaze/ecs/component"
)

// ImageLookup resolves a sprite name to an image.
type ImageLookup func(name string) *ebiten.Image

type RenderSystem struct {
	lookup ImageLookup
}

func NewRenderSystem(lookup ImageLookup) *RenderSystem {
	return &RenderSystem{lookup: lookup}
}

func (r *RenderSystem) Update(w *ecs.World) {}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li := 0
		if layer, ok := ecs.Get(w, entities[i], component.RenderLayerComponent.Kind()); ok {
			li = layer.Index
		}
		lj := 0
		if layer, ok := ecs.Get(w, entities[j], component.RenderLayerComponent.Kind()); ok {
			lj = layer.Index
		}
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok {
			continue
		}
		if s.Image == nil && s.Name != "" && r.lookup != nil {
			s.Image = r.lookup(s.Name)
		}
		if s.Image == nil || s.Alpha <= 0 {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-s.OriginX, -s.OriginY)

		sx := t.ScaleX
		if sx == 0 {
			sx = 1
		}
		sy := t.ScaleY
		if sy == 0 {
			sy = 1
		}
		op.GeoM.Scale(sx, sy)

		if ecs.Has(w, e, component.ScreenSpaceComponent.Kind()) {
			op.GeoM.Rotate(t.Rotation)
			op.GeoM.Translate(t.X, t.Y)
		} else {
			// y-up world: counter-clockwise rotation turns clockwise on screen
			op.GeoM.Rotate(-t.Rotation)
			op.GeoM.Translate(t.X, common.FlipY(t.Y))
		}
		op.ColorScale.ScaleAlpha(float32(s.Alpha))
		op.Filter = ebiten.FilterLinear

		screen.DrawImage(s.Image, op)
	}
}
