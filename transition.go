package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

const transitionFrames = 30

type transitionPhase int

const (
	phaseIdle transitionPhase = iota
	phaseFadeOut
	phaseFadeIn
)

// Transition fades the screen to black, swaps scenes, and fades back.
type Transition struct {
	phase    transitionPhase
	frames   int
	duration int
	overlay  *ebiten.Image

	// OnSwap runs once the screen is fully black.
	OnSwap func()
}

func NewTransition() *Transition {
	return &Transition{duration: transitionFrames}
}

func (t *Transition) Active() bool { return t.phase != phaseIdle }

// Start begins a transition. It does nothing while one is running.
func (t *Transition) Start(onSwap func()) {
	if t.Active() {
		return
	}
	t.phase = phaseFadeOut
	t.frames = 0
	t.OnSwap = onSwap
}

// Update advances the transition and reports whether the scene underneath
// should stay paused this frame.
func (t *Transition) Update() bool {
	if !t.Active() {
		return false
	}
	t.frames++
	if t.frames < t.duration {
		return true
	}

	switch t.phase {
	case phaseFadeOut:
		if t.OnSwap != nil {
			t.OnSwap()
		}
		t.phase = phaseFadeIn
		t.frames = 0
	case phaseFadeIn:
		t.phase = phaseIdle
		t.frames = 0
		t.OnSwap = nil
	}
	return true
}

// Alpha is the overlay opacity for the current frame.
func (t *Transition) Alpha() float64 {
	progress := float64(t.frames) / float64(t.duration)
	if progress > 1 {
		progress = 1
	}
	switch t.phase {
	case phaseFadeOut:
		return progress
	case phaseFadeIn:
		return 1 - progress
	}
	return 0
}

func (t *Transition) Draw(screen *ebiten.Image) {
	alpha := t.Alpha()
	if alpha <= 0 {
		return
	}
	if t.overlay == nil {
		t.overlay = ebiten.NewImage(1, 1)
		t.overlay.Fill(color.Black)
	}

	b := screen.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(b.Dx()), float64(b.Dy()))
	op.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(t.overlay, op)
}
