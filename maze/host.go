package maze

import (
	"fmt"
	"time"
)

// Handle is an opaque reference to a host entity. Zero is never valid.
type Handle uint64

// TaskID identifies one animation sequence started through Host.Animate.
type TaskID uint64

// Contact is delivered by the host once per begin-contact callback that
// involves the player.
type Contact struct {
	Player Handle
	Other  Handle
	Role   Role
}

type StepKind int

const (
	StepMove StepKind = iota + 1
	StepScale
	StepFade
)

// Step is one timed effect of a Sequence. Move uses To, Scale and Fade use
// Value.
type Step struct {
	Kind     StepKind
	To       Vec
	Value    float64
	Duration time.Duration
}

func Move(to Vec, d time.Duration) Step { return Step{Kind: StepMove, To: to, Duration: d} }

func ScaleTo(v float64, d time.Duration) Step { return Step{Kind: StepScale, Value: v, Duration: d} }

func FadeTo(alpha float64, d time.Duration) Step {
	return Step{Kind: StepFade, Value: alpha, Duration: d}
}

// Sequence runs its steps one after another.
type Sequence []Step

func (s Sequence) Duration() time.Duration {
	var total time.Duration
	for _, st := range s {
		total += st.Duration
	}
	return total
}

// Prompt is the end-of-level overlay.
type Prompt struct {
	Score int
	Level int
}

func (p Prompt) Title() string { return fmt.Sprintf("Your score: %d", p.Score) }

func (p Prompt) Message() string { return "Press Start to New Game" }

func (p Prompt) Button() string { return fmt.Sprintf("Start Next level %d", p.Level) }

// Host is everything the maze logic needs from the engine underneath it.
type Host interface {
	// Place creates a level entity with its collider attached.
	Place(p Placement) Handle
	// SpawnPlayer creates the player ball at pos.
	SpawnPlayer(pos Vec) Handle
	Remove(h Handle)
	Alive(h Handle) bool
	Position(h Handle) Vec

	// Freeze stops simulating h; it keeps its position until animated.
	Freeze(h Handle)
	// StopMotion zeroes the velocity of h.
	StopMotion(h Handle)

	// Animate starts seq on h and calls done once the last step finishes.
	// Starting a new sequence on h replaces the running one; the replaced
	// sequence never calls its done.
	Animate(h Handle, seq Sequence, done func()) TaskID

	ShowScore(score int)
	ShowPrompt(p Prompt)

	// Subscribe registers the contact callback. Only one is kept.
	Subscribe(fn func(Contact))
}
