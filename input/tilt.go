// Package input turns device and desktop input into steering samples.
package input

import "github.com/milk9111/tiltmaze/maze"

// TiltSource produces one two-axis tilt sample per frame. ok is false when
// the source has nothing to report this frame.
type TiltSource interface {
	Sample() (s maze.Sample, ok bool)
}

// Chain returns the first source that has a sample.
type Chain []TiltSource

func (c Chain) Sample() (maze.Sample, bool) {
	for _, src := range c {
		if src == nil {
			continue
		}
		if s, ok := src.Sample(); ok {
			return s, true
		}
	}
	return maze.Sample{}, false
}

// Curved applies a Curve to every sample of Source.
type Curved struct {
	Source TiltSource
	Curve  *Curve
}

func (c Curved) Sample() (maze.Sample, bool) {
	if c.Source == nil {
		return maze.Sample{}, false
	}
	s, ok := c.Source.Sample()
	if !ok || c.Curve == nil {
		return s, ok
	}
	return c.Curve.Apply(s), true
}
