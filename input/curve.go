package input

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/tiltmaze/maze"
	log "github.com/sirupsen/logrus"
)

// Curve reshapes tilt samples with a tengo script. The script reads x and y
// and must define out_x and out_y.
type Curve struct {
	compiled *tengo.Compiled
	failed   bool
}

func NewCurve(src []byte) (*Curve, error) {
	script := tengo.NewScript(src)
	_ = script.Add("x", 0.0)
	_ = script.Add("y", 0.0)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile tilt curve: %w", err)
	}
	for _, name := range []string{"out_x", "out_y"} {
		if !compiled.IsDefined(name) {
			return nil, fmt.Errorf("tilt curve does not define %s", name)
		}
	}
	return &Curve{compiled: compiled}, nil
}

// Apply runs the script on s. A failing script passes samples through and
// logs once.
func (c *Curve) Apply(s maze.Sample) maze.Sample {
	if c == nil || c.compiled == nil || c.failed {
		return s
	}
	if err := c.run(s); err != nil {
		c.failed = true
		log.WithError(err).Error("tilt curve failed, using raw samples")
		return s
	}
	return maze.Sample{
		X: c.compiled.Get("out_x").Float(),
		Y: c.compiled.Get("out_y").Float(),
	}
}

func (c *Curve) run(s maze.Sample) error {
	if err := c.compiled.Set("x", s.X); err != nil {
		return err
	}
	if err := c.compiled.Set("y", s.Y); err != nil {
		return err
	}
	return c.compiled.Run()
}
