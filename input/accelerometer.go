package input

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/milk9111/tiltmaze/maze"
	log "github.com/sirupsen/logrus"
	"golang.org/x/mobile/exp/sensor"
)

const (
	accelerometerDelay = time.Second / 60
	standardGravity    = 9.80665
)

var ErrNoAccelerometer = errors.New("input: accelerometer unavailable")

// Accelerometer keeps the latest reading from the device accelerometer.
// Readings are normalized to g on every platform.
type Accelerometer struct {
	mu   sync.Mutex
	last maze.Sample
	has  bool
}

// NewAccelerometer starts accelerometer updates. It fails with
// ErrNoAccelerometer on platforms without sensors.
func NewAccelerometer() (*Accelerometer, error) {
	a := &Accelerometer{}
	sensor.Notify(a)
	if err := sensor.Enable(sensor.Accelerometer, accelerometerDelay); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoAccelerometer, err)
	}
	log.Info("accelerometer enabled")
	return a, nil
}

// Close stops accelerometer updates.
func (a *Accelerometer) Close() error {
	return sensor.Disable(sensor.Accelerometer)
}

// Send receives sensor events.
func (a *Accelerometer) Send(event interface{}) {
	e, ok := event.(sensor.Event)
	if !ok || e.Sensor != sensor.Accelerometer || len(e.Data) < 2 {
		return
	}
	a.record(e.Data[0], e.Data[1])
}

func (a *Accelerometer) record(x, y float64) {
	// Android reports m/s², iOS reports g.
	if runtime.GOOS == "android" {
		x /= standardGravity
		y /= standardGravity
	}
	a.mu.Lock()
	a.last = maze.Sample{X: x, Y: y}
	a.has = true
	a.mu.Unlock()
}

func (a *Accelerometer) Sample() (maze.Sample, bool) {
	if a == nil {
		return maze.Sample{}, false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.last, a.has
}
