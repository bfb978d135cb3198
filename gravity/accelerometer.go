package gravity

import (
	"errors"
	"sync"
)

var ErrNoAccelerometer = errors.New("gravity: no accelerometer on this platform")

// standardGravity converts m/s² samples into multiples of g.
const standardGravity = 9.80665

// Accelerometer reports the latest acceleration sample in g.
type Accelerometer interface {
	Acceleration() (x, y, z float64, ok bool)
}

// SensorAccelerometer keeps the most recent sensor sample. Samples arrive on
// the sensor goroutine and are read from the game loop.
type SensorAccelerometer struct {
	mu      sync.Mutex
	x, y, z float64
	ok      bool
}

func (a *SensorAccelerometer) Acceleration() (x, y, z float64, ok bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.x, a.y, a.z, a.ok
}

// record stores a sample given in m/s².
func (a *SensorAccelerometer) record(data []float64) {
	if len(data) < 3 {
		return
	}
	a.mu.Lock()
	a.x = data[0] / standardGravity
	a.y = data[1] / standardGravity
	a.z = data[2] / standardGravity
	a.ok = true
	a.mu.Unlock()
}
