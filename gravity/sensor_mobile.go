//go:build android || ios

package gravity

import (
	"fmt"
	"time"

	"golang.org/x/mobile/exp/sensor"
)

// Send implements sensor.Sender.
func (a *SensorAccelerometer) Send(event interface{}) {
	e, ok := event.(sensor.Event)
	if !ok || e.Sensor != sensor.Accelerometer {
		return
	}
	a.record(e.Data)
}

// OpenAccelerometer starts accelerometer delivery at the given sample delay.
// sensor.Notify may only be called once per process.
func OpenAccelerometer(delay time.Duration) (*SensorAccelerometer, error) {
	a := &SensorAccelerometer{}
	sensor.Notify(a)
	if err := sensor.Enable(sensor.Accelerometer, delay); err != nil {
		return nil, fmt.Errorf("gravity: enable accelerometer: %w", err)
	}
	return a, nil
}

func CloseAccelerometer() error {
	return sensor.Disable(sensor.Accelerometer)
}
