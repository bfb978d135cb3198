//go:build !android && !ios

package gravity

import "time"

func OpenAccelerometer(time.Duration) (*SensorAccelerometer, error) {
	return nil, ErrNoAccelerometer
}

func CloseAccelerometer() error {
	return nil
}
