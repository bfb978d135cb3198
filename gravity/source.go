// Package gravity turns player input into the world gravity vector. Tilt is
// used when the device has an accelerometer, the pointer otherwise.
package gravity

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/marblemaze/prefabs"
)

// Source produces the gravity for the next physics step. ok is false when
// there is no sample and the previous gravity should be kept.
type Source interface {
	Sample(avatar cp.Vector) (g cp.Vector, ok bool)
}

// PointerSource pulls the avatar toward the last pointer position, harder the
// further away the pointer is.
type PointerSource struct {
	Pointer *Pointer
	Divisor float64
}

func (s PointerSource) Sample(avatar cp.Vector) (cp.Vector, bool) {
	if s.Pointer == nil {
		return cp.Vector{}, false
	}
	pos, ok := s.Pointer.Position()
	if !ok {
		return cp.Vector{}, false
	}
	div := s.Divisor
	if div == 0 {
		div = 1
	}
	d := pos.Sub(avatar)
	return cp.Vector{X: d.X / div, Y: d.Y / div}, true
}

// TiltSource maps a landscape-held device's tilt to gravity: the device's y
// axis drives world x (negated) and its x axis drives world y.
type TiltSource struct {
	Accelerometer Accelerometer
	Scale         float64
}

func (s TiltSource) Sample(cp.Vector) (cp.Vector, bool) {
	if s.Accelerometer == nil {
		return cp.Vector{}, false
	}
	x, y, _, ok := s.Accelerometer.Acceleration()
	if !ok {
		return cp.Vector{}, false
	}
	return cp.Vector{X: -s.Scale * y, Y: s.Scale * x}, true
}

// Select picks tilt when the accelerometer opened without error and the
// pointer otherwise.
func Select(accel Accelerometer, err error, pointer *Pointer, spec prefabs.GravitySpec) Source {
	if err == nil && accel != nil {
		return TiltSource{Accelerometer: accel, Scale: spec.TiltScale}
	}
	return PointerSource{Pointer: pointer, Divisor: spec.PointerDivisor}
}
