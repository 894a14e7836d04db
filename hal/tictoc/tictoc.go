// Package tictoc raises a debug pin for the duration of a code region so
// the region's timing can be read off an oscilloscope: the width of the
// high pulse equals the time the region was active. Instances on different
// pins nest naturally.
package tictoc

import "halkit-go/hal"

// Toc lowers the pin acquired by Tic. Call exactly once.
type Toc func()

// Tic configures pin as an output and drives it high, returning the Toc
// that drives it low again. Idiomatic use covers every exit path:
//
//	defer tictoc.Tic(pin)()
func Tic(pin hal.OutputPin) Toc {
	pin.SetAsOutput()
	pin.High()
	return pin.Low
}

// Measure runs fn with pin held high for its duration. The pin is lowered
// on every exit path, including panic unwind.
func Measure(pin hal.OutputPin, fn func()) {
	defer Tic(pin)()
	fn()
}
