// Package clockdiv implements an integer clock divider: one output tick for
// every N input ticks. N is fixed at construction; the counter type C is
// chosen by the caller to match the expected dynamic range (uint8 for small
// prescalers, uint16/uint32 for long periods).
package clockdiv

import (
	"golang.org/x/exp/constraints"

	"halkit-go/errcode"
	"halkit-go/x/mathx"
)

// Divider produces true from Clock exactly once per factor calls.
type Divider[C constraints.Unsigned] struct {
	factor C
	count  C
}

// New returns a divider whose first true fires on the factor-th Clock call.
// A factor of zero is rejected with errcode.ZeroFactor.
func New[C constraints.Unsigned](factor C) (*Divider[C], error) {
	return NewPhased(factor, factor)
}

// NewPhased returns a divider whose first true fires on the initial-th Clock
// call and every factor calls after that. Several dividers sharing a factor
// but constructed with staggered initials form a polyphase divider bank.
func NewPhased[C constraints.Unsigned](factor, initial C) (*Divider[C], error) {
	if factor == 0 {
		return nil, errcode.ZeroFactor
	}
	if initial == 0 || initial > factor {
		return nil, errcode.InvalidPhase
	}
	return &Divider[C]{factor: factor, count: initial}, nil
}

// Clock consumes one input tick. It returns true when the divider fires,
// which happens exactly once per factor invocations. With factor 1 every
// call returns true.
func (d *Divider[C]) Clock() bool {
	d.count--
	if d.count == 0 {
		d.count = d.factor
		return true
	}
	return false
}

// Reset restarts the period: the next true fires factor calls from now.
func (d *Divider[C]) Reset() {
	d.count = d.factor
}

// ResetTo restarts at a phase offset: the next true fires phase calls from
// now. phase is clamped to [1, factor].
func (d *Divider[C]) ResetTo(phase C) {
	d.count = mathx.Clamp(phase, 1, d.factor)
}

// Factor returns the division factor N.
func (d *Divider[C]) Factor() C { return d.factor }
