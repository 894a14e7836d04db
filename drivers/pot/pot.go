// Package pot implements the potentiometer driver contract: an analog input
// with last-seen state, a hysteresis threshold, and observer fan-out.
// Change detection lives here, not in the scanner that sweeps us.
package pot

import (
	"halkit-go/hal"
	"halkit-go/x/mathx"
)

// Observer receives a new value in raw ADC counts.
type Observer func(value uint16)

var _ hal.Potentiometer = (*Pot)(nil)

// Pot wraps an analog pin and satisfies hal.Potentiometer.
type Pot struct {
	pin       hal.AnalogPin
	threshold uint16
	last      uint16
	seeded    bool
	observers []Observer
}

// New wraps pin with change-detection hysteresis. threshold is the minimum
// count delta that qualifies as a change; 0 means any differing value
// notifies. Pre-size the observer list via Attach before scanning starts so
// no allocation happens on the sweep path.
func New(pin hal.AnalogPin, threshold uint16) *Pot {
	return &Pot{pin: pin, threshold: threshold}
}

// Attach registers an observer. Observers run in attach order, on the
// caller's stack, during Set.
func (p *Pot) Attach(o Observer) {
	p.observers = append(p.observers, o)
}

func (p *Pot) StartConversion() { p.pin.StartConversion() }
func (p *Pot) Wait()            { p.pin.Wait() }
func (p *Pot) Read() uint16     { return p.pin.Read() }

// Set stores v as the last-seen value and notifies every observer
// unconditionally. Used for the baseline sweep after reset.
func (p *Pot) Set(v uint16) {
	p.last = v
	p.seeded = true
	for _, o := range p.observers {
		o(v)
	}
}

// Check notifies only when v differs from the last-seen value by more than
// the hysteresis threshold. The first Check after construction always
// notifies, since there is no baseline yet.
func (p *Pot) Check(v uint16) {
	if p.seeded && mathx.AbsDiff(v, p.last) <= p.threshold {
		return
	}
	p.Set(v)
}

// Value returns the last value observers were notified with.
func (p *Pot) Value() uint16 { return p.last }
