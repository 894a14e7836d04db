// Package potscan sweeps a fixed list of potentiometers once per call,
// synchronously but pipelined: the ADC conversion of pot k+1 is started
// before the observer notification for pot k runs, so notification work
// overlaps the settling time of the next sample instead of extending the
// cycle. On AVR-class parts a conversion takes dozens of cycles with the
// CPU idle; the overlap roughly halves worst-case scan latency without any
// concurrency primitives.
package potscan

import (
	"halkit-go/errcode"
	"halkit-go/hal"
)

// Scanner sweeps its potentiometers in declaration order. It is memoryless
// between calls; each pot keeps its own last-seen value behind Check/Set.
type Scanner struct {
	pots []hal.Potentiometer
}

// New builds a scanner over pots, visited in argument order. An empty list
// is rejected with errcode.EmptyScanList.
func New(pots ...hal.Potentiometer) (*Scanner, error) {
	if len(pots) == 0 {
		return nil, errcode.EmptyScanList
	}
	s := &Scanner{pots: make([]hal.Potentiometer, len(pots))}
	copy(s.pots, pots)
	return s, nil
}

// Init performs one sweep with forced notification: every pot's observers
// receive a baseline value via Set. Call once after reset.
func (s *Scanner) Init() {
	s.sweep(true)
}

// Scan performs one sweep with change detection: each pot's Check decides
// internally whether its observers are notified.
func (s *Scanner) Scan() {
	s.sweep(false)
}

// sweep ordering is observable and guaranteed: conversions start in
// declaration order, notifications fire in declaration order, and for every
// k the conversion of pot k+1 is already running when pot k's observers
// execute.
func (s *Scanner) sweep(force bool) {
	s.pots[0].StartConversion()
	last := len(s.pots) - 1
	for k := 0; k < last; k++ {
		p := s.pots[k]
		p.Wait()
		v := p.Read()
		s.pots[k+1].StartConversion()
		notify(p, v, force)
	}
	p := s.pots[last]
	p.Wait()
	notify(p, p.Read(), force)
}

func notify(p hal.Potentiometer, v uint16, force bool) {
	if force {
		p.Set(v)
	} else {
		p.Check(v)
	}
}

// Len returns the number of potentiometers in the sweep.
func (s *Scanner) Len() int { return len(s.pots) }
