// Package hc4051 drives the 74HC4051 8-way analog multiplexer/demultiplexer
// addressed by three GPIO select lines. The part is bidirectional, so one
// device satisfies both the analog-mux contract (routing inputs toward a
// shared ADC pin) and the output-mux contract (routing a shared driver pin
// toward one of eight loads); channel and line are the same address.
package hc4051

import "halkit-go/hal"

// Channels on the part.
const NofChannels = 8

var (
	_ hal.AnalogMux = (*Device)(nil)
	_ hal.OutputMux = (*Device)(nil)
)

// Device holds the three select-line pins, S0 being the least significant
// address bit.
type Device struct {
	s0, s1, s2 hal.OutputPin
}

// New creates the device and configures the select lines as outputs,
// pointing the mux at channel 0.
func New(s0, s1, s2 hal.OutputPin) *Device {
	d := &Device{s0: s0, s1: s1, s2: s2}
	s0.SetAsOutput()
	s1.SetAsOutput()
	s2.SetAsOutput()
	d.SelectChannel(0)
	return d
}

// SelectChannel programs the select lines. Out-of-range values are masked
// to the part's 3 address bits.
func (d *Device) SelectChannel(ch uint8) {
	setBit(d.s0, ch&0x01 != 0)
	setBit(d.s1, ch&0x02 != 0)
	setBit(d.s2, ch&0x04 != 0)
}

// NofChannels reports the channel count.
func (d *Device) NofChannels() uint8 { return NofChannels }

// SelectLine is SelectChannel under the output-mux contract; on this part
// the demux address is the same set of pins.
func (d *Device) SelectLine(line uint8) { d.SelectChannel(line) }

// NofLines reports the line count.
func (d *Device) NofLines() uint8 { return NofChannels }

func setBit(p hal.OutputPin, on bool) {
	if on {
		p.High()
	} else {
		p.Low()
	}
}
