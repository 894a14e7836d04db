// Package muxpin presents one channel of an external multiplexer as a
// first-class pin. The mux selection is re-programmed immediately before
// every use: the selection lines are shared mutable state, and another
// consumer may have moved the mux between calls.
package muxpin

import (
	"halkit-go/errcode"
	"halkit-go/hal"
)

// Ensure the decorator satisfies the contract it wraps.
var _ hal.AnalogPin = (*AnalogPin)(nil)

// AnalogPin routes an analog input pin through one channel of an analog
// multiplexer. It satisfies hal.AnalogPin.
type AnalogPin struct {
	pin     hal.AnalogPin
	mux     hal.AnalogMux
	channel uint8
}

// NewAnalog binds pin to mux channel. A channel at or beyond
// mux.NofChannels() is rejected with errcode.InvalidChannel.
func NewAnalog(pin hal.AnalogPin, mux hal.AnalogMux, channel uint8) (*AnalogPin, error) {
	if channel >= mux.NofChannels() {
		return nil, errcode.InvalidChannel
	}
	return &AnalogPin{pin: pin, mux: mux, channel: channel}, nil
}

// StartConversion programs the mux to this pin's channel, then starts the
// conversion on the underlying pin, in that order.
func (p *AnalogPin) StartConversion() {
	p.mux.SelectChannel(p.channel)
	p.pin.StartConversion()
}

func (p *AnalogPin) Wait()        { p.pin.Wait() }
func (p *AnalogPin) Read() uint16 { return p.pin.Read() }

// Channel returns the bound mux channel.
func (p *AnalogPin) Channel() uint8 { return p.channel }

// OutputPin routes a digital output pin through one line of an output
// multiplexer. Each edge selects the line first and then drives the pin, so
// the write lands on the intended line even when the mux is shared. The
// underlying pin is assumed to be configured as an output already; some mux
// parts latch on the next write, which is why there is no SetAsOutput here.
type OutputPin struct {
	pin  hal.OutputPin
	mux  hal.OutputMux
	line uint8
}

// NewOutput binds pin to mux line. A line at or beyond mux.NofLines() is
// rejected with errcode.InvalidLine.
func NewOutput(pin hal.OutputPin, mux hal.OutputMux, line uint8) (*OutputPin, error) {
	if line >= mux.NofLines() {
		return nil, errcode.InvalidLine
	}
	return &OutputPin{pin: pin, mux: mux, line: line}, nil
}

func (p *OutputPin) High() {
	p.mux.SelectLine(p.line)
	p.pin.High()
}

func (p *OutputPin) Low() {
	p.mux.SelectLine(p.line)
	p.pin.Low()
}

// Line returns the bound mux line.
func (p *OutputPin) Line() uint8 { return p.line }
