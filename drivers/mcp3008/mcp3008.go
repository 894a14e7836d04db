// Package mcp3008 drives the MCP3008 8-channel 10-bit SPI ADC. The part is
// a multiplexer and a converter in one package: it satisfies both the
// analog-mux contract (SelectChannel/NofChannels) and the analog-pin
// contract (StartConversion/Wait/Read) for whichever channel is selected,
// so it slots under muxpin.NewAnalog with itself as pin and mux.
//
// Conversion happens during the SPI transfer, so StartConversion latches
// the sample immediately and Wait is a no-op kept for contract symmetry.
package mcp3008

import (
	"tinygo.org/x/drivers"

	"halkit-go/hal"
)

// Channels on the part.
const NofChannels = 8

// The part serves as both the mux and the pin side of the analog contracts.
var (
	_ hal.AnalogMux = (*Device)(nil)
	_ hal.AnalogPin = (*Device)(nil)
)

// Device wraps an SPI connection to an MCP3008 with a GPIO chip select.
type Device struct {
	bus     drivers.SPI
	cs      hal.OutputPin
	channel uint8
	sample  uint16
	err     error
}

// New creates the device handle. The SPI bus must already be configured
// (mode 0, <= 1.35 MHz at 2.7 V); the chip-select pin is configured as an
// output and deasserted here.
func New(bus drivers.SPI, cs hal.OutputPin) *Device {
	cs.SetAsOutput()
	cs.High()
	return &Device{bus: bus, cs: cs}
}

// SelectChannel picks the input for the next conversion. Out-of-range
// channels are masked to the 3 channel-select bits the part has.
func (d *Device) SelectChannel(ch uint8) {
	d.channel = ch & (NofChannels - 1)
}

// NofChannels reports the channel count.
func (d *Device) NofChannels() uint8 { return NofChannels }

// StartConversion runs one single-ended conversion on the selected channel
// and latches the result. Frame per datasheet figure 6-1: start bit,
// single-ended + channel in the high nibble, one pad byte to clock out the
// full 10 bits.
func (d *Device) StartConversion() {
	var tx, rx [3]byte
	tx[0] = 0x01
	tx[1] = (0x08 | d.channel) << 4
	tx[2] = 0x00
	d.cs.Low()
	d.err = d.bus.Tx(tx[:], rx[:])
	d.cs.High()
	if d.err != nil {
		return
	}
	d.sample = uint16(rx[1]&0x03)<<8 | uint16(rx[2])
}

// Wait is a no-op; the transfer in StartConversion is synchronous.
func (d *Device) Wait() {}

// Read returns the latched sample, right-aligned 10-bit ADC counts. After a
// bus fault the previous good sample is returned; see Err.
func (d *Device) Read() uint16 { return d.sample }

// Err returns the bus error of the most recent conversion, if any. The
// analog-pin contract is infallible, so faults are surfaced out of band.
func (d *Device) Err() error { return d.err }
