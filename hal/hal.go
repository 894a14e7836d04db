// Package hal defines the peripheral driver contracts the adapter layer is
// built over. Every contract is a small duck-typed interface; concrete
// drivers live under drivers/ or are supplied by the application. Adapters
// borrow the peripheral value and never own or allocate hardware state.
//
// The target is a single-core microcontroller with cooperative interrupts:
// nothing here is safe for concurrent use from an ISR unless the caller
// masks interrupts around it.
package hal

import "golang.org/x/exp/constraints"

// AnalogPin is a single ADC input. Wait busy-polls the end-of-conversion
// flag; Read returns the most recent sample as right-aligned ADC counts.
type AnalogPin interface {
	StartConversion()
	Wait()
	Read() uint16
}

// OutputPin is a single digital output.
type OutputPin interface {
	SetAsOutput()
	High()
	Low()
}

// AnalogMux routes one of NofChannels analog inputs to a shared ADC pin.
type AnalogMux interface {
	SelectChannel(ch uint8)
	NofChannels() uint8
}

// OutputMux routes a shared digital signal to one of NofLines outputs
// (demultiplexer, addressed latch, shift register with output enable).
type OutputMux interface {
	SelectLine(line uint8)
	NofLines() uint8
}

// BlockMemory is a byte-addressed memory device (external EEPROM, FRAM,
// battery-backed RAM). A is the device's native address width. Drivers sit
// on fallible buses, so every access returns error; accesses outside
// [0, Capacity()) must fail without touching the device.
type BlockMemory[A constraints.Unsigned] interface {
	Capacity() A
	ReadByte(addr A) (byte, error)
	WriteByte(addr A, b byte) error
	Read(addr A, dst []byte) error
	Write(addr A, src []byte) error
	Fill(addr A, n A, b byte) error
}

// Potentiometer is an analog input with observer notification. Set notifies
// unconditionally; Check applies the driver's own change-detection policy
// (hysteresis lives in the driver, not in the scanner).
type Potentiometer interface {
	AnalogPin
	Set(v uint16)
	Check(v uint16)
}
