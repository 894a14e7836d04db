// Package at24cx provides a driver for AT24C-family I2C EEPROMs (AT24C32 up
// to AT24C512: two address bytes, paged writes). It implements the block
// memory contract, so it can sit under memslice decorators directly.
//
// NOTE: I2C.Tx MUST perform a write followed by a repeated-start read when
// both w and r are provided, without releasing the bus.
//
// Range checks live in this driver: any access outside [0, Capacity()) fails
// with ErrOutOfRange before the bus is touched.
package at24cx

import (
	"errors"
	"time"

	"tinygo.org/x/drivers"

	"halkit-go/hal"
	"halkit-go/x/mathx"
)

var _ hal.BlockMemory[uint16] = (*Device)(nil)

// Default I2C address (A2..A0 grounded).
const Address = 0x50

// Errors returned by the driver.
var (
	ErrOutOfRange = errors.New("at24cx: address out of range")
	ErrBadConfig  = errors.New("at24cx: bad capacity/page size")
)

// Config selects the device variant. All fields except the zero checks are
// optional.
type Config struct {
	// Address defaults to 0x50 if zero.
	Address uint16
	// Capacity in bytes, e.g. 4096 for AT24C32, 32768 for AT24C256.
	Capacity uint16
	// PageSize in bytes, e.g. 32 for AT24C32, 64 for AT24C256.
	PageSize uint16
	// WriteCycleTime is the post-write delay before the device accepts the
	// next transaction. Default 5 ms (datasheet t_WR).
	WriteCycleTime time.Duration
}

// Device wraps an I2C connection to an AT24Cxx device.
type Device struct {
	bus drivers.I2C
	cfg Config
	buf [2 + 64]byte // address prefix + one page, reused to avoid allocations
}

// New creates the device handle. The I2C bus must already be configured.
// This function only creates the Device object; it does not touch the part.
func New(bus drivers.I2C, cfg Config) (*Device, error) {
	if cfg.Address == 0 {
		cfg.Address = Address
	}
	if cfg.WriteCycleTime == 0 {
		cfg.WriteCycleTime = 5 * time.Millisecond
	}
	if cfg.Capacity == 0 || cfg.PageSize == 0 || cfg.PageSize > 64 ||
		cfg.Capacity%cfg.PageSize != 0 {
		return nil, ErrBadConfig
	}
	return &Device{bus: bus, cfg: cfg}, nil
}

// Capacity returns the device size in bytes.
func (d *Device) Capacity() uint16 { return d.cfg.Capacity }

func (d *Device) inRange(addr, n uint16) bool {
	return addr <= d.cfg.Capacity && n <= d.cfg.Capacity-addr
}

// ReadByte reads the byte at addr.
func (d *Device) ReadByte(addr uint16) (byte, error) {
	if !d.inRange(addr, 1) {
		return 0, ErrOutOfRange
	}
	d.buf[0] = byte(addr >> 8)
	d.buf[1] = byte(addr)
	var r [1]byte
	if err := d.bus.Tx(d.cfg.Address, d.buf[:2], r[:]); err != nil {
		return 0, err
	}
	return r[0], nil
}

// Read performs a sequential read of len(dst) bytes starting at addr.
func (d *Device) Read(addr uint16, dst []byte) error {
	if !d.inRange(addr, uint16(len(dst))) || len(dst) > int(d.cfg.Capacity) {
		return ErrOutOfRange
	}
	if len(dst) == 0 {
		return nil
	}
	d.buf[0] = byte(addr >> 8)
	d.buf[1] = byte(addr)
	return d.bus.Tx(d.cfg.Address, d.buf[:2], dst)
}

// WriteByte writes one byte at addr and waits out the write cycle.
func (d *Device) WriteByte(addr uint16, b byte) error {
	if !d.inRange(addr, 1) {
		return ErrOutOfRange
	}
	d.buf[0] = byte(addr >> 8)
	d.buf[1] = byte(addr)
	d.buf[2] = b
	if err := d.bus.Tx(d.cfg.Address, d.buf[:3], nil); err != nil {
		return err
	}
	time.Sleep(d.cfg.WriteCycleTime)
	return nil
}

// Write writes src starting at addr, split on device page boundaries. Each
// page write is followed by the write-cycle delay.
func (d *Device) Write(addr uint16, src []byte) error {
	if !d.inRange(addr, uint16(len(src))) || len(src) > int(d.cfg.Capacity) {
		return ErrOutOfRange
	}
	for len(src) > 0 {
		n := d.pageRemaining(addr)
		n = mathx.Min(n, uint16(len(src)))
		d.buf[0] = byte(addr >> 8)
		d.buf[1] = byte(addr)
		copy(d.buf[2:], src[:n])
		if err := d.bus.Tx(d.cfg.Address, d.buf[:2+n], nil); err != nil {
			return err
		}
		time.Sleep(d.cfg.WriteCycleTime)
		addr += n
		src = src[n:]
	}
	return nil
}

// Fill writes n copies of b starting at addr, one page at a time.
func (d *Device) Fill(addr uint16, n uint16, b byte) error {
	if !d.inRange(addr, n) {
		return ErrOutOfRange
	}
	for n > 0 {
		c := mathx.Min(d.pageRemaining(addr), n)
		d.buf[0] = byte(addr >> 8)
		d.buf[1] = byte(addr)
		for i := uint16(0); i < c; i++ {
			d.buf[2+i] = b
		}
		if err := d.bus.Tx(d.cfg.Address, d.buf[:2+c], nil); err != nil {
			return err
		}
		time.Sleep(d.cfg.WriteCycleTime)
		addr += c
		n -= c
	}
	return nil
}

// pageRemaining returns how many bytes fit between addr and the end of its
// page. Writes that cross a page boundary wrap inside the page on real
// silicon, so they must be split.
func (d *Device) pageRemaining(addr uint16) uint16 {
	return d.cfg.PageSize - addr%d.cfg.PageSize
}
