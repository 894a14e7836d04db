// Package memslice exposes a contiguous sub-range of a block memory device
// as a standalone device with addresses starting at zero.
//
// Slice is a pure address shift: it does not range-check callers against its
// own length, so the cost over a direct device access is a single add.
// Checked wraps the same shift with a bounds check that fails before the
// device is touched. Both satisfy hal.BlockMemory, so slices nest.
package memslice

import (
	"golang.org/x/exp/constraints"

	"halkit-go/errcode"
	"halkit-go/hal"
)

// Both decorators satisfy the block-memory contract themselves.
var (
	_ hal.BlockMemory[uint16] = (*Slice[uint16, hal.BlockMemory[uint16]])(nil)
	_ hal.BlockMemory[uint16] = (*Checked[uint16, hal.BlockMemory[uint16]])(nil)
)

// Slice presents mem[off, off+length) as a device of capacity length.
type Slice[A constraints.Unsigned, M hal.BlockMemory[A]] struct {
	mem    M
	off    A
	length A
}

// New carves [off, off+length) out of mem. Ranges that do not fit inside
// mem.Capacity() are rejected with errcode.OutOfRange; the check is written
// to be safe against address-type overflow.
func New[A constraints.Unsigned, M hal.BlockMemory[A]](mem M, off, length A) (*Slice[A, M], error) {
	cap := mem.Capacity()
	if off > cap || length > cap-off {
		return nil, errcode.OutOfRange
	}
	return &Slice[A, M]{mem: mem, off: off, length: length}, nil
}

// Capacity reports the slice length, not the underlying device capacity.
func (s *Slice[A, M]) Capacity() A { return s.length }

func (s *Slice[A, M]) ReadByte(addr A) (byte, error) {
	return s.mem.ReadByte(addr + s.off)
}

func (s *Slice[A, M]) WriteByte(addr A, b byte) error {
	return s.mem.WriteByte(addr+s.off, b)
}

func (s *Slice[A, M]) Read(addr A, dst []byte) error {
	return s.mem.Read(addr+s.off, dst)
}

func (s *Slice[A, M]) Write(addr A, src []byte) error {
	return s.mem.Write(addr+s.off, src)
}

func (s *Slice[A, M]) Fill(addr A, n A, b byte) error {
	return s.mem.Fill(addr+s.off, n, b)
}

// Checked is a Slice that validates every access against the slice length
// and returns errcode.OutOfRange without touching the device on violation.
type Checked[A constraints.Unsigned, M hal.BlockMemory[A]] struct {
	s Slice[A, M]
}

// NewChecked carves a range-checked slice out of mem. Construction rules
// match New.
func NewChecked[A constraints.Unsigned, M hal.BlockMemory[A]](mem M, off, length A) (*Checked[A, M], error) {
	s, err := New(mem, off, length)
	if err != nil {
		return nil, err
	}
	return &Checked[A, M]{s: *s}, nil
}

func (c *Checked[A, M]) Capacity() A { return c.s.length }

// inRange reports whether [addr, addr+n) fits inside the slice.
func (c *Checked[A, M]) inRange(addr, n A) bool {
	return addr <= c.s.length && n <= c.s.length-addr
}

func (c *Checked[A, M]) ReadByte(addr A) (byte, error) {
	if !c.inRange(addr, 1) {
		return 0, errcode.OutOfRange
	}
	return c.s.ReadByte(addr)
}

func (c *Checked[A, M]) WriteByte(addr A, b byte) error {
	if !c.inRange(addr, 1) {
		return errcode.OutOfRange
	}
	return c.s.WriteByte(addr, b)
}

func (c *Checked[A, M]) Read(addr A, dst []byte) error {
	// The uint64 compare guards against []byte lengths that would truncate
	// when converted to a narrow address type.
	if uint64(len(dst)) > uint64(c.s.length) || !c.inRange(addr, A(len(dst))) {
		return errcode.OutOfRange
	}
	return c.s.Read(addr, dst)
}

func (c *Checked[A, M]) Write(addr A, src []byte) error {
	if uint64(len(src)) > uint64(c.s.length) || !c.inRange(addr, A(len(src))) {
		return errcode.OutOfRange
	}
	return c.s.Write(addr, src)
}

func (c *Checked[A, M]) Fill(addr A, n A, b byte) error {
	if !c.inRange(addr, n) {
		return errcode.OutOfRange
	}
	return c.s.Fill(addr, n, b)
}
