package at24cx

import (
	"bytes"
	"testing"
	"time"
)

// fakeBus emulates the EEPROM's I2C behaviour: a two-byte address prefix on
// writes, sequential reads after an address-only write. It records the
// payload length of every write transaction so page splitting is checkable.
type fakeBus struct {
	mem       []byte
	writeLens []int
}

func newFakeBus(size int) *fakeBus { return &fakeBus{mem: make([]byte, size)} }

func (b *fakeBus) Tx(addr uint16, w, r []byte) error {
	if len(w) < 2 {
		return nil
	}
	a := int(w[0])<<8 | int(w[1])
	if len(w) > 2 {
		b.writeLens = append(b.writeLens, len(w)-2)
		copy(b.mem[a:], w[2:])
	}
	if len(r) > 0 {
		copy(r, b.mem[a:])
	}
	return nil
}

func newTestDevice(t *testing.T, bus *fakeBus) *Device {
	t.Helper()
	d, err := New(bus, Config{
		Capacity:       4096,
		PageSize:       32,
		WriteCycleTime: time.Nanosecond, // keep tests fast
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return d
}

func TestByteRoundTrip(t *testing.T) {
	bus := newFakeBus(4096)
	d := newTestDevice(t, bus)

	if err := d.WriteByte(0x123, 0x5a); err != nil {
		t.Fatalf("WriteByte: %v", err)
	}
	got, err := d.ReadByte(0x123)
	if err != nil {
		t.Fatalf("ReadByte: %v", err)
	}
	if got != 0x5a {
		t.Fatalf("ReadByte = %#x, want 0x5a", got)
	}
}

func TestSequentialRoundTrip(t *testing.T) {
	bus := newFakeBus(4096)
	d := newTestDevice(t, bus)

	src := []byte("potentiometer calibration block")
	if err := d.Write(0x100, src); err != nil {
		t.Fatalf("Write: %v", err)
	}
	dst := make([]byte, len(src))
	if err := d.Read(0x100, dst); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !bytes.Equal(dst, src) {
		t.Fatalf("round trip got %q, want %q", dst, src)
	}
}

func TestWriteSplitsOnPageBoundary(t *testing.T) {
	bus := newFakeBus(4096)
	d := newTestDevice(t, bus)

	// 70 bytes starting 10 bytes before a page boundary: expect chunks of
	// 10 (to the boundary), 32, 28.
	src := make([]byte, 70)
	for i := range src {
		src[i] = byte(i)
	}
	if err := d.Write(32*3-10, src); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := []int{10, 32, 28}
	if len(bus.writeLens) != len(want) {
		t.Fatalf("write chunks %v, want %v", bus.writeLens, want)
	}
	for i := range want {
		if bus.writeLens[i] != want[i] {
			t.Fatalf("chunk %d has length %d, want %d", i, bus.writeLens[i], want[i])
		}
	}
	if !bytes.Equal(bus.mem[32*3-10:32*3-10+70], src) {
		t.Fatal("device contents differ after paged write")
	}
}

func TestFill(t *testing.T) {
	bus := newFakeBus(4096)
	d := newTestDevice(t, bus)

	if err := d.Fill(30, 40, 0xff); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	for i := 30; i < 70; i++ {
		if bus.mem[i] != 0xff {
			t.Fatalf("mem[%d] = %#x, want 0xff", i, bus.mem[i])
		}
	}
	if bus.mem[29] != 0 || bus.mem[70] != 0 {
		t.Fatal("Fill leaked outside its range")
	}
}

func TestRangeChecks(t *testing.T) {
	bus := newFakeBus(4096)
	d := newTestDevice(t, bus)

	if _, err := d.ReadByte(4096); err != ErrOutOfRange {
		t.Fatalf("ReadByte(4096) err=%v, want %v", err, ErrOutOfRange)
	}
	if err := d.WriteByte(4096, 0); err != ErrOutOfRange {
		t.Fatalf("WriteByte(4096) err=%v, want %v", err, ErrOutOfRange)
	}
	if err := d.Write(4090, make([]byte, 7)); err != ErrOutOfRange {
		t.Fatalf("Write past end err=%v, want %v", err, ErrOutOfRange)
	}
	if err := d.Read(4090, make([]byte, 7)); err != ErrOutOfRange {
		t.Fatalf("Read past end err=%v, want %v", err, ErrOutOfRange)
	}
	if err := d.Fill(4000, 97, 0); err != ErrOutOfRange {
		t.Fatalf("Fill past end err=%v, want %v", err, ErrOutOfRange)
	}
	if len(bus.writeLens) != 0 {
		t.Fatalf("rejected operations reached the bus: %v", bus.writeLens)
	}
}

func TestBadConfigRejected(t *testing.T) {
	bus := newFakeBus(16)
	cases := []Config{
		{Capacity: 0, PageSize: 32},
		{Capacity: 4096, PageSize: 0},
		{Capacity: 4096, PageSize: 128}, // larger than the shared buffer
		{Capacity: 100, PageSize: 32},   // capacity not page-aligned
	}
	for i, cfg := range cases {
		if _, err := New(bus, cfg); err != ErrBadConfig {
			t.Fatalf("case %d: New err=%v, want %v", i, err, ErrBadConfig)
		}
	}
}
