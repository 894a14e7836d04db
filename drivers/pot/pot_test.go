package pot

import "testing"

type fakePin struct {
	sample uint16
	starts int
	waits  int
	reads  int
}

func (p *fakePin) StartConversion() { p.starts++ }
func (p *fakePin) Wait()            { p.waits++ }
func (p *fakePin) Read() uint16     { p.reads++; return p.sample }

func TestDelegatesToPin(t *testing.T) {
	pin := &fakePin{sample: 512}
	p := New(pin, 0)
	p.StartConversion()
	p.Wait()
	if got := p.Read(); got != 512 {
		t.Fatalf("Read() = %d, want 512", got)
	}
	if pin.starts != 1 || pin.waits != 1 || pin.reads != 1 {
		t.Fatalf("pin saw starts=%d waits=%d reads=%d, want 1 each", pin.starts, pin.waits, pin.reads)
	}
}

func TestSetAlwaysNotifies(t *testing.T) {
	p := New(&fakePin{}, 8)
	var got []uint16
	p.Attach(func(v uint16) { got = append(got, v) })

	p.Set(100)
	p.Set(100) // unchanged, still notifies
	p.Set(101) // within threshold, still notifies
	if len(got) != 3 || got[0] != 100 || got[1] != 100 || got[2] != 101 {
		t.Fatalf("Set notifications %v, want [100 100 101]", got)
	}
	if p.Value() != 101 {
		t.Fatalf("Value() = %d, want 101", p.Value())
	}
}

func TestCheckHysteresis(t *testing.T) {
	p := New(&fakePin{}, 4)
	var got []uint16
	p.Attach(func(v uint16) { got = append(got, v) })

	p.Check(100) // first check seeds the baseline and notifies
	p.Check(103) // delta 3 <= threshold, suppressed
	p.Check(104) // delta 4 <= threshold, suppressed
	p.Check(105) // delta 5 > threshold, notifies and re-bases
	p.Check(102) // delta 3 from new base, suppressed
	p.Check(95)  // delta 10, notifies
	if len(got) != 3 || got[0] != 100 || got[1] != 105 || got[2] != 95 {
		t.Fatalf("Check notifications %v, want [100 105 95]", got)
	}
}

func TestCheckZeroThresholdNotifiesOnAnyChange(t *testing.T) {
	p := New(&fakePin{}, 0)
	notified := 0
	p.Attach(func(uint16) { notified++ })

	p.Check(10)
	p.Check(10) // equal, suppressed
	p.Check(11)
	p.Check(10)
	if notified != 3 {
		t.Fatalf("notified %d times, want 3", notified)
	}
}

func TestSetRebasesCheck(t *testing.T) {
	p := New(&fakePin{}, 4)
	notified := 0
	p.Attach(func(uint16) { notified++ })

	p.Set(200)
	p.Check(202) // within threshold of the Set baseline
	if notified != 1 {
		t.Fatalf("notified %d times, want 1 (Check after Set should suppress)", notified)
	}
}

func TestMultipleObserversRunInAttachOrder(t *testing.T) {
	p := New(&fakePin{}, 0)
	var order []string
	p.Attach(func(uint16) { order = append(order, "a") })
	p.Attach(func(uint16) { order = append(order, "b") })
	p.Set(1)
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("observer order %v, want [a b]", order)
	}
}
