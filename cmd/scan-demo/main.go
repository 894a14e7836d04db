//go:build rp2040

// scan-demo sweeps three potentiometers behind a 74HC4051 on ADC0 and
// reports changed values over UART0 as "pot <i> <counts>" lines (the format
// cmd/potmon expects). A debug pin frames each sweep for oscilloscope
// timing of the pipelined scan.
package main

import (
	"machine"
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"halkit-go/drivers/hc4051"
	"halkit-go/drivers/pot"
	"halkit-go/hal/muxpin"
	"halkit-go/hal/potscan"
	"halkit-go/hal/tictoc"
	"halkit-go/x/clockdiv"
	"halkit-go/x/conv"
	"halkit-go/x/timex"
)

const (
	baud    = 115200
	loopHz  = 1000
	scanDiv = 10 // sweep at loopHz/scanDiv
	nofPots = 3
	potHyst = 4 // counts; masks ADC noise
)

// gpio adapts machine.Pin to the output-pin contract.
type gpio struct{ p machine.Pin }

func (g gpio) SetAsOutput() { g.p.Configure(machine.PinConfig{Mode: machine.PinOutput}) }
func (g gpio) High()        { g.p.High() }
func (g gpio) Low()         { g.p.Low() }

// adc0 adapts the synchronous machine ADC to the analog-pin contract: the
// conversion completes inside StartConversion, so Wait is a no-op.
type adc0 struct {
	a machine.ADC
	v uint16
}

func (a *adc0) StartConversion() { a.v = a.a.Get() }
func (a *adc0) Wait()            {}
func (a *adc0) Read() uint16     { return a.v }

func main() {
	time.Sleep(1500 * time.Millisecond)

	u := uartx.UART0
	_ = u.Configure(uartx.UARTConfig{
		BaudRate: baud,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	machine.InitADC()
	adc := &adc0{a: machine.ADC{Pin: machine.ADC0}}
	adc.a.Configure(machine.ADCConfig{})

	mux := hc4051.New(gpio{machine.GP2}, gpio{machine.GP3}, gpio{machine.GP4})

	var line [24]byte
	var num [10]byte
	report := func(i int) pot.Observer {
		return func(v uint16) {
			n := copy(line[:], "pot ")
			n += copy(line[n:], conv.Utoa(num[:], uint32(i)))
			line[n] = ' '
			n++
			n += copy(line[n:], conv.Utoa(num[:], uint32(v)))
			line[n] = '\n'
			n++
			_, _ = u.Write(line[:n])
		}
	}

	pots := make([]*pot.Pot, nofPots)
	for i := range pots {
		ch, err := muxpin.NewAnalog(adc, mux, uint8(i))
		if err != nil {
			println("scan-demo: bad channel", i)
			return
		}
		pots[i] = pot.New(ch, potHyst)
		pots[i].Attach(report(i))
	}

	scanner, err := potscan.New(pots[0], pots[1], pots[2])
	if err != nil {
		println("scan-demo: scanner:", err.Error())
		return
	}

	div, err := clockdiv.New[uint8](scanDiv)
	if err != nil {
		println("scan-demo: divider:", err.Error())
		return
	}

	dbg := gpio{machine.GP15}
	scanner.Init()

	period := timex.PeriodFromHz(loopHz)
	for {
		if div.Clock() {
			tictoc.Measure(dbg, scanner.Scan)
		}
		time.Sleep(period)
	}
}
