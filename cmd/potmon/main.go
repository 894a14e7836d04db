//go:build !tinygo

// potmon is the host-side companion to scan-demo: it opens a serial port,
// reads "pot <i> <counts>" lines, and prints them with wall-clock
// timestamps and per-pot deltas.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tarm/serial"
)

func main() {
	device := flag.String("device", "/dev/ttyACM0", "serial device")
	baud := flag.Int("baud", 115200, "baud rate")
	flag.Parse()

	port, err := serial.OpenPort(&serial.Config{Name: *device, Baud: *baud})
	if err != nil {
		log.Fatalf("potmon: open %s: %v", *device, err)
	}
	defer port.Close()

	last := map[int]int{}
	sc := bufio.NewScanner(port)
	for sc.Scan() {
		idx, counts, ok := parseLine(sc.Text())
		if !ok {
			continue
		}
		delta := 0
		if prev, seen := last[idx]; seen {
			delta = counts - prev
		}
		last[idx] = counts
		fmt.Printf("%s pot%d %4d (%+d)\n",
			time.Now().Format("15:04:05.000"), idx, counts, delta)
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "potmon: read: %v\n", err)
		os.Exit(1)
	}
}

// parseLine accepts "pot <i> <counts>" and rejects anything else (boot
// noise, partial lines after reconnect).
func parseLine(s string) (idx, counts int, ok bool) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 3 || fields[0] != "pot" {
		return 0, 0, false
	}
	idx, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, false
	}
	counts, err = strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, false
	}
	return idx, counts, true
}
