// Package conv holds allocation-free number-to-ASCII helpers for MCU
// console output, where fmt is too heavy for the flash budget.
package conv

const hexdigits = "0123456789abcdef"

// Utoa writes the base-10 representation of n into buf and returns the used
// tail slice. buf should be length >= 10 for uint32.
func Utoa(buf []byte, n uint32) []byte {
	if len(buf) == 0 {
		return buf[:0]
	}
	i := len(buf)
	if n == 0 {
		i--
		buf[i] = '0'
	} else {
		for n > 0 && i > 0 {
			i--
			buf[i] = byte('0' + n%10)
			n /= 10
		}
	}
	return buf[i:]
}

// Itoa is Utoa with a leading '-' for negative n. buf should be length >= 11.
func Itoa(buf []byte, n int32) []byte {
	if n >= 0 {
		return Utoa(buf, uint32(n))
	}
	s := Utoa(buf[1:], uint32(-int64(n)))
	// Utoa fills from the tail, so the byte before s is free for the sign.
	buf[len(buf)-len(s)-1] = '-'
	return buf[len(buf)-len(s)-1:]
}

// Hex16 writes n as four lowercase hex digits into buf[:4] and returns
// buf[:4]. buf must be length >= 4.
func Hex16(buf []byte, n uint16) []byte {
	buf[0] = hexdigits[n>>12]
	buf[1] = hexdigits[n>>8&0xf]
	buf[2] = hexdigits[n>>4&0xf]
	buf[3] = hexdigits[n&0xf]
	return buf[:4]
}
