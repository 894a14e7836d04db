package errcode

// Code is a stable error identifier for configuration faults detected while
// an adapter is being constructed. It is a string newtype, comparable,
// allocation-free, and implements error. Adapter hot paths never return a
// Code; everything that can fail is rejected at construction.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK Code = "ok"

	InvalidChannel Code = "invalid_channel" // channel >= mux channel count
	InvalidLine    Code = "invalid_line"    // line >= mux line count
	OutOfRange     Code = "out_of_range"    // address range exceeds capacity
	EmptyScanList  Code = "empty_scan_list" // scanner needs at least one pot
	ZeroFactor     Code = "zero_factor"     // divider factor must be >= 1
	InvalidPhase   Code = "invalid_phase"   // divider phase outside [1, N]
	InvalidParams  Code = "invalid_params"

	Error Code = "error" // generic fallback
)

// Optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	if e.Msg != "" {
		return string(e.C) + ": " + e.Msg
	}
	return string(e.C)
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}
