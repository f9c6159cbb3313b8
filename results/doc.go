// Package results provides Result, a value that is either a success holding an S or a failure
// holding an E. It is an alternative to panicking or to returning a loose (value, error) pair when
// a caller should be forced to acknowledge the failure case.
//
// A Result is created with Ok or Err and never changes afterwards. Callers either test IsOk / IsErr
// before reading the payload, or use one of the extraction helpers that encode a failure policy:
//
//	Or        return a fallback value
//	Throw     panic with the failure payload itself
//	ThrowMap  panic with a value derived from the failure payload
//
// The failure payload does not have to be an error. Throw raises it exactly as stored, so code that
// recovers receives the same value that was passed to Err. Catch is the counterpart that turns such
// a panic back into a Result.
//
// Results are immutable and can be read by multiple goroutines without synchronization.
package results
