// Package genprop is a minimal generative testing engine: properties are
// checked against generated candidates, and the first falsifying candidate
// is shrunk to a locally-minimal counterexample before it is reported.
package genprop

import "fmt"

// Outcome is the result of applying a predicate to a candidate.
// The zero value is a failure with an empty cause.
type Outcome struct {
	successful bool
	cause      string
}

// Successful reports whether the property held.
func (o Outcome) Successful() bool {
	return o.successful
}

// Cause returns the human-readable reason for a failure.
// It is empty on success by convention.
func (o Outcome) Cause() string {
	return o.cause
}

// Success returns a passing Outcome with an empty cause.
func Success() Outcome {
	return Outcome{successful: true}
}

// Failure returns a failing Outcome carrying the given cause.
func Failure(cause string) Outcome {
	return Outcome{successful: false, cause: cause}
}

// Failuref returns a failing Outcome with a formatted cause.
func Failuref(format string, args ...any) Outcome {
	return Outcome{successful: false, cause: fmt.Sprintf(format, args...)}
}
