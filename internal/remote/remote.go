// Package remote simulates the latency of a backend that does not exist.
// Commands that would be network calls in a client/server split (sign-up,
// invitation send/revoke, guest join) wait on the Simulator before mutating
// state. The delay is fixed and configurable; once an operation has started
// it always runs to completion — there is no timeout or cancellation path.
package remote

import "time"

// Simulator introduces a fixed artificial delay.
// The zero value (and NewSimulator(0)) waits for nothing, which is what
// tests and default deployments use.
type Simulator struct {
	delay time.Duration
}

// NewSimulator returns a Simulator with the given fixed delay.
func NewSimulator(delay time.Duration) *Simulator {
	return &Simulator{delay: delay}
}

// Wait blocks for the configured delay.
func (s *Simulator) Wait() {
	if s == nil || s.delay <= 0 {
		return
	}
	time.Sleep(s.delay)
}
