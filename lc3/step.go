package lc3

import "errors"

// ErrNegativeStepCount is returned by Run for any n < -1.
var ErrNegativeStepCount = errors.New("lc3: step count must be >= -1")

// Step advances the machine by one instruction. If the machine is
// halted, Step is a no-op. The returned error, if any, comes from
// Execute and is purely informational (see ErrUnknownTrap,
// ErrReservedOpcode); it never leaves the machine in an invalid state.
func (m *Machine) Step() error {
	if m.halted {
		return nil
	}
	instr := m.Fetch()
	return m.Execute(instr)
}

// Run performs Step at most n times, stopping early if the machine
// halts. n == -1 runs until halt with no step limit. Any n < -1 is
// rejected with ErrNegativeStepCount and performs no steps.
//
// Run returns the last informational error reported by Step (if any);
// callers that only care about halt-vs-budget-exhausted can ignore it.
func (m *Machine) Run(n int) error {
	if n < -1 {
		return ErrNegativeStepCount
	}

	var lastErr error
	if n == -1 {
		for !m.halted {
			if err := m.Step(); err != nil {
				lastErr = err
			}
		}
		return lastErr
	}

	for i := 0; i < n && !m.halted; i++ {
		if err := m.Step(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
