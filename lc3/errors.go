package lc3

import "errors"

// Sentinel errors returned by Execute for conditions that are always
// treated as no-ops at the machine-state level. They exist so a caller
// (typically the debugger REPL) can surface a message, but the core
// never requires them to be checked: the machine is left in a valid
// state whether or not the caller inspects the returned error.
var (
	// ErrUnknownTrap is returned when a TRAP vector outside the six
	// documented service routines is dispatched.
	ErrUnknownTrap = errors.New("lc3: unknown trap vector")

	// ErrReservedOpcode is returned for opcodes 0x8 (RTI) and 0xD,
	// both of which are no-ops in a user-mode-only simulator.
	ErrReservedOpcode = errors.New("lc3: reserved opcode")
)
