// Package repl implements the textual debugger shell around an
// lc3.Machine: command tokenization, dispatch, and pretty-printed
// register/memory dumps. None of this is part of the simulator core —
// it is the thin, fully-implemented shell spec.md calls an external
// collaborator.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"lc3sim/lc3"
)

const prompt = "(lc-3) "

const banner = "LC-3 simulator — type \"help\" for a list of commands."

const helpText = `Commands:
  step [n]             step n instructions (default 1); n = -1 runs to halt
  continue              run until halt (equivalent to "step -1")
  registers              print PC, CC, R0..R7
  dump START [END]       print memory in [START, END] (hex addresses, 0x prefix)
  setaddr ADDR VALUE     write VALUE (signed decimal) to ADDR (hex)
  setreg Rn VALUE        write VALUE (signed decimal) to register n (0..7)
  help                   print this summary
  quit                   exit the debugger`

// Session drives the REPL loop against a single Machine.
type Session struct {
	m        *lc3.Machine
	in       *bufio.Scanner
	out      io.Writer
	lastLine string
}

// New returns a Session reading commands from in and writing output to out.
func New(m *lc3.Machine, in io.Reader, out io.Writer) *Session {
	return &Session{m: m, in: bufio.NewScanner(in), out: out}
}

// Run prints the startup banner and drives the command loop until the
// user types "quit" or input is exhausted. It never returns an error
// for a well-formed session; malformed commands are reported to the
// output stream and the loop continues, per spec.md §7 item 4.
func (s *Session) Run() {
	fmt.Fprintln(s.out, banner)

	for {
		fmt.Fprint(s.out, prompt)
		if !s.in.Scan() {
			return
		}

		line := strings.TrimSpace(s.in.Text())
		if line == "" {
			line = s.lastLine
		} else {
			s.lastLine = line
		}
		if line == "" {
			continue
		}

		if s.dispatch(line) {
			return
		}
	}
}

// dispatch runs one command line and reports whether the session
// should end (i.e. the user typed "quit").
func (s *Session) dispatch(line string) (quit bool) {
	fields := strings.Fields(line)
	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case "step":
		s.cmdStep(args)
	case "continue":
		s.cmdStep([]string{"-1"})
	case "quit":
		return true
	case "registers":
		s.cmdRegisters()
	case "dump":
		s.cmdDump(args)
	case "setaddr":
		s.cmdSetAddr(args)
	case "setreg":
		s.cmdSetReg(args)
	case "help":
		fmt.Fprintln(s.out, helpText)
	default:
		fmt.Fprintf(s.out, "Undefined command: %q. Try \"help\".\n", cmd)
	}
	return false
}

func (s *Session) cmdStep(args []string) {
	n := 1
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintln(s.out, errors.Wrapf(err, "invalid step count %q", args[0]))
			return
		}
		n = v
	}

	if err := s.m.Run(n); err != nil {
		// ErrUnknownTrap/ErrReservedOpcode and ErrNegativeStepCount are all
		// informational from the REPL's point of view — the machine is
		// still in a valid state, so just surface the message.
		fmt.Fprintln(s.out, err)
	}
}

func (s *Session) cmdRegisters() {
	fmt.Fprintf(s.out, "PC:  %#04x (%d)\n", s.m.PC(), s.m.PC())
	fmt.Fprintf(s.out, "CC:  %s\n", ccString(s.m.CC()))
	for r := 0; r < 8; r++ {
		v := s.m.Reg(r)
		fmt.Fprintf(s.out, "R%d:  %#04x (%d)\n", r, uint16(v), v)
	}
}

func (s *Session) cmdDump(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "usage: dump START [END]")
		return
	}

	start, err := parseAddr(args[0])
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}

	end := start
	if len(args) > 1 {
		end, err = parseAddr(args[1])
		if err != nil {
			fmt.Fprintln(s.out, err)
			return
		}
	}

	for addr := uint32(start); addr <= uint32(end); addr++ {
		a := uint16(addr)
		v := s.m.MemRead(a)
		fmt.Fprintf(s.out, "0x%04x: %#04x (%d)\n", a, uint16(v), v)
	}
}

func (s *Session) cmdSetAddr(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(s.out, "usage: setaddr ADDR VALUE")
		return
	}

	addr, err := parseAddr(args[0])
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}

	value, err := strconv.ParseInt(args[1], 10, 32)
	if err != nil {
		fmt.Fprintln(s.out, errors.Wrapf(err, "invalid value %q", args[1]))
		return
	}

	s.m.MemWrite(addr, int16(value))
}

func (s *Session) cmdSetReg(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(s.out, "usage: setreg Rn VALUE")
		return
	}

	regName := strings.TrimPrefix(strings.ToLower(args[0]), "r")
	r, err := strconv.Atoi(regName)
	if err != nil || r < 0 || r > 7 {
		fmt.Fprintf(s.out, "invalid register %q: must be R0..R7\n", args[0])
		return
	}

	value, err := strconv.ParseInt(args[1], 10, 32)
	if err != nil {
		fmt.Fprintln(s.out, errors.Wrapf(err, "invalid value %q", args[1]))
		return
	}

	s.m.SetReg(r, int16(value))
}

// parseAddr parses a hex address, reducing it modulo 2^16 per spec.md §7 item 5.
func parseAddr(s string) (uint16, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(trimmed, 16, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid address %q", s)
	}
	return uint16(v), nil
}

func ccString(cc lc3.CC) string {
	switch cc {
	case lc3.CCNegative:
		return "N"
	case lc3.CCZero:
		return "Z"
	case lc3.CCPositive:
		return "P"
	default:
		return "?"
	}
}
