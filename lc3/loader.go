package lc3

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Load reads a big-endian LC-3 object stream from r and writes it into
// memory. The first word read is the origin: it becomes both pc and the
// first write address. Every subsequent word is written starting at the
// origin, with the write address wrapping modulo 2^16. Load always
// begins by calling Init, so a zero-word stream leaves the machine at
// its init state.
//
// Load never fails on a well-formed stream. EOF at any word boundary
// ends loading cleanly; a trailing odd byte is discarded silently, per
// spec. A read error other than EOF mid-word is reported so the caller
// can distinguish "stream exhausted" from "stream broke".
func (m *Machine) Load(r io.Reader) error {
	m.Init()

	word, ok, err := readWord(r)
	if err != nil {
		return errors.Wrap(err, "lc3: reading object origin")
	}
	if !ok {
		return nil
	}

	origin := word
	m.pc = origin
	addr := origin

	for {
		word, ok, err := readWord(r)
		if err != nil {
			return errors.Wrap(err, "lc3: reading object image")
		}
		if !ok {
			return nil
		}

		m.mem[addr] = int16(word)
		addr++ // uint16 wraps modulo 2^16 on overflow
	}
}

// readWord reads one big-endian 16-bit word. ok is false (err nil) on a
// clean EOF before any byte of the word was read; a lone trailing byte
// is discarded and also reported as ok==false.
func readWord(r io.Reader) (word uint16, ok bool, err error) {
	var buf [2]byte
	n, err := io.ReadFull(r, buf[:])
	switch {
	case n == 2:
		return binary.BigEndian.Uint16(buf[:]), true, nil
	case n == 0 && err == io.EOF:
		return 0, false, nil
	case n == 1 && err == io.ErrUnexpectedEOF:
		return 0, false, nil
	default:
		return 0, false, err
	}
}
