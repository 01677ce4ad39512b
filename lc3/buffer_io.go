package lc3

import (
	"bytes"
	"io"
)

// BufferIO is an in-memory CharIO: reads drain from In, writes append
// to Out. It needs no terminal and is safe to use in tests or to drive
// a machine from a canned input script.
type BufferIO struct {
	In  *bytes.Reader
	Out *bytes.Buffer
}

// NewBufferIO returns a BufferIO that reads input and collects output
// in a fresh buffer.
func NewBufferIO(input string) *BufferIO {
	return &BufferIO{
		In:  bytes.NewReader([]byte(input)),
		Out: &bytes.Buffer{},
	}
}

// ReadChar returns io.EOF once In is exhausted.
func (b *BufferIO) ReadChar() (byte, error) {
	c, err := b.In.ReadByte()
	if err != nil {
		return 0, io.EOF
	}
	return c, nil
}

// WriteChar appends c to Out.
func (b *BufferIO) WriteChar(c byte) error {
	return b.Out.WriteByte(c)
}
