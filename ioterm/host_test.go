package ioterm

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewHostFallsBackWhenNotATerminal(t *testing.T) {
	var out bytes.Buffer
	// fd -1 never refers to a terminal, so NewHost must skip MakeRaw and
	// still return a working Host instead of failing.
	h, err := NewHost(-1, strings.NewReader("hi"), &out)
	if err != nil {
		t.Fatalf("NewHost: %v", err)
	}
	defer h.Close()

	c, err := h.ReadChar()
	if err != nil {
		t.Fatalf("ReadChar: %v", err)
	}
	if c != 'h' {
		t.Errorf("ReadChar = %q, want 'h'", c)
	}

	if err := h.WriteChar('X'); err != nil {
		t.Fatalf("WriteChar: %v", err)
	}
	if out.String() != "X" {
		t.Errorf("output = %q, want %q", out.String(), "X")
	}
}

func TestReadCharTranslatesCR(t *testing.T) {
	h, err := NewHost(-1, strings.NewReader("\r"), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("NewHost: %v", err)
	}
	defer h.Close()

	c, err := h.ReadChar()
	if err != nil {
		t.Fatalf("ReadChar: %v", err)
	}
	if c != '\n' {
		t.Errorf("ReadChar = %q, want '\\n'", c)
	}
}

func TestCloseIsSafeWithoutRawMode(t *testing.T) {
	h, err := NewHost(-1, strings.NewReader(""), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("NewHost: %v", err)
	}
	if err := h.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestReadCharReportsCtrlC(t *testing.T) {
	h, err := NewHost(-1, strings.NewReader("\x03a"), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("NewHost: %v", err)
	}
	defer h.Close()

	c, err := h.ReadChar()
	if err != ErrInterrupted {
		t.Fatalf("ReadChar = (%q, %v), want (_, ErrInterrupted)", c, err)
	}

	c, err = h.ReadChar()
	if err != nil {
		t.Fatalf("ReadChar: %v", err)
	}
	if c != 'a' {
		t.Errorf("ReadChar = %q, want 'a'", c)
	}
}
