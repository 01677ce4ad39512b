package lc3

import (
	"bytes"
	"testing"
)

func TestLoadBasic(t *testing.T) {
	// origin 0x3000, then words 0x1234, 0x5678
	data := []byte{0x30, 0x00, 0x12, 0x34, 0x56, 0x78}
	m := NewMachine(nil)
	if err := m.Load(bytes.NewReader(data)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.pc != 0x3000 {
		t.Errorf("pc = %#x, want 0x3000", m.pc)
	}
	if got := uint16(m.mem[0x3000]); got != 0x1234 {
		t.Errorf("mem[0x3000] = %#x, want 0x1234", got)
	}
	if got := uint16(m.mem[0x3001]); got != 0x5678 {
		t.Errorf("mem[0x3001] = %#x, want 0x5678", got)
	}
}

func TestLoadEmptyStreamLeavesInitState(t *testing.T) {
	m := NewMachine(nil)
	if err := m.Load(bytes.NewReader(nil)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.pc != 0x3000 || m.cc != CCZero || m.halted {
		t.Fatalf("empty load left pc=%#x cc=%v halted=%v", m.pc, m.cc, m.halted)
	}
}

func TestLoadDiscardsTrailingOddByte(t *testing.T) {
	data := []byte{0x30, 0x00, 0x00, 0x01, 0xFF}
	m := NewMachine(nil)
	if err := m.Load(bytes.NewReader(data)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := uint16(m.mem[0x3000]); got != 0x0001 {
		t.Errorf("mem[0x3000] = %#x, want 0x0001", got)
	}
	// the trailing 0xFF never formed a full word and must not appear anywhere
	if got := uint16(m.mem[0x3001]); got != 0 {
		t.Errorf("mem[0x3001] = %#x, want 0 (trailing byte discarded)", got)
	}
}

func TestLoadWrapsAddressModulo2_16(t *testing.T) {
	data := []byte{0xFF, 0xFF, 0x00, 0x01, 0x00, 0x02}
	m := NewMachine(nil)
	if err := m.Load(bytes.NewReader(data)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.pc != 0xFFFF {
		t.Fatalf("pc = %#x, want 0xFFFF", m.pc)
	}
	if got := uint16(m.mem[0xFFFF]); got != 0x0001 {
		t.Errorf("mem[0xFFFF] = %#x, want 0x0001", got)
	}
	if got := uint16(m.mem[0x0000]); got != 0x0002 {
		t.Errorf("mem[0x0000] (wrapped) = %#x, want 0x0002", got)
	}
}

func TestLoadResetsPriorState(t *testing.T) {
	m := NewMachine(nil)
	m.trapHalt()
	if !m.halted {
		t.Fatal("setup: expected halted")
	}

	data := []byte{0x30, 0x00, 0x00, 0x00}
	if err := m.Load(bytes.NewReader(data)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.halted {
		t.Error("Load did not reset halted via Init")
	}
}
