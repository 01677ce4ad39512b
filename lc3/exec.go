package lc3

// Fetch reads the word at pc, reinterpreted as unsigned 16-bit, then
// increments pc modulo 2^16. Fetch never inspects or mutates cc,
// registers, or halted; the stepping driver is solely responsible for
// gating on halted.
func (m *Machine) Fetch() uint16 {
	instr := uint16(m.mem[m.pc])
	m.pc++
	return instr
}

// Execute decodes and applies the single instruction word instr. All
// PC-relative arithmetic uses the already-incremented pc (the address
// Fetch left behind). Execute always leaves the machine in a valid
// state; the returned error (if any) is informational only — see
// ErrUnknownTrap and ErrReservedOpcode.
func (m *Machine) Execute(instr uint16) error {
	switch opcode(instr) {
	case 0x1: // ADD
		m.execAdd(instr)
	case 0x5: // AND
		m.execAnd(instr)
	case 0x9: // NOT
		m.execNot(instr)
	case 0x0: // BR
		m.execBr(instr)
	case 0xC: // JMP / RET
		m.execJmp(instr)
	case 0x4: // JSR / JSRR
		m.execJsr(instr)
	case 0x2: // LD
		m.execLd(instr)
	case 0xA: // LDI
		m.execLdi(instr)
	case 0x6: // LDR
		m.execLdr(instr)
	case 0xE: // LEA
		m.execLea(instr)
	case 0x3: // ST
		m.execSt(instr)
	case 0xB: // STI
		m.execSti(instr)
	case 0x7: // STR
		m.execStr(instr)
	case 0xF: // TRAP
		return m.execTrap(instr & 0xFF)
	case 0x8, 0xD: // reserved: RTI, unused
		return ErrReservedOpcode
	}
	return nil
}

func (m *Machine) execAdd(instr uint16) {
	a := m.regs[sr1(instr)]
	var b int16
	if immFlag(instr) {
		b = int16(sext(instr&0x1F, 5))
	} else {
		b = m.regs[sr2(instr)]
	}
	result := a + b
	m.regs[dr(instr)] = result
	m.updateCC(result)
}

func (m *Machine) execAnd(instr uint16) {
	a := m.regs[sr1(instr)]
	var b int16
	if immFlag(instr) {
		b = int16(sext(instr&0x1F, 5))
	} else {
		b = m.regs[sr2(instr)]
	}
	result := a & b
	m.regs[dr(instr)] = result
	m.updateCC(result)
}

func (m *Machine) execNot(instr uint16) {
	result := ^m.regs[sr1(instr)]
	m.regs[dr(instr)] = result
	m.updateCC(result)
}

func (m *Machine) execBr(instr uint16) {
	n, z, p := nzp(instr)
	taken := (n && m.cc == CCNegative) || (z && m.cc == CCZero) || (p && m.cc == CCPositive)
	if taken {
		m.pc += sext(instr&0x1FF, 9)
	}
}

func (m *Machine) execJmp(instr uint16) {
	m.pc = uint16(m.regs[sr1(instr)])
}

func (m *Machine) execJsr(instr uint16) {
	m.regs[7] = int16(m.pc)
	if jsrFlag(instr) {
		m.pc += sext(instr&0x7FF, 11)
	} else {
		m.pc = uint16(m.regs[sr1(instr)])
	}
}

func (m *Machine) execLd(instr uint16) {
	addr := m.pc + sext(instr&0x1FF, 9)
	result := m.mem[addr]
	m.regs[dr(instr)] = result
	m.updateCC(result)
}

func (m *Machine) execLdi(instr uint16) {
	addr := m.pc + sext(instr&0x1FF, 9)
	indirect := uint16(m.mem[addr])
	result := m.mem[indirect]
	m.regs[dr(instr)] = result
	m.updateCC(result)
}

func (m *Machine) execLdr(instr uint16) {
	addr := uint16(m.regs[sr1(instr)]) + sext(instr&0x3F, 6)
	result := m.mem[addr]
	m.regs[dr(instr)] = result
	m.updateCC(result)
}

func (m *Machine) execLea(instr uint16) {
	result := int16(m.pc + sext(instr&0x1FF, 9))
	m.regs[dr(instr)] = result
	m.updateCC(result)
}

func (m *Machine) execSt(instr uint16) {
	addr := m.pc + sext(instr&0x1FF, 9)
	m.mem[addr] = m.regs[dr(instr)]
}

func (m *Machine) execSti(instr uint16) {
	addr := m.pc + sext(instr&0x1FF, 9)
	indirect := uint16(m.mem[addr])
	m.mem[indirect] = m.regs[dr(instr)]
}

func (m *Machine) execStr(instr uint16) {
	addr := uint16(m.regs[sr1(instr)]) + sext(instr&0x3F, 6)
	m.mem[addr] = m.regs[dr(instr)]
}
