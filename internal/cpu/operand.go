package cpu

// target names an 8-bit operand location: a register, a memory
// location reached through a register pair or an immediate address, or
// an immediate byte. Folding every addressing mode behind load/store
// lets every ALU and load opcode share one dispatch body instead of
// duplicating it per addressing mode (grounded on
// original_source/src/hardware/opcode/targets.rs's Target enum).
type target int

const (
	tA target = iota
	tB
	tC
	tD
	tE
	tH
	tL
	tMBC    // (BC)
	tMDE    // (DE)
	tMHL    // (HL)
	tMHLInc // (HL), then HL++
	tMHLDec // (HL), then HL--
	tMC     // (FF00+C)
	tImm8   // d8, immediate operand fetched from the instruction stream
	tZeroImm8 // (FF00+a8)
	tMImm16   // (a16)
)

func (c *CPU) load(t target) byte {
	switch t {
	case tA:
		return c.A
	case tB:
		return c.B
	case tC:
		return c.C
	case tD:
		return c.D
	case tE:
		return c.E
	case tH:
		return c.H
	case tL:
		return c.L
	case tMBC:
		return c.read8(c.getBC())
	case tMDE:
		return c.read8(c.getDE())
	case tMHL:
		return c.read8(c.getHL())
	case tMHLInc:
		v := c.read8(c.getHL())
		c.setHL(c.getHL() + 1)
		return v
	case tMHLDec:
		v := c.read8(c.getHL())
		c.setHL(c.getHL() - 1)
		return v
	case tMC:
		return c.read8(0xFF00 + uint16(c.C))
	case tImm8:
		return c.fetch8()
	case tZeroImm8:
		addr := 0xFF00 + uint16(c.fetch8())
		return c.read8(addr)
	case tMImm16:
		return c.read8(c.fetch16())
	default:
		panic("cpu: invalid 8-bit load target")
	}
}

func (c *CPU) store(t target, v byte) {
	switch t {
	case tA:
		c.A = v
	case tB:
		c.B = v
	case tC:
		c.C = v
	case tD:
		c.D = v
	case tE:
		c.E = v
	case tH:
		c.H = v
	case tL:
		c.L = v
	case tMBC:
		c.write8(c.getBC(), v)
	case tMDE:
		c.write8(c.getDE(), v)
	case tMHL:
		c.write8(c.getHL(), v)
	case tMHLInc:
		c.write8(c.getHL(), v)
		c.setHL(c.getHL() + 1)
	case tMHLDec:
		c.write8(c.getHL(), v)
		c.setHL(c.getHL() - 1)
	case tMC:
		c.write8(0xFF00+uint16(c.C), v)
	case tZeroImm8:
		addr := 0xFF00 + uint16(c.fetch8())
		c.write8(addr, v)
	case tMImm16:
		c.write8(c.fetch16(), v)
	default:
		panic("cpu: invalid 8-bit store target")
	}
}

// target16 names a 16-bit operand location for the LD/PUSH/POP family.
type target16 int

const (
	t16AF target16 = iota
	t16BC
	t16DE
	t16HL
	t16SP
	t16Imm16 // d16
)

func (c *CPU) load16(t target16) uint16 {
	switch t {
	case t16AF:
		return c.getAF()
	case t16BC:
		return c.getBC()
	case t16DE:
		return c.getDE()
	case t16HL:
		return c.getHL()
	case t16SP:
		return c.SP
	case t16Imm16:
		return c.fetch16()
	default:
		panic("cpu: invalid 16-bit load target")
	}
}

func (c *CPU) store16(t target16, v uint16) {
	switch t {
	case t16AF:
		c.setAF(v)
	case t16BC:
		c.setBC(v)
	case t16DE:
		c.setDE(v)
	case t16HL:
		c.setHL(v)
	case t16SP:
		c.SP = v
	default:
		panic("cpu: invalid 16-bit store target")
	}
}
