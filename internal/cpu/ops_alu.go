package cpu

// aluTargets is the fixed 8-operand list {B,C,D,E,H,L,(HL),A} used by
// every row of the 0x80-0xBF ALU block.
var aluTargets = [8]target{tB, tC, tD, tE, tH, tL, tMHL, tA}

func (c *CPU) add8(v byte) {
	r := uint16(c.A) + uint16(v)
	h := (c.A&0x0F)+(v&0x0F) > 0x0F
	cy := r > 0xFF
	c.A = byte(r)
	c.setFlags(c.A == 0, false, h, cy)
}

func (c *CPU) adc8(v byte) {
	ci := byte(0)
	if c.flag(flagC) {
		ci = 1
	}
	r := uint16(c.A) + uint16(v) + uint16(ci)
	h := (c.A&0x0F)+(v&0x0F)+ci > 0x0F
	cy := r > 0xFF
	c.A = byte(r)
	c.setFlags(c.A == 0, false, h, cy)
}

func (c *CPU) sub8(v byte) {
	h := (c.A & 0x0F) < (v & 0x0F)
	cy := c.A < v
	r := c.A - v
	c.A = r
	c.setFlags(r == 0, true, h, cy)
}

func (c *CPU) sbc8(v byte) {
	ci := byte(0)
	if c.flag(flagC) {
		ci = 1
	}
	h := (c.A & 0x0F) < (v&0x0F)+ci
	cy := int(c.A) < int(v)+int(ci)
	r := c.A - v - ci
	c.A = r
	c.setFlags(r == 0, true, h, cy)
}

func (c *CPU) and8(v byte) {
	c.A &= v
	c.setFlags(c.A == 0, false, true, false)
}

func (c *CPU) xor8(v byte) {
	c.A ^= v
	c.setFlags(c.A == 0, false, false, false)
}

func (c *CPU) or8(v byte) {
	c.A |= v
	c.setFlags(c.A == 0, false, false, false)
}

func (c *CPU) cp8(v byte) {
	h := (c.A & 0x0F) < (v & 0x0F)
	cy := c.A < v
	r := c.A - v
	c.setFlags(r == 0, true, h, cy)
}

func init() {
	type binOp struct {
		base byte
		imm  byte
		fn   func(c *CPU, v byte)
	}
	ops := []binOp{
		{0x80, 0xC6, func(c *CPU, v byte) { c.add8(v) }},
		{0x88, 0xCE, func(c *CPU, v byte) { c.adc8(v) }},
		{0x90, 0xD6, func(c *CPU, v byte) { c.sub8(v) }},
		{0x98, 0xDE, func(c *CPU, v byte) { c.sbc8(v) }},
		{0xA0, 0xE6, func(c *CPU, v byte) { c.and8(v) }},
		{0xA8, 0xEE, func(c *CPU, v byte) { c.xor8(v) }},
		{0xB0, 0xF6, func(c *CPU, v byte) { c.or8(v) }},
		{0xB8, 0xFE, func(c *CPU, v byte) { c.cp8(v) }},
	}
	for _, op := range ops {
		op := op
		for i, t := range aluTargets {
			i, t := i, t
			opcode := op.base + byte(i)
			baseTable[opcode] = func(c *CPU) (int, error) {
				op.fn(c, c.load(t))
				if t == tMHL {
					return 8, nil
				}
				return 4, nil
			}
		}
		imm := op.imm
		baseTable[imm] = func(c *CPU) (int, error) {
			op.fn(c, c.load(tImm8))
			return 8, nil
		}
	}

	// INC/DEC r (8-bit)
	incTargets := map[byte]target{0x04: tB, 0x0C: tC, 0x14: tD, 0x1C: tE, 0x24: tH, 0x2C: tL, 0x34: tMHL, 0x3C: tA}
	for op, t := range incTargets {
		op, t := op, t
		baseTable[op] = func(c *CPU) (int, error) {
			v := c.load(t)
			r := v + 1
			h := v&0x0F == 0x0F
			cy := c.flag(flagC)
			c.setFlags(r == 0, false, h, cy)
			c.store(t, r)
			if t == tMHL {
				return 12, nil
			}
			return 4, nil
		}
	}
	decTargets := map[byte]target{0x05: tB, 0x0D: tC, 0x15: tD, 0x1D: tE, 0x25: tH, 0x2D: tL, 0x35: tMHL, 0x3D: tA}
	for op, t := range decTargets {
		op, t := op, t
		baseTable[op] = func(c *CPU) (int, error) {
			v := c.load(t)
			r := v - 1
			h := v&0x0F == 0
			cy := c.flag(flagC)
			c.setFlags(r == 0, true, h, cy)
			c.store(t, r)
			if t == tMHL {
				return 12, nil
			}
			return 4, nil
		}
	}

	// CP A,(opcode 0xBF etc already wired above via the binOp table).

	// INC/DEC rr (16-bit, no flags)
	inc16 := map[byte]target16{0x03: t16BC, 0x13: t16DE, 0x23: t16HL, 0x33: t16SP}
	for op, t := range inc16 {
		op, t := op, t
		baseTable[op] = func(c *CPU) (int, error) {
			c.store16(t, c.load16(t)+1)
			return 8, nil
		}
	}
	dec16 := map[byte]target16{0x0B: t16BC, 0x1B: t16DE, 0x2B: t16HL, 0x3B: t16SP}
	for op, t := range dec16 {
		op, t := op, t
		baseTable[op] = func(c *CPU) (int, error) {
			c.store16(t, c.load16(t)-1)
			return 8, nil
		}
	}

	// ADD HL,rr
	addHL := map[byte]target16{0x09: t16BC, 0x19: t16DE, 0x29: t16HL, 0x39: t16SP}
	for op, t := range addHL {
		op, t := op, t
		baseTable[op] = func(c *CPU) (int, error) {
			hl := c.getHL()
			v := c.load16(t)
			r := uint32(hl) + uint32(v)
			h := (hl&0x0FFF)+(v&0x0FFF) > 0x0FFF
			cy := r > 0xFFFF
			z := c.flag(flagZ)
			c.setFlags(z, false, h, cy)
			c.setHL(uint16(r))
			return 8, nil
		}
	}

	// ADD SP,e8
	baseTable[0xE8] = func(c *CPU) (int, error) {
		e := int8(c.fetch8())
		sp := c.SP
		r := uint16(int32(sp) + int32(e))
		h := (sp&0xF)+(uint16(byte(e))&0xF) > 0xF
		cy := (sp&0xFF)+(uint16(byte(e))&0xFF) > 0xFF
		c.setFlags(false, false, h, cy)
		c.SP = r
		return 16, nil
	}

	// DAA
	baseTable[0x27] = func(c *CPU) (int, error) {
		a := c.A
		n := c.flag(flagN)
		h := c.flag(flagH)
		cy := c.flag(flagC)
		var adjust byte
		if h || (!n && a&0x0F > 9) {
			adjust |= 0x06
		}
		if cy || (!n && a > 0x99) {
			adjust |= 0x60
			cy = true
		}
		if n {
			a -= adjust
		} else {
			a += adjust
		}
		c.A = a
		c.setFlags(a == 0, n, false, cy)
		return 4, nil
	}
}
