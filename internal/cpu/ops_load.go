package cpu

// The 8x8 LD r,r' block (opcodes 0x40-0x7F minus 0x76=HALT) shares one
// handler generator since every cell is "load src into dst" over the
// same target list.
var loadBlockTargets = [8]target{tB, tC, tD, tE, tH, tL, tMHL, tA}

func ldRR(dst, src target) opFunc {
	return func(c *CPU) (int, error) {
		c.store(dst, c.load(src))
		cycles := 4
		if dst == tMHL || src == tMHL {
			cycles = 8
		}
		return cycles, nil
	}
}

func init() {
	for di, dst := range loadBlockTargets {
		for si, src := range loadBlockTargets {
			op := byte(0x40 + di*8 + si)
			if op == 0x76 {
				continue // HALT, wired in ops_misc.go
			}
			baseTable[op] = ldRR(dst, src)
		}
	}

	// LD r,d8
	ldImm := map[byte]target{0x06: tB, 0x0E: tC, 0x16: tD, 0x1E: tE, 0x26: tH, 0x2E: tL, 0x3E: tA}
	for op, dst := range ldImm {
		dst := dst
		baseTable[op] = func(c *CPU) (int, error) {
			c.store(dst, c.load(tImm8))
			return 8, nil
		}
	}
	baseTable[0x36] = func(c *CPU) (int, error) {
		c.write8(c.getHL(), c.load(tImm8))
		return 12, nil
	}

	// LD rr,d16
	ld16Imm := map[byte]target16{0x01: t16BC, 0x11: t16DE, 0x21: t16HL, 0x31: t16SP}
	for op, dst := range ld16Imm {
		dst := dst
		baseTable[op] = func(c *CPU) (int, error) {
			c.store16(dst, c.load16(t16Imm16))
			return 12, nil
		}
	}

	// LD (a16),SP
	baseTable[0x08] = func(c *CPU) (int, error) {
		addr := c.fetch16()
		c.write16(addr, c.SP)
		return 20, nil
	}

	// LD (BC),A / LD (DE),A / LD A,(BC) / LD A,(DE)
	baseTable[0x02] = func(c *CPU) (int, error) { c.store(tMBC, c.A); return 8, nil }
	baseTable[0x12] = func(c *CPU) (int, error) { c.store(tMDE, c.A); return 8, nil }
	baseTable[0x0A] = func(c *CPU) (int, error) { c.A = c.load(tMBC); return 8, nil }
	baseTable[0x1A] = func(c *CPU) (int, error) { c.A = c.load(tMDE); return 8, nil }

	// LD (HL+),A / LD (HL-),A / LD A,(HL+) / LD A,(HL-)
	baseTable[0x22] = func(c *CPU) (int, error) { c.store(tMHLInc, c.A); return 8, nil }
	baseTable[0x32] = func(c *CPU) (int, error) { c.store(tMHLDec, c.A); return 8, nil }
	baseTable[0x2A] = func(c *CPU) (int, error) { c.A = c.load(tMHLInc); return 8, nil }
	baseTable[0x3A] = func(c *CPU) (int, error) { c.A = c.load(tMHLDec); return 8, nil }

	// LDH (a8),A / LDH A,(a8) / LD (C),A / LD A,(C)
	baseTable[0xE0] = func(c *CPU) (int, error) { c.store(tZeroImm8, c.A); return 12, nil }
	baseTable[0xF0] = func(c *CPU) (int, error) { c.A = c.load(tZeroImm8); return 12, nil }
	baseTable[0xE2] = func(c *CPU) (int, error) { c.store(tMC, c.A); return 8, nil }
	baseTable[0xF2] = func(c *CPU) (int, error) { c.A = c.load(tMC); return 8, nil }

	// LD (a16),A / LD A,(a16)
	baseTable[0xEA] = func(c *CPU) (int, error) { c.store(tMImm16, c.A); return 16, nil }
	baseTable[0xFA] = func(c *CPU) (int, error) { c.A = c.load(tMImm16); return 16, nil }

	// LD SP,HL
	baseTable[0xF9] = func(c *CPU) (int, error) {
		c.SP = c.getHL()
		return 8, nil
	}

	// LD HL,SP+e8
	baseTable[0xF8] = func(c *CPU) (int, error) {
		e := int8(c.fetch8())
		sp := c.SP
		result := uint16(int32(sp) + int32(e))
		h := (sp&0xF)+(uint16(byte(e))&0xF) > 0xF
		cy := (sp&0xFF)+(uint16(byte(e))&0xFF) > 0xFF
		c.setFlags(false, false, h, cy)
		c.setHL(result)
		return 12, nil
	}
}
