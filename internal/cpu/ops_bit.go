package cpu

// bitTargets is the fixed CB-prefixed operand list: {B,C,D,E,H,L,(HL),A}.
var bitTargets = [8]target{tB, tC, tD, tE, tH, tL, tMHL, tA}

func rlc(v byte) (r byte, cy bool) {
	cy = v&0x80 != 0
	r = v << 1
	if cy {
		r |= 1
	}
	return
}

func rrc(v byte) (r byte, cy bool) {
	cy = v&0x01 != 0
	r = v >> 1
	if cy {
		r |= 0x80
	}
	return
}

func rl(v byte, carryIn bool) (r byte, cy bool) {
	cy = v&0x80 != 0
	r = v << 1
	if carryIn {
		r |= 1
	}
	return
}

func rr(v byte, carryIn bool) (r byte, cy bool) {
	cy = v&0x01 != 0
	r = v >> 1
	if carryIn {
		r |= 0x80
	}
	return
}

func sla(v byte) (r byte, cy bool) {
	cy = v&0x80 != 0
	r = v << 1
	return
}

func sra(v byte) (r byte, cy bool) {
	cy = v&0x01 != 0
	r = (v >> 1) | (v & 0x80)
	return
}

func srl(v byte) (r byte, cy bool) {
	cy = v&0x01 != 0
	r = v >> 1
	return
}

func swap(v byte) byte {
	return v<<4 | v>>4
}

func init() {
	// RLCA/RRCA/RLA/RRA: like their CB cousins but always clear Z.
	baseTable[0x07] = func(c *CPU) (int, error) {
		r, cy := rlc(c.A)
		c.A = r
		c.setFlags(false, false, false, cy)
		return 4, nil
	}
	baseTable[0x0F] = func(c *CPU) (int, error) {
		r, cy := rrc(c.A)
		c.A = r
		c.setFlags(false, false, false, cy)
		return 4, nil
	}
	baseTable[0x17] = func(c *CPU) (int, error) {
		r, cy := rl(c.A, c.flag(flagC))
		c.A = r
		c.setFlags(false, false, false, cy)
		return 4, nil
	}
	baseTable[0x1F] = func(c *CPU) (int, error) {
		r, cy := rr(c.A, c.flag(flagC))
		c.A = r
		c.setFlags(false, false, false, cy)
		return 4, nil
	}

	baseTable[0x2F] = func(c *CPU) (int, error) { // CPL
		c.A = ^c.A
		c.F |= flagN | flagH
		return 4, nil
	}
	baseTable[0x37] = func(c *CPU) (int, error) { // SCF
		c.F &^= flagN | flagH
		c.F |= flagC
		return 4, nil
	}
	baseTable[0x3F] = func(c *CPU) (int, error) { // CCF
		cy := !c.flag(flagC)
		c.F &^= flagN | flagH
		c.setFlags(c.flag(flagZ), false, false, cy)
		return 4, nil
	}

	type shiftOp struct {
		rowBase byte
		fn      func(c *CPU, v byte) (byte, bool)
	}
	shiftOps := []shiftOp{
		{0x00, func(c *CPU, v byte) (byte, bool) { return rlc(v) }},
		{0x08, func(c *CPU, v byte) (byte, bool) { return rrc(v) }},
		{0x10, func(c *CPU, v byte) (byte, bool) { return rl(v, c.flag(flagC)) }},
		{0x18, func(c *CPU, v byte) (byte, bool) { return rr(v, c.flag(flagC)) }},
		{0x20, func(c *CPU, v byte) (byte, bool) { return sla(v) }},
		{0x28, func(c *CPU, v byte) (byte, bool) { return sra(v) }},
		{0x30, func(c *CPU, v byte) (byte, bool) { return swap(v), false }},
		{0x38, func(c *CPU, v byte) (byte, bool) { return srl(v) }},
	}
	for _, op := range shiftOps {
		op := op
		for i, t := range bitTargets {
			i, t := i, t
			opcode := op.rowBase + byte(i)
			cbTable[opcode] = func(c *CPU) (int, error) {
				v := c.load(t)
				r, cy := op.fn(c, v)
				c.store(t, r)
				c.setFlags(r == 0, false, false, cy)
				if t == tMHL {
					return 16, nil
				}
				return 8, nil
			}
		}
	}

	for bit := 0; bit < 8; bit++ {
		bit := bit
		for i, t := range bitTargets {
			i, t := i, t
			mask := byte(1) << uint(bit)

			bitOp := byte(0x40 + bit*8 + i)
			cbTable[bitOp] = func(c *CPU) (int, error) {
				v := c.load(t)
				z := v&mask == 0
				c.setFlags(z, false, true, c.flag(flagC))
				if t == tMHL {
					return 12, nil
				}
				return 8, nil
			}

			resOp := byte(0x80 + bit*8 + i)
			cbTable[resOp] = func(c *CPU) (int, error) {
				v := c.load(t)
				c.store(t, v&^mask)
				if t == tMHL {
					return 16, nil
				}
				return 8, nil
			}

			setOp := byte(0xC0 + bit*8 + i)
			cbTable[setOp] = func(c *CPU) (int, error) {
				v := c.load(t)
				c.store(t, v|mask)
				if t == tMHL {
					return 16, nil
				}
				return 8, nil
			}
		}
	}
}
