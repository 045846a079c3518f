package cpu

func init() {
	pushOps := map[byte]target16{0xC5: t16BC, 0xD5: t16DE, 0xE5: t16HL, 0xF5: t16AF}
	for op, t := range pushOps {
		op, t := op, t
		baseTable[op] = func(c *CPU) (int, error) {
			c.push16(c.load16(t))
			return 16, nil
		}
	}

	popOps := map[byte]target16{0xC1: t16BC, 0xD1: t16DE, 0xE1: t16HL, 0xF1: t16AF}
	for op, t := range popOps {
		op, t := op, t
		baseTable[op] = func(c *CPU) (int, error) {
			v := c.pop16()
			if t == t16AF {
				v &^= 0x000F // POP AF masks the low nibble of F to zero
			}
			c.store16(t, v)
			return 12, nil
		}
	}
}
