package cpu

func (c *CPU) condNZ() bool { return !c.flag(flagZ) }
func (c *CPU) condZ() bool  { return c.flag(flagZ) }
func (c *CPU) condNC() bool { return !c.flag(flagC) }
func (c *CPU) condC() bool  { return c.flag(flagC) }

func init() {
	baseTable[0xC3] = func(c *CPU) (int, error) { // JP a16
		c.PC = c.fetch16()
		return 16, nil
	}
	baseTable[0xE9] = func(c *CPU) (int, error) { // JP (HL)
		c.PC = c.getHL()
		return 4, nil
	}
	baseTable[0x18] = func(c *CPU) (int, error) { // JR e8
		e := int8(c.fetch8())
		c.PC = uint16(int32(c.PC) + int32(e))
		return 12, nil
	}
	baseTable[0xCD] = func(c *CPU) (int, error) { // CALL a16
		addr := c.fetch16()
		c.push16(c.PC)
		c.PC = addr
		return 24, nil
	}
	baseTable[0xC9] = func(c *CPU) (int, error) { // RET
		c.PC = c.pop16()
		return 16, nil
	}
	baseTable[0xD9] = func(c *CPU) (int, error) { // RETI
		c.PC = c.pop16()
		c.IME = true
		return 16, nil
	}

	jpCond := map[byte]func(*CPU) bool{0xC2: (*CPU).condNZ, 0xCA: (*CPU).condZ, 0xD2: (*CPU).condNC, 0xDA: (*CPU).condC}
	for op, cond := range jpCond {
		op, cond := op, cond
		baseTable[op] = func(c *CPU) (int, error) {
			addr := c.fetch16()
			if cond(c) {
				c.PC = addr
				return 16, nil
			}
			return 12, nil
		}
	}

	jrCond := map[byte]func(*CPU) bool{0x20: (*CPU).condNZ, 0x28: (*CPU).condZ, 0x30: (*CPU).condNC, 0x38: (*CPU).condC}
	for op, cond := range jrCond {
		op, cond := op, cond
		baseTable[op] = func(c *CPU) (int, error) {
			e := int8(c.fetch8())
			if cond(c) {
				c.PC = uint16(int32(c.PC) + int32(e))
				return 12, nil
			}
			return 8, nil
		}
	}

	callCond := map[byte]func(*CPU) bool{0xC4: (*CPU).condNZ, 0xCC: (*CPU).condZ, 0xD4: (*CPU).condNC, 0xDC: (*CPU).condC}
	for op, cond := range callCond {
		op, cond := op, cond
		baseTable[op] = func(c *CPU) (int, error) {
			addr := c.fetch16()
			if cond(c) {
				c.push16(c.PC)
				c.PC = addr
				return 24, nil
			}
			return 12, nil
		}
	}

	retCond := map[byte]func(*CPU) bool{0xC0: (*CPU).condNZ, 0xC8: (*CPU).condZ, 0xD0: (*CPU).condNC, 0xD8: (*CPU).condC}
	for op, cond := range retCond {
		op, cond := op, cond
		baseTable[op] = func(c *CPU) (int, error) {
			if cond(c) {
				c.PC = c.pop16()
				return 20, nil
			}
			return 8, nil
		}
	}

	rstVecs := map[byte]uint16{0xC7: 0x00, 0xCF: 0x08, 0xD7: 0x10, 0xDF: 0x18, 0xE7: 0x20, 0xEF: 0x28, 0xF7: 0x30, 0xFF: 0x38}
	for op, vec := range rstVecs {
		op, vec := op, vec
		baseTable[op] = func(c *CPU) (int, error) {
			c.push16(c.PC)
			c.PC = vec
			return 16, nil
		}
	}
}
