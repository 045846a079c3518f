package cpu

import "github.com/sm83/gbcore/internal/interrupt"

// opFunc executes one decoded instruction (the CB prefix byte, if any,
// already consumed) and returns its documented cycle cost.
type opFunc func(c *CPU) (cycles int, err error)

// baseTable and cbTable are populated by each ops_*.go file's init,
// keeping the 256-entry dispatch flat instead of one large switch
// (grounded on user-none-go-chip-m68k's table-driven decode, adapted
// from its single-opcode-space layout to SM83's two tables).
var baseTable [256]opFunc
var cbTable [256]opFunc

func init() {
	for _, op := range reservedOpcodes {
		op := op
		baseTable[op] = func(c *CPU) (int, error) {
			return 0, &DecodeError{PC: c.PC - 1, Opcode: op}
		}
	}
}

// reservedOpcodes lists the SM83 base-table slots with no defined
// instruction.
var reservedOpcodes = []byte{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

// Step executes exactly one instruction, or one interrupt dispatch, or
// one HALT-equivalent idle cycle: apply the pending EI delay, poll
// interrupts, check HALT, then fetch/decode/execute.
func (c *CPU) Step() (cycles int, err error) {
	if c.eiDelay > 0 {
		c.eiDelay--
		if c.eiDelay == 0 {
			c.IME = true
		}
	}

	if taken, n := c.pollInterrupt(); taken {
		return n, nil
	}

	if c.halted {
		return 4, nil
	}

	if c.stopped {
		return 4, nil
	}

	opcode := c.fetch8()

	if opcode == 0xCB {
		cbOp := c.fetch8()
		h := cbTable[cbOp]
		if h == nil {
			return 0, &DecodeError{PC: c.PC - 1, Opcode: cbOp, CB: true}
		}
		return h(c)
	}

	h := baseTable[opcode]
	if h == nil {
		return 0, &DecodeError{PC: c.PC - 1, Opcode: opcode}
	}
	return h(c)
}

// pollInterrupt clears HALT regardless of IME whenever an enabled
// interrupt is pending, and if IME is also set, dispatches the
// highest-priority pending interrupt via internal/interrupt's
// arbitration rules.
func (c *CPU) pollInterrupt() (taken bool, cycles int) {
	ie := c.read8(0xFFFF)
	ifReg := c.read8(0xFF0F)
	pending := interrupt.Pending(ie, ifReg)

	if pending == 0 {
		return false, 0
	}

	if c.halted {
		c.halted = false
	}

	if !c.IME {
		return false, 0
	}

	bit, vector, ok := interrupt.Highest(pending)
	if !ok {
		return false, 0
	}

	c.IME = false
	c.write8(0xFF0F, c.read8(0xFF0F)&^bit)
	c.push16(c.PC)
	c.PC = vector
	return true, 20
}
