package cpu

import "testing"

// flatMem is a bare 64 KiB address space implementing mem.Interface,
// standing in for a bus in unit tests.
type flatMem struct {
	data [0x10000]byte
}

func (m *flatMem) Read(addr uint16) byte     { return m.data[addr] }
func (m *flatMem) Write(addr uint16, v byte) { m.data[addr] = v }

func newCPU(code ...byte) (*CPU, *flatMem) {
	m := &flatMem{}
	copy(m.data[:], code)
	return New(m, Config{}), m
}

func TestNopAndPC(t *testing.T) {
	c, _ := newCPU(0x00)
	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cycles != 4 {
		t.Fatalf("NOP cycles got %d want 4", cycles)
	}
	if c.PC != 1 {
		t.Fatalf("PC after NOP got %#04x want 0x0001", c.PC)
	}
}

func TestLoadImmediateAndXOR(t *testing.T) {
	c, _ := newCPU(0x3E, 0x12, 0xAF) // LD A,0x12; XOR A
	c.Step()
	if c.A != 0x12 {
		t.Fatalf("A after LD got %#02x want 0x12", c.A)
	}
	c.Step()
	if c.A != 0x00 {
		t.Fatalf("A after XOR got %#02x want 0x00", c.A)
	}
	if c.F&flagZ == 0 {
		t.Fatalf("Z flag not set after XOR A")
	}
	if c.F&0x0F != 0 {
		t.Fatalf("F low nibble must always be zero, got %#02x", c.F)
	}
}

func TestStoreAndLoadAbsolute(t *testing.T) {
	prog := []byte{0x3E, 0x77, 0xEA, 0x00, 0xC0, 0x3E, 0x00, 0xFA, 0x00, 0xC0}
	c, m := newCPU(prog...)
	c.Step() // LD A,0x77
	c.Step() // LD (0xC000),A
	if v := m.Read(0xC000); v != 0x77 {
		t.Fatalf("WRAM at C000 got %#02x want 0x77", v)
	}
	c.Step() // LD A,0x00
	c.Step() // LD A,(0xC000)
	if c.A != 0x77 {
		t.Fatalf("A after LD A,(a16) got %#02x want 0x77", c.A)
	}
}

func TestJPAndJR(t *testing.T) {
	m := &flatMem{}
	m.data[0x0000] = 0xC3
	m.data[0x0001] = 0x10
	m.data[0x0002] = 0x00
	m.data[0x0010] = 0x18
	m.data[0x0011] = 0xFE // JR -2
	c := New(m, Config{})

	cycles, _ := c.Step()
	if cycles != 16 || c.PC != 0x0010 {
		t.Fatalf("JP cycles=%d PC=%#04x want cycles=16 PC=0x0010", cycles, c.PC)
	}
	before := c.PC
	c.Step()
	if c.PC != before {
		t.Fatalf("JR -2 PC got %#04x want %#04x (loop in place)", c.PC, before)
	}
}

func TestIncFlags(t *testing.T) {
	c, _ := newCPU(0x04, 0x04) // INC B, INC B
	c.B = 0x0F
	c.F = flagC
	c.Step()
	if c.B != 0x10 {
		t.Fatalf("INC B result got %#02x want 0x10", c.B)
	}
	if c.F&flagH == 0 {
		t.Fatalf("INC B crossing nibble boundary should set H")
	}
	if c.F&flagC == 0 {
		t.Fatalf("INC must not touch C")
	}
	c.B = 0xFF
	c.Step()
	if c.B != 0x00 || c.F&flagZ == 0 {
		t.Fatalf("INC B to 0 should set Z; B=%#02x F=%#02x", c.B, c.F)
	}
}

func TestCallAndRet(t *testing.T) {
	m := &flatMem{}
	m.data[0x0000] = 0xCD
	m.data[0x0001] = 0x05
	m.data[0x0002] = 0x00
	m.data[0x0005] = 0xC9 // RET
	c := New(m, Config{})

	c.Step() // CALL 0x0005
	if c.PC != 0x0005 {
		t.Fatalf("PC after CALL got %#04x want 0x0005", c.PC)
	}
	cycles, _ := c.Step() // RET
	if c.PC != 0x0003 || cycles != 16 {
		t.Fatalf("RET did not return to 0x0003: PC=%#04x cyc=%d", c.PC, cycles)
	}
}

func TestRegisterPairRoundTrip(t *testing.T) {
	c, _ := newCPU()
	for _, v := range []uint16{0x0000, 0x1234, 0xFFFF, 0xABCD} {
		c.setBC(v)
		if got := c.getBC(); got != v {
			t.Fatalf("BC round trip: set %#04x got %#04x", v, got)
		}
		c.setDE(v)
		if got := c.getDE(); got != v {
			t.Fatalf("DE round trip: set %#04x got %#04x", v, got)
		}
		c.setHL(v)
		if got := c.getHL(); got != v {
			t.Fatalf("HL round trip: set %#04x got %#04x", v, got)
		}
	}
}

func TestAFLowNibbleAlwaysZero(t *testing.T) {
	c, _ := newCPU()
	for v := 0; v <= 0xFFFF; v += 0x1111 {
		c.setAF(uint16(v))
		if c.F&0x0F != 0 {
			t.Fatalf("setAF(%#04x) left low nibble of F set: F=%#02x", v, c.F)
		}
	}
}

func TestPushPopRoundTrip(t *testing.T) {
	c, _ := newCPU()
	c.SP = 0xFFFE
	c.push16(0xBEEF)
	if got := c.pop16(); got != 0xBEEF {
		t.Fatalf("push/pop round trip got %#04x want 0xBEEF", got)
	}
	if c.SP != 0xFFFE {
		t.Fatalf("SP not restored after matching push/pop: got %#04x", c.SP)
	}
}

func TestPopAFMasksLowNibble(t *testing.T) {
	c, m := newCPU(0xF1) // POP AF
	c.SP = 0xC000
	m.Write(0xC000, 0xFF) // low byte -> F
	m.Write(0xC001, 0x42) // high byte -> A
	c.Step()
	if c.A != 0x42 {
		t.Fatalf("A after POP AF got %#02x want 0x42", c.A)
	}
	if c.F != 0xF0 {
		t.Fatalf("POP AF must mask F's low nibble to zero, got %#02x", c.F)
	}
}

func TestAddSubRoundTrip(t *testing.T) {
	c, _ := newCPU()
	for a := 0; a < 256; a += 17 {
		for v := 0; v < 256; v += 23 {
			c.A = byte(a)
			c.add8(byte(v))
			c.sub8(byte(v))
			if c.A != byte(a) {
				t.Fatalf("ADD then SUB did not round trip: a=%#02x v=%#02x got %#02x", a, v, c.A)
			}
		}
	}
}

func TestRotateEquivalence(t *testing.T) {
	c1, _ := newCPU(0x07) // RLCA
	c1.A = 0x85
	c1.Step()

	c2, _ := newCPU(0xCB, 0x07) // RLC A
	c2.A = 0x85
	c2.Step()

	if c1.A != c2.A {
		t.Fatalf("RLCA and RLC A disagree: %#02x vs %#02x", c1.A, c2.A)
	}
	if c1.F&flagC != c2.F&flagC {
		t.Fatalf("RLCA and RLC A disagree on carry out")
	}
	if c1.F&(flagZ|flagN|flagH) != 0 {
		t.Fatalf("RLCA must clear Z/N/H unconditionally, got F=%#02x", c1.F)
	}
}

func TestDAAAfterBCDAddition(t *testing.T) {
	c, _ := newCPU(0x80, 0x27) // ADD A,B; DAA
	c.A = 0x09
	c.B = 0x08 // decimal 9 + 8 = 17, BCD result 0x17
	c.Step()   // ADD
	c.Step()   // DAA
	if c.A != 0x17 {
		t.Fatalf("DAA(9+8) got %#02x want 0x17", c.A)
	}
}

func TestEIDelayTakesOneInstruction(t *testing.T) {
	// EI; NOP; NOP — IME must still be false immediately after EI and
	// after the instruction following it, only becoming true before the
	// instruction after that.
	c, m := newCPU(0xFB, 0x00, 0x00)
	m.Write(0xFFFF, 0x00)
	m.Write(0xFF0F, 0x00)

	c.Step() // EI
	if c.IME {
		t.Fatalf("IME must not be set immediately after EI")
	}
	c.Step() // NOP (the instruction following EI)
	if c.IME {
		t.Fatalf("IME must not be set until after the instruction following EI")
	}
	c.Step() // NOP (this step observes IME=true at entry)
	if !c.IME {
		t.Fatalf("IME must be set by the second step after EI")
	}
}

func TestInterruptDispatchPriorityAndVector(t *testing.T) {
	m := &flatMem{}
	c := New(m, Config{})
	c.SP = 0xFFFE
	c.PC = 0x0200
	c.IME = true
	m.Write(0xFFFF, 0x1F) // all enabled
	m.Write(0xFF0F, 0x06) // LCD (bit1) and Timer (bit2) both pending

	cycles, err := c.Step()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cycles != 20 {
		t.Fatalf("interrupt dispatch cycles got %d want 20", cycles)
	}
	if c.PC != 0x0048 { // LCD (bit 1) has priority over Timer (bit 2)
		t.Fatalf("dispatch PC got %#04x want 0x0048 (LCD vector)", c.PC)
	}
	if c.IME {
		t.Fatalf("IME must be cleared on dispatch")
	}
	if m.Read(0xFF0F)&0x02 != 0 {
		t.Fatalf("dispatched interrupt bit must be cleared in IF")
	}
	if m.Read(0xFF0F)&0x04 == 0 {
		t.Fatalf("lower-priority pending bit must remain set in IF")
	}
	if got := c.pop16(); got != 0x0200 {
		t.Fatalf("pushed return address got %#04x want 0x0200", got)
	}
}

func TestHaltClearsOnPendingEvenWithoutIME(t *testing.T) {
	m := &flatMem{}
	c := New(m, Config{})
	m.data[0x0000] = 0x76 // HALT
	c.IME = false

	c.Step() // HALT
	if !c.halted {
		t.Fatalf("CPU should be halted after HALT")
	}
	m.Write(0xFFFF, 0x01)
	m.Write(0xFF0F, 0x01)
	c.Step() // pending interrupt should clear HALT even though IME=false
	if c.halted {
		t.Fatalf("pending interrupt must clear HALT regardless of IME")
	}
}

func TestStopFatalByDefault(t *testing.T) {
	c, _ := newCPU(0x10, 0x00) // STOP
	_, err := c.Step()
	if err == nil {
		t.Fatalf("expected STOP to be a decode error under StopFatal")
	}
}

func TestStopNOPMode(t *testing.T) {
	m := &flatMem{}
	m.data[0x0000] = 0x10
	m.data[0x0001] = 0x00
	m.data[0x0002] = 0x00
	c := New(m, Config{Stop: StopNOP})
	_, err := c.Step()
	if err != nil {
		t.Fatalf("unexpected error under StopNOP: %v", err)
	}
	if c.PC != 2 {
		t.Fatalf("PC after STOP (2 bytes) got %#04x want 0x0002", c.PC)
	}
}
