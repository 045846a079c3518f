// Package bus implements the SM83 address decoder: it multiplexes
// cartridge ROM/RAM, work RAM, high RAM, the boot ROM overlay, the
// interrupt registers, the serial port, and stub register ranges for
// the PPU/APU/timer/joypad devices this core does not simulate.
package bus

import (
	"github.com/sm83/gbcore/internal/bootrom"
	"github.com/sm83/gbcore/internal/cart"
	"github.com/sm83/gbcore/internal/interrupt"
	"github.com/sm83/gbcore/internal/serial"
)

// Bus wires the CPU-visible 16-bit address space to its subordinates.
type Bus struct {
	cart cart.Cartridge

	wram [0x2000]byte // 0xC000-0xDFFF, echoed at 0xE000-0xFDFF
	hram [0x7F]byte   // 0xFF80-0xFFFE

	vram [0x2000]byte // 0x8000-0x9FFF, stub (no PPU)
	oam  [0xA0]byte   // 0xFE00-0xFE9F, stub

	ppuRegs [0x0C]byte // 0xFF40-0xFF4B, stub
	apuRegs [0x30]byte // 0xFF10-0xFF3F, stub
	timer   [4]byte    // DIV,TIMA,TMA,TAC at 0xFF04-0xFF07, stub (no ticking)

	lyOverride *byte // optional fixed value for 0xFF44 (see SetLYOverride)

	ie    byte // 0xFFFF
	ifReg byte // 0xFF0F, lower 5 bits meaningful

	serial *serial.Port
	boot   *bootrom.Overlay
}

// New constructs a Bus from an already-loaded Cartridge.
func New(c cart.Cartridge) *Bus {
	return &Bus{
		cart:   c,
		serial: serial.New(),
		boot:   bootrom.New(),
	}
}

// Cart returns the underlying cartridge.
func (b *Bus) Cart() cart.Cartridge { return b.cart }

// SetBootROM installs a boot ROM image to overlay 0x0000-0x00FF until a
// write to 0xFF50 disables it. A short image is rejected and leaves any
// previously loaded overlay untouched.
func (b *Bus) SetBootROM(data []byte) bool {
	return b.boot.Load(data)
}

// SetSerialWriter attaches a sink that receives bytes written via the
// serial port.
func (b *Bus) SetSerialWriter(w interface{ Write([]byte) (int, error) }) {
	b.serial.SetWriter(w)
}

// RequestInterrupt sets the given bit (interrupt.VBlank, .LCD, .Timer,
// .Serial, or .Joypad) in IF.
func (b *Bus) RequestInterrupt(bit byte) {
	b.ifReg |= bit
}

// PendingInterrupt returns the set of currently pending, enabled
// interrupts (IE & IF, masked to the 5 defined bits).
func (b *Bus) PendingInterrupt() byte {
	return interrupt.Pending(b.ie, b.ifReg)
}

// ClearInterrupt clears the given bit in IF, as the CPU does once it
// begins dispatching that interrupt's handler.
func (b *Bus) ClearInterrupt(bit byte) {
	b.ifReg &^= bit
}

// SetLYOverride pins 0xFF44 (LY) to a fixed value, or clears the pin
// when v is nil, for unblocking test ROMs that spin-wait on vblank
// without a PPU. Never enabled implicitly.
func (b *Bus) SetLYOverride(v *byte) {
	b.lyOverride = v
}

// Read dispatches a CPU-visible read to the appropriate subordinate.
func (b *Bus) Read(addr uint16) byte {
	switch {
	case addr < 0x8000:
		if b.boot.Active(addr) {
			return b.boot.Read(addr)
		}
		return b.cart.Read(addr)
	case addr >= 0x8000 && addr <= 0x9FFF:
		return b.vram[addr-0x8000]
	case addr >= 0xA000 && addr <= 0xBFFF:
		return b.cart.Read(addr)
	case addr >= 0xC000 && addr <= 0xDFFF:
		return b.wram[addr-0xC000]
	case addr >= 0xE000 && addr <= 0xFDFF:
		return b.wram[addr-0x2000-0xC000]
	case addr >= 0xFE00 && addr <= 0xFE9F:
		return b.oam[addr-0xFE00]
	case addr >= 0xFEA0 && addr <= 0xFEFF:
		return 0xFF
	case addr == 0xFF00:
		return 0xCF // JOYP stub: bits 7-6 high, both select lines (5-4) low, no buttons pressed
	case addr >= 0xFF04 && addr <= 0xFF07:
		return b.timer[addr-0xFF04]
	case addr == 0xFF01:
		return b.serial.ReadSB()
	case addr == 0xFF02:
		return b.serial.ReadSC()
	case addr == 0xFF0F:
		return 0xE0 | (b.ifReg & 0x1F)
	case addr >= 0xFF10 && addr <= 0xFF3F:
		return b.apuRegs[addr-0xFF10]
	case addr == 0xFF44 && b.lyOverride != nil:
		return *b.lyOverride
	case addr >= 0xFF40 && addr <= 0xFF4B:
		return b.ppuRegs[addr-0xFF40]
	case addr == 0xFF50:
		return 0xFF
	case addr >= 0xFF80 && addr <= 0xFFFE:
		return b.hram[addr-0xFF80]
	case addr == 0xFFFF:
		return b.ie
	default:
		return 0xFF
	}
}

// Write dispatches a CPU-visible write to the appropriate subordinate.
func (b *Bus) Write(addr uint16, value byte) {
	switch {
	case addr < 0x8000:
		b.cart.Write(addr, value)
	case addr >= 0x8000 && addr <= 0x9FFF:
		b.vram[addr-0x8000] = value
	case addr >= 0xA000 && addr <= 0xBFFF:
		b.cart.Write(addr, value)
	case addr >= 0xC000 && addr <= 0xDFFF:
		b.wram[addr-0xC000] = value
	case addr >= 0xE000 && addr <= 0xFDFF:
		b.wram[addr-0x2000-0xC000] = value
	case addr >= 0xFE00 && addr <= 0xFE9F:
		b.oam[addr-0xFE00] = value
	case 0xFEA0 <= addr && addr <= 0xFEFF:
		// prohibited region: writes ignored
	case addr == 0xFF00:
		// JOYP stub: writes have no effect, matching the fixed 0xCF read.
	case addr >= 0xFF04 && addr <= 0xFF07:
		b.timer[addr-0xFF04] = value
	case addr == 0xFF01:
		b.serial.WriteSB(value)
	case addr == 0xFF02:
		if b.serial.WriteSC(value) {
			b.RequestInterrupt(interrupt.Serial)
		}
	case addr == 0xFF0F:
		b.ifReg = value & 0x1F
	case addr >= 0xFF10 && addr <= 0xFF3F:
		b.apuRegs[addr-0xFF10] = value
	case addr >= 0xFF40 && addr <= 0xFF4B:
		b.ppuRegs[addr-0xFF40] = value
	case addr == 0xFF50:
		b.boot.Disable()
	case addr >= 0xFF80 && addr <= 0xFFFE:
		b.hram[addr-0xFF80] = value
	case addr == 0xFFFF:
		b.ie = value
	}
}
