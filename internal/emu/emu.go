// Package emu wires a cartridge, bus, CPU, and harness into a runnable
// Machine, and resolves the configuration toggles that decide the
// behavior left open by the core.
package emu

import (
	"io"
	"os"

	"github.com/sm83/gbcore/internal/bus"
	"github.com/sm83/gbcore/internal/cart"
	"github.com/sm83/gbcore/internal/cpu"
	"github.com/sm83/gbcore/internal/harness"
)

// Machine couples a cartridge-backed Bus to a CPU and the harness that
// drives it.
type Machine struct {
	cfg Config

	Bus     *bus.Bus
	CPU     *cpu.CPU
	Harness *harness.Harness
}

// New constructs an unloaded Machine. Call LoadROM or LoadROMFromFile
// before stepping.
func New(cfg Config) *Machine {
	return &Machine{cfg: cfg}
}

// LoadROM parses rom into a Cartridge, wires a fresh Bus and CPU around
// it, optionally installs boot, and resets to a runnable state.
// Cartridge construction errors surface directly.
func (m *Machine) LoadROM(rom []byte, boot []byte) error {
	c, err := cart.New(rom)
	if err != nil {
		return err
	}

	b := bus.New(c)
	if m.cfg.LYOverride != nil {
		b.SetLYOverride(m.cfg.LYOverride)
	}

	cpuCfg := cpu.Config{HaltBug: m.cfg.HaltBug, Stop: m.cfg.Stop}
	cc := cpu.New(b, cpuCfg)

	if len(boot) >= 0x100 && b.SetBootROM(boot) {
		cc.Reset()
	} else {
		cc.ResetNoBoot()
		installPostBootIO(b)
	}

	h := harness.New(cc, b)
	h.Trace = m.cfg.Trace

	m.Bus = b
	m.CPU = cc
	m.Harness = h
	return nil
}

// LoadROMFromFile reads rom and optionally bootROM from disk and
// forwards to LoadROM.
func (m *Machine) LoadROMFromFile(romPath string, bootPath string) error {
	rom, err := os.ReadFile(romPath)
	if err != nil {
		return err
	}
	var boot []byte
	if bootPath != "" {
		boot, err = os.ReadFile(bootPath)
		if err != nil {
			return err
		}
	}
	return m.LoadROM(rom, boot)
}

// SetSerialWriter attaches a sink for bytes written through the serial
// port.
func (m *Machine) SetSerialWriter(w io.Writer) {
	m.Bus.SetSerialWriter(w)
}

// Step runs a single CPU step through the harness.
func (m *Machine) Step() (int, error) {
	return m.Harness.Step()
}

// installPostBootIO sets the documented DMG post-boot-ROM I/O register
// values for runs that skip the boot ROM image entirely.
func installPostBootIO(b *bus.Bus) {
	b.Write(0xFF05, 0x00) // TIMA
	b.Write(0xFF06, 0x00) // TMA
	b.Write(0xFF07, 0x00) // TAC
	b.Write(0xFF40, 0x91) // LCDC
	b.Write(0xFF42, 0x00) // SCY
	b.Write(0xFF43, 0x00) // SCX
	b.Write(0xFF45, 0x00) // LYC
	b.Write(0xFF47, 0xFC) // BGP
	b.Write(0xFF48, 0xFF) // OBP0
	b.Write(0xFF49, 0xFF) // OBP1
	b.Write(0xFF4A, 0x00) // WY
	b.Write(0xFF4B, 0x00) // WX
	b.Write(0xFFFF, 0x00) // IE
}
