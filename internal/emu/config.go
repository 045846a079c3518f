package emu

import "github.com/sm83/gbcore/internal/cpu"

// Config contains settings that affect emulation behavior, resolving
// the Open Questions the core leaves as explicit policy rather than a
// guessed default.
type Config struct {
	// Trace prints a Gameboy-Doctor-format line for every CPU instruction.
	Trace bool
	// HaltBug is passed to cpu.Config.HaltBug (see there for what it
	// changes about HALT with IME=0 and a pending interrupt).
	HaltBug bool
	// LYOverride pins the LY register (0xFF44) to a fixed value so test
	// ROMs that spin-wait on vblank don't hang without a PPU. nil
	// disables the pin (the default).
	LYOverride *byte
	// Stop selects what the STOP instruction does.
	Stop cpu.StopMode
}
