// Package harness drives a CPU/Bus pair for differential testing: it
// steps the CPU, formats Gameboy-Doctor-compatible trace lines, and
// watches a serial sink for a test ROM's pass/fail marker.
package harness

import (
	"context"
	"fmt"

	"github.com/sm83/gbcore/internal/cpu"
)

// Memory is the subset of bus.Bus the harness needs to read ahead of
// PC for trace formatting, kept narrow so tests can supply a double.
type Memory interface {
	Read(addr uint16) byte
}

// Harness couples a CPU to its memory for stepping and tracing.
type Harness struct {
	CPU *cpu.CPU
	Mem Memory

	Trace   bool
	onTrace func(line string)

	Steps  int64
	Cycles int64
}

// New constructs a Harness around an already-wired CPU/Bus pair.
func New(c *cpu.CPU, m Memory) *Harness {
	return &Harness{CPU: c, Mem: m}
}

// SetTraceFunc installs a sink for each formatted trace line, used in
// place of logging to stdout when a caller wants to capture lines
// (e.g. for a trace-on-fail window).
func (h *Harness) SetTraceFunc(f func(line string)) {
	h.onTrace = f
}

// Step executes exactly one CPU step, optionally emitting a trace
// line for the instruction about to run, and returns its cycle cost.
func (h *Harness) Step() (int, error) {
	var line string
	if h.Trace || h.onTrace != nil {
		line = h.TraceLine()
	}
	cycles, err := h.CPU.Step()
	h.Steps++
	h.Cycles += int64(cycles)
	if h.Trace {
		fmt.Println(line)
	}
	if h.onTrace != nil {
		h.onTrace(line)
	}
	return cycles, err
}

// Run steps until ctx is canceled, maxSteps is reached (0 = unbounded),
// or Step returns an error.
func (h *Harness) Run(ctx context.Context, maxSteps int64) error {
	for maxSteps == 0 || h.Steps < maxSteps {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if _, err := h.Step(); err != nil {
			return err
		}
	}
	return nil
}

// TraceLine formats the Gameboy-Doctor-compatible trace line for the
// instruction about to execute at the current PC:
// "A:XX F:XX B:XX C:XX D:XX E:XX H:XX L:XX SP:XXXX PC:XXXX PCMEM:XX,XX,XX,XX"
func (h *Harness) TraceLine() string {
	pc := h.CPU.PCValue()
	mem := [4]byte{
		h.Mem.Read(pc),
		h.Mem.Read(pc + 1),
		h.Mem.Read(pc + 2),
		h.Mem.Read(pc + 3),
	}
	return fmt.Sprintf(
		"A:%02X F:%02X B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X PC:%04X PCMEM:%02X,%02X,%02X,%02X",
		h.CPU.A, h.CPU.F, h.CPU.B, h.CPU.C, h.CPU.D, h.CPU.E, h.CPU.H, h.CPU.L,
		h.CPU.SP, pc, mem[0], mem[1], mem[2], mem[3],
	)
}
