// Package interrupt implements the SM83 interrupt priority rules over
// the IE/IF register pair. It holds no state of its own: IE and IF are
// owned and stored by the bus (0xFFFF and 0xFF0F respectively); this
// package is the pure arbitration logic the CPU consults between
// instructions.
package interrupt

// Bit values for IE/IF, in priority order (VBlank highest).
const (
	VBlank byte = 1 << iota
	LCD
	Timer
	Serial
	Joypad
)

// Mask covers the five defined interrupt bits; bits 5-7 of IE/IF are
// unused.
const Mask = 0x1F

// Vectors holds the fixed dispatch address for each bit index, in the
// same order as the Bit constants above.
var Vectors = [5]uint16{0x0040, 0x0048, 0x0050, 0x0058, 0x0060}

// Pending returns the set of bits that are both enabled (IE) and
// requested (IF), masked to the five defined bits.
func Pending(ie, iflag byte) byte {
	return ie & iflag & Mask
}

// Highest returns the lowest-indexed (highest-priority) bit set in
// pending, and its dispatch vector. ok is false if pending is zero.
func Highest(pending byte) (bit byte, vector uint16, ok bool) {
	for i := uint(0); i < 5; i++ {
		b := byte(1) << i
		if pending&b != 0 {
			return b, Vectors[i], true
		}
	}
	return 0, 0, false
}
