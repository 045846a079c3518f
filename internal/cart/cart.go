// Package cart implements cartridge loading: header parsing and the
// ROM/RAM bank-switching state machines (ROM-only and MBC1) a bus reads
// and writes through the Cartridge interface.
package cart

// Cartridge is the minimal interface the bus needs for ROM/RAM banking.
// Addresses are CPU addresses (0x0000-0x7FFF for ROM/control,
// 0xA000-0xBFFF for external RAM).
type Cartridge interface {
	Read(addr uint16) byte
	Write(addr uint16, value byte)
}

// New picks a Cartridge implementation based on the ROM header. It
// fails closed: an unrecognized cartridge-type byte, or a ROM/RAM size
// code this core does not decode, is an error rather than a silent
// fallback to ROM-only.
func New(rom []byte) (Cartridge, error) {
	h, err := ParseHeader(rom)
	if err != nil {
		return nil, err
	}
	if !h.ROMSizeOK {
		return nil, &UnsupportedCartridgeError{CartType: h.CartType, ROMSizeCode: h.ROMSizeCode, RAMSizeCode: h.RAMSizeCode, Reason: "ROM size code"}
	}
	if !h.RAMSizeOK {
		return nil, &UnsupportedCartridgeError{CartType: h.CartType, ROMSizeCode: h.ROMSizeCode, RAMSizeCode: h.RAMSizeCode, Reason: "RAM size code"}
	}
	switch h.CartType {
	case 0x00:
		return NewROMOnly(rom), nil
	case 0x01, 0x02, 0x03: // MBC1, MBC1+RAM, MBC1+RAM+BATTERY
		return NewMBC1(rom, h.RAMSizeBytes), nil
	default:
		return nil, &UnsupportedCartridgeError{CartType: h.CartType, ROMSizeCode: h.ROMSizeCode, RAMSizeCode: h.RAMSizeCode, Reason: "cartridge type"}
	}
}
