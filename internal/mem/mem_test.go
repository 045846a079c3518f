package mem

import "testing"

type flatMem struct {
	data [0x10000]byte
}

func (m *flatMem) Read(addr uint16) byte     { return m.data[addr] }
func (m *flatMem) Write(addr uint16, v byte) { m.data[addr] = v }

func TestReadWriteWordLittleEndian(t *testing.T) {
	m := &flatMem{}
	WriteWord(m, 0xC000, 0xBEEF)
	if m.data[0xC000] != 0xEF || m.data[0xC001] != 0xBE {
		t.Fatalf("WriteWord did not store little-endian: low=%#02x high=%#02x", m.data[0xC000], m.data[0xC001])
	}
	if got := ReadWord(m, 0xC000); got != 0xBEEF {
		t.Fatalf("ReadWord got %#04x want 0xBEEF", got)
	}
}
