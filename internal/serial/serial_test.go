package serial

import (
	"bytes"
	"testing"
)

func TestTransferCompletesImmediatelyAndForwardsByte(t *testing.T) {
	p := New()
	var buf bytes.Buffer
	p.SetWriter(&buf)

	p.WriteSB(0x41)
	raised := p.WriteSC(0x81)
	if !raised {
		t.Fatalf("writing the start pattern must report an interrupt")
	}
	if buf.String() != "A" {
		t.Fatalf("sink got %q want %q", buf.String(), "A")
	}
	if p.ReadSC()&0x80 != 0 {
		t.Fatalf("start bit should clear once the transfer completes")
	}
}

func TestWriteSCWithoutStartBitDoesNotTransfer(t *testing.T) {
	p := New()
	var buf bytes.Buffer
	p.SetWriter(&buf)
	p.WriteSB(0x58)
	if raised := p.WriteSC(0x01); raised {
		t.Fatalf("writing SC without the start bit must not raise an interrupt")
	}
	if buf.Len() != 0 {
		t.Fatalf("no transfer should have occurred, sink has %q", buf.String())
	}
}

func TestReadSCUnusedBitsReadHigh(t *testing.T) {
	p := New()
	p.WriteSC(0x00)
	if got := p.ReadSC(); got != 0x7E {
		t.Fatalf("ReadSC with sc=0 got %#02x want 0x7E", got)
	}
}
