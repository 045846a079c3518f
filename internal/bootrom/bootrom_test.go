package bootrom

import "testing"

func TestLoadRejectsShortImage(t *testing.T) {
	o := New()
	if o.Load(make([]byte, 0xFF)) {
		t.Fatalf("Load should reject an image shorter than 256 bytes")
	}
	if o.Active(0x0000) {
		t.Fatalf("overlay should not be active without a loaded image")
	}
}

func TestActiveRangeAndDisable(t *testing.T) {
	o := New()
	img := make([]byte, 0x100)
	img[0x00] = 0xAA
	img[0xFF] = 0xBB
	if !o.Load(img) {
		t.Fatalf("Load should accept a 256-byte image")
	}
	if !o.Active(0x0000) || !o.Active(0x00FF) {
		t.Fatalf("overlay should cover 0x0000-0x00FF")
	}
	if o.Active(0x0100) {
		t.Fatalf("overlay must not cover 0x0100")
	}
	if o.Read(0x0000) != 0xAA || o.Read(0x00FF) != 0xBB {
		t.Fatalf("overlay read did not return loaded bytes")
	}
	o.Disable()
	if o.Active(0x0000) {
		t.Fatalf("overlay must stop covering the low page once disabled")
	}
}
