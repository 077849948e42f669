package ttlsim

import "testing"

func TestSetDriveTwicePanics(t *testing.T) {
	p := newPin(HighImpedance)
	p.setDrive(Strong(true))
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic setting a pin's drive twice in one tick")
		}
	}()
	p.setDrive(Strong(false))
}

func TestSetInitialPinTwicePanics(t *testing.T) {
	w := newWire()
	w.setInitialPin(newPin(HighImpedance))
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic associating a second initial pin with a wire")
		}
	}()
	w.setInitialPin(newPin(HighImpedance))
}

func TestPinTickClearsPending(t *testing.T) {
	p := newPin(HighImpedance)
	p.setDrive(Strong(true))
	if !p.tick() {
		t.Fatal("tick() should report a change from HighImpedance to Strong(true)")
	}
	if p.Drive() != Strong(true) {
		t.Fatalf("Drive() = %+v, want Strong(true)", p.Drive())
	}
	if p.tick() {
		t.Fatal("tick() with no pending drive should report no change")
	}
}
