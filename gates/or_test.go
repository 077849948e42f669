package gates_test

import (
	"testing"

	"github.com/jonesinator/ttlsim"
	"github.com/jonesinator/ttlsim/gates"
)

func TestOrGate2Input(t *testing.T) {
	orGate := gates.NewOrGate(2)
	a := ttlsim.NewTestPin(ttlsim.HighImpedance)
	b := ttlsim.NewTestPin(ttlsim.HighImpedance)
	ttlsim.Connect(a.Output(), orGate.Input()[0])
	ttlsim.Connect(b.Output(), orGate.Input()[1])

	for _, va := range ttlsim.DriveValues {
		for _, vb := range ttlsim.DriveValues {
			a.SetDrive(va)
			b.SetDrive(vb)
			ttlsim.Settle(orGate)
			got := orGate.Output().Read()
			want := notLogic(expectedNor(va, vb))
			if got != want {
				t.Errorf("OR(%+v, %+v) = %+v, want %+v", va, vb, got, want)
			}
		}
	}
}

func TestOrGate3Input(t *testing.T) {
	orGate := gates.NewOrGate(3)
	a := ttlsim.NewTestPin(ttlsim.HighImpedance)
	b := ttlsim.NewTestPin(ttlsim.HighImpedance)
	c := ttlsim.NewTestPin(ttlsim.HighImpedance)
	ttlsim.Connect(a.Output(), orGate.Input()[0])
	ttlsim.Connect(b.Output(), orGate.Input()[1])
	ttlsim.Connect(c.Output(), orGate.Input()[2])

	for _, va := range ttlsim.DriveValues {
		for _, vb := range ttlsim.DriveValues {
			for _, vc := range ttlsim.DriveValues {
				a.SetDrive(va)
				b.SetDrive(vb)
				c.SetDrive(vc)
				ttlsim.Settle(orGate)
				got := orGate.Output().Read()
				want := notLogic(expectedNor(va, vb, vc))
				if got != want {
					t.Errorf("OR(%+v, %+v, %+v) = %+v, want %+v", va, vb, vc, got, want)
				}
			}
		}
	}
}

func TestOrGatePanicsOnSingleInput(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewOrGate(1) did not panic")
		}
	}()
	gates.NewOrGate(1)
}

func notLogic(l ttlsim.LogicValue) ttlsim.LogicValue {
	if l == ttlsim.LogicError {
		return ttlsim.LogicError
	}
	return ttlsim.Driven(!l.Value)
}
