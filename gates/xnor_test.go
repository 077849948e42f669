package gates_test

import (
	"testing"

	"github.com/jonesinator/ttlsim"
	"github.com/jonesinator/ttlsim/gates"
)

func expectedXnor(a, b ttlsim.DriveValue) ttlsim.LogicValue {
	return notLogic(expectedXor(a, b))
}

func TestXnorGate(t *testing.T) {
	xnorGate := gates.NewXnorGate()
	a := ttlsim.NewTestPin(ttlsim.HighImpedance)
	b := ttlsim.NewTestPin(ttlsim.HighImpedance)
	ttlsim.Connect(a.Output(), xnorGate.AInput())
	ttlsim.Connect(b.Output(), xnorGate.BInput())

	for _, va := range ttlsim.DriveValues {
		for _, vb := range ttlsim.DriveValues {
			a.SetDrive(va)
			b.SetDrive(vb)
			ttlsim.Settle(xnorGate)
			got := xnorGate.Output().Read()
			want := expectedXnor(va, vb)
			if got != want {
				t.Errorf("XNOR(%+v, %+v) = %+v, want %+v", va, vb, got, want)
			}
		}
	}
}
