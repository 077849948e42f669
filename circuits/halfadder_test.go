package circuits_test

import (
	"testing"

	"github.com/jonesinator/ttlsim"
	"github.com/jonesinator/ttlsim/circuits"
)

func expectedHalfAdder(a, b ttlsim.DriveValue) (sum, carry ttlsim.LogicValue) {
	la, lb := a.Logic(), b.Logic()
	if la.Kind != ttlsim.LogicDriven || lb.Kind != ttlsim.LogicDriven {
		return ttlsim.LogicError, ttlsim.LogicError
	}
	return ttlsim.Driven(la.Value != lb.Value), ttlsim.Driven(la.Value && lb.Value)
}

func TestHalfAdder(t *testing.T) {
	halfAdder := circuits.NewHalfAdder()
	a := ttlsim.NewTestPin(ttlsim.HighImpedance)
	b := ttlsim.NewTestPin(ttlsim.HighImpedance)
	ttlsim.Connect(a.Output(), halfAdder.A())
	ttlsim.Connect(b.Output(), halfAdder.B())

	for _, va := range ttlsim.DriveValues {
		for _, vb := range ttlsim.DriveValues {
			a.SetDrive(va)
			b.SetDrive(vb)
			ttlsim.Settle(halfAdder)
			wantSum, wantCarry := expectedHalfAdder(va, vb)
			if got := halfAdder.Sum().Read(); got != wantSum {
				t.Errorf("sum(%+v, %+v) = %+v, want %+v", va, vb, got, wantSum)
			}
			if got := halfAdder.Carry().Read(); got != wantCarry {
				t.Errorf("carry(%+v, %+v) = %+v, want %+v", va, vb, got, wantCarry)
			}
		}
	}
}
