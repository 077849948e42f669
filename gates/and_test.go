package gates_test

import (
	"testing"

	"github.com/jonesinator/ttlsim"
	"github.com/jonesinator/ttlsim/gates"
)

func expectedAnd(values ...ttlsim.DriveValue) ttlsim.LogicValue {
	allTrue := true
	for _, v := range values {
		logic := v.Logic()
		if logic != ttlsim.Driven(true) && logic != ttlsim.Driven(false) {
			return ttlsim.LogicError
		}
		if logic == ttlsim.Driven(false) {
			allTrue = false
		}
	}
	return ttlsim.Driven(allTrue)
}

func TestAndGate2Input(t *testing.T) {
	andGate := gates.NewAndGate(2)
	a := ttlsim.NewTestPin(ttlsim.HighImpedance)
	b := ttlsim.NewTestPin(ttlsim.HighImpedance)
	ttlsim.Connect(a.Output(), andGate.Input()[0])
	ttlsim.Connect(b.Output(), andGate.Input()[1])

	for _, va := range ttlsim.DriveValues {
		for _, vb := range ttlsim.DriveValues {
			a.SetDrive(va)
			b.SetDrive(vb)
			ttlsim.Settle(andGate)
			got := andGate.Output().Read()
			want := expectedAnd(va, vb)
			if got != want {
				t.Errorf("AND(%+v, %+v) = %+v, want %+v", va, vb, got, want)
			}
		}
	}
}

func TestAndGate3Input(t *testing.T) {
	andGate := gates.NewAndGate(3)
	a := ttlsim.NewTestPin(ttlsim.HighImpedance)
	b := ttlsim.NewTestPin(ttlsim.HighImpedance)
	c := ttlsim.NewTestPin(ttlsim.HighImpedance)
	ttlsim.Connect(a.Output(), andGate.Input()[0])
	ttlsim.Connect(b.Output(), andGate.Input()[1])
	ttlsim.Connect(c.Output(), andGate.Input()[2])

	for _, va := range ttlsim.DriveValues {
		for _, vb := range ttlsim.DriveValues {
			for _, vc := range ttlsim.DriveValues {
				a.SetDrive(va)
				b.SetDrive(vb)
				c.SetDrive(vc)
				ttlsim.Settle(andGate)
				got := andGate.Output().Read()
				want := expectedAnd(va, vb, vc)
				if got != want {
					t.Errorf("AND(%+v, %+v, %+v) = %+v, want %+v", va, vb, vc, got, want)
				}
			}
		}
	}
}

func TestAndGatePanicsOnSingleInput(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewAndGate(1) did not panic")
		}
	}()
	gates.NewAndGate(1)
}
