package gates_test

import (
	"testing"

	"github.com/jonesinator/ttlsim"
	"github.com/jonesinator/ttlsim/gates"
	"github.com/jonesinator/ttlsim/simtest"
)

// sumOfProductsXor builds XOR the textbook way, (a AND NOT b) OR (NOT a AND
// b), entirely out of gates.AndGate/gates.OrGate/gates.NotGate rather than
// gates.XorGate's dedicated 12-transistor topology. Comparing the two
// against each other is a structural cross-check independent of the
// hand-derived truth table gates.XorGate's own test already checks.
type sumOfProductsXor struct {
	notA, notB   *gates.NotGate
	andLeft      *gates.AndGate
	andRight     *gates.AndGate
	or           *gates.OrGate
	a, b, output *ttlsim.Pin
}

func newSumOfProductsXor() *sumOfProductsXor {
	notA := gates.NewNotGate()
	notB := gates.NewNotGate()
	andLeft := gates.NewAndGate(2)
	andRight := gates.NewAndGate(2)
	or := gates.NewOrGate(2)

	ttlsim.Connect(notA.Output(), andRight.Input()[0])
	ttlsim.Connect(notB.Output(), andLeft.Input()[1])
	ttlsim.Connect(notA.Input(), andLeft.Input()[0])
	ttlsim.Connect(notB.Input(), andRight.Input()[1])
	ttlsim.Connect(andLeft.Output(), or.Input()[0])
	ttlsim.Connect(andRight.Output(), or.Input()[1])

	return &sumOfProductsXor{
		notA:     notA,
		notB:     notB,
		andLeft:  andLeft,
		andRight: andRight,
		or:       or,
		a:        notA.Input(),
		b:        notB.Input(),
		output:   or.Output(),
	}
}

func (x *sumOfProductsXor) TypeName() string { return "sumOfProductsXor" }
func (x *sumOfProductsXor) Pins() []ttlsim.PinField { return nil }
func (x *sumOfProductsXor) Children() []ttlsim.ChildField {
	return []ttlsim.ChildField{
		{Name: "not_a", Children: ttlsim.One[ttlsim.Device](x.notA)},
		{Name: "not_b", Children: ttlsim.One[ttlsim.Device](x.notB)},
		{Name: "and_left", Children: ttlsim.One[ttlsim.Device](x.andLeft)},
		{Name: "and_right", Children: ttlsim.One[ttlsim.Device](x.andRight)},
		{Name: "or", Children: ttlsim.One[ttlsim.Device](x.or)},
	}
}

func TestXorGateMatchesSumOfProductsComposition(t *testing.T) {
	buildXorGate := func() simtest.Circuit {
		gate := gates.NewXorGate()
		a := ttlsim.NewTestPin(ttlsim.HighImpedance)
		b := ttlsim.NewTestPin(ttlsim.HighImpedance)
		ttlsim.Connect(a.Output(), gate.AInput())
		ttlsim.Connect(b.Output(), gate.BInput())
		return simtest.Circuit{
			Inputs:  []*ttlsim.TestPin{a, b},
			Outputs: []*ttlsim.Pin{gate.Output()},
			Root:    gate,
		}
	}

	buildSumOfProducts := func() simtest.Circuit {
		composed := newSumOfProductsXor()
		a := ttlsim.NewTestPin(ttlsim.HighImpedance)
		b := ttlsim.NewTestPin(ttlsim.HighImpedance)
		ttlsim.Connect(a.Output(), composed.a)
		ttlsim.Connect(b.Output(), composed.b)
		return simtest.Circuit{
			Inputs:  []*ttlsim.TestPin{a, b},
			Outputs: []*ttlsim.Pin{composed.output},
			Root:    composed,
		}
	}

	simtest.ComparePart(t, []string{"a", "b"}, []string{"out"}, buildXorGate, buildSumOfProducts)
}
