package gates

import "github.com/jonesinator/ttlsim"

// OrGate performs the OR function, built from a NOR gate and a NOT gate.
type OrGate struct {
	norGate *NorGate
	notGate *NotGate
	input   []*ttlsim.Pin
	output  *ttlsim.Pin
}

// NewOrGate constructs an OR gate with the given number of inputs, which
// must be at least 2.
func NewOrGate(numInputs int) *OrGate {
	norGate := NewNorGate(numInputs)
	notGate := NewNotGate()
	ttlsim.Connect(norGate.Output(), notGate.Input())

	return &OrGate{
		norGate: norGate,
		notGate: notGate,
		input:   norGate.Input(),
		output:  notGate.Output(),
	}
}

// Input returns the gate's input pins.
func (g *OrGate) Input() []*ttlsim.Pin { return g.input }

// Output returns the gate's output pin.
func (g *OrGate) Output() *ttlsim.Pin { return g.output }

// TypeName implements ttlsim.Device.
func (g *OrGate) TypeName() string { return "OrGate" }

// Pins implements ttlsim.Device.
func (g *OrGate) Pins() []ttlsim.PinField {
	return []ttlsim.PinField{
		{Name: "input", Pins: ttlsim.Many(g.input)},
		{Name: "output", Pins: ttlsim.One(g.output)},
	}
}

// Children implements ttlsim.Device.
func (g *OrGate) Children() []ttlsim.ChildField {
	return []ttlsim.ChildField{
		{Name: "nor_gate", Children: ttlsim.One[ttlsim.Device](g.norGate)},
		{Name: "not_gate", Children: ttlsim.One[ttlsim.Device](g.notGate)},
	}
}
