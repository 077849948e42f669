package gates

import "github.com/jonesinator/ttlsim"

// AndGate performs the AND function, built from a NAND gate and a NOT
// gate.
type AndGate struct {
	nandGate *NandGate
	notGate  *NotGate
	input    []*ttlsim.Pin
	output   *ttlsim.Pin
}

// NewAndGate constructs an AND gate with the given number of inputs,
// which must be at least 2.
func NewAndGate(numInputs int) *AndGate {
	nandGate := NewNandGate(numInputs)
	notGate := NewNotGate()
	ttlsim.Connect(nandGate.Output(), notGate.Input())

	return &AndGate{
		nandGate: nandGate,
		notGate:  notGate,
		input:    nandGate.Input(),
		output:   notGate.Output(),
	}
}

// Input returns the gate's input pins.
func (g *AndGate) Input() []*ttlsim.Pin { return g.input }

// Output returns the gate's output pin.
func (g *AndGate) Output() *ttlsim.Pin { return g.output }

// TypeName implements ttlsim.Device.
func (g *AndGate) TypeName() string { return "AndGate" }

// Pins implements ttlsim.Device.
func (g *AndGate) Pins() []ttlsim.PinField {
	return []ttlsim.PinField{
		{Name: "input", Pins: ttlsim.Many(g.input)},
		{Name: "output", Pins: ttlsim.One(g.output)},
	}
}

// Children implements ttlsim.Device.
func (g *AndGate) Children() []ttlsim.ChildField {
	return []ttlsim.ChildField{
		{Name: "nand_gate", Children: ttlsim.One[ttlsim.Device](g.nandGate)},
		{Name: "not_gate", Children: ttlsim.One[ttlsim.Device](g.notGate)},
	}
}
