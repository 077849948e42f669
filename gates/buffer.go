package gates

import "github.com/jonesinator/ttlsim"

// BufferGate performs the identity function, built from two NOT gates in
// series so the output carries the input's full Strong drive rather than
// being a pass-through wire.
type BufferGate struct {
	notGates     [2]*NotGate
	input, output *ttlsim.Pin
}

// NewBufferGate constructs a buffer gate.
func NewBufferGate() *BufferGate {
	notGates := [2]*NotGate{NewNotGate(), NewNotGate()}
	ttlsim.Connect(notGates[0].Output(), notGates[1].Input())

	return &BufferGate{
		notGates: notGates,
		input:    notGates[0].Input(),
		output:   notGates[1].Output(),
	}
}

// Input returns the gate's input pin.
func (g *BufferGate) Input() *ttlsim.Pin { return g.input }

// Output returns the gate's output pin.
func (g *BufferGate) Output() *ttlsim.Pin { return g.output }

// TypeName implements ttlsim.Device.
func (g *BufferGate) TypeName() string { return "BufferGate" }

// Pins implements ttlsim.Device.
func (g *BufferGate) Pins() []ttlsim.PinField {
	return []ttlsim.PinField{
		{Name: "input", Pins: ttlsim.One(g.input)},
		{Name: "output", Pins: ttlsim.One(g.output)},
	}
}

// Children implements ttlsim.Device.
func (g *BufferGate) Children() []ttlsim.ChildField {
	devices := make([]ttlsim.Device, len(g.notGates))
	for i, n := range g.notGates {
		devices[i] = n
	}
	return []ttlsim.ChildField{
		{Name: "not_gate", Children: ttlsim.Many(devices)},
	}
}
