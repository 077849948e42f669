package gates

import "github.com/jonesinator/ttlsim"

// NotGate performs the NOT function: a CMOS inverter built from one NMOS
// and one PMOS transistor sharing a gate and a drain.
type NotGate struct {
	constantTrue, constantFalse *ttlsim.Constant
	nmos, pmos                  *ttlsim.Transistor
	input, output               *ttlsim.Pin
}

// NewNotGate constructs a NOT gate.
func NewNotGate() *NotGate {
	constantTrue := ttlsim.NewStrongConstant(true)
	constantFalse := ttlsim.NewStrongConstant(false)
	nmos := ttlsim.NewNMOS()
	pmos := ttlsim.NewPMOS()

	ttlsim.Connect(nmos.Gate(), pmos.Gate())
	ttlsim.Connect(nmos.Drain(), pmos.Drain())
	ttlsim.Connect(constantFalse.Output(), nmos.Source())
	ttlsim.Connect(constantTrue.Output(), pmos.Source())

	return &NotGate{
		constantTrue:  constantTrue,
		constantFalse: constantFalse,
		nmos:          nmos,
		pmos:          pmos,
		input:         nmos.Gate(),
		output:        nmos.Drain(),
	}
}

// Input returns the gate's input pin.
func (g *NotGate) Input() *ttlsim.Pin { return g.input }

// Output returns the gate's output pin.
func (g *NotGate) Output() *ttlsim.Pin { return g.output }

// TypeName implements ttlsim.Device.
func (g *NotGate) TypeName() string { return "NotGate" }

// Pins implements ttlsim.Device.
func (g *NotGate) Pins() []ttlsim.PinField {
	return []ttlsim.PinField{
		{Name: "input", Pins: ttlsim.One(g.input)},
		{Name: "output", Pins: ttlsim.One(g.output)},
	}
}

// Children implements ttlsim.Device.
func (g *NotGate) Children() []ttlsim.ChildField {
	return []ttlsim.ChildField{
		{Name: "constant_true", Children: ttlsim.One[ttlsim.Device](g.constantTrue)},
		{Name: "constant_false", Children: ttlsim.One[ttlsim.Device](g.constantFalse)},
		{Name: "nmos", Children: ttlsim.One[ttlsim.Device](g.nmos)},
		{Name: "pmos", Children: ttlsim.One[ttlsim.Device](g.pmos)},
	}
}
