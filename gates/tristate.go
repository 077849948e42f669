package gates

import "github.com/jonesinator/ttlsim"

// TriStateBufferGate has an active-low enable: it passes input through to
// output when enable reads false, and drives output to HighImpedance
// (disconnects it) when enable reads true.
type TriStateBufferGate struct {
	strongTrue, strongFalse    *ttlsim.Constant
	enableNotGate, inputNotGate *NotGate
	enableNmos, enablePmos     *ttlsim.Transistor
	inputNmos, inputPmos       *ttlsim.Transistor
	enable, input, output      *ttlsim.Pin
}

// NewTriStateBufferGate constructs a tri-state buffer gate.
func NewTriStateBufferGate() *TriStateBufferGate {
	strongTrue := ttlsim.NewStrongConstant(true)
	strongFalse := ttlsim.NewStrongConstant(false)
	enableNotGate := NewNotGate()
	enableNmos := ttlsim.NewNMOS()
	enablePmos := ttlsim.NewPMOS()
	inputNotGate := NewNotGate()
	inputNmos := ttlsim.NewNMOS()
	inputPmos := ttlsim.NewPMOS()
	enable := enableNotGate.Input()
	input := inputNotGate.Input()
	output := inputNmos.Drain()

	ttlsim.Connect(strongTrue.Output(), enablePmos.Source())
	ttlsim.Connect(strongFalse.Output(), enableNmos.Source())
	ttlsim.Connect(enablePmos.Drain(), inputPmos.Source())
	ttlsim.Connect(enableNmos.Drain(), inputNmos.Source())
	ttlsim.Connect(inputNmos.Drain(), inputPmos.Drain())
	ttlsim.Connect(inputNotGate.Output(), inputNmos.Gate())
	ttlsim.Connect(inputNotGate.Output(), inputPmos.Gate())
	ttlsim.Connect(enableNotGate.Input(), enablePmos.Gate())
	ttlsim.Connect(enableNotGate.Output(), enableNmos.Gate())

	return &TriStateBufferGate{
		strongTrue:    strongTrue,
		strongFalse:   strongFalse,
		enableNotGate: enableNotGate,
		enableNmos:    enableNmos,
		enablePmos:    enablePmos,
		inputNotGate:  inputNotGate,
		inputNmos:     inputNmos,
		inputPmos:     inputPmos,
		enable:        enable,
		input:         input,
		output:        output,
	}
}

// Enable returns the gate's enable pin.
func (g *TriStateBufferGate) Enable() *ttlsim.Pin { return g.enable }

// Input returns the gate's input pin.
func (g *TriStateBufferGate) Input() *ttlsim.Pin { return g.input }

// Output returns the gate's output pin.
func (g *TriStateBufferGate) Output() *ttlsim.Pin { return g.output }

// TypeName implements ttlsim.Device.
func (g *TriStateBufferGate) TypeName() string { return "TriStateBufferGate" }

// Pins implements ttlsim.Device.
func (g *TriStateBufferGate) Pins() []ttlsim.PinField {
	return []ttlsim.PinField{
		{Name: "enable", Pins: ttlsim.One(g.enable)},
		{Name: "input", Pins: ttlsim.One(g.input)},
		{Name: "output", Pins: ttlsim.One(g.output)},
	}
}

// Children implements ttlsim.Device.
func (g *TriStateBufferGate) Children() []ttlsim.ChildField {
	return []ttlsim.ChildField{
		{Name: "strong_true", Children: ttlsim.One[ttlsim.Device](g.strongTrue)},
		{Name: "strong_false", Children: ttlsim.One[ttlsim.Device](g.strongFalse)},
		{Name: "enable_not_gate", Children: ttlsim.One[ttlsim.Device](g.enableNotGate)},
		{Name: "enable_nmos", Children: ttlsim.One[ttlsim.Device](g.enableNmos)},
		{Name: "enable_pmos", Children: ttlsim.One[ttlsim.Device](g.enablePmos)},
		{Name: "input_not_gate", Children: ttlsim.One[ttlsim.Device](g.inputNotGate)},
		{Name: "input_nmos", Children: ttlsim.One[ttlsim.Device](g.inputNmos)},
		{Name: "input_pmos", Children: ttlsim.One[ttlsim.Device](g.inputPmos)},
	}
}
