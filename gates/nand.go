package gates

import "github.com/jonesinator/ttlsim"

// NandGate performs the NAND function. It is the structural dual of
// NorGate: one PMOS per input, all in parallel between Vcc and the shared
// output, and one NMOS per input, all chained in series between ground
// and the shared output. The output is pulled high if any input is low,
// and only pulled low if every input is high.
type NandGate struct {
	strongTrue, strongFalse *ttlsim.Constant
	nmos, pmos              []*ttlsim.Transistor
	input                   []*ttlsim.Pin
	output                  *ttlsim.Pin
}

// NewNandGate constructs a NAND gate with the given number of inputs,
// which must be at least 2.
func NewNandGate(numInputs int) *NandGate {
	if numInputs < 2 {
		panic("gates: NAND gate must have two or more inputs")
	}

	strongTrue := ttlsim.NewStrongConstant(true)
	strongFalse := ttlsim.NewStrongConstant(false)
	nmos := make([]*ttlsim.Transistor, numInputs)
	pmos := make([]*ttlsim.Transistor, numInputs)
	for i := range nmos {
		nmos[i] = ttlsim.NewNMOS()
		pmos[i] = ttlsim.NewPMOS()
	}
	input := make([]*ttlsim.Pin, numInputs)
	for i, p := range pmos {
		input[i] = p.Gate()
	}
	output := pmos[numInputs-1].Drain()

	// The first nmos source is connected low.
	ttlsim.Connect(strongFalse.Output(), nmos[0].Source())

	// All of the pmos sources are connected high.
	for _, p := range pmos {
		ttlsim.Connect(strongTrue.Output(), p.Source())
	}

	// The remaining nmos are chained.
	for i := 0; i < numInputs-1; i++ {
		ttlsim.Connect(nmos[i].Drain(), nmos[i+1].Source())
	}

	// All of the pmos drains are connected together.
	for i := 1; i < numInputs; i++ {
		ttlsim.Connect(pmos[i].Drain(), pmos[0].Drain())
	}

	// The pmos drains are connected to the final nmos drain.
	ttlsim.Connect(pmos[0].Drain(), nmos[numInputs-1].Drain())

	// All of the nmos and pmos gates are connected together.
	for i := range nmos {
		ttlsim.Connect(nmos[i].Gate(), pmos[i].Gate())
	}

	return &NandGate{
		strongTrue:  strongTrue,
		strongFalse: strongFalse,
		nmos:        nmos,
		pmos:        pmos,
		input:       input,
		output:      output,
	}
}

// Input returns the gate's input pins.
func (g *NandGate) Input() []*ttlsim.Pin { return g.input }

// Output returns the gate's output pin.
func (g *NandGate) Output() *ttlsim.Pin { return g.output }

// TypeName implements ttlsim.Device.
func (g *NandGate) TypeName() string { return "NandGate" }

// Pins implements ttlsim.Device.
func (g *NandGate) Pins() []ttlsim.PinField {
	return []ttlsim.PinField{
		{Name: "input", Pins: ttlsim.Many(g.input)},
		{Name: "output", Pins: ttlsim.One(g.output)},
	}
}

// Children implements ttlsim.Device.
func (g *NandGate) Children() []ttlsim.ChildField {
	nmosDevices := make([]ttlsim.Device, len(g.nmos))
	for i, n := range g.nmos {
		nmosDevices[i] = n
	}
	pmosDevices := make([]ttlsim.Device, len(g.pmos))
	for i, p := range g.pmos {
		pmosDevices[i] = p
	}
	return []ttlsim.ChildField{
		{Name: "strong_true", Children: ttlsim.One[ttlsim.Device](g.strongTrue)},
		{Name: "strong_false", Children: ttlsim.One[ttlsim.Device](g.strongFalse)},
		{Name: "nmos", Children: ttlsim.Many(nmosDevices)},
		{Name: "pmos", Children: ttlsim.Many(pmosDevices)},
	}
}
