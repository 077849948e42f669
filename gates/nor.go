package gates

import "github.com/jonesinator/ttlsim"

// NorGate performs the NOR function: one NMOS per input, all in parallel
// between ground and the shared output, and one PMOS per input, all
// chained in series between Vcc and the shared output. The output is
// pulled low if any input is high, and only pulled high if every input is
// low.
type NorGate struct {
	strongTrue, strongFalse *ttlsim.Constant
	nmos, pmos              []*ttlsim.Transistor
	input                   []*ttlsim.Pin
	output                  *ttlsim.Pin
}

// NewNorGate constructs a NOR gate with the given number of inputs, which
// must be at least 2.
func NewNorGate(numInputs int) *NorGate {
	if numInputs < 2 {
		panic("gates: NOR gate must have two or more inputs")
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
	for i, n := range nmos {
		input[i] = n.Gate()
	}
	output := nmos[numInputs-1].Drain()

	// The first pmos source is connected high.
	ttlsim.Connect(strongTrue.Output(), pmos[0].Source())

	// All of the nmos sources are connected low.
	for _, n := range nmos {
		ttlsim.Connect(strongFalse.Output(), n.Source())
	}

	// The remaining pmos are chained.
	for i := 0; i < numInputs-1; i++ {
		ttlsim.Connect(pmos[i].Drain(), pmos[i+1].Source())
	}

	// All of the nmos drains are connected together.
	for i := 1; i < numInputs; i++ {
		ttlsim.Connect(nmos[i].Drain(), nmos[0].Drain())
	}

	// The nmos drains are connected to the final pmos drain.
	ttlsim.Connect(nmos[0].Drain(), pmos[numInputs-1].Drain())

	// All of the nmos and pmos gates are connected together.
	for i := range nmos {
		ttlsim.Connect(nmos[i].Gate(), pmos[i].Gate())
	}

	return &NorGate{
		strongTrue:  strongTrue,
		strongFalse: strongFalse,
		nmos:        nmos,
		pmos:        pmos,
		input:       input,
		output:      output,
	}
}

// Input returns the gate's input pins.
func (g *NorGate) Input() []*ttlsim.Pin { return g.input }

// Output returns the gate's output pin.
func (g *NorGate) Output() *ttlsim.Pin { return g.output }

// TypeName implements ttlsim.Device.
func (g *NorGate) TypeName() string { return "NorGate" }

// Pins implements ttlsim.Device.
func (g *NorGate) Pins() []ttlsim.PinField {
	return []ttlsim.PinField{
		{Name: "input", Pins: ttlsim.Many(g.input)},
		{Name: "output", Pins: ttlsim.One(g.output)},
	}
}

// Children implements ttlsim.Device.
func (g *NorGate) Children() []ttlsim.ChildField {
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
