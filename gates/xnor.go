package gates

import "github.com/jonesinator/ttlsim"

// XnorGate performs the XNOR function, structured like XorGate but with
// the b-side transistors gated directly rather than through an inverted
// leg, so the two pull networks agree exactly when a and b agree.
type XnorGate struct {
	strongTrue, strongFalse *ttlsim.Constant
	aNotGate, bNotGate      *NotGate
	aNmos, aInvertedNmos    *ttlsim.Transistor
	aPmos, aInvertedPmos    *ttlsim.Transistor
	bNmos, bInvertedNmos    *ttlsim.Transistor
	bPmos, bInvertedPmos    *ttlsim.Transistor
	aInput, bInput, output  *ttlsim.Pin
}

// NewXnorGate constructs a 2-input XNOR gate.
func NewXnorGate() *XnorGate {
	strongTrue := ttlsim.NewStrongConstant(true)
	strongFalse := ttlsim.NewStrongConstant(false)
	aNotGate := NewNotGate()
	aNmos := ttlsim.NewNMOS()
	aInvertedNmos := ttlsim.NewNMOS()
	aPmos := ttlsim.NewPMOS()
	aInvertedPmos := ttlsim.NewPMOS()
	aInput := aNotGate.Input()
	bNotGate := NewNotGate()
	bNmos := ttlsim.NewNMOS()
	bInvertedNmos := ttlsim.NewNMOS()
	bPmos := ttlsim.NewPMOS()
	bInvertedPmos := ttlsim.NewPMOS()
	bInput := bNotGate.Input()
	output := aNmos.Drain()

	ttlsim.Connect(strongTrue.Output(), aPmos.Source())
	ttlsim.Connect(aPmos.Drain(), bPmos.Source())
	ttlsim.Connect(bPmos.Drain(), aNmos.Drain())
	ttlsim.Connect(aNmos.Source(), bInvertedNmos.Drain())
	ttlsim.Connect(bInvertedNmos.Source(), strongFalse.Output())

	ttlsim.Connect(aPmos.Gate(), aInput)
	ttlsim.Connect(bPmos.Gate(), bInput)
	ttlsim.Connect(aNmos.Gate(), aInput)
	ttlsim.Connect(bInvertedNmos.Gate(), bNotGate.Output())

	ttlsim.Connect(strongTrue.Output(), aInvertedPmos.Source())
	ttlsim.Connect(aInvertedPmos.Drain(), bInvertedPmos.Source())
	ttlsim.Connect(bInvertedPmos.Drain(), aInvertedNmos.Drain())
	ttlsim.Connect(aInvertedNmos.Source(), bNmos.Drain())
	ttlsim.Connect(bNmos.Source(), strongFalse.Output())

	ttlsim.Connect(aInvertedPmos.Gate(), aNotGate.Output())
	ttlsim.Connect(bInvertedPmos.Gate(), bNotGate.Output())
	ttlsim.Connect(aInvertedNmos.Gate(), aNotGate.Output())
	ttlsim.Connect(bNmos.Gate(), bInput)

	ttlsim.Connect(aNmos.Drain(), aInvertedNmos.Drain())

	return &XnorGate{
		strongTrue:    strongTrue,
		strongFalse:   strongFalse,
		aNotGate:      aNotGate,
		bNotGate:      bNotGate,
		aNmos:         aNmos,
		aInvertedNmos: aInvertedNmos,
		aPmos:         aPmos,
		aInvertedPmos: aInvertedPmos,
		bNmos:         bNmos,
		bInvertedNmos: bInvertedNmos,
		bPmos:         bPmos,
		bInvertedPmos: bInvertedPmos,
		aInput:        aInput,
		bInput:        bInput,
		output:        output,
	}
}

// AInput returns the gate's first input pin.
func (g *XnorGate) AInput() *ttlsim.Pin { return g.aInput }

// BInput returns the gate's second input pin.
func (g *XnorGate) BInput() *ttlsim.Pin { return g.bInput }

// Output returns the gate's output pin.
func (g *XnorGate) Output() *ttlsim.Pin { return g.output }

// TypeName implements ttlsim.Device.
func (g *XnorGate) TypeName() string { return "XnorGate" }

// Pins implements ttlsim.Device.
func (g *XnorGate) Pins() []ttlsim.PinField {
	return []ttlsim.PinField{
		{Name: "a_input", Pins: ttlsim.One(g.aInput)},
		{Name: "b_input", Pins: ttlsim.One(g.bInput)},
		{Name: "output", Pins: ttlsim.One(g.output)},
	}
}

// Children implements ttlsim.Device.
func (g *XnorGate) Children() []ttlsim.ChildField {
	return []ttlsim.ChildField{
		{Name: "strong_true", Children: ttlsim.One[ttlsim.Device](g.strongTrue)},
		{Name: "strong_false", Children: ttlsim.One[ttlsim.Device](g.strongFalse)},
		{Name: "a_not_gate", Children: ttlsim.One[ttlsim.Device](g.aNotGate)},
		{Name: "a_nmos", Children: ttlsim.One[ttlsim.Device](g.aNmos)},
		{Name: "a_inverted_nmos", Children: ttlsim.One[ttlsim.Device](g.aInvertedNmos)},
		{Name: "a_pmos", Children: ttlsim.One[ttlsim.Device](g.aPmos)},
		{Name: "a_inverted_pmos", Children: ttlsim.One[ttlsim.Device](g.aInvertedPmos)},
		{Name: "b_not_gate", Children: ttlsim.One[ttlsim.Device](g.bNotGate)},
		{Name: "b_nmos", Children: ttlsim.One[ttlsim.Device](g.bNmos)},
		{Name: "b_inverted_nmos", Children: ttlsim.One[ttlsim.Device](g.bInvertedNmos)},
		{Name: "b_pmos", Children: ttlsim.One[ttlsim.Device](g.bPmos)},
		{Name: "b_inverted_pmos", Children: ttlsim.One[ttlsim.Device](g.bInvertedPmos)},
	}
}
