package gates

import "github.com/jonesinator/ttlsim"

// XorGate performs the XOR function: two pull-up/pull-down stacks, one
// gated by a and not-b, the other by not-a and b, sharing a common
// output.
type XorGate struct {
	strongTrue, strongFalse               *ttlsim.Constant
	aNotGate, bNotGate                    *NotGate
	aNmos, aInvertedNmos                  *ttlsim.Transistor
	aPmos, aInvertedPmos                  *ttlsim.Transistor
	bNmos1, bNmos2                        *ttlsim.Transistor
	bPmos, bInvertedPmos                  *ttlsim.Transistor
	aInput, bInput, output                *ttlsim.Pin
}

// NewXorGate constructs a 2-input XOR gate.
func NewXorGate() *XorGate {
	strongTrue := ttlsim.NewStrongConstant(true)
	strongFalse := ttlsim.NewStrongConstant(false)
	aNotGate := NewNotGate()
	aNmos := ttlsim.NewNMOS()
	aInvertedNmos := ttlsim.NewNMOS()
	aPmos := ttlsim.NewPMOS()
	aInvertedPmos := ttlsim.NewPMOS()
	aInput := aNotGate.Input()
	bNotGate := NewNotGate()
	bNmos1 := ttlsim.NewNMOS()
	bNmos2 := ttlsim.NewNMOS()
	bPmos := ttlsim.NewPMOS()
	bInvertedPmos := ttlsim.NewPMOS()
	bInput := bNotGate.Input()
	output := aNmos.Drain()

	ttlsim.Connect(strongTrue.Output(), aPmos.Source())
	ttlsim.Connect(aPmos.Drain(), bInvertedPmos.Source())
	ttlsim.Connect(bInvertedPmos.Drain(), aNmos.Drain())
	ttlsim.Connect(aNmos.Source(), bNmos1.Drain())
	ttlsim.Connect(bNmos1.Source(), strongFalse.Output())

	ttlsim.Connect(aPmos.Gate(), aNotGate.Output())
	ttlsim.Connect(bInvertedPmos.Gate(), bInput)
	ttlsim.Connect(aNmos.Gate(), aInput)
	ttlsim.Connect(bNmos1.Gate(), bInput)

	ttlsim.Connect(strongTrue.Output(), aInvertedPmos.Source())
	ttlsim.Connect(aInvertedPmos.Drain(), bPmos.Source())
	ttlsim.Connect(bPmos.Drain(), aInvertedNmos.Drain())
	ttlsim.Connect(aInvertedNmos.Source(), bNmos2.Drain())
	ttlsim.Connect(bNmos2.Source(), strongFalse.Output())

	ttlsim.Connect(aInvertedPmos.Gate(), aInput)
	ttlsim.Connect(bPmos.Gate(), bNotGate.Output())
	ttlsim.Connect(aInvertedNmos.Gate(), aNotGate.Output())
	ttlsim.Connect(bNmos2.Gate(), bNotGate.Output())

	ttlsim.Connect(aNmos.Drain(), aInvertedNmos.Drain())

	return &XorGate{
		strongTrue:    strongTrue,
		strongFalse:   strongFalse,
		aNotGate:      aNotGate,
		bNotGate:      bNotGate,
		aNmos:         aNmos,
		aInvertedNmos: aInvertedNmos,
		aPmos:         aPmos,
		aInvertedPmos: aInvertedPmos,
		bNmos1:        bNmos1,
		bNmos2:        bNmos2,
		bPmos:         bPmos,
		bInvertedPmos: bInvertedPmos,
		aInput:        aInput,
		bInput:        bInput,
		output:        output,
	}
}

// AInput returns the gate's first input pin.
func (g *XorGate) AInput() *ttlsim.Pin { return g.aInput }

// BInput returns the gate's second input pin.
func (g *XorGate) BInput() *ttlsim.Pin { return g.bInput }

// Output returns the gate's output pin.
func (g *XorGate) Output() *ttlsim.Pin { return g.output }

// TypeName implements ttlsim.Device.
func (g *XorGate) TypeName() string { return "XorGate" }

// Pins implements ttlsim.Device.
func (g *XorGate) Pins() []ttlsim.PinField {
	return []ttlsim.PinField{
		{Name: "a_input", Pins: ttlsim.One(g.aInput)},
		{Name: "b_input", Pins: ttlsim.One(g.bInput)},
		{Name: "output", Pins: ttlsim.One(g.output)},
	}
}

// Children implements ttlsim.Device.
func (g *XorGate) Children() []ttlsim.ChildField {
	return []ttlsim.ChildField{
		{Name: "strong_true", Children: ttlsim.One[ttlsim.Device](g.strongTrue)},
		{Name: "strong_false", Children: ttlsim.One[ttlsim.Device](g.strongFalse)},
		{Name: "a_not_gate", Children: ttlsim.One[ttlsim.Device](g.aNotGate)},
		{Name: "a_nmos", Children: ttlsim.One[ttlsim.Device](g.aNmos)},
		{Name: "a_inverted_nmos", Children: ttlsim.One[ttlsim.Device](g.aInvertedNmos)},
		{Name: "a_pmos", Children: ttlsim.One[ttlsim.Device](g.aPmos)},
		{Name: "a_inverted_pmos", Children: ttlsim.One[ttlsim.Device](g.aInvertedPmos)},
		{Name: "b_not_gate", Children: ttlsim.One[ttlsim.Device](g.bNotGate)},
		{Name: "b_nmos_1", Children: ttlsim.One[ttlsim.Device](g.bNmos1)},
		{Name: "b_nmos_2", Children: ttlsim.One[ttlsim.Device](g.bNmos2)},
		{Name: "b_pmos", Children: ttlsim.One[ttlsim.Device](g.bPmos)},
		{Name: "b_inverted_pmos", Children: ttlsim.One[ttlsim.Device](g.bInvertedPmos)},
	}
}
