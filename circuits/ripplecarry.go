package circuits

import "github.com/jonesinator/ttlsim"

// RippleCarryAdder adds two n-bit unsigned integers, one full adder per
// bit chained carry-to-carry-in. Simple, and as slow as its narrowest
// bit's carry propagation chain.
type RippleCarryAdder struct {
	strongFalse         *ttlsim.Constant
	adders              []*FullAdder
	inputA, inputB, sum []*ttlsim.Pin
	overflow            *ttlsim.Pin
}

// NewRippleCarryAdder creates a new RippleCarryAdder of the given width,
// which must be non-zero.
func NewRippleCarryAdder(width int) *RippleCarryAdder {
	if width == 0 {
		panic("circuits: RippleCarryAdder width must be non-zero")
	}

	strongFalse := ttlsim.NewStrongConstant(false)
	adders := make([]*FullAdder, width)
	for i := range adders {
		adders[i] = NewFullAdder()
	}
	inputA := make([]*ttlsim.Pin, width)
	inputB := make([]*ttlsim.Pin, width)
	sum := make([]*ttlsim.Pin, width)
	for i, a := range adders {
		inputA[i] = a.A()
		inputB[i] = a.B()
		sum[i] = a.Sum()
	}
	overflow := adders[width-1].Carry()

	ttlsim.Connect(strongFalse.Output(), adders[0].CarryIn())
	for i := 0; i < width-1; i++ {
		ttlsim.Connect(adders[i].Carry(), adders[i+1].CarryIn())
	}

	return &RippleCarryAdder{
		strongFalse: strongFalse,
		adders:      adders,
		inputA:      inputA,
		inputB:      inputB,
		sum:         sum,
		overflow:    overflow,
	}
}

// InputA returns the adder's first operand's pins, least significant
// bit first.
func (r *RippleCarryAdder) InputA() []*ttlsim.Pin { return r.inputA }

// InputB returns the adder's second operand's pins, least significant
// bit first.
func (r *RippleCarryAdder) InputB() []*ttlsim.Pin { return r.inputB }

// Sum returns the adder's sum pins, least significant bit first.
func (r *RippleCarryAdder) Sum() []*ttlsim.Pin { return r.sum }

// Overflow returns the adder's carry-out pin.
func (r *RippleCarryAdder) Overflow() *ttlsim.Pin { return r.overflow }

// TypeName implements ttlsim.Device.
func (r *RippleCarryAdder) TypeName() string { return "RippleCarryAdder" }

// Pins implements ttlsim.Device.
func (r *RippleCarryAdder) Pins() []ttlsim.PinField {
	return []ttlsim.PinField{
		{Name: "input_a", Pins: ttlsim.Many(r.inputA)},
		{Name: "input_b", Pins: ttlsim.Many(r.inputB)},
		{Name: "sum", Pins: ttlsim.Many(r.sum)},
		{Name: "overflow", Pins: ttlsim.One(r.overflow)},
	}
}

// Children implements ttlsim.Device.
func (r *RippleCarryAdder) Children() []ttlsim.ChildField {
	adderDevices := make([]ttlsim.Device, len(r.adders))
	for i, a := range r.adders {
		adderDevices[i] = a
	}
	return []ttlsim.ChildField{
		{Name: "strong_false", Children: ttlsim.One[ttlsim.Device](r.strongFalse)},
		{Name: "adders", Children: ttlsim.Many(adderDevices)},
	}
}
