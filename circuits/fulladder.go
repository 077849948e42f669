package circuits

import (
	"github.com/jonesinator/ttlsim"
	"github.com/jonesinator/ttlsim/gates"
)

// FullAdder adds two one-bit numbers plus a carry-in, producing a sum and
// a carry-out. Built from two half adders and an OR gate.
type FullAdder struct {
	inputHalfAdder, carryHalfAdder *HalfAdder
	orGate                         *gates.OrGate
	a, b, carryIn                  *ttlsim.Pin
	sum, carry                     *ttlsim.Pin
}

// NewFullAdder creates a new full adder.
func NewFullAdder() *FullAdder {
	inputHalfAdder := NewHalfAdder()
	carryHalfAdder := NewHalfAdder()
	orGate := gates.NewOrGate(2)

	ttlsim.Connect(inputHalfAdder.Sum(), carryHalfAdder.B())
	ttlsim.Connect(carryHalfAdder.Carry(), orGate.Input()[0])
	ttlsim.Connect(inputHalfAdder.Carry(), orGate.Input()[1])

	return &FullAdder{
		inputHalfAdder: inputHalfAdder,
		carryHalfAdder: carryHalfAdder,
		orGate:         orGate,
		a:              inputHalfAdder.A(),
		b:              inputHalfAdder.B(),
		carryIn:        carryHalfAdder.A(),
		sum:            carryHalfAdder.Sum(),
		carry:          orGate.Output(),
	}
}

// A returns the adder's first input pin.
func (f *FullAdder) A() *ttlsim.Pin { return f.a }

// B returns the adder's second input pin.
func (f *FullAdder) B() *ttlsim.Pin { return f.b }

// CarryIn returns the adder's carry-in pin.
func (f *FullAdder) CarryIn() *ttlsim.Pin { return f.carryIn }

// Sum returns the adder's sum output pin.
func (f *FullAdder) Sum() *ttlsim.Pin { return f.sum }

// Carry returns the adder's carry-out pin.
func (f *FullAdder) Carry() *ttlsim.Pin { return f.carry }

// TypeName implements ttlsim.Device.
func (f *FullAdder) TypeName() string { return "FullAdder" }

// Pins implements ttlsim.Device.
func (f *FullAdder) Pins() []ttlsim.PinField {
	return []ttlsim.PinField{
		{Name: "a", Pins: ttlsim.One(f.a)},
		{Name: "b", Pins: ttlsim.One(f.b)},
		{Name: "carry_in", Pins: ttlsim.One(f.carryIn)},
		{Name: "sum", Pins: ttlsim.One(f.sum)},
		{Name: "carry", Pins: ttlsim.One(f.carry)},
	}
}

// Children implements ttlsim.Device.
func (f *FullAdder) Children() []ttlsim.ChildField {
	return []ttlsim.ChildField{
		{Name: "input_half_adder", Children: ttlsim.One[ttlsim.Device](f.inputHalfAdder)},
		{Name: "carry_half_adder", Children: ttlsim.One[ttlsim.Device](f.carryHalfAdder)},
		{Name: "or_gate", Children: ttlsim.One[ttlsim.Device](f.orGate)},
	}
}
