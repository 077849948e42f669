package circuits

import (
	"github.com/jonesinator/ttlsim"
	"github.com/jonesinator/ttlsim/gates"
)

// HalfAdder adds two one-bit numbers, producing a sum and a carry.
type HalfAdder struct {
	andGate    *gates.AndGate
	xorGate    *gates.XorGate
	a, b       *ttlsim.Pin
	sum, carry *ttlsim.Pin
}

// NewHalfAdder creates a new half adder.
func NewHalfAdder() *HalfAdder {
	andGate := gates.NewAndGate(2)
	xorGate := gates.NewXorGate()
	a := andGate.Input()[0]
	b := andGate.Input()[1]

	ttlsim.Connect(andGate.Input()[0], xorGate.AInput())
	ttlsim.Connect(andGate.Input()[1], xorGate.BInput())

	return &HalfAdder{
		andGate: andGate,
		xorGate: xorGate,
		a:       a,
		b:       b,
		sum:     xorGate.Output(),
		carry:   andGate.Output(),
	}
}

// A returns the adder's first input pin.
func (h *HalfAdder) A() *ttlsim.Pin { return h.a }

// B returns the adder's second input pin.
func (h *HalfAdder) B() *ttlsim.Pin { return h.b }

// Sum returns the adder's sum output pin.
func (h *HalfAdder) Sum() *ttlsim.Pin { return h.sum }

// Carry returns the adder's carry output pin.
func (h *HalfAdder) Carry() *ttlsim.Pin { return h.carry }

// TypeName implements ttlsim.Device.
func (h *HalfAdder) TypeName() string { return "HalfAdder" }

// Pins implements ttlsim.Device.
func (h *HalfAdder) Pins() []ttlsim.PinField {
	return []ttlsim.PinField{
		{Name: "a", Pins: ttlsim.One(h.a)},
		{Name: "b", Pins: ttlsim.One(h.b)},
		{Name: "sum", Pins: ttlsim.One(h.sum)},
		{Name: "carry", Pins: ttlsim.One(h.carry)},
	}
}

// Children implements ttlsim.Device.
func (h *HalfAdder) Children() []ttlsim.ChildField {
	return []ttlsim.ChildField{
		{Name: "and_gate", Children: ttlsim.One[ttlsim.Device](h.andGate)},
		{Name: "xor_gate", Children: ttlsim.One[ttlsim.Device](h.xorGate)},
	}
}
