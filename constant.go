package ttlsim

// Constant is a device with a single pin that permanently drives a fixed
// value onto its wire. It never changes state.
type Constant struct {
	output *Pin
}

// NewStrongConstant creates a Constant permanently driving Strong(v) — a
// direct tie to a rail.
func NewStrongConstant(v bool) *Constant {
	return &Constant{output: newPin(Strong(v))}
}

// NewWeakConstant creates a Constant permanently driving Weak(v) — a tie to
// a rail through a pull resistor.
func NewWeakConstant(v bool) *Constant {
	return &Constant{output: newPin(Weak(v))}
}

// Output returns the Constant's single pin.
func (c *Constant) Output() *Pin { return c.output }

// TypeName implements Device.
func (c *Constant) TypeName() string { return "Constant" }

// Pins implements Device.
func (c *Constant) Pins() []PinField {
	return []PinField{{Name: "output", Pins: One(c.output)}}
}

// Children implements Device.
func (c *Constant) Children() []ChildField { return nil }
