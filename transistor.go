package ttlsim

// Transistor is the only active primitive in the simulation: an NMOS or
// PMOS CMOS transistor with three pins (source, gate, drain) that, on each
// tick, recomputes its drain drive from the current readings of gate and
// source.
type Transistor struct {
	source, gate, drain *Pin
	activation          bool

	// hysteresis delays reporting a gate-caused Error by exactly one tick,
	// so transient ambiguity while a composite gate is still settling
	// doesn't latch a spurious Error into feedback circuits like an SR
	// latch. See tick for the exact rule.
	hysteresis bool
}

func newTransistor(activation bool) *Transistor {
	return &Transistor{
		source:     newPin(HighImpedance),
		gate:       newPin(HighImpedance),
		drain:      newPin(HighImpedance),
		activation: activation,
	}
}

// NewNMOS creates an NMOS transistor, not connected to anything. NMOS
// conducts when its gate reads Driven(true).
func NewNMOS() *Transistor { return newTransistor(true) }

// NewPMOS creates a PMOS transistor, not connected to anything. PMOS
// conducts when its gate reads Driven(false).
func NewPMOS() *Transistor { return newTransistor(false) }

// Source returns the transistor's source pin.
func (t *Transistor) Source() *Pin { return t.source }

// Gate returns the transistor's gate pin.
func (t *Transistor) Gate() *Pin { return t.gate }

// Drain returns the transistor's drain pin.
func (t *Transistor) Drain() *Pin { return t.drain }

// Activation reports the transistor's activation polarity: true for NMOS,
// false for PMOS.
func (t *Transistor) Activation() bool { return t.activation }

// tick recomputes the pending drain drive from the current gate and source
// readings. It returns true if the computed drive differs from the current
// drain drive, or if the hysteresis flag was just engaged.
func (t *Transistor) tick() bool {
	current := t.drain.Drive().Logic()

	gate := t.gate.Read()
	if gate.Kind == LogicDriven {
		t.hysteresis = false
		var next LogicValue
		if gate.Value == t.activation {
			next = t.source.Read()
		} else {
			next = LogicHighZ
		}
		t.drain.setDrive(next.Drive())
		return current != next
	}

	// Gate is HighImpedance or Error.
	if !t.hysteresis {
		t.hysteresis = true
		return true
	}
	t.drain.setDrive(LogicError.Drive())
	return current != LogicError
}

// TypeName implements Device.
func (t *Transistor) TypeName() string { return "Transistor" }

// Pins implements Device.
func (t *Transistor) Pins() []PinField {
	return []PinField{
		{Name: "source", Pins: One(t.source)},
		{Name: "gate", Pins: One(t.gate)},
		{Name: "drain", Pins: One(t.drain)},
	}
}

// Children implements Device.
func (t *Transistor) Children() []ChildField { return nil }
