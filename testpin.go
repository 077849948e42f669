package ttlsim

// TestPin is a device with a single pin whose drive can be changed from
// outside the simulation, taking effect immediately rather than on the next
// tick. It is the only sanctioned way for external code to drive a pin.
type TestPin struct {
	output *Pin
}

// NewTestPin creates a TestPin with the given initial drive.
func NewTestPin(initial DriveValue) *TestPin {
	return &TestPin{output: newPin(initial)}
}

// Output returns the TestPin's single pin.
func (t *TestPin) Output() *Pin { return t.output }

// SetDrive sets the pin's drive and applies it synchronously, bypassing the
// deferred-update model so callers can assert the effect immediately.
func (t *TestPin) SetDrive(next DriveValue) {
	t.output.setDrive(next)
	t.output.tick()
}

// TypeName implements Device.
func (t *TestPin) TypeName() string { return "TestPin" }

// Pins implements Device.
func (t *TestPin) Pins() []PinField {
	return []PinField{{Name: "output", Pins: One(t.output)}}
}

// Children implements Device.
func (t *TestPin) Children() []ChildField { return nil }
