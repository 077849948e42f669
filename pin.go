package ttlsim

// Pin represents a physical terminal on a device. Every Pin always belongs
// to exactly one wire, even before it has been connected to anything else.
type Pin struct {
	currentDrive DriveValue
	nextDrive    *DriveValue
	wire         *wire
}

// newPin creates a Pin in the given initial state, wired to itself. Only
// primitive device constructors call this; the rest of the package connects
// and reads pins handed to it by those constructors.
func newPin(initial DriveValue) *Pin {
	p := &Pin{currentDrive: initial, wire: newWire()}
	p.wire.setInitialPin(p)
	return p
}

// Connect joins two pins so they share a single wire. Connecting a pin to
// itself, or to a pin it's already connected to, is a no-op.
func Connect(p1, p2 *Pin) {
	connectWires(p1.wire, p2.wire)
}

// ConnectedPins returns every pin sharing this pin's wire, including this
// pin itself, ordered by when each pin joined the wire.
func (p *Pin) ConnectedPins() []*Pin {
	return p.wire.allPins()
}

// Drive returns the DriveValue this pin is currently asserting. Unlike
// Read, this does not take other pins on the wire into account.
func (p *Pin) Drive() DriveValue {
	return p.currentDrive
}

// Read returns the wire's current resolved LogicValue.
func (p *Pin) Read() LogicValue {
	return p.wire.read()
}

// setDrive records a pending drive to take effect on the next tick. Calling
// this twice for the same pin within a single tick means two devices
// disagree about what the pin should output, which is a construction bug.
func (p *Pin) setDrive(next DriveValue) {
	if p.nextDrive != nil {
		panic("ttlsim: pin drive set twice in a single tick")
	}
	p.nextDrive = &next
}

// setWire rewires this pin onto a different wire object. Only called by
// connectWires when merging two wires into one.
func (p *Pin) setWire(w *wire) {
	p.wire = w
}

// tick applies any pending drive, informing the wire so its cached value
// stays in sync, and reports whether the pin's drive actually changed.
func (p *Pin) tick() bool {
	if p.nextDrive == nil {
		return false
	}
	next := *p.nextDrive
	p.nextDrive = nil
	changed := p.currentDrive != next
	if changed {
		p.wire.updatePin(p.currentDrive, next)
		p.currentDrive = next
	}
	return changed
}

// wire represents the electrical node joining a set of connected pins. It
// is never exposed outside this package: the outside world only ever sees
// the pins attached to it.
type wire struct {
	value       LogicValue
	pins        []*Pin
	accumulator driveAccumulator
}

func newWire() *wire {
	return &wire{value: LogicHighZ}
}

// setInitialPin attaches the pin that caused this wire to be created. This
// is part of pin construction and must happen exactly once per wire.
func (w *wire) setInitialPin(p *Pin) {
	if len(w.pins) != 0 {
		panic("ttlsim: wire already associated with a pin")
	}
	w.pins = append(w.pins, p)
	w.value = w.accumulator.update(HighImpedance, p.Drive())
}

func (w *wire) read() LogicValue {
	return w.value
}

func (w *wire) updatePin(before, after DriveValue) {
	w.value = w.accumulator.update(before, after)
}

func (w *wire) allPins() []*Pin {
	return w.pins
}

// connectWires merges wire 2 into wire 1 so every pin on either one ends up
// sharing a single wire object. If both arguments are already the same
// wire, this is a no-op.
func connectWires(w1, w2 *wire) {
	if w1 == w2 {
		return
	}
	for _, p := range w2.pins {
		p.setWire(w1)
	}
	w1.pins = append(w1.pins, w2.pins...)
	w1.value = w1.accumulator.add(&w2.accumulator)
}
