package circuits

import (
	"github.com/jonesinator/ttlsim"
	"github.com/jonesinator/ttlsim/gates"
)

// SRLatch is the fundamental structure for storing one bit in digital
// logic: two cross-coupled NOR gates that can "remember" whether they
// were last set or reset.
type SRLatch struct {
	norGate1, norGate2                  *gates.NorGate
	set, reset, output, outputInverted *ttlsim.Pin
}

// NewSRLatch creates a new SR latch.
func NewSRLatch() *SRLatch {
	norGate1 := gates.NewNorGate(2)
	norGate2 := gates.NewNorGate(2)
	reset := norGate1.Input()[0]
	set := norGate2.Input()[1]
	output := norGate1.Output()
	outputInverted := norGate2.Output()

	ttlsim.Connect(norGate1.Output(), norGate2.Input()[0])
	ttlsim.Connect(norGate2.Output(), norGate1.Input()[1])

	return &SRLatch{
		norGate1:       norGate1,
		norGate2:       norGate2,
		set:            set,
		reset:          reset,
		output:         output,
		outputInverted: outputInverted,
	}
}

// Set returns the latch's set pin.
func (s *SRLatch) Set() *ttlsim.Pin { return s.set }

// Reset returns the latch's reset pin.
func (s *SRLatch) Reset() *ttlsim.Pin { return s.reset }

// Output returns the latch's output pin.
func (s *SRLatch) Output() *ttlsim.Pin { return s.output }

// OutputInverted returns the latch's inverted output pin.
func (s *SRLatch) OutputInverted() *ttlsim.Pin { return s.outputInverted }

// TypeName implements ttlsim.Device.
func (s *SRLatch) TypeName() string { return "SRLatch" }

// Pins implements ttlsim.Device.
func (s *SRLatch) Pins() []ttlsim.PinField {
	return []ttlsim.PinField{
		{Name: "set", Pins: ttlsim.One(s.set)},
		{Name: "reset", Pins: ttlsim.One(s.reset)},
		{Name: "output", Pins: ttlsim.One(s.output)},
		{Name: "output_inverted", Pins: ttlsim.One(s.outputInverted)},
	}
}

// Children implements ttlsim.Device.
func (s *SRLatch) Children() []ttlsim.ChildField {
	return []ttlsim.ChildField{
		{Name: "nor_gate_1", Children: ttlsim.One[ttlsim.Device](s.norGate1)},
		{Name: "nor_gate_2", Children: ttlsim.One[ttlsim.Device](s.norGate2)},
	}
}
