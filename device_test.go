package ttlsim_test

import (
	"testing"

	"github.com/jonesinator/ttlsim"
)

func TestContainerOne(t *testing.T) {
	c := ttlsim.One(42)
	if !c.IsSingle() {
		t.Fatal("One(...) should be single")
	}
	if got := c.Items(); len(got) != 1 || got[0] != 42 {
		t.Fatalf("Items() = %v, want [42]", got)
	}
}

func TestContainerMany(t *testing.T) {
	c := ttlsim.Many([]int{1, 2, 3})
	if c.IsSingle() {
		t.Fatal("Many(...) should not be single")
	}
	if got := c.Items(); len(got) != 3 {
		t.Fatalf("Items() = %v, want 3 elements", got)
	}
}

func TestConstantImplementsDevice(t *testing.T) {
	var _ ttlsim.Device = ttlsim.NewStrongConstant(true)
	var _ ttlsim.Device = ttlsim.NewTestPin(ttlsim.HighImpedance)
	var _ ttlsim.Device = ttlsim.NewNMOS()
}
