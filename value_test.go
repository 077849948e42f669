package ttlsim_test

import (
	"testing"

	"github.com/jonesinator/ttlsim"
)

func TestDriveValueLogicTotal(t *testing.T) {
	cases := []struct {
		drive ttlsim.DriveValue
		want  ttlsim.LogicValue
	}{
		{ttlsim.Strong(true), ttlsim.Driven(true)},
		{ttlsim.Strong(false), ttlsim.Driven(false)},
		{ttlsim.Weak(true), ttlsim.Driven(true)},
		{ttlsim.Weak(false), ttlsim.Driven(false)},
		{ttlsim.HighImpedance, ttlsim.LogicHighZ},
		{ttlsim.ErrorDrive, ttlsim.LogicError},
	}
	for _, c := range cases {
		got := c.drive.Logic()
		if got != c.want {
			t.Errorf("%+v.Logic() = %+v, want %+v", c.drive, got, c.want)
		}
	}
}

func TestLogicValueDriveTotal(t *testing.T) {
	cases := []struct {
		logic ttlsim.LogicValue
		want  ttlsim.DriveValue
	}{
		{ttlsim.Driven(true), ttlsim.Strong(true)},
		{ttlsim.Driven(false), ttlsim.Strong(false)},
		{ttlsim.LogicHighZ, ttlsim.HighImpedance},
		{ttlsim.LogicError, ttlsim.ErrorDrive},
	}
	for _, c := range cases {
		got := c.logic.Drive()
		if got != c.want {
			t.Errorf("%+v.Drive() = %+v, want %+v", c.logic, got, c.want)
		}
	}
}

// Weak(b) -> Driven(b) -> Strong(b) is a deliberate non-round-trip: a
// pull-resistor tie and a direct tie are indistinguishable once they've
// both been reduced to a logic level.
func TestWeakDoesNotRoundTrip(t *testing.T) {
	for _, v := range []bool{true, false} {
		got := ttlsim.Weak(v).Logic().Drive()
		want := ttlsim.Strong(v)
		if got != want {
			t.Errorf("Weak(%v) round trip = %+v, want %+v", v, got, want)
		}
	}
}

func TestDriveValuesEnumeratesSix(t *testing.T) {
	if len(ttlsim.DriveValues) != 6 {
		t.Fatalf("len(DriveValues) = %d, want 6", len(ttlsim.DriveValues))
	}
	seen := make(map[ttlsim.DriveValue]bool)
	for _, d := range ttlsim.DriveValues {
		if seen[d] {
			t.Fatalf("duplicate DriveValue %+v in DriveValues", d)
		}
		seen[d] = true
	}
}
