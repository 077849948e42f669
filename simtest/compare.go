// Package simtest provides utility functions for testing gates and
// composite devices built on top of ttlsim.
package simtest

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/jonesinator/ttlsim"
)

func randDrive() ttlsim.DriveValue {
	return ttlsim.DriveValues[rand.Intn(len(ttlsim.DriveValues))]
}

// Circuit is a device under test, exposing the TestPins that drive its
// inputs and the Pins that carry its outputs.
type Circuit struct {
	Inputs  []*ttlsim.TestPin
	Outputs []*ttlsim.Pin
	Root    ttlsim.Device
}

func driveString(names []string, values []ttlsim.DriveValue) string {
	var b strings.Builder
	for i, n := range names {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%+v", n, values[i])
	}
	return b.String()
}

// ComparePart builds two circuits with build1 and build2, which must have
// the same number of inputs and outputs, drives both with the same input
// sequence, settles each, and fails the test the moment their outputs
// diverge. Every input pin is driven independently across the full
// six-valued DriveValue domain: exhaustively when that's at most maxBits
// inputs, and with random samples otherwise.
func ComparePart(t *testing.T, inNames, outNames []string, build1, build2 func() Circuit) {
	t.Helper()
	rand.Seed(time.Now().UnixNano())

	c1, c2 := build1(), build2()
	if len(c1.Inputs) != len(c2.Inputs) {
		t.Fatalf("input count mismatch: %d != %d", len(c1.Inputs), len(c2.Inputs))
	}
	if len(c1.Outputs) != len(c2.Outputs) {
		t.Fatalf("output count mismatch: %d != %d", len(c1.Outputs), len(c2.Outputs))
	}

	check := func(drives []ttlsim.DriveValue) {
		ttlsim.Settle(c1.Root)
		ttlsim.Settle(c2.Root)
		for i := range c1.Outputs {
			got1, got2 := c1.Outputs[i].Read(), c2.Outputs[i].Read()
			if got1 != got2 {
				t.Fatalf("inputs %s => %s=%+v, %s=%+v",
					driveString(inNames, drives), outNames[i], got1, outNames[i], got2)
			}
		}
	}

	drive := func(drives []ttlsim.DriveValue) {
		for i, d := range drives {
			c1.Inputs[i].SetDrive(d)
			c2.Inputs[i].SetDrive(d)
		}
	}

	n := len(c1.Inputs)
	const maxBits = 12
	if n > maxBits {
		iter := 1 << maxBits
		for i := 0; i < iter; i++ {
			drives := make([]ttlsim.DriveValue, n)
			for j := range drives {
				drives[j] = randDrive()
			}
			drive(drives)
			check(drives)
		}
		return
	}

	combos := 1
	for i := 0; i < n; i++ {
		combos *= len(ttlsim.DriveValues)
	}
	for i := 0; i < combos; i++ {
		drives := make([]ttlsim.DriveValue, n)
		rem := i
		for j := 0; j < n; j++ {
			drives[j] = ttlsim.DriveValues[rem%len(ttlsim.DriveValues)]
			rem /= len(ttlsim.DriveValues)
		}
		drive(drives)
		check(drives)
	}
}
