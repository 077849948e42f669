package cmd

import (
	"fmt"
	"log"

	"github.com/jonesinator/ttlsim"
	"github.com/jonesinator/ttlsim/gates"
	"github.com/spf13/cobra"
)

// multiInputGate is the common shape of every composite gate with two or
// more inputs and a single output: AndGate, OrGate, NandGate, NorGate all
// satisfy it already.
type multiInputGate interface {
	ttlsim.Device
	Input() []*ttlsim.Pin
	Output() *ttlsim.Pin
}

var gateInputs int

func newMultiInputGateCmd(use, short string, build func(int) multiInputGate) *cobra.Command {
	c := &cobra.Command{
		Use:   use,
		Short: short,
		Run: func(cmd *cobra.Command, args []string) {
			runMultiInputGate(build(gateInputs))
		},
	}
	c.Flags().IntVarP(&gateInputs, "inputs", "n", 2, "number of gate inputs")
	return c
}

func init() {
	and := newMultiInputGateCmd("and", "Drive an AND gate through its truth table", func(n int) multiInputGate {
		return gates.NewAndGate(n)
	})
	or := newMultiInputGateCmd("or", "Drive an OR gate through its truth table", func(n int) multiInputGate {
		return gates.NewOrGate(n)
	})
	nand := newMultiInputGateCmd("nand", "Drive a NAND gate through its truth table", func(n int) multiInputGate {
		return gates.NewNandGate(n)
	})
	nor := newMultiInputGateCmd("nor", "Drive a NOR gate through its truth table", func(n int) multiInputGate {
		return gates.NewNorGate(n)
	})
	rootCmd.AddCommand(and, or, nand, nor)
}

// runMultiInputGate exhaustively drives the gate's inputs through Strong
// true/false and logs the resolved output for every combination.
func runMultiInputGate(gate multiInputGate) {
	inputs := gate.Input()
	testPins := make([]*ttlsim.TestPin, len(inputs))
	for i, pin := range inputs {
		testPins[i] = ttlsim.NewTestPin(ttlsim.HighImpedance)
		ttlsim.Connect(testPins[i].Output(), pin)
	}

	combinations := 1 << uint(len(inputs))
	for bits := 0; bits < combinations; bits++ {
		values := make([]bool, len(inputs))
		for i := range testPins {
			values[i] = (bits>>uint(i))&1 == 1
			testPins[i].SetDrive(ttlsim.Strong(values[i]))
		}
		ttlsim.Settle(gate)
		log.Printf("in=%v out=%v", fmt.Sprint(values), gate.Output().Read())
	}
}
