package cmd

import (
	"log"

	"github.com/jonesinator/ttlsim"
	"github.com/jonesinator/ttlsim/gates"
	"github.com/spf13/cobra"
)

var xorCmd = &cobra.Command{
	Use:   "xor",
	Short: "Drive an XOR gate through its truth table",
	Run: func(cmd *cobra.Command, args []string) {
		runTwoInputGate(gates.NewXorGate())
	},
}

var xnorCmd = &cobra.Command{
	Use:   "xnor",
	Short: "Drive an XNOR gate through its truth table",
	Run: func(cmd *cobra.Command, args []string) {
		runTwoInputGate(gates.NewXnorGate())
	},
}

func init() {
	rootCmd.AddCommand(xorCmd, xnorCmd)
}

type twoInputGate interface {
	ttlsim.Device
	AInput() *ttlsim.Pin
	BInput() *ttlsim.Pin
	Output() *ttlsim.Pin
}

func runTwoInputGate(gate twoInputGate) {
	a := ttlsim.NewTestPin(ttlsim.HighImpedance)
	b := ttlsim.NewTestPin(ttlsim.HighImpedance)
	ttlsim.Connect(a.Output(), gate.AInput())
	ttlsim.Connect(b.Output(), gate.BInput())

	for _, va := range []bool{false, true} {
		for _, vb := range []bool{false, true} {
			a.SetDrive(ttlsim.Strong(va))
			b.SetDrive(ttlsim.Strong(vb))
			ttlsim.Settle(gate)
			log.Printf("a=%-5v b=%-5v out=%v", va, vb, gate.Output().Read())
		}
	}
}
