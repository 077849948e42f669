package cmd

import (
	"log"

	"github.com/jonesinator/ttlsim"
	"github.com/jonesinator/ttlsim/gates"
	"github.com/spf13/cobra"
)

var notCmd = &cobra.Command{
	Use:   "not",
	Short: "Drive a NOT gate through every drive value",
	Run:   runNot,
}

func init() {
	rootCmd.AddCommand(notCmd)
}

func runNot(cmd *cobra.Command, args []string) {
	gate := gates.NewNotGate()
	in := ttlsim.NewTestPin(ttlsim.HighImpedance)
	ttlsim.Connect(in.Output(), gate.Input())

	for _, value := range ttlsim.DriveValues {
		in.SetDrive(value)
		ttlsim.Settle(gate)
		log.Printf("in=%-20v out=%v", value, gate.Output().Read())
	}
}
