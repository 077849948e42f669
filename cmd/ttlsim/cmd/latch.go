package cmd

import (
	"log"

	"github.com/jonesinator/ttlsim"
	"github.com/jonesinator/ttlsim/circuits"
	"github.com/spf13/cobra"
)

var latchCmd = &cobra.Command{
	Use:   "latch",
	Short: "Pulse set and reset through an SR latch",
	Run:   runLatch,
}

func init() {
	rootCmd.AddCommand(latchCmd)
}

func runLatch(cmd *cobra.Command, args []string) {
	latch := circuits.NewSRLatch()
	weakFalse := ttlsim.NewWeakConstant(false)
	weakTrue := ttlsim.NewWeakConstant(true)
	set := ttlsim.NewTestPin(ttlsim.Strong(false))
	reset := ttlsim.NewTestPin(ttlsim.Strong(false))

	ttlsim.Connect(weakFalse.Output(), latch.Output())
	ttlsim.Connect(weakTrue.Output(), latch.OutputInverted())
	ttlsim.Connect(set.Output(), latch.Set())
	ttlsim.Connect(reset.Output(), latch.Reset())

	report := func(label string) {
		ttlsim.Settle(latch)
		log.Printf("%-12s output=%v output_inverted=%v", label, latch.Output().Read(), latch.OutputInverted().Read())
	}

	report("initial")

	set.SetDrive(ttlsim.Strong(true))
	report("set")
	set.SetDrive(ttlsim.Strong(false))
	report("hold")

	reset.SetDrive(ttlsim.Strong(true))
	report("reset")
	reset.SetDrive(ttlsim.Strong(false))
	report("hold")
}
