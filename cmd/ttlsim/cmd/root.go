package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ttlsim",
	Short: "Transistor-level CMOS circuit simulator",
	Long: `ttlsim drives composite CMOS circuits through their truth tables,
settling each input combination and reporting the resolved outputs.

Examples:
  ttlsim not                    # invert a pin through every drive value
  ttlsim nand -n 3              # exercise a 3-input NAND gate
  ttlsim adder -w 4 -a 6 -b 9   # add two 4-bit operands
  ttlsim latch                  # pulse set and reset through an SR latch`,
	Version: "0.1.0",
}

func init() {
	if os.Getenv("TTLSIM_LOG_LEVEL") == "debug" {
		log.SetFlags(log.Ltime | log.Lshortfile)
	}
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
