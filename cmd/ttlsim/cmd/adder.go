package cmd

import (
	"log"

	"github.com/jonesinator/ttlsim"
	"github.com/jonesinator/ttlsim/circuits"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	adderWidth int
	adderA     int
	adderB     int
)

var adderCmd = &cobra.Command{
	Use:   "adder",
	Short: "Add two unsigned operands through a ripple-carry adder",
	RunE:  runAdder,
}

func init() {
	rootCmd.AddCommand(adderCmd)
	adderCmd.Flags().IntVarP(&adderWidth, "width", "w", 4, "adder width in bits")
	adderCmd.Flags().IntVarP(&adderA, "a", "a", 0, "first operand")
	adderCmd.Flags().IntVarP(&adderB, "b", "b", 0, "second operand")
}

func runAdder(cmd *cobra.Command, args []string) error {
	maxValue := 1 << uint(adderWidth)
	if adderA < 0 || adderA >= maxValue || adderB < 0 || adderB >= maxValue {
		return errors.Errorf("operands must fit in %d bits (0-%d)", adderWidth, maxValue-1)
	}

	adder := circuits.NewRippleCarryAdder(adderWidth)
	pinsA := make([]*ttlsim.TestPin, adderWidth)
	pinsB := make([]*ttlsim.TestPin, adderWidth)
	for i := 0; i < adderWidth; i++ {
		pinsA[i] = ttlsim.NewTestPin(ttlsim.HighImpedance)
		pinsB[i] = ttlsim.NewTestPin(ttlsim.HighImpedance)
		ttlsim.Connect(pinsA[i].Output(), adder.InputA()[i])
		ttlsim.Connect(pinsB[i].Output(), adder.InputB()[i])
		pinsA[i].SetDrive(ttlsim.Strong((adderA>>uint(i))&1 == 1))
		pinsB[i].SetDrive(ttlsim.Strong((adderB>>uint(i))&1 == 1))
	}

	ttlsim.Settle(adder)

	sum := 0
	for i, pin := range adder.Sum() {
		if pin.Read() == ttlsim.Driven(true) {
			sum += 1 << uint(i)
		}
	}
	log.Printf("%d + %d = %d (overflow=%v)", adderA, adderB, sum, adder.Overflow().Read())
	return nil
}
