package cli

import (
	"fmt"

	"github.com/joltlab/aoc/internal/bank"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newSumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sum [flags] [file...]",
		Short: "Print the total joltage of all banks, once per width.",
		RunE: func(cmd *cobra.Command, args []string) error {
			widths, err := getWidths(cmd)
			if err != nil {
				return err
			}
			srcs, err := readSources(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			for _, w := range widths {
				total, err := totalJoltage(srcs, w)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "width %d: %d\n", w, total)
			}
			return nil
		},
	}
}

// totalJoltage sums the joltage of every bank in srcs. Banks are parsed as
// uint32 when the width allows it.
func totalJoltage(srcs []source, width int) (uint64, error) {
	var total uint64
	for _, src := range srcs {
		var (
			sum uint64
			n   int
		)
		if width <= bank.MaxWidth[uint32]() {
			banks, err := bank.ReadAll[uint32](src.reader(), width)
			if err != nil {
				return 0, fmt.Errorf("%s: %w", src.name, err)
			}
			sum, n = bank.Total(banks), len(banks)
		} else {
			banks, err := bank.ReadAll[uint64](src.reader(), width)
			if err != nil {
				return 0, fmt.Errorf("%s: %w", src.name, err)
			}
			sum, n = bank.Total(banks), len(banks)
		}
		log.WithFields(log.Fields{"file": src.name, "width": width, "banks": n}).Debugf("joltage %d", sum)
		total += sum
	}
	return total, nil
}
