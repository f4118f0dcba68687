package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/joltlab/aoc/internal/bank"
	"github.com/spf13/cobra"
)

const (
	ansiBold  = "\x1b[1;32m"
	ansiReset = "\x1b[0m"
)

func newSelectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select [flags] [file...]",
		Short: "Show which batteries each bank turns on.",
		Long: `Print every bank with the batteries chosen for each width marked,
followed by the resulting joltage. Chosen digits are highlighted on a
terminal and bracketed otherwise.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			widths, err := getWidths(cmd)
			if err != nil {
				return err
			}
			srcs, err := readSources(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			color := isTerminal(cmd.OutOrStdout())
			if c, _ := cmd.Flags().GetBool("color"); c {
				color = true
			}
			for _, src := range srcs {
				for _, w := range widths {
					banks, err := bank.ReadAll[uint64](src.reader(), w)
					if err != nil {
						return fmt.Errorf("%s: %w", src.name, err)
					}
					for _, b := range banks {
						writeSelection(cmd.OutOrStdout(), b, color)
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool("color", false, "always highlight chosen batteries")
	return cmd
}

func writeSelection(w io.Writer, b *bank.Bank[uint64], color bool) {
	var sb strings.Builder
	idx := b.Select()
	next := 0
	for i := 0; i < b.Len(); i++ {
		d := byte(b.Digit(i)) + '0'
		if next < len(idx) && idx[next] == i {
			next++
			if color {
				sb.WriteString(ansiBold)
				sb.WriteByte(d)
				sb.WriteString(ansiReset)
			} else {
				sb.WriteByte('[')
				sb.WriteByte(d)
				sb.WriteByte(']')
			}
			continue
		}
		sb.WriteByte(d)
	}
	fmt.Fprintf(w, "%s %d\n", sb.String(), b.Joltage())
}
