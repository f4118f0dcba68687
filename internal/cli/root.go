// Package cli implements the joltage command.
package cli

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// NewRootCmd returns the joltage command with its subcommands attached.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "joltage",
		Short: "Find the largest joltage of battery banks.",
		Long: `Each line of input is a bank of batteries, one decimal digit each.
Turning on N batteries, in order, yields the N digit number they form.
joltage finds the largest such number per bank.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(cmd.ErrOrStderr(), getFlag(cmd, "verbose"))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if getFlag(cmd, "version") {
				fmt.Fprintln(cmd.OutOrStdout(), "joltage", version())
				return nil
			}
			return cmd.Help()
		},
	}
	root.Flags().Bool("version", false, "Report version of this executable")
	root.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	root.PersistentFlags().IntSliceP("width", "w", []int{2, 12}, "number of batteries to turn on (repeatable)")
	root.AddCommand(newSumCmd(), newSelectCmd())
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func version() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.Main.Version
	}
	return "(unknown version)"
}

func configureLogging(w io.Writer, verbose bool) {
	log.SetOutput(w)
	log.SetFormatter(&log.TextFormatter{
		ForceColors:      isTerminal(w),
		DisableTimestamp: true,
	})
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Get an expected flag, or panic if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		panic(err)
	}
	return r
}

func getWidths(cmd *cobra.Command) ([]int, error) {
	ws, err := cmd.Flags().GetIntSlice("width")
	if err != nil {
		return nil, err
	}
	if len(ws) == 0 {
		return nil, fmt.Errorf("no --width given")
	}
	return ws, nil
}
