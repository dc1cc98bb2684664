package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/latticek/incognito/dataset"
	"github.com/latticek/incognito/internal/ilog"
)

// exit codes, spec.md §6.4: 0 success; 2 unknown column/dataset; 3
// unreadable hierarchy; 1 any other fatal error.
const (
	exitOK               = 0
	exitOther            = 1
	exitUnknownColumnData = 2
	exitHierarchyUnreadable = 3
)

var (
	verbose bool
	logger  ilog.Logger
	cache   = dataset.NewCache()
)

var rootCmd = &cobra.Command{
	Use:   "incognito",
	Short: "Full-domain k-anonymity search over a quasi-identifier set",
	Long: `incognito finds every minimal generalization vector that makes a
table k-anonymous for a chosen set of quasi-identifier columns, using
the bottom-up Incognito lattice search.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := ilog.LevelInfo
		if verbose {
			level = ilog.LevelDebug
		}
		logger = ilog.NewStd(level, os.Stdout)

		return nil
	},
}

// Execute runs the root command, translating a failure into the exit
// code its error sentinel implies.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}
