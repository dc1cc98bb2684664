package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the module's release version, overridable at link time
// with -ldflags "-X .../cmd.Version=...".
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the incognito version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("incognito " + Version)

		return nil
	},
}
