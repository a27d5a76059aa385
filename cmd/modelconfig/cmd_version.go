package main

import (
	"fmt"

	modelconfig "github.com/0xalexb/hjarta-modelconfig"

	"github.com/spf13/cobra"
)

// newCmdVersion returns a command that prints the application version.
func newCmdVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "modelconfig version %s (commit %s, built %s)\n",
				modelconfig.Version, modelconfig.Commit, modelconfig.CompiledAt)
		},
	}
}
