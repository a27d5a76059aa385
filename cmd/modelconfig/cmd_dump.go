package main

import (
	"github.com/spf13/cobra"
)

// newCmdDump returns a command that prints the whole parsed document.
func newCmdDump(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the whole configuration document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := openConfig(flags)
			if err != nil {
				return err
			}

			document, err := cfg.Document()
			if err != nil {
				return err //nolint:wrapcheck // accessor errors already name the file
			}

			return printYAML(cmd, document)
		},
	}
}
